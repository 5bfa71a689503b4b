package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/logisticnet/internal/lattice"
)

const barWidth = 50

type progressMsg struct {
	step, total int
	latest      []float64
}

type doneMsg struct {
	res *lattice.Result
	err error
}

// liveModel shows generation progress: a bar, the attempt counter and
// the most recent node values.
type liveModel struct {
	coupling lattice.Coupling
	sigma    float64

	step, total int
	attempt     int
	latest      []float64

	res *lattice.Result
	err error
}

func newLiveModel(coupling lattice.Coupling, sigma float64) liveModel {
	return liveModel{coupling: coupling, sigma: sigma, attempt: 1}
}

func (m liveModel) Init() tea.Cmd { return nil }

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		// a step moving backwards means the engine restarted
		if msg.step < m.step {
			m.attempt++
		}
		m.step, m.total = msg.step, msg.total
		m.latest = msg.latest
		return m, nil
	case doneMsg:
		m.res = msg.res
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m liveModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("generating time-series"))
	b.WriteString("\n")

	frac := 0.0
	if m.total > 0 {
		frac = float64(m.step) / float64(m.total)
	}
	filled := int(frac * barWidth)
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		barBgStyle.Render(strings.Repeat("░", barWidth-filled))
	b.WriteString(fmt.Sprintf("%s %3.0f%%\n\n", bar, frac*100))

	b.WriteString(labelStyle.Render("coupling") + valueStyle.Render(m.coupling.String()) + "\n")
	b.WriteString(labelStyle.Render("sigma") + valueStyle.Render(fmt.Sprintf("%.3f", m.sigma)) + "\n")
	b.WriteString(labelStyle.Render("attempt") + valueStyle.Render(fmt.Sprintf("%d/%d", m.attempt, lattice.MaxAttempts)) + "\n")

	if len(m.latest) > 0 {
		vals := make([]string, 0, len(m.latest))
		for _, v := range m.latest {
			vals = append(vals, fmt.Sprintf("%.4f", v))
		}
		b.WriteString(labelStyle.Render("state") + valueStyle.Render(strings.Join(vals, " ")) + "\n")
	}

	if m.attempt > 1 {
		b.WriteString("\n" + warnStyle.Render("degenerate trajectory, recalculating") + "\n")
	}

	b.WriteString(helpStyle.Render("q to abort"))
	b.WriteString("\n")
	return b.String()
}

// RunLive generates a run while rendering live progress, returning
// the finished result.
func RunLive(adjacency [][]int, cfg lattice.Config) (*lattice.Result, error) {
	p := tea.NewProgram(newLiveModel(cfg.Coupling, cfg.Sigma))

	cfg.Observer = lattice.ObserverFunc(func(step, total int, row []float64) {
		latest := make([]float64, len(row))
		copy(latest, row)
		p.Send(progressMsg{step: step, total: total, latest: latest})
	})

	go func() {
		res, err := lattice.Generate(adjacency, cfg)
		p.Send(doneMsg{res: res, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(liveModel)
	if m.res == nil && m.err == nil {
		return nil, fmt.Errorf("viz: generation aborted")
	}
	return m.res, m.err
}
