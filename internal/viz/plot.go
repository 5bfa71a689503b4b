package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 10
	// plotSamples caps how many points feed one terminal plot; longer
	// series are stride-sampled.
	plotSamples = 2000
)

// RenderSeries draws one node's column of a run as a terminal graph.
func RenderSeries(series [][]float64, node int) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("viz: no data to plot")
	}
	if node < 0 || node >= len(series[0]) {
		return "", fmt.Errorf("viz: node %d out of range (have %d)", node+1, len(series[0]))
	}

	stride := len(series)/plotSamples + 1
	data := make([]float64, 0, len(series)/stride+1)
	for i := 0; i < len(series); i += stride {
		data = append(data, series[i][node])
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("node %d", node+1)),
	)
	return graphStyle.Render(graph), nil
}

// RenderAll draws every node of a run, one graph per node.
func RenderAll(series [][]float64) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("viz: no data to plot")
	}

	var b strings.Builder
	for k := range series[0] {
		g, err := RenderSeries(series, k)
		if err != nil {
			return "", err
		}
		b.WriteString(g)
		b.WriteString("\n")
	}
	return b.String(), nil
}
