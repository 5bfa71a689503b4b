package lattice

import "fmt"

// Coupling selects the per-node update formula.
type Coupling int

const (
	// Diffusive couples each node to the average difference between
	// its predecessors' values and its own.
	Diffusive Coupling = iota
	// Kaneko couples each node to the average of the logistic map
	// applied to its predecessors' values.
	Kaneko
)

// ParseCoupling maps a scheme name to its Coupling value. Unrecognized
// names fail with ErrUnknownCoupling.
func ParseCoupling(s string) (Coupling, error) {
	switch s {
	case "diffusive":
		return Diffusive, nil
	case "kaneko":
		return Kaneko, nil
	default:
		return 0, fmt.Errorf("%w: %q (want diffusive or kaneko)", ErrUnknownCoupling, s)
	}
}

func (c Coupling) String() string {
	switch c {
	case Diffusive:
		return "diffusive"
	case Kaneko:
		return "kaneko"
	default:
		return fmt.Sprintf("coupling(%d)", int(c))
	}
}

// Source supplies uniform draws in [0,1) for initial conditions.
// *math/rand.Rand satisfies it; tests inject deterministic stubs.
type Source interface {
	Float64() float64
}

// Observer receives coarse progress notifications during a run. It is
// called roughly every 10% of steps plus once at completion, with the
// most recent trajectory row. Observers must not modify row.
type Observer interface {
	OnProgress(step, total int, row []float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(step, total int, row []float64)

func (f ObserverFunc) OnProgress(step, total int, row []float64) { f(step, total, row) }

const (
	// Transient is the number of burn-in steps prepended to every run.
	Transient = 10000

	// transientRows is cut from the head of the raw trajectory before
	// normalization: the burn-in, the initial condition row, and one
	// offset row.
	transientRows = Transient + 2

	// MaxAttempts bounds restarts on degenerate trajectories: the
	// first try plus ten retries.
	MaxAttempts = 11
)

// Config describes one generation run.
type Config struct {
	// Length is the number of output rows after the transient cut.
	Length int
	// R holds the logistic parameter, conventionally in (0,4]. A
	// single value is broadcast to every node; otherwise the length
	// must equal the node count.
	R []float64
	// Sigma is the coupling strength shared by all edges.
	Sigma float64
	// Coupling selects the update scheme.
	Coupling Coupling
	// Seed seeds the default random source when Rand is nil.
	Seed int64
	// Rand overrides the initial-condition source. Optional.
	Rand Source
	// Observer receives progress notifications. Optional.
	Observer Observer
}

// DefaultConfig mirrors the canonical X→Y example: r=4 maps under
// diffusive coupling of strength 0.2.
func DefaultConfig() Config {
	return Config{
		Length:   1000,
		R:        []float64{4.0},
		Sigma:    0.2,
		Coupling: Diffusive,
	}
}

// Result is the outcome of a generation run.
type Result struct {
	// Series holds Length rows of N normalized node values in [0,1].
	Series [][]float64
	// Nodes is the network size N.
	Nodes int
	// Attempts counts trajectory attempts, including the final one.
	Attempts int
	// Degenerate is true when every attempt hit a degenerate
	// trajectory and the returned series derives from the last one.
	Degenerate bool
}
