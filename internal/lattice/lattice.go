package lattice

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/logisticnet/internal/graph"
)

// Generate runs the full pipeline: validate the adjacency matrix,
// resolve parameters, iterate the trajectory with bounded retries, cut
// the transient and normalize per node.
//
// Structural errors (graph shape, parameter length, non-positive
// length) fail fast. When every attempt degenerates the last
// trajectory is still processed and returned, wrapped in an
// ErrDegenerate error so callers can detect it.
func Generate(adjacency [][]int, cfg Config) (*Result, error) {
	if cfg.Length <= 0 {
		return nil, fmt.Errorf("lattice: length must be positive, got %d", cfg.Length)
	}
	if cfg.Coupling != Diffusive && cfg.Coupling != Kaneko {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCoupling, cfg.Coupling)
	}

	g, err := graph.New(adjacency)
	if err != nil {
		return nil, err
	}

	r, err := ResolveParams(cfg.R, g.Nodes())
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	eng := NewEngine(g, r, cfg.Sigma, cfg.Coupling, rng)
	if cfg.Observer != nil {
		eng.AddObserver(cfg.Observer)
	}

	raw, attempts, degenerate := eng.Run(cfg.Length)

	series := CutTransient(raw)
	if err := Normalize(series); err != nil {
		if degenerate {
			return nil, fmt.Errorf("%w (%d attempts): %v", ErrDegenerate, attempts, err)
		}
		return nil, err
	}

	res := &Result{
		Series:     series,
		Nodes:      g.Nodes(),
		Attempts:   attempts,
		Degenerate: degenerate,
	}
	if degenerate {
		return res, fmt.Errorf("%w (%d attempts)", ErrDegenerate, attempts)
	}
	return res, nil
}
