package lattice

import (
	"math"

	"github.com/san-kum/logisticnet/internal/graph"
)

// parallelMinNodes is the node count below which a step runs inline;
// tiny networks never pay goroutine overhead.
const parallelMinNodes = 256

// Engine iterates the coupled map recurrence over a graph, retrying
// with fresh initial conditions when a trajectory degenerates.
type Engine struct {
	adj       *graph.Adjacency
	r         []float64
	sigma     float64
	coupling  Coupling
	rng       Source
	observers []Observer
}

// NewEngine builds an engine over an already validated graph and a
// resolved per-node parameter vector.
func NewEngine(adj *graph.Adjacency, r []float64, sigma float64, coupling Coupling, rng Source) *Engine {
	return &Engine{
		adj:       adj,
		r:         r,
		sigma:     sigma,
		coupling:  coupling,
		rng:       rng,
		observers: make([]Observer, 0),
	}
}

// AddObserver registers a progress observer. Observers never affect
// the numerical result.
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Run produces a raw (length+10002)×N trajectory whose row 0 is a
// uniform draw per node and whose later rows follow the coupling
// scheme. Degenerate attempts are restarted from a fresh draw, up to
// MaxAttempts; on exhaustion the last trajectory is returned with
// degenerate=true.
func (e *Engine) Run(length int) (out [][]float64, attempts int, degenerate bool) {
	nodes := e.adj.Nodes()
	rows := length + transientRows
	steps := rows - 1

	interval := steps / 10
	if interval < 1 {
		interval = 1
	}

	for attempts = 1; attempts <= MaxAttempts; attempts++ {
		out = e.newBuffer(rows, nodes)
		for k := 0; k < nodes; k++ {
			out[0][k] = e.rng.Float64()
		}

		degenerate = false
		for n := 0; n < steps; n++ {
			if n%interval == 0 {
				e.notify(n, steps, out[n])
			}
			if !e.step(out[n], out[n+1]) {
				degenerate = true
				break
			}
		}
		if !degenerate {
			e.notify(steps, steps, out[steps])
			return out, attempts, false
		}
	}
	return out, MaxAttempts, true
}

// newBuffer allocates the trajectory table as one contiguous block
// sliced into rows.
func (e *Engine) newBuffer(rows, nodes int) [][]float64 {
	backing := make([]float64, rows*nodes)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = backing[i*nodes : (i+1)*nodes]
	}
	return out
}

// step computes next from cur. Node updates only read cur, so they
// are order-independent and safe to chunk across goroutines. Returns
// false when the new row is degenerate.
func (e *Engine) step(cur, next []float64) bool {
	parallelFor(len(cur), parallelMinNodes, func(start, end int) {
		for k := start; k < end; k++ {
			next[k] = e.update(cur, k)
		}
	})

	for k, v := range next {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		// a node pinned at exactly zero has collapsed dynamics
		if v == 0 && cur[k] == 0 {
			return false
		}
	}
	return true
}

// update applies the per-node recurrence to node k reading row cur.
func (e *Engine) update(cur []float64, k int) float64 {
	x := cur[k]
	fx := e.r[k] * x * (1 - x)

	preds := e.adj.Predecessors(k)
	if len(preds) == 0 {
		// source node: bare logistic dynamics
		return fx
	}

	sum := 0.0
	switch e.coupling {
	case Kaneko:
		for _, l := range preds {
			xl := cur[l]
			sum += e.r[k] * xl * (1 - xl)
		}
	default:
		for _, l := range preds {
			sum += cur[l] - x
		}
	}

	return (1-e.sigma)*fx + e.sigma*sum/float64(len(preds))
}

func (e *Engine) notify(step, total int, row []float64) {
	for _, o := range e.observers {
		o.OnProgress(step, total, row)
	}
}
