// Package graph holds the directed network topology driving a coupled
// lattice run. An adjacency matrix A has A[l][k]=1 when node l is a
// direct input of node k (columns collect predecessors).
package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph indicates an adjacency matrix that is not square or
// not strictly 0/1.
var ErrInvalidGraph = errors.New("graph: invalid adjacency matrix")

// Adjacency is a validated directed 0/1 adjacency matrix with
// per-node in-degree and predecessor lists precomputed.
type Adjacency struct {
	matrix   [][]int
	inDegree []int
	preds    [][]int
}

// New validates m and builds an Adjacency. The matrix must be square
// with every entry 0 or 1.
func New(m [][]int) (*Adjacency, error) {
	n := len(m)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidGraph)
	}
	for l, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidGraph, l, len(row), n)
		}
		for k, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: entry (%d,%d)=%d, want 0 or 1", ErrInvalidGraph, l, k, v)
			}
		}
	}

	a := &Adjacency{
		matrix:   make([][]int, n),
		inDegree: make([]int, n),
		preds:    make([][]int, n),
	}
	for l := range m {
		a.matrix[l] = make([]int, n)
		copy(a.matrix[l], m[l])
	}
	for k := 0; k < n; k++ {
		for l := 0; l < n; l++ {
			if a.matrix[l][k] == 1 {
				a.inDegree[k]++
				a.preds[k] = append(a.preds[k], l)
			}
		}
	}
	return a, nil
}

// Nodes returns the number of nodes.
func (a *Adjacency) Nodes() int { return len(a.matrix) }

// InDegree returns the number of direct inputs of node k. A node with
// in-degree 0 is a source node and evolves as an uncoupled map.
func (a *Adjacency) InDegree(k int) int { return a.inDegree[k] }

// Predecessors returns the inputs of node k in ascending order. The
// returned slice is shared; callers must not modify it.
func (a *Adjacency) Predecessors(k int) []int { return a.preds[k] }

// HasEdge reports whether node l feeds node k.
func (a *Adjacency) HasEdge(l, k int) bool { return a.matrix[l][k] == 1 }
