// Package lattice generates multivariate time series from networks of
// coupled logistic maps.
//
// Each node k of a directed graph iterates f(x) = r_k·x·(1−x),
// perturbed by a coupling term aggregated over its predecessors:
//
//   - [Diffusive]: x' = (1−σ)·f(x_k) + (σ/deg)·Σ (x_l − x_k)
//   - [Kaneko]:    x' = (1−σ)·f(x_k) + (σ/deg)·Σ f(x_l)
//
// Source nodes (in-degree 0) run the bare map regardless of scheme.
//
// # Example
//
//	adj := [][]int{{0, 1}, {0, 0}} // node 0 drives node 1
//	cfg := lattice.DefaultConfig()
//	cfg.Length = 1000
//	res, err := lattice.Generate(adj, cfg)
//
// # Thread Safety
//
// Engine instances are NOT thread-safe; every Generate call owns its
// trajectory buffer exclusively, so concurrent calls with separate
// configs are safe.
package lattice
