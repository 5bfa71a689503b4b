package lattice

import "fmt"

// ResolveParams expands r into one logistic parameter per node. A
// single value (or length-1 slice) is broadcast; a full-length slice
// is copied as-is. Any other length fails with ErrDimensionMismatch.
// The returned slice is private to the caller.
func ResolveParams(r []float64, nodes int) ([]float64, error) {
	out := make([]float64, nodes)
	switch len(r) {
	case 1:
		for k := range out {
			out[k] = r[0]
		}
	case nodes:
		copy(out, r)
	default:
		return nil, fmt.Errorf("%w: got %d values for %d nodes", ErrDimensionMismatch, len(r), nodes)
	}
	return out, nil
}
