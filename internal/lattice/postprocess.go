package lattice

import "fmt"

// CutTransient drops the burn-in rows from a raw trajectory. The
// returned rows alias the input buffer.
func CutTransient(raw [][]float64) [][]float64 {
	if len(raw) <= transientRows {
		return raw[:0]
	}
	return raw[transientRows:]
}

// Normalize rescales each column of series in place to [0,1] via
// min-max normalization, so every column has min 0 and max 1. A
// constant column fails with ErrConstantSeries.
func Normalize(series [][]float64) error {
	if len(series) == 0 {
		return nil
	}

	nodes := len(series[0])
	for k := 0; k < nodes; k++ {
		lo, hi := series[0][k], series[0][k]
		for _, row := range series[1:] {
			if row[k] < lo {
				lo = row[k]
			}
			if row[k] > hi {
				hi = row[k]
			}
		}
		if hi == lo {
			return fmt.Errorf("%w: node %d", ErrConstantSeries, k)
		}
		span := hi - lo
		for _, row := range series {
			row[k] = (row[k] - lo) / span
		}
	}
	return nil
}
