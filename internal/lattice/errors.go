package lattice

import "errors"

// Domain errors for lattice runs.
var (
	// ErrDimensionMismatch indicates a parameter vector whose length
	// differs from the node count.
	ErrDimensionMismatch = errors.New("lattice: parameter length does not match node count")

	// ErrUnknownCoupling indicates an unrecognized coupling scheme name.
	ErrUnknownCoupling = errors.New("lattice: unknown coupling type")

	// ErrDegenerate indicates every retry attempt produced a degenerate
	// trajectory (NaN/Inf or a node stuck at zero). The last trajectory
	// is still returned alongside this error.
	ErrDegenerate = errors.New("lattice: trajectory degenerate after all attempts")

	// ErrConstantSeries indicates a node's post-transient series is
	// constant, leaving min-max normalization undefined.
	ErrConstantSeries = errors.New("lattice: constant series cannot be normalized")
)
