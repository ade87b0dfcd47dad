package dynamo

import "errors"

// Domain errors for simulation stepping.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf entries.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value outside its valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrDimensionMismatch indicates a state vector sized differently than
	// the system expects.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)
