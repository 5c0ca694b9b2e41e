package fastmin

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for fastmin operations. Match with errors.Is.
var (
	// ErrShapeMismatch indicates D, V or a labeling with inconsistent dimensions.
	ErrShapeMismatch = errors.New("fastmin: shape mismatch")

	// ErrInvalidLabel indicates a label outside [0, L) in a supplied labeling.
	ErrInvalidLabel = errors.New("fastmin: invalid label")

	// ErrInvalidCost indicates a NaN or infinite unary or pairwise cost.
	ErrInvalidCost = errors.New("fastmin: invalid cost")

	// ErrSolverFailure marks any error returned by the minimum-cut solver,
	// or a partition that does not cover the submitted network.
	ErrSolverFailure = errors.New("fastmin: min-cut solver failure")

	// ErrNotSemiMetric is returned by CheckSemiMetric.
	ErrNotSemiMetric = errors.New("fastmin: pairwise costs are not a semi-metric")

	// ErrNotMetric is returned by CheckMetric.
	ErrNotMetric = errors.New("fastmin: pairwise costs are not a metric")
)

// MoveError reports a failure of the min-cut solver on one move. It
// matches ErrSolverFailure and unwraps to the underlying cause.
type MoveError struct {
	Move Move
	Err  error
}

// Error implements the error interface.
func (e *MoveError) Error() string {
	return fmt.Sprintf("fastmin: %s: %v", e.Move, e.Err)
}

// Unwrap returns the underlying cause.
func (e *MoveError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSolverFailure.
func (e *MoveError) Is(target error) bool { return target == ErrSolverFailure }
