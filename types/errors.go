package types

import "fmt"

// Error classes for the solve pipeline. Every one of these is fatal to the
// run - the pipeline is one-shot compute-and-report, so nothing is retried
// and there is no partial reporting after a failed stage.

// InvalidConfigurationError covers bad user inputs: non-positive element
// degree, zero subdivision counts, degenerate rectangle bounds.
type InvalidConfigurationError struct {
	Msg string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Msg
}

func ErrInvalidConfiguration(format string, args ...interface{}) error {
	return &InvalidConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// TopologyError is returned when a mesh query depends on connectivity that
// has not been computed yet, e.g. asking for exterior facets before the
// facet to cell adjacency exists.
type TopologyError struct {
	Msg string
}

func (e *TopologyError) Error() string {
	return "topology: " + e.Msg
}

func ErrTopology(format string, args ...interface{}) error {
	return &TopologyError{Msg: fmt.Sprintf(format, args...)}
}

// LinearSolveError wraps a failure of the assembled system solve, such as a
// singular matrix from insufficient boundary constraints or an iterative
// method that did not converge.
type LinearSolveError struct {
	Msg string
	Err error
}

func (e *LinearSolveError) Error() string {
	if e.Err != nil {
		return "linear solve: " + e.Msg + ": " + e.Err.Error()
	}
	return "linear solve: " + e.Msg
}

func (e *LinearSolveError) Unwrap() error { return e.Err }

func ErrLinearSolve(err error, format string, args ...interface{}) error {
	return &LinearSolveError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// ReductionError flags a malformed collective, e.g. a worker index outside
// the partition or a mismatched worker count.
type ReductionError struct {
	Msg string
}

func (e *ReductionError) Error() string {
	return "reduction: " + e.Msg
}

func ErrReduction(format string, args ...interface{}) error {
	return &ReductionError{Msg: fmt.Sprintf(format, args...)}
}
