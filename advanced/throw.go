package advanced

import "github.com/pkg/errors"

// The solver has no recoverable error states, but its internal invariants
// (matrix shapes, window ordering) are checked. Threading errors through the
// whole partition loop for conditions that indicate a bug would add a lot of
// noise, so violations panic with a SolveError and the public API recovers
// them into an error.

type SolveError error

// Panic with a SolveError.
func fatalf(format string, args ...interface{}) {
	panic(SolveError(errors.Errorf(format, args...)))
}

// HandleSolvePanicRecover converts a recovered SolveError into an error. Any
// other panic value is re-raised.
func HandleSolvePanicRecover(r interface{}) error {
	if r != nil {
		if solveError, ok := r.(SolveError); ok {
			return solveError
		}
		panic(r)
	}
	return nil
}
