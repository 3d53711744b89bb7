package batch

import "errors"

var (
	// ErrRunnerClosed signals use of a runner after Close.
	ErrRunnerClosed = errors.New("batch: runner is closed")
	// ErrDuplicateJob signals two jobs in one batch sharing an ID.
	ErrDuplicateJob = errors.New("batch: duplicate job id")
)
