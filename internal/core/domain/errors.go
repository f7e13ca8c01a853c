package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTaskType is returned when a registration names an implementation that cannot be resolved.
	ErrUnknownTaskType = zerr.New("unknown task type")

	// ErrInvalidTaskContract is returned when a registered implementation violates the task contract.
	ErrInvalidTaskContract = zerr.New("invalid task contract")

	// ErrMissingRequiredParameter is returned when a patch binds a task without one of its required parameters.
	ErrMissingRequiredParameter = zerr.New("missing required parameter")

	// ErrFileNotFound is returned when a file buffer is loaded from a path that does not exist.
	ErrFileNotFound = zerr.New("file not found")

	// ErrWriteFailure is returned when persisting a file buffer fails.
	ErrWriteFailure = zerr.New("write failure")

	// ErrOutputDirectory is returned when the output root cannot be prepared.
	ErrOutputDirectory = zerr.New("failed to prepare output directory")

	// ErrPatchFailed is returned when a task application aborts a run or an apply.
	ErrPatchFailed = zerr.New("patch execution failed")

	// ErrStopped is returned when a run is aborted by a cooperative stop request.
	ErrStopped = zerr.New("run stopped")
)
