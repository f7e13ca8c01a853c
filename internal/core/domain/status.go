package domain

// Status represents the tri-state execution status of a task instance.
// A task starts at StatusNotExecuted and transitions exactly once to a
// terminal state when its Apply operation runs. It never reverts.
type Status int

const (
	// StatusNotExecuted indicates the task has not been applied yet.
	StatusNotExecuted Status = iota
	// StatusSucceeded indicates the task applied successfully.
	StatusSucceeded
	// StatusFailed indicates the task application failed.
	StatusFailed
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "not-executed"
	}
}

// Terminal reports whether the status is a terminal state.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}
