// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/lily/internal/core/domain"

// Task is the polymorphic unit of content mutation. Implementations are
// registered into the task registry as factories; every directive occurrence
// in a patch gets a fresh instance with its own bound parameters and status.
//
//go:generate go run go.uber.org/mock/mockgen -source=task.go -destination=mocks/mock_task.go -package=mocks
type Task interface {
	// Name returns the unique task name used in @task directives.
	Name() string

	// RequiredParams returns the parameter names that must be bound before
	// the task can be applied, in declaration order.
	RequiredParams() []string

	// OptionalParams returns the parameter names the task accepts beyond the
	// required set, in declaration order.
	OptionalParams() []string

	// Configure binds the parameter values parsed from a patch. It returns
	// domain.ErrMissingRequiredParameter when a required parameter is absent.
	Configure(params map[string]string) error

	// Apply mutates the file buffer in place. The returned error carries the
	// structured failure cause; the orchestration boundary reduces it to the
	// coarse pass/fail contract. Apply transitions the task status exactly
	// once to a terminal state.
	Apply(file *domain.FileBuffer) error

	// Status returns the tri-state execution status.
	Status() domain.Status

	// Files returns the task's own file-scope as relative paths, or nil when
	// the task does not restrict its targets.
	Files() []string
}

// TaskFactory produces a fresh Task instance for one directive occurrence.
type TaskFactory func() Task
