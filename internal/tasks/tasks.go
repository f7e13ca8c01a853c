// Package tasks provides the built-in task catalog and the Base helper that
// task implementations embed to satisfy the task contract.
package tasks

import (
	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/lily/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builtins returns the factories for the built-in task catalog, keyed by task
// name. The patcher registers these at construction.
func Builtins() map[string]ports.TaskFactory {
	return map[string]ports.TaskFactory{
		"replace": func() ports.Task { return NewReplace() },
		"banner":  func() ports.Task { return NewBanner() },
		"define":  func() ports.Task { return NewDefine() },
		"strip":   func() ports.Task { return NewStrip() },
		"append":  func() ports.Task { return NewAppend() },
	}
}

// Base carries the contract plumbing shared by all tasks: identity, declared
// parameter sets, bound values, and the tri-state status.
type Base struct {
	name     string
	required []string
	optional []string
	params   map[string]string
	status   domain.Status
}

// NewBase creates the embedded contract state for a task.
func NewBase(name string, required, optional []string) Base {
	return Base{name: name, required: required, optional: optional}
}

// Name returns the unique task name.
func (b *Base) Name() string { return b.name }

// RequiredParams returns the required parameter names in declaration order.
func (b *Base) RequiredParams() []string {
	out := make([]string, len(b.required))
	copy(out, b.required)
	return out
}

// OptionalParams returns the optional parameter names in declaration order.
func (b *Base) OptionalParams() []string {
	out := make([]string, len(b.optional))
	copy(out, b.optional)
	return out
}

// Status returns the tri-state execution status.
func (b *Base) Status() domain.Status { return b.status }

// Files returns nil: built-in tasks do not restrict their targets.
func (b *Base) Files() []string { return nil }

// Configure binds the declared subset of params. Extra parameters are
// tolerated and dropped; a missing required parameter is an error.
func (b *Base) Configure(params map[string]string) error {
	b.params = make(map[string]string, len(params))
	for _, name := range append(b.RequiredParams(), b.optional...) {
		if value, ok := params[name]; ok {
			b.params[name] = value
		}
	}
	for _, name := range b.required {
		if _, ok := b.params[name]; !ok {
			return zerr.With(zerr.With(domain.ErrMissingRequiredParameter, "task", b.name), "param", name)
		}
	}
	return nil
}

// Param returns the bound value for name, or "" when unbound.
func (b *Base) Param(name string) string { return b.params[name] }

// HasParam reports whether name was bound.
func (b *Base) HasParam(name string) bool {
	_, ok := b.params[name]
	return ok
}

// finish records the terminal status for one application and passes err
// through. A failure sticks even when a later application of the same
// instance succeeds; a success never overwrites an earlier failure.
func (b *Base) finish(err error) error {
	if err != nil {
		b.status = domain.StatusFailed
	} else if b.status != domain.StatusFailed {
		b.status = domain.StatusSucceeded
	}
	return err
}
