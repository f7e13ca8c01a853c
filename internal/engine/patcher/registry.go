// Package patcher implements the directive-driven patch orchestration engine.
package patcher

import (
	"sort"

	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/lily/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry maps task names to task factories and owns the derived directive
// grammar. The grammar alternation always equals the three structural
// keywords plus the deduplicated union of every registered task's parameter
// names, and is recompiled after every successful registration.
type Registry struct {
	factories map[string]ports.TaskFactory
	params    []string
	seen      map[string]bool
	grammar   *domain.Grammar
}

// NewRegistry creates an empty Registry with the structural-keyword grammar.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ports.TaskFactory),
		seen:      make(map[string]bool),
		grammar:   domain.CompileGrammar(nil),
	}
}

// Register adds a task factory under name. The last registration for a name
// replaces the prior one. On success the factory's parameter names are merged
// into the registered set and the grammar is recompiled.
func (r *Registry) Register(name string, factory ports.TaskFactory) error {
	if factory == nil {
		return zerr.With(domain.ErrUnknownTaskType, "task", name)
	}
	probe := factory()
	if probe == nil {
		return zerr.With(domain.ErrUnknownTaskType, "task", name)
	}
	if probe.Name() == "" || probe.Name() != name {
		return zerr.With(zerr.With(domain.ErrInvalidTaskContract, "task", name), "reported_name", probe.Name())
	}

	union := append(probe.RequiredParams(), probe.OptionalParams()...) //nolint:gocritic // deliberate new slice
	local := make(map[string]bool, len(union))
	for _, p := range union {
		if p == "" || local[p] {
			return zerr.With(zerr.With(domain.ErrInvalidTaskContract, "task", name), "param", p)
		}
		local[p] = true
	}

	r.factories[name] = factory
	for _, p := range union {
		if r.seen[p] {
			continue
		}
		r.seen[p] = true
		r.params = append(r.params, p)
	}
	r.grammar = domain.CompileGrammar(r.params)
	return nil
}

// Lookup returns the factory registered under name. It never errors.
func (r *Registry) Lookup(name string) (ports.TaskFactory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Grammar returns the grammar derived from the current registered set.
func (r *Registry) Grammar() *domain.Grammar {
	return r.grammar
}

// Params returns the deduplicated union of all registered parameter names in
// first-registration order.
func (r *Registry) Params() []string {
	out := make([]string, len(r.params))
	copy(out, r.params)
	return out
}

// Names returns the registered task names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
