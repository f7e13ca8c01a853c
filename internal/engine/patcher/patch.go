package patcher

import (
	"path/filepath"
	"strings"
	"unicode"

	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/lily/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskInvocation is one task instance bound by a patch, together with the
// file-scope declared inside its @task block.
type TaskInvocation struct {
	Task ports.Task
	// Files is the block-level @files scope as relative paths; nil means the
	// invocation inherits the patch scope.
	Files []string
}

// Patch is an ordered sequence of task invocations parsed from one source
// description.
type Patch struct {
	name        string
	files       []string
	invocations []TaskInvocation
}

// ParsePatch scans source with the given grammar and resolves directive
// blocks into task instances from the registry. It returns (nil, nil) when
// the source carries no @lily directive: not a patch, not an error.
//
// The grammar is passed in explicitly so the caller decides which registry
// state a parse observes.
func ParsePatch(name, source string, grammar *domain.Grammar, registry *Registry) (*Patch, error) {
	directives := grammar.Scan(source)

	marked := false
	for _, d := range directives {
		if d.Keyword == domain.KeywordPatch {
			marked = true
			break
		}
	}
	if !marked {
		return nil, nil
	}

	p := &Patch{name: name}

	type block struct {
		task   string
		params map[string]string
		files  []string
	}
	var current *block

	flush := func() error {
		if current == nil {
			return nil
		}
		defer func() { current = nil }()

		factory, ok := registry.Lookup(current.task)
		if !ok {
			return zerr.With(zerr.With(domain.ErrUnknownTaskType, "task", current.task), "patch", p.name)
		}
		task := factory()
		if err := task.Configure(current.params); err != nil {
			return zerr.With(err, "patch", p.name)
		}
		p.invocations = append(p.invocations, TaskInvocation{Task: task, Files: current.files})
		return nil
	}

	for _, d := range directives {
		switch d.Keyword {
		case domain.KeywordPatch:
			if p.name == "" {
				p.name = d.Arg
			}
		case domain.KeywordTask:
			if err := flush(); err != nil {
				return nil, err
			}
			fields := strings.Fields(d.Arg)
			if len(fields) == 0 {
				return nil, zerr.With(zerr.With(domain.ErrUnknownTaskType, "task", ""), "patch", p.name)
			}
			current = &block{task: fields[0], params: make(map[string]string)}
		case domain.KeywordFiles:
			paths := splitPathList(d.Arg)
			if current == nil {
				p.files = append(p.files, paths...)
			} else {
				current.files = append(current.files, paths...)
			}
		default:
			// Parameter directive. Recorded on the open block even when the
			// active task does not declare it; Configure ignores extras.
			// Directives outside any task block are dropped.
			if current != nil {
				current.params[d.Keyword] = d.Arg
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return p, nil
}

// Name returns the patch name, taken from the source description or from the
// @lily directive argument.
func (p *Patch) Name() string {
	return p.name
}

// Files returns the patch-level file-scope; empty means every file under the
// input tree.
func (p *Patch) Files() []string {
	out := make([]string, len(p.files))
	copy(out, p.files)
	return out
}

// Tasks returns the instantiated task invocations strictly in directive
// order, never reordered or deduplicated.
func (p *Patch) Tasks() []TaskInvocation {
	out := make([]TaskInvocation, len(p.invocations))
	copy(out, p.invocations)
	return out
}

// splitPathList splits a delimited list of relative paths on commas and
// whitespace, dropping empty entries.
func splitPathList(arg string) []string {
	fields := strings.FieldsFunc(arg, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, filepath.ToSlash(filepath.Clean(f)))
	}
	return out
}

// inScope reports whether rel matches one of the scope entries. An empty
// scope matches everything.
func inScope(scope []string, rel string) bool {
	if len(scope) == 0 {
		return true
	}
	rel = filepath.ToSlash(filepath.Clean(rel))
	for _, s := range scope {
		if filepath.ToSlash(filepath.Clean(s)) == rel {
			return true
		}
	}
	return false
}
