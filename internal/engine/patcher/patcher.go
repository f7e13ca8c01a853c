package patcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/lily/internal/core/ports"
	"go.trai.ch/zerr"
)

// outputReleaseDelay is the pause after recursively removing the output root,
// giving the storage layer time to release the path before it is recreated.
const outputReleaseDelay = 100 * time.Millisecond

// Patcher orchestrates patches against a source tree. It owns the task
// registry, the ordered patch list, and the pending-save buffer. Construct a
// fresh instance per run; a Patcher is not safe for concurrent use and run
// state is not reset between runs.
type Patcher struct {
	cfg      domain.Config
	registry *Registry
	patches  []*Patch

	pending      map[string]*domain.FileBuffer
	pendingOrder []string
	written      []writtenFile
	stopped      bool

	walker    ports.Walker
	hasher    ports.Hasher
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a Patcher and registers the built-in task catalog. Catalog
// names are registered in sorted order so the derived grammar is stable.
func New(
	cfg domain.Config,
	walker ports.Walker,
	hasher ports.Hasher,
	logger ports.Logger,
	telemetry ports.Telemetry,
	catalog map[string]ports.TaskFactory,
) (*Patcher, error) {
	p := &Patcher{
		cfg:       cfg,
		registry:  NewRegistry(),
		pending:   make(map[string]*domain.FileBuffer),
		walker:    walker,
		hasher:    hasher,
		logger:    logger,
		telemetry: telemetry,
	}

	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := p.registry.Register(name, catalog[name]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Registry returns the task registry owned by this Patcher.
func (p *Patcher) Registry() *Registry {
	return p.registry
}

// RegisterTask registers an additional task factory.
func (p *Patcher) RegisterTask(name string, factory ports.TaskFactory) error {
	return p.registry.Register(name, factory)
}

// AddPatchSource parses source against the current grammar and appends the
// resulting patch. It returns false when the source is not a patch.
func (p *Patcher) AddPatchSource(name, source string) (bool, error) {
	patch, err := ParsePatch(name, source, p.registry.Grammar(), p.registry)
	if err != nil {
		return false, err
	}
	if patch == nil {
		return false, nil
	}
	p.patches = append(p.patches, patch)
	return true, nil
}

// AddPatchFile loads a patch source from disk and appends it.
func (p *Patcher) AddPatchFile(path string) (bool, error) {
	file, err := domain.LoadFile(path)
	if err != nil {
		return false, err
	}
	return p.AddPatchSource(path, file.Content())
}

// Patches returns the registered patches in registration order.
func (p *Patcher) Patches() []*Patch {
	out := make([]*Patch, len(p.patches))
	copy(out, p.patches)
	return out
}

// Stop requests a cooperative abort. Any task may call this from inside its
// own Apply; the run stops after the current task completes.
func (p *Patcher) Stop() {
	p.stopped = true
}

// Stopped reports whether a stop has been requested.
func (p *Patcher) Stopped() bool {
	return p.stopped
}

// Apply runs every patch against a single in-memory buffer wrapping content.
// It never touches the filesystem and never consults the input/output roots.
// The first failing task aborts the operation; the partially mutated buffer
// is discarded. On full success the mutated content is returned.
func (p *Patcher) Apply(ctx context.Context, content string) (string, error) {
	file := domain.FileFromContent(content)
	for _, patch := range p.patches {
		for _, inv := range patch.Tasks() {
			if err := p.applyTask(ctx, patch, inv.Task, file); err != nil {
				return "", err
			}
		}
	}
	return file.Content(), nil
}

// Run executes all patches against the input tree and persists the mutated
// files to the output tree. The returned Summary is valid whether or not the
// run succeeded; on failure nothing has been written beyond the directory
// scaffolding of the preparation phase.
func (p *Patcher) Run(ctx context.Context) (*Summary, error) {
	if err := p.prepareOutput(); err != nil {
		return p.Summary(), err
	}

	// Enumerated once, before any mutation. Files created during the run are
	// not picked up.
	files, err := p.walker.Walk(p.cfg.InputDir, p.cfg.Ignores)
	if err != nil {
		return p.Summary(), zerr.With(zerr.Wrap(err, "failed to enumerate input tree"), "input", p.cfg.InputDir)
	}

	for _, patch := range p.patches {
		p.logger.Info("running patch " + patch.Name())
		for _, inv := range patch.Tasks() {
			targets, resolveErr := p.resolveTargets(files, patch, inv)
			if resolveErr != nil {
				return p.Summary(), resolveErr
			}
			for _, src := range targets {
				if stopErr := p.checkStop(ctx); stopErr != nil {
					return p.Summary(), stopErr
				}
				buffer, bufErr := p.bufferFor(src)
				if bufErr != nil {
					return p.Summary(), bufErr
				}
				if applyErr := p.applyTask(ctx, patch, inv.Task, buffer); applyErr != nil {
					return p.Summary(), applyErr
				}
			}
			if stopErr := p.checkStop(ctx); stopErr != nil {
				return p.Summary(), stopErr
			}
		}
	}

	if err := p.persist(); err != nil {
		return p.Summary(), err
	}
	return p.Summary(), nil
}

// prepareOutput readies the output root. Fatal on error, no retry.
func (p *Patcher) prepareOutput() error {
	out := p.cfg.OutputDir
	if p.cfg.AutoClean {
		if _, err := os.Stat(out); err == nil {
			if err := os.RemoveAll(out); err != nil {
				return zerr.With(zerr.With(domain.ErrOutputDirectory, "cause", err.Error()), "path", out)
			}
			time.Sleep(outputReleaseDelay)
		}
	}
	if err := os.MkdirAll(out, 0o750); err != nil {
		return zerr.With(zerr.With(domain.ErrOutputDirectory, "cause", err.Error()), "path", out)
	}
	return nil
}

// resolveTargets filters the enumeration by patch scope, block scope, and the
// task's own file-scope, preserving enumeration order.
func (p *Patcher) resolveTargets(files []string, patch *Patch, inv TaskInvocation) ([]string, error) {
	patchScope := patch.Files()
	taskScope := inv.Task.Files()

	var targets []string
	for _, src := range files {
		rel, err := filepath.Rel(p.cfg.InputDir, src)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", src)
		}
		if !inScope(patchScope, rel) || !inScope(inv.Files, rel) || !inScope(taskScope, rel) {
			continue
		}
		targets = append(targets, src)
	}
	return targets, nil
}

// bufferFor returns the pending-save buffer for the destination mirroring
// src, lazily loading it from the original input path. Later tasks targeting
// the same destination observe the accumulated mutations.
func (p *Patcher) bufferFor(src string) (*domain.FileBuffer, error) {
	rel, err := filepath.Rel(p.cfg.InputDir, src)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", src)
	}
	dest := filepath.Join(p.cfg.OutputDir, rel)

	if buffer, ok := p.pending[dest]; ok {
		return buffer, nil
	}
	buffer, err := domain.LoadFile(src)
	if err != nil {
		return nil, err
	}
	p.pending[dest] = buffer
	p.pendingOrder = append(p.pendingOrder, dest)
	return buffer, nil
}

// applyTask invokes one task against one buffer, recording a telemetry
// vertex. A task failure is converted into an overall failure return at this
// boundary rather than propagated as a panic or raised further.
func (p *Patcher) applyTask(ctx context.Context, patch *Patch, task ports.Task, file *domain.FileBuffer) error {
	name := patch.Name() + "/" + task.Name()
	_, vertex := p.telemetry.Record(ctx, name)

	err := task.Apply(file)
	vertex.Complete(err)
	if err != nil {
		wrapped := zerr.With(zerr.With(zerr.With(domain.ErrPatchFailed, "patch", patch.Name()), "task", task.Name()), "cause", err.Error())
		p.logger.Error(wrapped)
		return wrapped
	}
	vertex.Log(domain.LogLevelInfo, "applied "+task.Name())
	return nil
}

// checkStop polls the cooperative continuation flag and the context between
// file iterations.
func (p *Patcher) checkStop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return zerr.With(domain.ErrStopped, "cause", err.Error())
	}
	if p.stopped {
		return domain.ErrStopped
	}
	return nil
}

// persist saves every buffered file exactly once, keyed by destination path,
// in first-touch order. Only reached when every patch and task succeeded.
func (p *Patcher) persist() error {
	for _, dest := range p.pendingOrder {
		buffer := p.pending[dest]
		if err := buffer.Save(dest); err != nil {
			return err
		}

		digest, err := p.hasher.HashFile(dest)
		if err != nil {
			return err
		}
		if digest != p.hasher.HashContent(buffer.Content()) {
			p.logger.Warn("written content does not match buffer for " + dest)
		}
		p.written = append(p.written, writtenFile{path: dest, digest: digest})
	}
	p.logger.Info("persisted " + strconv.Itoa(len(p.pendingOrder)) + " file(s)")
	return nil
}
