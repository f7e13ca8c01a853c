// Package app implements the application layer for lily.
package app

import (
	"context"
	"strings"

	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/lily/internal/core/ports"
	"go.trai.ch/lily/internal/engine/patcher"
	"go.trai.ch/lily/internal/tasks"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PatchSourceExt is the extension patch sources are discovered by when the
// configuration names none.
const PatchSourceExt = ".lily"

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	walker    ports.Walker
	hasher    ports.Hasher
	logger    ports.Logger
	telemetry ports.Telemetry

	configPath string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, walker ports.Walker, hasher ports.Hasher, logger ports.Logger, telemetry ports.Telemetry) *App {
	return &App{
		loader:    loader,
		walker:    walker,
		hasher:    hasher,
		logger:    logger,
		telemetry: telemetry,
	}
}

// SetConfigPath sets the configuration file used by subsequent operations.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// Run executes a full tree run: load config, parse patch sources, run the
// patcher, and report the summary.
func (a *App) Run(ctx context.Context) (*patcher.Summary, error) {
	cfg, err := a.loader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// A fresh patcher per run keeps run state isolated.
	p, err := patcher.New(cfg, a.walker, a.hasher, a.logger, a.telemetry, tasks.Builtins())
	if err != nil {
		return nil, err
	}

	sources := cfg.Patches
	if len(sources) == 0 {
		sources, err = a.discoverSources(cfg)
		if err != nil {
			return nil, err
		}
	}
	if err := a.addSources(ctx, p, sources); err != nil {
		return nil, err
	}

	summary, runErr := p.Run(ctx)
	a.logger.Info("run summary: " + summary.String())
	if runErr != nil {
		return summary, runErr
	}
	return summary, nil
}

// ApplyContent runs the given patch sources against content purely in
// memory, without touching the input or output trees.
func (a *App) ApplyContent(ctx context.Context, content string, patchPaths []string) (string, error) {
	p, err := patcher.New(domain.DefaultConfig(), a.walker, a.hasher, a.logger, a.telemetry, tasks.Builtins())
	if err != nil {
		return "", err
	}
	if err := a.addSources(ctx, p, patchPaths); err != nil {
		return "", err
	}
	return p.Apply(ctx, content)
}

// TaskInfo describes one registered task for catalog listings.
type TaskInfo struct {
	Name     string
	Required []string
	Optional []string
}

// TaskCatalog returns the built-in task catalog in sorted name order.
func (a *App) TaskCatalog() ([]TaskInfo, error) {
	p, err := patcher.New(domain.DefaultConfig(), a.walker, a.hasher, a.logger, a.telemetry, tasks.Builtins())
	if err != nil {
		return nil, err
	}

	registry := p.Registry()
	infos := make([]TaskInfo, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		factory, _ := registry.Lookup(name)
		task := factory()
		infos = append(infos, TaskInfo{
			Name:     name,
			Required: task.RequiredParams(),
			Optional: task.OptionalParams(),
		})
	}
	return infos, nil
}

// discoverSources enumerates *.lily files under the input root, in walk
// order.
func (a *App) discoverSources(cfg domain.Config) ([]string, error) {
	files, err := a.walker.Walk(cfg.InputDir, cfg.Ignores)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to discover patch sources")
	}
	var sources []string
	for _, f := range files {
		if strings.HasSuffix(f, PatchSourceExt) {
			sources = append(sources, f)
		}
	}
	return sources, nil
}

// addSources loads the patch source files concurrently, then registers them
// sequentially in path order so patch registration order stays deterministic.
// Sources without a patch marker are skipped, not rejected.
func (a *App) addSources(ctx context.Context, p *patcher.Patcher, paths []string) error {
	contents := make([]string, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			file, err := domain.LoadFile(path)
			if err != nil {
				return err
			}
			contents[i] = file.Content()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		ok, err := p.AddPatchSource(path, contents[i])
		if err != nil {
			return err
		}
		if !ok {
			a.logger.Info("skipping non-patch source " + path)
		}
	}
	return nil
}
