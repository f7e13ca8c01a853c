package patcher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lily/internal/adapters/fs"
	"go.trai.ch/lily/internal/adapters/telemetry"
	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/lily/internal/core/ports"
	"go.trai.ch/lily/internal/core/ports/mocks"
	"go.trai.ch/lily/internal/engine/patcher"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func newTestPatcher(t *testing.T, cfg domain.Config, catalog map[string]ports.TaskFactory) *patcher.Patcher {
	t.Helper()
	p, err := patcher.New(cfg, fs.NewWalker(), fs.NewHasher(), quietLogger(t), telemetry.NewNoOp(), catalog)
	require.NoError(t, err)
	return p
}

func appendFactory(suffix string) ports.TaskFactory {
	return factoryFor(func() *fakeTask {
		return &fakeTask{name: "mark", fn: func(f *domain.FileBuffer) error {
			f.SetContent(f.Content() + suffix)
			return nil
		}}
	})
}

func failFactory() ports.TaskFactory {
	return factoryFor(func() *fakeTask {
		return &fakeTask{name: "boom", fn: func(*domain.FileBuffer) error {
			return errors.New("task exploded")
		}}
	})
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func TestPatcher_Apply(t *testing.T) {
	p := newTestPatcher(t, domain.DefaultConfig(), map[string]ports.TaskFactory{"upper": upperFactory()})

	ok, err := p.AddPatchSource("shout", "// @lily\n// @task upper")
	require.NoError(t, err)
	require.True(t, ok)

	result, err := p.Apply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", result)
}

func TestPatcher_Apply_InlineBlockComment(t *testing.T) {
	p := newTestPatcher(t, domain.DefaultConfig(), map[string]ports.TaskFactory{"upper": upperFactory()})

	ok, err := p.AddPatchSource("", "/* @lily @task upper */")
	require.NoError(t, err)
	require.True(t, ok)

	result, err := p.Apply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", result)
}

func TestPatcher_Apply_NoPatches(t *testing.T) {
	p := newTestPatcher(t, domain.DefaultConfig(), map[string]ports.TaskFactory{"upper": upperFactory()})

	result, err := p.Apply(context.Background(), "unchanged")
	require.NoError(t, err)
	assert.Equal(t, "unchanged", result)
}

func TestPatcher_Apply_Empty(t *testing.T) {
	p := newTestPatcher(t, domain.DefaultConfig(), map[string]ports.TaskFactory{"upper": upperFactory()})

	ok, err := p.AddPatchSource("noop", "// @lily\n// @task upper")
	require.NoError(t, err)
	require.True(t, ok)

	result, err := p.Apply(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", result)
}

func TestPatcher_Apply_Cumulative(t *testing.T) {
	// Three invocations against the same buffer observe each other's output.
	p := newTestPatcher(t, domain.DefaultConfig(), map[string]ports.TaskFactory{
		"mark": appendFactory("."),
	})
	require.NoError(t, p.RegisterTask("a", factoryFor(func() *fakeTask {
		return &fakeTask{name: "a", fn: func(f *domain.FileBuffer) error {
			f.SetContent(f.Content() + "A")
			return nil
		}}
	})))
	require.NoError(t, p.RegisterTask("b", factoryFor(func() *fakeTask {
		return &fakeTask{name: "b", fn: func(f *domain.FileBuffer) error {
			f.SetContent(f.Content() + "B")
			return nil
		}}
	})))

	ok, err := p.AddPatchSource("chain", "// @lily\n// @task a\n// @task b\n// @task a")
	require.NoError(t, err)
	require.True(t, ok)

	result, err := p.Apply(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "ABA", result)
}

func TestPatcher_Apply_FailFast(t *testing.T) {
	p := newTestPatcher(t, domain.DefaultConfig(), map[string]ports.TaskFactory{
		"mark": appendFactory("X"),
		"boom": failFactory(),
	})

	ok, err := p.AddPatchSource("broken", "// @lily\n// @task mark\n// @task boom\n// @task mark")
	require.NoError(t, err)
	require.True(t, ok)

	result, err := p.Apply(context.Background(), "seed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPatchFailed))
	assert.Equal(t, "", result)

	s := p.Summary()
	assert.Equal(t, []string{"broken/mark"}, s.Succeeded)
	assert.Equal(t, []string{"broken/boom"}, s.Failed)
	assert.Equal(t, []string{"broken/mark"}, s.NotExecuted)
}

func TestPatcher_AddPatchSource_NotAPatch(t *testing.T) {
	p := newTestPatcher(t, domain.DefaultConfig(), map[string]ports.TaskFactory{"upper": upperFactory()})

	ok, err := p.AddPatchSource("plain", "package main\n\nfunc main() {}")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, p.Patches())
}

func TestPatcher_Run_MirrorsTouchedFiles(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeTree(t, input, map[string]string{
		"a.txt":     "alpha",
		"sub/b.txt": "beta",
	})

	cfg := domain.Config{InputDir: input, OutputDir: output, AutoClean: true}
	p := newTestPatcher(t, cfg, map[string]ports.TaskFactory{"upper": upperFactory()})

	ok, err := p.AddPatchSource("shout", "// @lily\n// @files sub/b.txt\n// @task upper")
	require.NoError(t, err)
	require.True(t, ok)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(output, "sub", "b.txt")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "BETA", string(data))

	// Untouched files are not mirrored into the output tree.
	_, statErr := os.Stat(filepath.Join(output, "a.txt"))
	assert.True(t, os.IsNotExist(statErr))

	// The input tree is never mutated.
	original, err := os.ReadFile(filepath.Join(input, "sub", "b.txt")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "beta", string(original))

	assert.Equal(t, []string{"shout/upper"}, summary.Succeeded)
	require.Len(t, summary.Written, 1)
	digest, found := summary.Written[filepath.Join(output, "sub", "b.txt")]
	assert.True(t, found)
	assert.Equal(t, fs.NewHasher().HashContent("BETA"), digest)
}

func TestPatcher_Run_TaskOwnFileScope(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeTree(t, input, map[string]string{"a.txt": "x", "b.txt": "y"})

	// The task restricts its own targets via Files; no patch-level scope.
	scoped := factoryFor(func() *fakeTask {
		return &fakeTask{name: "upper", files: []string{"b.txt"}, fn: func(f *domain.FileBuffer) error {
			f.SetContent(toUpper(f.Content()))
			return nil
		}}
	})

	cfg := domain.Config{InputDir: input, OutputDir: output, AutoClean: true}
	p := newTestPatcher(t, cfg, map[string]ports.TaskFactory{"upper": scoped})

	ok, err := p.AddPatchSource("scoped", "// @lily\n// @task upper")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(output, "b.txt")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "Y", string(data))

	_, statErr := os.Stat(filepath.Join(output, "a.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPatcher_Run_SharedBufferAcrossPatches(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeTree(t, input, map[string]string{"a.txt": ""})

	cfg := domain.Config{InputDir: input, OutputDir: output, AutoClean: true}
	p := newTestPatcher(t, cfg, map[string]ports.TaskFactory{"mark": appendFactory("X")})

	for _, name := range []string{"first", "second", "third"} {
		ok, err := p.AddPatchSource(name, "// @lily\n// @task mark")
		require.NoError(t, err)
		require.True(t, ok)
	}

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(output, "a.txt")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "XXX", string(data))
}

func TestPatcher_Run_FailureWritesNothing(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeTree(t, input, map[string]string{"a.txt": "alpha", "b.txt": "beta"})

	cfg := domain.Config{InputDir: input, OutputDir: output, AutoClean: true}
	p := newTestPatcher(t, cfg, map[string]ports.TaskFactory{
		"mark": appendFactory("X"),
		"boom": failFactory(),
	})

	ok, err := p.AddPatchSource("broken", "// @lily\n// @task mark\n// @task boom")
	require.NoError(t, err)
	require.True(t, ok)

	summary, err := p.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPatchFailed))

	// The output root exists from the preparation phase but carries no files.
	entries, readErr := os.ReadDir(output)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
	assert.Empty(t, summary.Written)
}

func TestPatcher_Run_AutoCleanRemovesStaleOutput(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeTree(t, input, map[string]string{"a.txt": "alpha"})
	writeTree(t, output, map[string]string{"stale.txt": "old"})

	cfg := domain.Config{InputDir: input, OutputDir: output, AutoClean: true}
	p := newTestPatcher(t, cfg, map[string]ports.TaskFactory{"upper": upperFactory()})

	ok, err := p.AddPatchSource("shout", "// @lily\n// @task upper")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = p.Run(context.Background())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(output, "stale.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPatcher_Run_Stop(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeTree(t, input, map[string]string{"a.txt": "1", "b.txt": "2"})

	cfg := domain.Config{InputDir: input, OutputDir: output, AutoClean: true}

	var p *patcher.Patcher
	stopper := factoryFor(func() *fakeTask {
		return &fakeTask{name: "halt", fn: func(*domain.FileBuffer) error {
			p.Stop()
			return nil
		}}
	})
	p = newTestPatcher(t, cfg, map[string]ports.TaskFactory{
		"halt": stopper,
		"mark": appendFactory("X"),
	})

	ok, err := p.AddPatchSource("halted", "// @lily\n// @files a.txt\n// @task halt\n// @task mark")
	require.NoError(t, err)
	require.True(t, ok)

	summary, err := p.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStopped))
	assert.True(t, p.Stopped())

	// The stopping task itself completed; nothing after it ran, nothing was
	// persisted.
	assert.Equal(t, []string{"halted/halt"}, summary.Succeeded)
	assert.Equal(t, []string{"halted/mark"}, summary.NotExecuted)
	assert.Empty(t, summary.Written)
}

func TestPatcher_Run_ContextCancelled(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeTree(t, input, map[string]string{"a.txt": "1"})

	cfg := domain.Config{InputDir: input, OutputDir: output, AutoClean: true}
	p := newTestPatcher(t, cfg, map[string]ports.TaskFactory{"mark": appendFactory("X")})

	ok, err := p.AddPatchSource("cancelled", "// @lily\n// @task mark")
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStopped))
}

func TestSummary_String(t *testing.T) {
	s := &patcher.Summary{
		Succeeded:   []string{"a/x", "a/y"},
		Failed:      []string{"a/z"},
		NotExecuted: nil,
	}
	assert.Equal(t, "2 succeeded, 1 failed, 0 not executed", s.String())
}
