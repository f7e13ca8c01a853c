package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lily/internal/adapters/config"
	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/lily/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	loader := config.NewLoader(logger)
	cfg, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
input: src
output: build
autoClean: false
ignores:
  - "*.tmp"
  - vendor
patches:
  - patches/rename.lily
`)

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.InputDir)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.False(t, cfg.AutoClean)
	assert.Equal(t, []string{"*.tmp", "vendor"}, cfg.Ignores)
	assert.Equal(t, []string{"patches/rename.lily"}, cfg.Patches)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "input: src\n")

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	defaults := domain.DefaultConfig()
	assert.Equal(t, "src", cfg.InputDir)
	assert.Equal(t, defaults.OutputDir, cfg.OutputDir)
	// autoClean stays on unless the file disables it explicitly.
	assert.True(t, cfg.AutoClean)
}

func TestLoad_UnknownKeysIgnored(t *testing.T) {
	path := writeConfig(t, "input: src\nfuture_option: whatever\n")

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "src", cfg.InputDir)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "input: [unterminated\n")

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
