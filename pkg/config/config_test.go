// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (koanf file provider reads from disk)
// PURPOSE: Test configuration layering: defaults, file, environment

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bumv/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, cfg.Editor)
	assert.False(t, cfg.UseVSCode)
	assert.False(t, cfg.NoLog)
	assert.False(t, cfg.Recursive)
	assert.True(t, cfg.RespectIgnores, "ignore files are honored by default")
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	content := "editor = \"hx\"\nrecursive = true\nno_log = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bumv.toml"), []byte(content), 0644))

	cfg, err := config.Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "hx", cfg.Editor)
	assert.True(t, cfg.Recursive)
	assert.True(t, cfg.NoLog)
	assert.True(t, cfg.RespectIgnores, "unset keys keep their defaults")
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	content := "editor: nvim\nrespect_ignores: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bumv.yaml"), []byte(content), 0644))

	cfg, err := config.Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "nvim", cfg.Editor)
	assert.False(t, cfg.RespectIgnores)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bumv.toml"), []byte("editor = \"hx\"\n"), 0644))
	t.Setenv("BUMV_EDITOR", "micro")

	cfg, err := config.Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "micro", cfg.Editor)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bumv.toml"), []byte("editor = [broken\n"), 0644))

	_, err := config.Load(dir)

	require.Error(t, err)
}

func TestGenerateTOML(t *testing.T) {
	out, err := config.GenerateTOML()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# bumv configuration"))
	assert.Contains(t, out, "respect_ignores = true")
	assert.Contains(t, out, "editor = ''")
}
