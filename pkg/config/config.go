package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/bumv/pkg/errors"
)

// Config holds the run configuration threaded through every component.
// There is no ambient global; commands build one of these and pass it on.
type Config struct {
	// Editor is the command used to edit the file list. Empty means
	// fall back to $EDITOR and then to VS Code.
	Editor string `koanf:"editor" toml:"editor"`

	// UseVSCode forces VS Code regardless of $EDITOR.
	UseVSCode bool `koanf:"use_vscode" toml:"use_vscode"`

	// NoLog disables the per-run rename log file.
	NoLog bool `koanf:"no_log" toml:"no_log"`

	// Recursive includes files in subdirectories of the base path.
	Recursive bool `koanf:"recursive" toml:"recursive"`

	// RespectIgnores applies .gitignore/.ignore semantics and skips
	// hidden files during traversal.
	RespectIgnores bool `koanf:"respect_ignores" toml:"respect_ignores"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RespectIgnores: true,
	}
}

// configFiles are probed in the base directory, first hit wins.
var configFiles = []struct {
	name   string
	parser koanf.Parser
}{
	{".bumv.toml", toml.Parser()},
	{"bumv.toml", toml.Parser()},
	{".bumv.yaml", yaml.Parser()},
	{"bumv.yaml", yaml.Parser()},
}

// Load layers configuration: built-in defaults, then a config file in
// the base directory, then BUMV_* environment variables.
func Load(baseDir string) (Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"editor":          defaults.Editor,
		"use_vscode":      defaults.UseVSCode,
		"no_log":          defaults.NoLog,
		"recursive":       defaults.Recursive,
		"respect_ignores": defaults.RespectIgnores,
	}, "."), nil); err != nil {
		return defaults, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	for _, cf := range configFiles {
		path := filepath.Join(baseDir, cf.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), cf.parser); err != nil {
			return defaults, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", path)
		}
		break
	}

	if err := k.Load(env.Provider("BUMV_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BUMV_"))
	}), nil); err != nil {
		return defaults, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return defaults, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return cfg, nil
}
