// Package styles defines the visual styling for bumv's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to
// light and dark terminal themes. The definitions live in an embedded
// YAML file so theming stays in one place.
package styles

import (
	_ "embed"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var (
	once     sync.Once
	registry map[string]lipgloss.Style
)

// GetStyle returns the named style, or a zero style for unknown names
// so callers can always render.
func GetStyle(name string) lipgloss.Style {
	once.Do(load)
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

func load() {
	registry = make(map[string]lipgloss.Style)

	var cfg Config
	if err := yaml.Unmarshal(stylesYAML, &cfg); err != nil {
		// Embedded and covered by tests, but never panic over styling
		return
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if c, ok := colors[def.Foreground]; ok {
			style = style.Foreground(c)
		}
		if c, ok := colors[def.Background]; ok {
			style = style.Background(c)
		}
		registry[name] = style
	}
}
