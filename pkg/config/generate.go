package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// header is prepended to generated config files.
const header = `# bumv configuration
# Place this file as .bumv.toml in the directory you run bumv from.
# Every key can also be set through the environment, e.g. BUMV_EDITOR.
`

// GenerateTOML renders the default configuration as a commented TOML
// document, suitable for the genconfig command.
func GenerateTOML() (string, error) {
	out, err := toml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}
	return header + string(out), nil
}
