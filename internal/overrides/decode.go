package overrides

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/maestrohq/landing/content"
)

// Format is an override file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from the extension of name. Unknown extensions
// are read as YAML.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Decode parses an override file named name. Values must be strings; YAML
// scalars such as numbers are read as their literal text.
func Decode(name string, data []byte) (map[string]content.Override, error) {
	raw := make(map[string]map[string]string)
	if len(bytes.TrimSpace(data)) > 0 {
		var err error
		switch FormatOf(name) {
		case FormatTOML:
			err = toml.Unmarshal(data, &raw)
		case FormatJSON:
			err = json.Unmarshal(data, &raw)
		default:
			err = yaml.Unmarshal(data, &raw)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse overrides %s: %w", name, err)
		}
	}
	sections := make(map[string]content.Override, len(raw))
	for name, values := range raw {
		sections[name] = content.Override(values)
	}
	return sections, nil
}
