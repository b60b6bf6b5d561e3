package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatINI  Format = "ini"
)

// DetectFormat picks the syntax from the file extension. Unrecognised
// extensions are read as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".cfg", ".conf":
		return FormatINI
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// normalize converts a config document of any supported syntax to JSON, so
// that one schema and one decoder serve every format.
func normalize(path string, raw []byte) ([]byte, error) {
	switch DetectFormat(path) {
	case FormatINI:
		doc, err := decodeINI(raw)
		if err != nil {
			return nil, err
		}
		return json.Marshal(doc)
	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("YAML document cannot be represented as JSON: %w", err)
		}
		return data, nil
	default:
		return raw, nil
	}
}

// decodeINI reads the legacy "[zcall]\nrscript = ..." layout. Every section
// becomes an object of string values; keys outside any section are ignored.
func decodeINI(raw []byte) (map[string]any, error) {
	f, err := ini.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid INI: %w", err)
	}

	doc := make(map[string]any)
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		values := make(map[string]any)
		for k, v := range sec.KeysHash() {
			values[k] = v
		}
		doc[sec.Name()] = values
	}
	return doc, nil
}
