package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AndreyAkinshin/zcalibrate/internal/schema"
)

// LoadAndValidate reads a config file, validates it against the embedded
// schema, applies defaults, and returns warnings for unknown keys.
// The format is chosen by extension: .ini, .yaml/.yml, otherwise JSON.
func LoadAndValidate(path string) (*Config, []string, error) {
	cfg, data, err := load(path)
	if err != nil {
		return nil, nil, err
	}

	if err := schema.ValidateConfig(data); err != nil {
		return nil, nil, err
	}

	unknownWarnings := detectUnknownFields(data)

	applyDefaults(cfg)

	validationWarnings, err := Validate(cfg)

	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, err
	}

	return cfg, allWarnings, nil
}

// load returns the parsed config together with its normalised JSON form.
func load(path string) (*Config, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	data, err := normalize(path, raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, data, nil
}
