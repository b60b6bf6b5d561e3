package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/AndreyAkinshin/zcalibrate/internal/logging"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
// Defaults are expected to have been applied.
func Validate(cfg *Config) (warnings []string, err error) {
	if strings.TrimSpace(cfg.Zcall.Rscript) == "" {
		return nil, &ValidationError{Field: "zcall.rscript", Message: "is required"}
	}
	if _, _, err := cfg.Zcall.RscriptCommand(); err != nil {
		return nil, &ValidationError{Field: "zcall.rscript", Message: err.Error()}
	}

	if cfg.Workspace != nil && strings.ContainsAny(cfg.Workspace.Prefix, `/\`) {
		return nil, &ValidationError{Field: "workspace.prefix", Message: "must not contain path separators"}
	}

	if cfg.Logging != nil {
		switch cfg.Logging.Format {
		case "", logging.FormatConsole, logging.FormatJSON:
		default:
			return nil, &ValidationError{
				Field:   "logging.format",
				Message: fmt.Sprintf("must be %q or %q", logging.FormatConsole, logging.FormatJSON),
			}
		}
	}

	if cfg.Zcall.ScriptDir != "" {
		if info, statErr := os.Stat(cfg.Zcall.ScriptDir); statErr != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("zcall.script_dir %q is not a directory; stage programs may not be found", cfg.Zcall.ScriptDir))
		}
	}

	return warnings, nil
}
