package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mattn/go-shellwords"

	"github.com/AndreyAkinshin/zcalibrate/internal/workspace"
)

// Default configuration values.
const (
	DefaultMeanSD     = "findMeanSD.py"
	DefaultBetas      = "findBetas.r"
	DefaultThresholds = "findThresholds.py"
	DefaultLogFormat  = "console"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyZcallDefaults(cfg)
	applyWorkspaceDefaults(cfg)
	applyLoggingDefaults(cfg)
}

func applyZcallDefaults(cfg *Config) {
	if cfg.Zcall.MeanSD == "" {
		cfg.Zcall.MeanSD = DefaultMeanSD
	}
	if cfg.Zcall.Betas == "" {
		cfg.Zcall.Betas = DefaultBetas
	}
	if cfg.Zcall.Thresholds == "" {
		cfg.Zcall.Thresholds = DefaultThresholds
	}
}

func applyWorkspaceDefaults(cfg *Config) {
	if cfg.Workspace == nil {
		cfg.Workspace = &WorkspaceConfig{}
	}
	// An empty TempDir stays empty: the system temp directory is chosen at run time.
	if cfg.Workspace.Prefix == "" {
		cfg.Workspace.Prefix = workspace.DefaultPrefix
	}
}

func applyLoggingDefaults(cfg *Config) {
	if cfg.Logging == nil {
		cfg.Logging = &LoggingConfig{}
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// ResolveProgram returns the path of a stage program. Absolute paths and
// paths with a directory component are returned unchanged; bare names are
// joined to ScriptDir when it is set, otherwise left for PATH lookup.
func (z ZcallConfig) ResolveProgram(name string) string {
	if name == "" || filepath.IsAbs(name) || filepath.Base(name) != name || z.ScriptDir == "" {
		return name
	}
	return filepath.Join(z.ScriptDir, name)
}

// RscriptCommand splits the configured interpreter into a program and its
// leading options, so legacy values such as "Rscript --vanilla" keep working.
// Quoting follows POSIX shell words; variables and command substitution are
// not expanded.
func (z ZcallConfig) RscriptCommand() (string, []string, error) {
	words, err := shellwords.Parse(z.Rscript)
	if err != nil {
		return "", nil, fmt.Errorf("cannot split %q: %w", z.Rscript, err)
	}
	if len(words) == 0 {
		return "", nil, errors.New("is empty")
	}
	return words[0], words[1:], nil
}
