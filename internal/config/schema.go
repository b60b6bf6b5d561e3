// Package config loads the zcalibrate configuration file.
package config

// Config represents the complete configuration file.
type Config struct {
	Zcall     ZcallConfig      `json:"zcall"`
	Workspace *WorkspaceConfig `json:"workspace,omitempty"`
	Logging   *LoggingConfig   `json:"logging,omitempty"`
}

// ZcallConfig locates the three external stage programs.
type ZcallConfig struct {
	Rscript    string `json:"rscript"`              // Interpreter for the fitting script
	ScriptDir  string `json:"script_dir,omitempty"` // Base directory for relative program names
	MeanSD     string `json:"mean_sd,omitempty"`
	Betas      string `json:"betas,omitempty"`
	Thresholds string `json:"thresholds,omitempty"`
}

// WorkspaceConfig controls where per-run temporary directories are created.
type WorkspaceConfig struct {
	TempDir string `json:"temp_dir,omitempty"`
	Prefix  string `json:"prefix,omitempty"`
}

// LoggingConfig controls diagnostic output encoding.
type LoggingConfig struct {
	Format string `json:"format,omitempty"`
}
