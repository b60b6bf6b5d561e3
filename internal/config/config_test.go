package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndValidate_JSON(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.json", `{
		"zcall": {"rscript": "/usr/bin/Rscript", "script_dir": "/opt/zcall"},
		"workspace": {"temp_dir": "/scratch"}
	}`)

	cfg, _, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg.Zcall.Rscript != "/usr/bin/Rscript" {
		t.Errorf("Zcall.Rscript = %q, want %q", cfg.Zcall.Rscript, "/usr/bin/Rscript")
	}
	if cfg.Zcall.ScriptDir != "/opt/zcall" {
		t.Errorf("Zcall.ScriptDir = %q, want %q", cfg.Zcall.ScriptDir, "/opt/zcall")
	}
	if cfg.Workspace == nil || cfg.Workspace.TempDir != "/scratch" {
		t.Errorf("Workspace = %+v, want temp_dir /scratch", cfg.Workspace)
	}
}

func TestLoadAndValidate_LegacyINI(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.ini", "[zcall]\nrscript = /usr/local/bin/Rscript\n\n[workspace]\nprefix = calib_\n")

	cfg, _, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg.Zcall.Rscript != "/usr/local/bin/Rscript" {
		t.Errorf("Zcall.Rscript = %q, want %q", cfg.Zcall.Rscript, "/usr/local/bin/Rscript")
	}
	if cfg.Workspace == nil || cfg.Workspace.Prefix != "calib_" {
		t.Errorf("Workspace = %+v, want prefix calib_", cfg.Workspace)
	}
}

func TestLoadAndValidate_YAML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.yaml", "zcall:\n  rscript: Rscript\n  thresholds: /opt/bin/findThresholds\nlogging:\n  format: json\n")

	cfg, _, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg.Zcall.Rscript != "Rscript" {
		t.Errorf("Zcall.Rscript = %q, want Rscript", cfg.Zcall.Rscript)
	}
	if cfg.Zcall.Thresholds != "/opt/bin/findThresholds" {
		t.Errorf("Zcall.Thresholds = %q", cfg.Zcall.Thresholds)
	}
	if cfg.Logging == nil || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want format json", cfg.Logging)
	}
}

func TestLoadAndValidate_FileNotFound(t *testing.T) {
	t.Parallel()
	_, _, err := LoadAndValidate("/nonexistent/path/config.ini")
	if err == nil {
		t.Fatal("LoadAndValidate() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %q, want read failure", err)
	}
}

func TestLoadAndValidate_Malformed(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"config.json": `{"zcall": `,
		"config.yaml": "zcall: [unclosed",
		"config.ini":  "[zcall\nrscript = R\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, name, content)
			_, _, err := LoadAndValidate(path)
			if err == nil {
				t.Fatal("LoadAndValidate() expected parse error")
			}
			if !strings.Contains(err.Error(), "failed to parse config file") {
				t.Errorf("error = %q, want parse failure", err)
			}
		})
	}
}

func TestLoadAndValidate_Defaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.json", `{"zcall": {"rscript": "Rscript"}}`)

	cfg, _, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg.Zcall.MeanSD != DefaultMeanSD {
		t.Errorf("MeanSD = %q, want %q", cfg.Zcall.MeanSD, DefaultMeanSD)
	}
	if cfg.Zcall.Betas != DefaultBetas {
		t.Errorf("Betas = %q, want %q", cfg.Zcall.Betas, DefaultBetas)
	}
	if cfg.Zcall.Thresholds != DefaultThresholds {
		t.Errorf("Thresholds = %q, want %q", cfg.Zcall.Thresholds, DefaultThresholds)
	}
	if cfg.Workspace.Prefix != "zcall_" {
		t.Errorf("Workspace.Prefix = %q, want zcall_", cfg.Workspace.Prefix)
	}
	if cfg.Workspace.TempDir != "" {
		t.Errorf("Workspace.TempDir = %q, want empty", cfg.Workspace.TempDir)
	}
	if cfg.Logging.Format != DefaultLogFormat {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, DefaultLogFormat)
	}
}

func TestLoadAndValidate_UnknownFieldWarnings(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.ini", "[zcall]\nrscript = Rscript\nplink = /usr/bin/plink\n\n[reporting]\nemail = a@b\n")

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg.Zcall.Rscript != "Rscript" {
		t.Errorf("Zcall.Rscript = %q", cfg.Zcall.Rscript)
	}

	want := []string{
		`unknown field "reporting" at root level (ignored)`,
		`unknown field "plink" in zcall (ignored)`,
	}
	if len(warnings) != len(want) {
		t.Fatalf("warnings = %v, want %v", warnings, want)
	}
	for i := range want {
		if warnings[i] != want[i] {
			t.Errorf("warnings[%d] = %q, want %q", i, warnings[i], want[i])
		}
	}
}

func TestLoadAndValidate_MissingRscript(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.ini", "[zcall]\nscript_dir = /opt/zcall\n")

	_, _, err := LoadAndValidate(path)
	if err == nil {
		t.Fatal("LoadAndValidate() expected error for missing rscript")
	}
	if !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("error = %q, want schema failure", err)
	}
}

func TestLoadAndValidate_ScriptDirWarning(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.json", `{"zcall": {"rscript": "Rscript", "script_dir": "/definitely/not/here"}}`)

	_, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "zcall.script_dir") {
		t.Errorf("warnings = %v, want one script_dir warning", warnings)
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]Format{
		"etc/config.ini":  FormatINI,
		"zcall.CFG":       FormatINI,
		"zcall.yaml":      FormatYAML,
		"zcall.yml":       FormatYAML,
		"zcall.json":      FormatJSON,
		"zcall":           FormatJSON,
		"/etc/zcall.conf": FormatINI,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestResolveProgram(t *testing.T) {
	t.Parallel()
	z := ZcallConfig{ScriptDir: "/opt/zcall/bin"}

	tests := map[string]string{
		"findMeanSD.py":         "/opt/zcall/bin/findMeanSD.py",
		"/usr/bin/findBetas.r":  "/usr/bin/findBetas.r",
		"scripts/findThreshold": "scripts/findThreshold",
		"":                      "",
	}
	for in, want := range tests {
		if got := z.ResolveProgram(in); got != want {
			t.Errorf("ResolveProgram(%q) = %q, want %q", in, got, want)
		}
	}

	if got := (ZcallConfig{}).ResolveProgram("Rscript"); got != "Rscript" {
		t.Errorf("ResolveProgram without ScriptDir = %q, want Rscript", got)
	}
}

func TestRscriptCommand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rscript  string
		wantProg string
		wantArgs []string
	}{
		{"Rscript", "Rscript", []string{}},
		{"/usr/bin/Rscript --vanilla", "/usr/bin/Rscript", []string{"--vanilla"}},
		{`"/opt/R 4.3/bin/Rscript" --vanilla --slave`, "/opt/R 4.3/bin/Rscript", []string{"--vanilla", "--slave"}},
		{"Rscript '$HOME'", "Rscript", []string{"$HOME"}},
	}
	for _, tt := range tests {
		prog, args, err := ZcallConfig{Rscript: tt.rscript}.RscriptCommand()
		if err != nil {
			t.Errorf("RscriptCommand(%q) error = %v", tt.rscript, err)
			continue
		}
		if prog != tt.wantProg {
			t.Errorf("RscriptCommand(%q) program = %q, want %q", tt.rscript, prog, tt.wantProg)
		}
		if strings.Join(args, "|") != strings.Join(tt.wantArgs, "|") || len(args) != len(tt.wantArgs) {
			t.Errorf("RscriptCommand(%q) args = %q, want %q", tt.rscript, args, tt.wantArgs)
		}
	}

	if _, _, err := (ZcallConfig{Rscript: "   "}).RscriptCommand(); err == nil {
		t.Error("RscriptCommand on blank value expected error")
	}
}

func TestLoadAndValidate_LegacyRscriptWithOptions(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "config.ini", "[zcall]\nrscript = /usr/bin/Rscript --vanilla\n")

	cfg, _, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	prog, args, err := cfg.Zcall.RscriptCommand()
	if err != nil {
		t.Fatal(err)
	}
	if prog != "/usr/bin/Rscript" || len(args) != 1 || args[0] != "--vanilla" {
		t.Errorf("RscriptCommand() = %q %q", prog, args)
	}
}
