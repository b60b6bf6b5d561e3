package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/zcalibrate/internal/config"
	"github.com/AndreyAkinshin/zcalibrate/internal/errors"
	"github.com/AndreyAkinshin/zcalibrate/internal/logging"
	"github.com/AndreyAkinshin/zcalibrate/internal/output"
	"github.com/AndreyAkinshin/zcalibrate/internal/pipeline"
	"github.com/AndreyAkinshin/zcalibrate/internal/stage"
	"github.com/AndreyAkinshin/zcalibrate/internal/workspace"
)

// ConfigEnvVar names the environment variable that overrides the default
// config file location.
const ConfigEnvVar = "ZCALIBRATE_CONFIG"

// executable is replaced in tests.
var executable = os.Executable

func calibrate(ctx context.Context, opts *Options, w *output.Writer, logOut io.Writer) error {
	if err := ValidateArgs(opts); err != nil {
		return err
	}

	exeDir, err := executableDir()
	if err != nil {
		return err
	}

	cfgPath := resolveConfigPath(opts.ConfigPath, exeDir)
	cfg, warnings, err := config.LoadAndValidate(cfgPath)
	for _, warning := range warnings {
		w.Warning("%s", warning)
	}
	if err != nil {
		return errors.ConfigWrap(err, "config "+cfgPath)
	}
	if cfg.Zcall.ScriptDir == "" {
		cfg.Zcall.ScriptDir = exeDir
	}

	logger, err := logging.New(logging.Options{
		Verbose: opts.Verbose,
		Format:  cfg.Logging.Format,
		Output:  logOut,
	})
	if err != nil {
		return errors.Configf("config %s: logging.format: %v", cfgPath, err)
	}
	defer func() { _ = logger.Sync() }()

	programs, err := programsFor(cfg.Zcall)
	if err != nil {
		return errors.ConfigWrap(err, "config "+cfgPath)
	}

	ctrl := pipeline.NewController(
		programs,
		stage.NewRunner(logger),
		workspace.NewManager(cfg.Workspace.TempDir, cfg.Workspace.Prefix),
		logger,
	)

	w.SetQuiet(!opts.Verbose)
	results, err := ctrl.RunRange(ctx, pipeline.RangeRequest{
		Input:   opts.EGT,
		OutDir:  opts.OutDir,
		ZStart:  opts.ZStart,
		ZTotal:  opts.ZTotal,
		Verbose: opts.Verbose,
		Jobs:    opts.Jobs,
	})
	report(w, results)
	return err
}

// report prints one line per completed run.
func report(w *output.Writer, results []pipeline.RunResult) {
	for _, res := range results {
		if res.Phase != pipeline.PhaseDone {
			continue
		}
		if res.Success {
			w.RunSucceeded(res.ZScore, res.Artifact)
			continue
		}
		var failed []string
		for _, sr := range res.Stages {
			if !sr.Success() {
				failed = append(failed, sr.Stage.Title())
			}
		}
		w.RunFailed(res.ZScore, failed, res.Workspace)
	}
}

// resolveConfigPath picks the config file: the flag value, then
// $ZCALIBRATE_CONFIG, then etc/config.ini next to the install prefix.
func resolveConfigPath(flagValue, exeDir string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(ConfigEnvVar); env != "" {
		return env
	}
	return filepath.Join(exeDir, "..", "etc", "config.ini")
}

func executableDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", errors.EnvironmentWrap(err, "locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// programsFor resolves the stage programs. The fitting interpreter is not
// joined to script_dir, so a bare name is found through PATH.
func programsFor(z config.ZcallConfig) (pipeline.Programs, error) {
	rscript, rscriptArgs, err := z.RscriptCommand()
	if err != nil {
		return pipeline.Programs{}, err
	}
	return pipeline.Programs{
		MeanSD:      z.ResolveProgram(z.MeanSD),
		Rscript:     rscript,
		RscriptArgs: rscriptArgs,
		FitScript:   z.ResolveProgram(z.Betas),
		Thresholds:  z.ResolveProgram(z.Thresholds),
	}, nil
}
