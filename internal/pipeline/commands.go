package pipeline

import (
	"path/filepath"
	"strconv"

	"github.com/AndreyAkinshin/zcalibrate/internal/artifact"
	"github.com/AndreyAkinshin/zcalibrate/internal/stage"
)

// Programs locates the external stage programs.
type Programs struct {
	MeanSD      string   // Mean/SD extraction program
	Rscript     string   // Interpreter for FitScript
	RscriptArgs []string // Interpreter options placed before FitScript, e.g. --vanilla
	FitScript   string   // Beta fitting script
	Thresholds  string   // Threshold derivation program
}

// BuildCommands returns the three stage commands for run, in execution order.
// Intermediate artifacts and the fitting interpreter's output go to workspace;
// the threshold table goes to run.OutDir.
func BuildCommands(p Programs, run Run, workspace string) []stage.Command {
	meanSD := filepath.Join(workspace, artifact.MeanSDFile)
	betas := filepath.Join(workspace, artifact.BetasFile)

	return []stage.Command{
		{
			Stage:   stage.Extract,
			Program: p.MeanSD,
			Args:    []string{"-E", run.Input},
			Stdout:  meanSD,
		},
		{
			Stage:   stage.Fit,
			Program: p.Rscript,
			Args:    fitArgs(p, meanSD, betas),
			Stdout:  filepath.Join(workspace, artifact.FitOutputFile),
			Stderr:  filepath.Join(workspace, artifact.FitErrorFile),
		},
		{
			Stage:   stage.Threshold,
			Program: p.Thresholds,
			Args:    []string{"-B", betas, "-E", run.Input, "-Z", strconv.Itoa(run.ZScore)},
			Stdout:  ThresholdPath(run),
		},
	}
}

func fitArgs(p Programs, meanSD, betas string) []string {
	args := make([]string, 0, len(p.RscriptArgs)+4)
	args = append(args, p.RscriptArgs...)
	return append(args, p.FitScript, meanSD, betas, "1")
}

// ThresholdPath returns the final threshold table location for run.
func ThresholdPath(run Run) string {
	return filepath.Join(run.OutDir, artifact.ThresholdName(run.Input, run.ZScore))
}
