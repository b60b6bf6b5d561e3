// Package pipeline sequences the calibration stages for one or more Z scores.
package pipeline

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AndreyAkinshin/zcalibrate/internal/stage"
)

// StageRunner executes one stage command.
type StageRunner interface {
	Run(ctx context.Context, cmd stage.Command, opts stage.RunOptions) stage.Result
}

// Workspaces creates and releases per-run temporary directories.
type Workspaces interface {
	Acquire() (string, error)
	Release(path string, keep bool) error
}

// Run describes one calibration of a single EGT file at a single Z score.
type Run struct {
	Input   string // EGT file path
	ZScore  int    // Positive Z score
	OutDir  string // Directory receiving the threshold table
	Verbose bool
}

// RunResult is the observable outcome of one calibration run.
type RunResult struct {
	ZScore    int
	Workspace string         // Workspace path; still present on disk when Retained
	Artifact  string         // Threshold table path
	Stages    []stage.Result // One entry per executed stage, in order
	Success   bool           // All stages exited with status zero
	Retained  bool           // Workspace kept for diagnosis
	Phase     Phase          // Last phase reached
}

// Controller runs the extract, fit and threshold stages for a Z score.
type Controller struct {
	programs   Programs
	runner     StageRunner
	workspaces Workspaces
	logger     *zap.Logger
}

// NewController creates a Controller. A nil logger disables diagnostics.
func NewController(programs Programs, runner StageRunner, workspaces Workspaces, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		programs:   programs,
		runner:     runner,
		workspaces: workspaces,
		logger:     logger,
	}
}

// RunOnce calibrates run.Input at run.ZScore.
//
// All three stages execute in order even when an earlier one fails, so a
// partial artifact (such as a malformed beta table) is kept for inspection.
// The workspace is deleted only when every stage succeeded. A failed stage
// is reported through RunResult; the returned error is reserved for
// workspace creation or removal failures.
func (c *Controller) RunOnce(ctx context.Context, run Run) (RunResult, error) {
	log := c.runLogger(run)
	result := RunResult{
		ZScore:   run.ZScore,
		Artifact: ThresholdPath(run),
		Phase:    PhaseInit,
	}

	ws, err := c.workspaces.Acquire()
	if err != nil {
		return result, err
	}
	result.Workspace = ws
	log.Info("calibrating zCall", zap.String("workspace", ws))

	success := true
	for _, cmd := range BuildCommands(c.programs, run, ws) {
		result.Phase = phaseFor(cmd.Stage)
		res := c.runner.Run(ctx, cmd, stage.RunOptions{Verbose: run.Verbose})
		result.Stages = append(result.Stages, res)
		if !res.Success() {
			success = false
		}
	}
	result.Success = success

	result.Phase = PhaseCleanup
	result.Retained = !success
	if result.Retained {
		log.Warn("possible error, retaining temporary directory", zap.String("workspace", ws))
	} else {
		log.Debug("cleaning up temporary directory", zap.String("workspace", ws))
	}
	if err := c.workspaces.Release(ws, result.Retained); err != nil {
		return result, err
	}

	result.Phase = PhaseDone
	log.Info("finished", zap.Bool("success", success), zap.String("thresholds", result.Artifact))
	return result, nil
}

// runLogger scopes the controller logger to one run. Progress lines are
// only written for verbose runs.
func (c *Controller) runLogger(run Run) *zap.Logger {
	log := c.logger.With(zap.Int("zscore", run.ZScore))
	if !run.Verbose {
		log = log.WithOptions(zap.IncreaseLevel(zapcore.ErrorLevel))
	}
	return log
}
