package stage

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"go.uber.org/zap"

	zerrors "github.com/AndreyAkinshin/zcalibrate/internal/errors"
)

// RunOptions contains per-invocation options.
type RunOptions struct {
	// Verbose echoes the command line before running it and logs a warning
	// when it exits with a non-zero status.
	Verbose bool
}

// Runner executes stage commands synchronously.
// Stage programs inherit the environment of the calling process.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a Runner that reports through logger.
// A nil logger disables diagnostics.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run executes cmd and blocks until it exits.
//
// A non-zero exit status is reported through the returned Result, never as
// a failure of Run itself. Programs that cannot be started and redirect
// files that cannot be opened also produce a failed Result with ExitCode -1.
func (r *Runner) Run(ctx context.Context, cmd Command, opts RunOptions) Result {
	result := Result{
		Stage:       cmd.Stage,
		Description: cmd.String(),
		ExitCode:    -1,
	}

	if opts.Verbose {
		r.logger.Debug(result.Description, zap.String("stage", string(cmd.Stage)))
	}

	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	c.Stderr = os.Stderr

	files, err := openRedirects(c, cmd)
	defer closeAll(files)
	if err != nil {
		result.Err = err
		if opts.Verbose {
			r.warn(result)
		}
		return result
	}

	err = c.Run()
	result.ExitCode = exitCode(c, err)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case ctx.Err() != nil:
		result.Err = zerrors.StageError(string(cmd.Stage), ctx.Err(), "interrupted")
	case errors.As(err, &exitErr):
		// Non-zero status; the exit code carries the outcome.
	default:
		result.Err = zerrors.StageError(string(cmd.Stage), err, "start "+cmd.Program)
	}

	if !result.Success() && opts.Verbose {
		r.warn(result)
	}
	return result
}

func (r *Runner) warn(res Result) {
	fields := []zap.Field{
		zap.String("stage", string(res.Stage)),
		zap.Int("exit_code", res.ExitCode),
	}
	if res.Err != nil {
		fields = append(fields, zap.Error(res.Err))
	}
	r.logger.Warn("non-zero exit status", fields...)
}

// openRedirects wires the Command's redirect files onto c.
// Files opened before a failure are still returned so the caller can close them.
func openRedirects(c *exec.Cmd, cmd Command) ([]*os.File, error) {
	var files []*os.File

	if cmd.Stdin != "" {
		f, err := os.Open(cmd.Stdin)
		if err != nil {
			return files, zerrors.StageError(string(cmd.Stage), err, "open stdin")
		}
		files = append(files, f)
		c.Stdin = f
	}

	if cmd.Stdout != "" {
		f, err := os.Create(cmd.Stdout)
		if err != nil {
			return files, zerrors.StageError(string(cmd.Stage), err, "open stdout")
		}
		files = append(files, f)
		c.Stdout = f
	}

	if cmd.Stderr != "" {
		f, err := os.Create(cmd.Stderr)
		if err != nil {
			return files, zerrors.StageError(string(cmd.Stage), err, "open stderr")
		}
		files = append(files, f)
		c.Stderr = f
	}

	return files, nil
}

func closeAll(files []*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

// exitCode extracts the process exit status after Run returns.
func exitCode(c *exec.Cmd, err error) int {
	if err == nil {
		return 0
	}
	if c.ProcessState != nil {
		return c.ProcessState.ExitCode()
	}
	return -1
}
