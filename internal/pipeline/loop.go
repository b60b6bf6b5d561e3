package pipeline

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	zerrors "github.com/AndreyAkinshin/zcalibrate/internal/errors"
)

// MaxZScore is the largest Z score a range may reach.
const MaxZScore = 999

// Calibrator runs a single calibration. *Controller implements it.
type Calibrator interface {
	RunOnce(ctx context.Context, run Run) (RunResult, error)
}

// RangeRequest describes a calibration over consecutive Z scores.
type RangeRequest struct {
	Input   string
	OutDir  string
	ZStart  int
	ZTotal  int
	Verbose bool

	// Jobs bounds how many Z scores run at once. Values below 2 run the
	// range strictly sequentially in increasing Z order.
	Jobs int
}

// Validate checks that the range starts at a positive Z score and ends at
// or below MaxZScore.
func (r RangeRequest) Validate() error {
	if r.ZStart < 1 || r.ZStart > MaxZScore {
		return zerrors.Validationf("z start %d is outside [1, %d]", r.ZStart, MaxZScore)
	}
	if r.ZTotal < 0 || r.ZTotal > MaxZScore-r.ZStart+1 {
		return zerrors.Validationf("z range of %d starting at %d exceeds %d", r.ZTotal, r.ZStart, MaxZScore)
	}
	return nil
}

// ZScores returns start, start+1, ..., start+total-1.
func ZScores(start, total int) []int {
	if total < 0 {
		total = 0
	}
	zs := make([]int, total)
	for i := range zs {
		zs[i] = start + i
	}
	return zs
}

// RunRange calls c.RunOnce once per Z score in [req.ZStart, req.ZStart+req.ZTotal-1].
//
// Runs are independent: a failed stage in one run never stops the others.
// Results are returned in Z order, one per run that was started. The error
// joins workspace failures from individual runs and, if ctx was canceled
// before the range completed, the context error. An invalid range runs
// nothing and returns a validation error.
func RunRange(ctx context.Context, c Calibrator, req RangeRequest) ([]RunResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	zs := ZScores(req.ZStart, req.ZTotal)
	results := make([]RunResult, len(zs))
	errs := make([]error, len(zs))
	started := make([]bool, len(zs))

	runAt := func(i int) {
		run := Run{Input: req.Input, ZScore: zs[i], OutDir: req.OutDir, Verbose: req.Verbose}
		started[i] = true
		res, err := c.RunOnce(ctx, run)
		results[i] = res
		if err != nil {
			errs[i] = fmt.Errorf("z=%d: %w", zs[i], err)
		}
	}

	if req.Jobs < 2 {
		for i := range zs {
			if ctx.Err() != nil {
				break
			}
			runAt(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(req.Jobs)
		for i := range zs {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				runAt(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	out := make([]RunResult, 0, len(zs))
	for i := range zs {
		if started[i] {
			out = append(out, results[i])
		}
	}
	if len(out) < len(zs) && ctx.Err() != nil {
		errs = append(errs, ctx.Err())
	}
	return out, errors.Join(errs...)
}

// RunRange calibrates every Z score of req with this controller.
func (c *Controller) RunRange(ctx context.Context, req RangeRequest) ([]RunResult, error) {
	return RunRange(ctx, c, req)
}
