package cli

import (
	"os"

	"github.com/AndreyAkinshin/zcalibrate/internal/errors"
	"github.com/AndreyAkinshin/zcalibrate/internal/pipeline"
)

// Flag defaults.
const (
	DefaultZStart = 7
	DefaultZTotal = 1
)

// Options holds the parsed command-line flags.
type Options struct {
	EGT        string
	OutDir     string
	ZStart     int
	ZTotal     int
	Verbose    bool
	ConfigPath string
	Jobs       int
}

// ValidateArgs checks the flags before any stage runs. Every failure is a
// validation error.
func ValidateArgs(opts *Options) error {
	if opts.EGT == "" {
		return errors.Validation("--egt is required")
	}
	f, err := os.Open(opts.EGT)
	if err != nil {
		return errors.Validationf("cannot read EGT file: %v", err)
	}
	info, err := f.Stat()
	f.Close()
	if err != nil {
		return errors.Validationf("cannot read EGT file: %v", err)
	}
	if info.IsDir() {
		return errors.Validationf("EGT path %q is a directory", opts.EGT)
	}

	if err := checkOutputDir(opts.OutDir); err != nil {
		return err
	}

	if opts.ZStart < 1 {
		return errors.Validationf("--zstart must be a positive integer, got %d", opts.ZStart)
	}
	if opts.ZStart > pipeline.MaxZScore {
		return errors.Validationf("--zstart must not exceed %d, got %d", pipeline.MaxZScore, opts.ZStart)
	}
	if opts.ZTotal < 1 {
		return errors.Validationf("--ztotal must be a positive integer, got %d", opts.ZTotal)
	}
	if opts.ZTotal > pipeline.MaxZScore-opts.ZStart+1 {
		return errors.Validationf("--zstart %d with --ztotal %d runs past Z score %d", opts.ZStart, opts.ZTotal, pipeline.MaxZScore)
	}
	if opts.Jobs < 1 {
		return errors.Validationf("--jobs must be a positive integer, got %d", opts.Jobs)
	}
	return nil
}

// checkOutputDir requires dir to be an existing, writable directory.
func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return errors.Validationf("output directory %q does not exist", dir)
	}
	if err != nil {
		return errors.Validationf("cannot access output directory: %v", err)
	}
	if !info.IsDir() {
		return errors.Validationf("output path %q is not a directory", dir)
	}

	probe, err := os.CreateTemp(dir, ".zcalibrate-*")
	if err != nil {
		return errors.Validationf("output directory %q is not writable", dir)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}
