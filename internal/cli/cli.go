// Package cli provides the zcalibrate command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/zcalibrate/internal/errors"
	"github.com/AndreyAkinshin/zcalibrate/internal/output"
)

// Version is set at build time.
var Version = "dev"

// Run executes the CLI with the given arguments and returns an exit code.
// SIGINT and SIGTERM cancel the calibration; running stages are killed.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, args, output.New(), os.Stdout, os.Stderr)
}

// run executes the root command. stdout receives help and version text;
// stderr receives diagnostics.
func run(ctx context.Context, args []string, w *output.Writer, stdout, stderr io.Writer) int {
	cmd := newRootCmd(w, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		w.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

func newRootCmd(w *output.Writer, logOut io.Writer) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "zcalibrate --egt PATH [flags]",
		Short: "Calibrate zCall genotype-calling thresholds from an EGT cluster file",
		Long: `zcalibrate derives zCall intensity thresholds for one or more Z scores.

For each Z score it extracts per-SNP mean and standard deviation from the EGT
file, fits the beta coefficients, and writes thresholds_<name>_z<ZZ>.txt to the
output directory. Intermediate files live in a private temporary directory that
is removed after a successful run and kept for inspection after a failure.`,
		Version:       Version,
		Args:          noPositionalArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return calibrate(cmd.Context(), opts, w, logOut)
		},
	}
	cmd.SetVersionTemplate("zcalibrate {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Validation(err.Error())
	})

	f := cmd.Flags()
	f.StringVar(&opts.EGT, "egt", "", "EGT cluster file (required)")
	f.StringVar(&opts.OutDir, "out", ".", "Directory for threshold output files")
	f.IntVar(&opts.ZStart, "zstart", DefaultZStart, "First Z score to calibrate")
	f.IntVar(&opts.ZTotal, "ztotal", DefaultZTotal, "Number of consecutive Z scores")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print stage commands and progress")
	f.StringVar(&opts.ConfigPath, "config", "", "Config file (default $"+ConfigEnvVar+" or <bin>/../etc/config.ini)")
	f.IntVar(&opts.Jobs, "jobs", 1, "Z scores calibrated concurrently")

	return cmd
}

func noPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.Validationf("unexpected argument %q", args[0])
	}
	return nil
}
