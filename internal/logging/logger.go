// Package logging builds the diagnostic logger used by the calibration pipeline.
//
// Diagnostics go to standard error. Verbose mode enables debug-level lines
// (stage command lines, workspace paths, progress); without it only errors
// are written, so a quiet run prints nothing on success or stage failure.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures New.
type Options struct {
	Verbose bool
	Format  string    // FormatConsole (default) or FormatJSON
	Output  io.Writer // defaults to os.Stderr
}

// New returns a logger writing human-readable (or JSON) lines to Options.Output.
func New(opts Options) (*zap.Logger, error) {
	var enc zapcore.Encoder
	switch opts.Format {
	case "", FormatConsole:
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		encCfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(encCfg)
	case FormatJSON:
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.CallerKey = ""
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q (valid: %s, %s)", opts.Format, FormatConsole, FormatJSON)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if opts.Verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), level)
	return zap.New(core), nil
}
