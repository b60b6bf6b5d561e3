// Package artifact names the files produced by a calibration run.
package artifact

import (
	"fmt"
	"strings"
)

// Intermediate artifacts written into a run's workspace.
const (
	MeanSDFile    = "mean_sd.txt"
	BetasFile     = "betas.txt"
	FitOutputFile = "r_output.txt"
	FitErrorFile  = "r_error.txt"
)

// ThresholdName returns the threshold table file name for an EGT input and Z score.
//
// The stem is the last '/'-separated segment of inputPath with its final
// extension removed; "sample.v2.egt" yields the stem "sample.v2". The Z score
// is zero-padded to two digits.
func ThresholdName(inputPath string, zScore int) string {
	return fmt.Sprintf("thresholds_%s_z%02d.txt", Stem(inputPath), zScore)
}

// Stem returns the input file name without directories and without its final extension.
// A name without a dot is returned unchanged.
func Stem(inputPath string) string {
	name := inputPath
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name
}
