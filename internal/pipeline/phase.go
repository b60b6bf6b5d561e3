package pipeline

import "github.com/AndreyAkinshin/zcalibrate/internal/stage"

// Phase is a step of a single calibration run.
//
// A run always moves Init -> Extracting -> Fitting -> Thresholding ->
// Cleanup -> Done. No phase is skipped; the only branch is inside Cleanup,
// where the workspace is either deleted or retained.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseExtracting
	PhaseFitting
	PhaseThresholding
	PhaseCleanup
	PhaseDone
)

var phaseNames = [...]string{
	PhaseInit:         "init",
	PhaseExtracting:   "extracting",
	PhaseFitting:      "fitting",
	PhaseThresholding: "thresholding",
	PhaseCleanup:      "cleanup",
	PhaseDone:         "done",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// phaseFor returns the phase during which the given stage runs.
func phaseFor(name stage.Name) Phase {
	switch name {
	case stage.Extract:
		return PhaseExtracting
	case stage.Fit:
		return PhaseFitting
	case stage.Threshold:
		return PhaseThresholding
	default:
		return PhaseInit
	}
}
