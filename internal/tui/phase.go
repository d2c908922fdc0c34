package tui

// Phase is the orchestrator's position in its operation state machine.
// Exactly one phase is active at a time; a new scan or connect may
// only start from the phase its trigger is legal in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseUploading
	PhaseScanningWebcam
	PhaseDisplaying
	PhaseConnecting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseUploading:
		return "uploading"
	case PhaseScanningWebcam:
		return "scanning-webcam"
	case PhaseDisplaying:
		return "displaying"
	case PhaseConnecting:
		return "connecting"
	default:
		return "unknown"
	}
}

// acceptsScan reports whether a new scan cycle may start in p. A scan
// arriving in any other phase is refused up front, so a competing scan
// can never resolve while another operation is in flight.
func (p Phase) acceptsScan() bool {
	return p == PhaseIdle || p == PhaseDisplaying
}
