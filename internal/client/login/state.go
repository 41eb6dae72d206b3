package login

import "github.com/dmitrijs2005/staffdesk/internal/client/models"

// Stage is the visible progress of a login attempt.
type Stage int

const (
	StageIdle Stage = iota
	StageConnecting
	StageConnected
	StageLinking
	StageLinked
	StageAuthenticated
	StageScanning
	StageSuccess
	StageFailed
	StageInactive
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageConnecting:
		return "connecting"
	case StageConnected:
		return "connected"
	case StageLinking:
		return "linking"
	case StageLinked:
		return "linked"
	case StageAuthenticated:
		return "authenticated"
	case StageScanning:
		return "scanning"
	case StageSuccess:
		return "success"
	case StageFailed:
		return "failed"
	case StageInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// Path is the sign-in method of an attempt.
type Path int

const (
	PathNone Path = iota
	PathPassword
	PathBiometric
)

func (p Path) String() string {
	switch p {
	case PathPassword:
		return "password"
	case PathBiometric:
		return "biometric"
	default:
		return "none"
	}
}

// State is the sequencer's complete observable state.
// AttemptID is empty when no attempt is alive.
type State struct {
	AttemptID string
	Path      Path
	Stage     Stage
	Err       ErrorKind
	Account   *models.Account
}

// InFlight reports whether an attempt is running and must not be replaced.
func (s State) InFlight() bool {
	switch s.Stage {
	case StageConnecting, StageConnected, StageLinking, StageLinked,
		StageScanning, StageSuccess:
		return true
	default:
		return false
	}
}

// EventKind identifies an input to Transition.
type EventKind int

const (
	EventSubmitPassword EventKind = iota + 1
	EventSubmitBiometric
	EventVerifyResolved
	EventAssertionResolved
	EventPacingElapsed
	EventFailureWindowElapsed
	EventAbort
	EventSignedOut
)

func (k EventKind) String() string {
	switch k {
	case EventSubmitPassword:
		return "submit_password"
	case EventSubmitBiometric:
		return "submit_biometric"
	case EventVerifyResolved:
		return "verify_resolved"
	case EventAssertionResolved:
		return "assertion_resolved"
	case EventPacingElapsed:
		return "pacing_elapsed"
	case EventFailureWindowElapsed:
		return "failure_window_elapsed"
	case EventAbort:
		return "abort"
	case EventSignedOut:
		return "signed_out"
	default:
		return "unknown"
	}
}

// Event is an input to Transition. Account and Err carry the outcome of
// the resolved events.
type Event struct {
	Kind      EventKind
	AttemptID string
	Account   *models.Account
	Err       error
}

// Effect is the work the driver must perform after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectVerify
	EffectAssert
	EffectPace
	EffectFailureWindow
	EffectEstablishSession
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectVerify:
		return "verify"
	case EffectAssert:
		return "assert"
	case EffectPace:
		return "pace"
	case EffectFailureWindow:
		return "failure_window"
	case EffectEstablishSession:
		return "establish_session"
	default:
		return "unknown"
	}
}
