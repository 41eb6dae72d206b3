package login

import (
	"errors"
	"fmt"
)

// Transition computes the next state and the effect to run for ev.
// It never mutates s; on error the returned state equals s.
func Transition(s State, ev Event) (State, Effect, error) {
	switch ev.Kind {
	case EventSubmitPassword, EventSubmitBiometric:
		return submit(s, ev)
	case EventSignedOut:
		if s.Stage != StageAuthenticated {
			return s, EffectNone, unexpected(s, ev)
		}
		return State{}, EffectNone, nil
	}

	if s.AttemptID == "" || ev.AttemptID != s.AttemptID {
		return s, EffectNone, ErrStaleEvent
	}

	switch ev.Kind {
	case EventVerifyResolved:
		if s.Stage != StageConnecting {
			break
		}
		switch {
		case ev.Err == nil && ev.Account != nil:
			next := s
			next.Stage = StageConnected
			next.Account = ev.Account
			return next, EffectPace, nil
		case errors.Is(ev.Err, ErrAccountInactive):
			return State{Path: s.Path, Stage: StageInactive, Err: KindInactiveAccount}, EffectNone, nil
		default:
			return State{Path: s.Path, Stage: StageIdle, Err: classifyOutcome(ev.Err)}, EffectNone, nil
		}

	case EventAssertionResolved:
		if s.Stage != StageScanning {
			break
		}
		switch {
		case ev.Err == nil && ev.Account != nil:
			next := s
			next.Stage = StageSuccess
			next.Account = ev.Account
			return next, EffectPace, nil
		case errors.Is(ev.Err, ErrAccountInactive):
			return State{Path: s.Path, Stage: StageInactive, Err: KindInactiveAccount}, EffectNone, nil
		default:
			next := s
			next.Stage = StageFailed
			next.Err = classifyOutcome(ev.Err)
			return next, EffectFailureWindow, nil
		}

	case EventPacingElapsed:
		next := s
		switch s.Stage {
		case StageConnected:
			next.Stage = StageLinking
			return next, EffectPace, nil
		case StageLinking:
			next.Stage = StageLinked
			return next, EffectPace, nil
		case StageLinked, StageSuccess:
			next.Stage = StageAuthenticated
			return next, EffectEstablishSession, nil
		}

	case EventFailureWindowElapsed:
		if s.Stage == StageFailed {
			return State{}, EffectNone, nil
		}

	case EventAbort:
		if s.InFlight() || s.Stage == StageFailed {
			return State{}, EffectNone, nil
		}
	}

	return s, EffectNone, unexpected(s, ev)
}

func submit(s State, ev Event) (State, Effect, error) {
	if s.InFlight() {
		return s, EffectNone, ErrBusy
	}
	if s.Stage == StageAuthenticated {
		return s, EffectNone, ErrSignedIn
	}
	if ev.AttemptID == "" {
		return s, EffectNone, fmt.Errorf("%w: submit without attempt id", ErrUnexpectedEvent)
	}

	if ev.Kind == EventSubmitPassword {
		return State{AttemptID: ev.AttemptID, Path: PathPassword, Stage: StageConnecting}, EffectVerify, nil
	}
	return State{AttemptID: ev.AttemptID, Path: PathBiometric, Stage: StageScanning}, EffectAssert, nil
}

// classifyOutcome never yields KindNone for a failed resolution.
func classifyOutcome(err error) ErrorKind {
	if err == nil {
		return KindStoreError
	}
	return Classify(err)
}

func unexpected(s State, ev Event) error {
	return fmt.Errorf("%w: %s in stage %s", ErrUnexpectedEvent, ev.Kind, s.Stage)
}
