package login

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/clock"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultStageDelay   = 1200 * time.Millisecond
	DefaultFailedWindow = 2 * time.Second
)

// CredentialVerifier resolves the password path.
type CredentialVerifier interface {
	Verify(ctx context.Context, username string, password []byte) (*models.Account, error)
}

// AssertionRequester resolves the biometric path.
type AssertionRequester interface {
	RequestAssertion(ctx context.Context) (*models.Account, error)
}

// SessionEstablisher receives the account of every successful attempt.
type SessionEstablisher interface {
	Establish(ctx context.Context, account *models.Account)
}

// Presenter is notified of every state change. Render is called with the
// sequencer's lock held and must not call back into the sequencer.
type Presenter interface {
	Render(State)
}

type Option func(*Sequencer)

func WithClock(c clock.Clock) Option {
	return func(s *Sequencer) { s.clock = c }
}

func WithStageDelay(d time.Duration) Option {
	return func(s *Sequencer) { s.stageDelay = d }
}

func WithFailedWindow(d time.Duration) Option {
	return func(s *Sequencer) { s.failedWindow = d }
}

func WithPresenter(p Presenter) Option {
	return func(s *Sequencer) { s.presenter = p }
}

// Sequencer drives login attempts through Transition and runs the effects
// it returns.
type Sequencer struct {
	verifier  CredentialVerifier
	asserter  AssertionRequester
	session   SessionEstablisher
	presenter Presenter
	logger    logging.Logger

	clock        clock.Clock
	stageDelay   time.Duration
	failedWindow time.Duration
	newAttemptID func() string

	mu    sync.Mutex
	state State

	timerMu sync.Mutex
	revert  *clock.Timer
}

func NewSequencer(v CredentialVerifier, a AssertionRequester, session SessionEstablisher, logger logging.Logger, opts ...Option) *Sequencer {
	s := &Sequencer{
		verifier:     v,
		asserter:     a,
		session:      session,
		logger:       logger.With("module", "sequencer"),
		clock:        clock.Real(),
		stageDelay:   DefaultStageDelay,
		failedWindow: DefaultFailedWindow,
		newAttemptID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SubmitPassword runs a password attempt to its terminal stage and returns
// that state with the outcome error. ErrBusy and ErrSignedIn leave the
// current attempt untouched.
func (s *Sequencer) SubmitPassword(ctx context.Context, username string, password []byte) (State, error) {
	return s.submit(ctx, EventSubmitPassword, func(ctx context.Context) (*models.Account, error) {
		return s.verifier.Verify(ctx, username, password)
	})
}

// SubmitBiometric runs a biometric attempt. A failed attempt returns in
// StageFailed and reverts to StageIdle once the failure window elapses.
func (s *Sequencer) SubmitBiometric(ctx context.Context) (State, error) {
	return s.submit(ctx, EventSubmitBiometric, s.asserter.RequestAssertion)
}

// SignOut returns an authenticated sequencer to its initial state.
func (s *Sequencer) SignOut(ctx context.Context) error {
	_, _, err := s.dispatch(ctx, Event{Kind: EventSignedOut})
	return err
}

func (s *Sequencer) submit(ctx context.Context, kind EventKind, resolve func(context.Context) (*models.Account, error)) (State, error) {
	s.cancelRevert()

	st, eff, err := s.dispatch(ctx, Event{Kind: kind, AttemptID: s.newAttemptID()})
	if err != nil {
		return st, err
	}

	attempt := st.AttemptID
	resolved := EventVerifyResolved
	if kind == EventSubmitBiometric {
		resolved = EventAssertionResolved
	}

	var outcome error
	for {
		switch eff {
		case EffectNone:
			return st, outcome

		case EffectVerify, EffectAssert:
			account, rerr := resolve(ctx)
			if ctx.Err() != nil {
				return s.abort(ctx, attempt)
			}
			outcome = rerr
			st, eff, err = s.dispatch(ctx, Event{Kind: resolved, AttemptID: attempt, Account: account, Err: rerr})

		case EffectPace:
			select {
			case <-s.clock.After(s.stageDelay):
			case <-ctx.Done():
				return s.abort(ctx, attempt)
			}
			st, eff, err = s.dispatch(ctx, Event{Kind: EventPacingElapsed, AttemptID: attempt})

		case EffectFailureWindow:
			s.scheduleRevert(attempt)
			eff = EffectNone

		case EffectEstablishSession:
			s.session.Establish(ctx, st.Account)
			eff = EffectNone
		}

		if err != nil {
			return s.State(), err
		}
	}
}

func (s *Sequencer) abort(ctx context.Context, attempt string) (State, error) {
	st, _, err := s.dispatch(ctx, Event{Kind: EventAbort, AttemptID: attempt})
	if err != nil && !errors.Is(err, ErrStaleEvent) {
		s.logger.Warn(ctx, "abort rejected", "attempt_id", attempt, "error", err)
	}
	return st, ctx.Err()
}

func (s *Sequencer) dispatch(ctx context.Context, ev Event) (State, Effect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, eff, err := Transition(s.state, ev)
	if err != nil {
		return s.state, EffectNone, err
	}

	s.state = next

	kv := []any{"attempt_id", ev.AttemptID, "path", next.Path.String(), "stage", next.Stage.String()}
	if next.Err != KindNone {
		kv = append(kv, "error_kind", string(next.Err))
	}
	s.logger.Info(ctx, "login stage", kv...)

	if s.presenter != nil {
		s.presenter.Render(next)
	}

	return next, eff, nil
}

func (s *Sequencer) scheduleRevert(attempt string) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()

	if s.revert != nil {
		s.revert.Stop()
	}
	s.revert = s.clock.AfterFunc(s.failedWindow, func() {
		_, _, err := s.dispatch(context.Background(), Event{Kind: EventFailureWindowElapsed, AttemptID: attempt})
		if err != nil && !errors.Is(err, ErrStaleEvent) {
			s.logger.Debug(context.Background(), "failure window ignored", "attempt_id", attempt, "error", err)
		}
	})
}

func (s *Sequencer) cancelRevert() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()

	if s.revert != nil {
		s.revert.Stop()
		s.revert = nil
	}
}
