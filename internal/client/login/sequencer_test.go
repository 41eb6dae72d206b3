package login

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/platform"
	"github.com/dmitrijs2005/staffdesk/internal/clock"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

type harness struct {
	seq       *Sequencer
	clock     *clock.FakeClock
	store     *storeFake
	auth      *authenticatorFake
	session   *sessionFake
	presenter *presenterFake
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		clock:     clock.Fake(epoch),
		store:     registeredStore(),
		auth:      &authenticatorFake{id: amalKey},
		session:   &sessionFake{},
		presenter: &presenterFake{},
	}

	engine := newEngine(t, h.store, h.auth)
	h.seq = NewSequencer(NewVerifier(h.store), engine, h.session, logging.Discard(),
		WithClock(h.clock),
		WithPresenter(h.presenter),
	)

	n := 0
	h.seq.newAttemptID = func() string {
		n++
		return fmt.Sprintf("attempt-%d", n)
	}
	return h
}

type result struct {
	state State
	err   error
}

// runAsync submits in the background so the test can drive the clock.
func runAsync(submit func() (State, error)) <-chan result {
	out := make(chan result, 1)
	go func() {
		s, err := submit()
		out <- result{s, err}
	}()
	return out
}

// pace releases n stage delays one at a time.
func (h *harness) pace(n int) {
	for i := 0; i < n; i++ {
		h.clock.WaitForTimers(1)
		h.clock.Advance(DefaultStageDelay)
	}
}

func await(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("attempt did not finish")
		return result{}
	}
}

func TestSequencer_PasswordSuccess(t *testing.T) {
	h := newHarness(t)

	done := runAsync(func() (State, error) {
		return h.seq.SubmitPassword(context.Background(), "amal", []byte("correct"))
	})
	h.pace(3)
	r := await(t, done)

	require.NoError(t, r.err)
	assert.Equal(t, StageAuthenticated, r.state.Stage)
	assert.Equal(t, amal, r.state.Account)
	assert.Equal(t, []*models.Account{amal}, h.session.established())
	assert.Equal(t, []Stage{StageConnecting, StageConnected, StageLinking, StageLinked, StageAuthenticated}, h.presenter.stages())
	assert.Equal(t, epoch.Add(3*DefaultStageDelay), h.clock.Now())
}

func TestSequencer_PasswordMismatch(t *testing.T) {
	h := newHarness(t)

	s, err := h.seq.SubmitPassword(context.Background(), "amal", []byte("wrong"))

	assert.ErrorIs(t, err, ErrCredentialMismatch)
	assert.Equal(t, StageIdle, s.Stage)
	assert.Equal(t, KindInvalidCredentials, s.Err)
	assert.Empty(t, h.session.established())
	assert.Equal(t, []Stage{StageConnecting, StageIdle}, h.presenter.stages())
	assert.Zero(t, h.clock.PendingCount())
}

func TestSequencer_PasswordInactive(t *testing.T) {
	h := newHarness(t)

	s, err := h.seq.SubmitPassword(context.Background(), "khaled", []byte("correct"))

	assert.ErrorIs(t, err, ErrAccountInactive)
	assert.Equal(t, StageInactive, s.Stage)
	assert.Equal(t, KindInactiveAccount, s.Err)
	assert.Nil(t, s.Account)
	assert.Empty(t, h.session.established())
}

func TestSequencer_PasswordErrorPersistsUntilNextSubmit(t *testing.T) {
	h := newHarness(t)

	_, err := h.seq.SubmitPassword(context.Background(), "amal", []byte("wrong"))
	require.ErrorIs(t, err, ErrCredentialMismatch)

	h.clock.Advance(time.Hour)
	assert.Equal(t, KindInvalidCredentials, h.seq.State().Err)

	done := runAsync(func() (State, error) {
		return h.seq.SubmitPassword(context.Background(), "amal", []byte("correct"))
	})
	h.pace(3)
	r := await(t, done)
	require.NoError(t, r.err)
	assert.Equal(t, KindNone, r.state.Err)
}

func TestSequencer_BiometricNoCredentials(t *testing.T) {
	h := newHarness(t)
	h.store.credentials = nil

	s, err := h.seq.SubmitBiometric(context.Background())

	assert.ErrorIs(t, err, ErrCredentialUnregistered)
	assert.Equal(t, StageFailed, s.Stage)
	assert.Equal(t, KindNoCredentials, s.Err)
	assert.Empty(t, h.auth.calls)
}

func TestSequencer_BiometricUnmatchedRevertsAfterWindow(t *testing.T) {
	h := newHarness(t)
	h.auth.id = []byte{0x99}

	s, err := h.seq.SubmitBiometric(context.Background())
	require.ErrorIs(t, err, ErrCredentialUnmatched)
	assert.Equal(t, StageFailed, s.Stage)
	assert.Equal(t, KindNoMatch, s.Err)

	h.clock.Advance(DefaultFailedWindow - time.Millisecond)
	assert.Equal(t, StageFailed, h.seq.State().Stage)

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, State{}, h.seq.State())
	assert.Equal(t, []Stage{StageScanning, StageFailed, StageIdle}, h.presenter.stages())
	assert.Empty(t, h.session.established())
}

func TestSequencer_BiometricSuccess(t *testing.T) {
	h := newHarness(t)

	done := runAsync(func() (State, error) { return h.seq.SubmitBiometric(context.Background()) })
	h.pace(1)
	r := await(t, done)

	require.NoError(t, r.err)
	assert.Equal(t, StageAuthenticated, r.state.Stage)
	assert.Equal(t, []*models.Account{amal}, h.session.established())
	assert.Equal(t, []Stage{StageScanning, StageSuccess, StageAuthenticated}, h.presenter.stages())
}

func TestSequencer_BiometricLinkedInactiveOpensInactive(t *testing.T) {
	h := newHarness(t)
	h.auth.id = khaledKey

	s, err := h.seq.SubmitBiometric(context.Background())

	assert.ErrorIs(t, err, ErrAccountInactive)
	assert.Equal(t, StageInactive, s.Stage)
	assert.Zero(t, h.clock.PendingCount())
	assert.Empty(t, h.session.established())
}

func TestSequencer_NewAttemptIgnoresStaleRevert(t *testing.T) {
	h := newHarness(t)
	h.auth.err = platform.ErrNotAllowed

	_, err := h.seq.SubmitBiometric(context.Background())
	require.ErrorIs(t, err, ErrCeremonyCancelled)
	require.Equal(t, 1, h.clock.PendingCount())

	h.auth.err = nil
	s, err := h.seq.SubmitPassword(context.Background(), "amal", []byte("wrong"))
	require.ErrorIs(t, err, ErrCredentialMismatch)
	assert.Zero(t, h.clock.PendingCount())

	h.clock.Advance(DefaultFailedWindow)
	assert.Equal(t, s, h.seq.State())
}

func TestSequencer_MutualExclusion(t *testing.T) {
	h := newHarness(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	h.seq.verifier = verifierFunc(func(ctx context.Context, username string, password []byte) (*models.Account, error) {
		once.Do(func() { close(entered) })
		<-release
		return amal, nil
	})

	done := runAsync(func() (State, error) {
		return h.seq.SubmitPassword(context.Background(), "amal", []byte("correct"))
	})
	<-entered

	s, err := h.seq.SubmitBiometric(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, StageConnecting, s.Stage)
	_, err = h.seq.SubmitPassword(context.Background(), "amal", []byte("correct"))
	assert.ErrorIs(t, err, ErrBusy)
	assert.Empty(t, h.auth.calls)

	close(release)
	h.pace(3)
	r := await(t, done)
	require.NoError(t, r.err)

	_, err = h.seq.SubmitBiometric(context.Background())
	assert.ErrorIs(t, err, ErrSignedIn)
	assert.Len(t, h.session.established(), 1)
}

func TestSequencer_BiometricBlocksPassword(t *testing.T) {
	h := newHarness(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	h.seq.asserter = asserterFunc(func(context.Context) (*models.Account, error) {
		close(entered)
		<-release
		return nil, ErrCeremonyCancelled
	})

	done := runAsync(func() (State, error) { return h.seq.SubmitBiometric(context.Background()) })
	<-entered

	_, err := h.seq.SubmitPassword(context.Background(), "amal", []byte("correct"))
	assert.ErrorIs(t, err, ErrBusy)
	assert.Empty(t, h.store.lookups)

	close(release)
	r := await(t, done)
	assert.ErrorIs(t, r.err, ErrCeremonyCancelled)
	assert.Equal(t, StageFailed, r.state.Stage)
}

func TestSequencer_ContextCancelDuringPacingAborts(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := runAsync(func() (State, error) {
		return h.seq.SubmitPassword(ctx, "amal", []byte("correct"))
	})
	h.clock.WaitForTimers(1)
	cancel()
	r := await(t, done)

	assert.ErrorIs(t, r.err, context.Canceled)
	assert.Equal(t, State{}, r.state)
	assert.Empty(t, h.session.established())
}

func TestSequencer_ContextCancelDuringCeremonyAborts(t *testing.T) {
	h := newHarness(t)
	h.auth.block = true
	ctx, cancel := context.WithCancel(context.Background())

	done := runAsync(func() (State, error) { return h.seq.SubmitBiometric(ctx) })
	cancel()
	r := await(t, done)

	assert.ErrorIs(t, r.err, context.Canceled)
	assert.Equal(t, StageIdle, h.seq.State().Stage)
	assert.Zero(t, h.clock.PendingCount())
}

func TestSequencer_SignOut(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.seq.SignOut(context.Background()), ErrUnexpectedEvent)

	done := runAsync(func() (State, error) { return h.seq.SubmitBiometric(context.Background()) })
	h.pace(1)
	require.NoError(t, await(t, done).err)

	require.NoError(t, h.seq.SignOut(context.Background()))
	assert.Equal(t, State{}, h.seq.State())

	done = runAsync(func() (State, error) { return h.seq.SubmitBiometric(context.Background()) })
	h.pace(1)
	require.NoError(t, await(t, done).err)
	assert.Len(t, h.session.established(), 2)
}
