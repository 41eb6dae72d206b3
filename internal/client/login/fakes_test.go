package login

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/go-webauthn/webauthn/protocol"
)

var (
	amal   = &models.Account{ID: "acc-amal", Username: "amal", Role: models.Role{ID: "r-hr", Name: "hr"}, IsActive: true}
	khaled = &models.Account{ID: "acc-khaled", Username: "khaled", Role: models.Role{ID: "r-staff", Name: "staff"}, IsActive: false}
)

type lookup struct {
	username string
	password string
}

// storeFake serves accounts by username/password and by id.
type storeFake struct {
	mu sync.Mutex

	passwords   map[string]string
	accounts    map[string]*models.Account
	credentials []models.BiometricCredential

	findErr error
	listErr error
	byIDErr error

	lookups   []lookup
	listCalls int
	byIDCalls []string
}

func newStoreFake() *storeFake {
	return &storeFake{
		passwords: map[string]string{"amal": "correct", "khaled": "correct"},
		accounts:  map[string]*models.Account{amal.ID: amal, khaled.ID: khaled},
	}
}

func (s *storeFake) FindAccountByUsername(_ context.Context, username string, password []byte) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookups = append(s.lookups, lookup{username, string(password)})
	if s.findErr != nil {
		return nil, s.findErr
	}
	want, ok := s.passwords[username]
	if !ok || want != string(password) {
		return nil, nil
	}
	for _, a := range s.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (s *storeFake) ListBiometricCredentials(context.Context) ([]models.BiometricCredential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.credentials, nil
}

func (s *storeFake) FindAccountByID(_ context.Context, id string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byIDCalls = append(s.byIDCalls, id)
	if s.byIDErr != nil {
		return nil, s.byIDErr
	}
	return s.accounts[id], nil
}

// authenticatorFake records every ceremony it is asked to run.
type authenticatorFake struct {
	unavailable bool
	id          []byte
	err         error
	block       bool

	calls []protocol.PublicKeyCredentialRequestOptions
}

func (a *authenticatorFake) Available() bool { return !a.unavailable }

func (a *authenticatorFake) GetAssertion(ctx context.Context, opts protocol.PublicKeyCredentialRequestOptions) ([]byte, error) {
	a.calls = append(a.calls, opts)
	if a.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return a.id, a.err
}

// verifierFunc and asserterFunc adapt closures to the sequencer's interfaces.
type verifierFunc func(ctx context.Context, username string, password []byte) (*models.Account, error)

func (f verifierFunc) Verify(ctx context.Context, username string, password []byte) (*models.Account, error) {
	return f(ctx, username, password)
}

type asserterFunc func(ctx context.Context) (*models.Account, error)

func (f asserterFunc) RequestAssertion(ctx context.Context) (*models.Account, error) {
	return f(ctx)
}

type sessionFake struct {
	mu       sync.Mutex
	accounts []*models.Account
}

func (s *sessionFake) Establish(_ context.Context, account *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, account)
}

func (s *sessionFake) established() []*models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.Account(nil), s.accounts...)
}

type presenterFake struct {
	mu     sync.Mutex
	states []State
}

func (p *presenterFake) Render(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, s)
}

func (p *presenterFake) stages() []Stage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Stage, 0, len(p.states))
	for _, s := range p.states {
		out = append(out, s.Stage)
	}
	return out
}
