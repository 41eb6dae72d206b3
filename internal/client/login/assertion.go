package login

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/platform"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
)

// CredentialSource is the part of the store the assertion engine reads.
type CredentialSource interface {
	ListBiometricCredentials(ctx context.Context) ([]models.BiometricCredential, error)
	FindAccountByID(ctx context.Context, id string) (*models.Account, error)
}

// optionsProvider builds assertion request options with a fresh challenge.
// *webauthn.WebAuthn satisfies it.
type optionsProvider interface {
	BeginDiscoverableLogin(opts ...webauthn.LoginOption) (*protocol.CredentialAssertion, *webauthn.SessionData, error)
}

// AssertionEngine runs one biometric sign-in: it offers the registered
// credentials to the platform authenticator and resolves the asserted
// credential to its account.
type AssertionEngine struct {
	store         CredentialSource
	authenticator platform.Authenticator
	provider      optionsProvider
	logger        logging.Logger
}

// NewAssertionEngine binds the relying party to the host of origin.
func NewAssertionEngine(store CredentialSource, authenticator platform.Authenticator, origin, displayName string, logger logging.Logger) (*AssertionEngine, error) {
	u, err := url.Parse(origin)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("%w: origin %q has no host", common.ErrorInputInvalid, origin)
	}

	wa, err := webauthn.New(&webauthn.Config{
		RPID:          u.Hostname(),
		RPDisplayName: displayName,
		RPOrigins:     []string{origin},
	})
	if err != nil {
		return nil, fmt.Errorf("webauthn config: %w", err)
	}

	return &AssertionEngine{
		store:         store,
		authenticator: authenticator,
		provider:      wa,
		logger:        logger.With("module", "assertion"),
	}, nil
}

// RequestAssertion returns the active account whose registered credential
// the user asserted.
func (e *AssertionEngine) RequestAssertion(ctx context.Context) (*models.Account, error) {
	if !e.authenticator.Available() {
		return nil, ErrPlatformUnsupported
	}

	credentials, err := e.store.ListBiometricCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	allowList := make([]protocol.CredentialDescriptor, 0, len(credentials))
	byID := make(map[string]models.BiometricCredential, len(credentials))
	for _, c := range credentials {
		raw, err := base64.RawURLEncoding.DecodeString(c.CredentialID)
		if err != nil || len(raw) == 0 {
			e.logger.Warn(ctx, "skipping malformed credential id", "account_id", c.AccountID)
			continue
		}
		allowList = append(allowList, protocol.CredentialDescriptor{
			Type:         protocol.PublicKeyCredentialType,
			CredentialID: raw,
		})
		byID[base64.RawURLEncoding.EncodeToString(raw)] = c
	}

	if len(allowList) == 0 {
		return nil, ErrCredentialUnregistered
	}

	// the challenge lives only in this request; the session data is dropped
	assertion, _, err := e.provider.BeginDiscoverableLogin(
		webauthn.WithAllowedCredentials(allowList),
		webauthn.WithUserVerification(protocol.VerificationPreferred),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCeremonyFailed, err)
	}

	id, err := e.authenticator.GetAssertion(ctx, assertion.Response)
	if err != nil {
		switch {
		case errors.Is(err, platform.ErrNotAllowed), errors.Is(err, context.Canceled):
			return nil, ErrCeremonyCancelled
		case errors.Is(err, platform.ErrUnsupported):
			return nil, ErrPlatformUnsupported
		default:
			return nil, fmt.Errorf("%w: %w", ErrCeremonyFailed, err)
		}
	}

	credential, ok := byID[base64.RawURLEncoding.EncodeToString(id)]
	if !ok {
		return nil, ErrCredentialUnmatched
	}

	account, err := e.store.FindAccountByID(ctx, credential.AccountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrLinkedAccountMissing
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if account == nil {
		return nil, ErrLinkedAccountMissing
	}

	if !account.IsActive {
		return nil, ErrLinkedAccountInactive
	}

	return account, nil
}
