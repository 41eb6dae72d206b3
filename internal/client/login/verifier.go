package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/common"
)

// AccountFinder looks an account up by username and password.
type AccountFinder interface {
	FindAccountByUsername(ctx context.Context, username string, password []byte) (*models.Account, error)
}

// Verifier resolves a username and password to an active account.
type Verifier struct {
	store AccountFinder
}

func NewVerifier(store AccountFinder) *Verifier {
	return &Verifier{store: store}
}

// Verify makes exactly one store lookup, even for empty input, and returns
// the account, ErrCredentialMismatch, ErrAccountInactive or an error
// wrapping ErrStoreUnavailable.
func (v *Verifier) Verify(ctx context.Context, username string, password []byte) (*models.Account, error) {
	username = strings.TrimSpace(username)

	account, err := v.store.FindAccountByUsername(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrCredentialMismatch
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if account == nil {
		return nil, ErrCredentialMismatch
	}

	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	return account, nil
}
