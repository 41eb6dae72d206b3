package client

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
)

// Store is the console's view of the credential store.
type Store interface {
	// FindAccountByUsername returns the account whose username and password
	// both match, or common.ErrorNotFound.
	FindAccountByUsername(ctx context.Context, username string, password []byte) (*models.Account, error)
	// ListBiometricCredentials returns every registered credential.
	ListBiometricCredentials(ctx context.Context) ([]models.BiometricCredential, error)
	// FindAccountByID returns the account or common.ErrorNotFound.
	FindAccountByID(ctx context.Context, id string) (*models.Account, error)
	Ping(ctx context.Context) error
	Close() error
}
