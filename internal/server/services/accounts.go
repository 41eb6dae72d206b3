// Package services contains server-side business logic. This file implements
// AccountService, which answers credential lookups for consoles and maintains
// accounts and their biometric credentials for the admin tool.
package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/cryptox"
	"github.com/dmitrijs2005/staffdesk/internal/dbx"
	"github.com/dmitrijs2005/staffdesk/internal/server/models"
	"github.com/dmitrijs2005/staffdesk/internal/server/repositories/repomanager"
)

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager) *AccountService {
	return &AccountService{db: db, repomanager: m}
}

// Lookup returns the account whose username and password both match.
// An unknown username and a wrong password are indistinguishable to the
// caller; both return common.ErrorNotFound after one bcrypt comparison.
// Inactive accounts are returned as-is so the console can tell them apart.
func (s *AccountService) Lookup(ctx context.Context, username string, password []byte) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.BurnCompare(password)
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.CheckPassword(account.PasswordHash, password) {
		return nil, common.ErrorNotFound
	}

	return account, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return account, nil
}

func (s *AccountService) ListCredentials(ctx context.Context) ([]*models.BiometricCredential, error) {
	list, err := s.repomanager.Credentials(s.db).List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}

// Save creates or edits an account depending on the concrete form type.
func (s *AccountService) Save(ctx context.Context, form AccountForm) (*models.Account, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	switch f := form.(type) {
	case *CreateAccountForm:
		return s.create(ctx, f)
	case *EditAccountForm:
		return s.edit(ctx, f)
	default:
		return nil, fmt.Errorf("%w: unsupported form %T", common.ErrorInputInvalid, form)
	}
}

func (s *AccountService) create(ctx context.Context, f *CreateAccountForm) (*models.Account, error) {
	hash, err := cryptox.HashPassword([]byte(f.Password))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInputInvalid, err)
	}

	var created *models.Account
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		role, err := s.repomanager.Roles(tx).GetByName(ctx, f.RoleName)
		if err != nil {
			return roleError(f.RoleName, err)
		}

		created, err = s.repomanager.Accounts(tx).Create(ctx, &models.Account{
			Username:     strings.TrimSpace(f.Username),
			PasswordHash: hash,
			Role:         *role,
			IsActive:     *f.Active,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *AccountService) edit(ctx context.Context, f *EditAccountForm) (*models.Account, error) {
	var updated *models.Account
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		accounts := s.repomanager.Accounts(tx)

		account, err := accounts.GetByID(ctx, f.ID)
		if err != nil {
			return err
		}

		role, err := s.repomanager.Roles(tx).GetByName(ctx, f.RoleName)
		if err != nil {
			return roleError(f.RoleName, err)
		}

		account.Username = strings.TrimSpace(f.Username)
		account.Role = *role
		account.IsActive = *f.Active

		// a blank password leaves the stored hash untouched
		if f.Password != "" {
			hash, err := cryptox.HashPassword([]byte(f.Password))
			if err != nil {
				return fmt.Errorf("%w: %w", common.ErrorInputInvalid, err)
			}
			account.PasswordHash = hash
		}

		if err := accounts.Update(ctx, account); err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RegisterCredential binds a platform credential id to an existing account.
// The id must be unpadded base64url, the same encoding the console compares.
func (s *AccountService) RegisterCredential(ctx context.Context, accountID, credentialID string) (*models.BiometricCredential, error) {
	credentialID = strings.TrimSpace(credentialID)
	raw, err := base64.RawURLEncoding.DecodeString(credentialID)
	if err != nil || len(raw) == 0 {
		return nil, fmt.Errorf("%w: credential id must be unpadded base64url", common.ErrorInputInvalid)
	}

	credential := &models.BiometricCredential{CredentialID: credentialID, AccountID: accountID}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Accounts(tx).GetByID(ctx, accountID); err != nil {
			return err
		}
		return s.repomanager.Credentials(tx).Create(ctx, credential)
	})
	if err != nil {
		return nil, err
	}

	return credential, nil
}

func roleError(name string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("%w: unknown role %q", common.ErrorInputInvalid, name)
	}
	return err
}
