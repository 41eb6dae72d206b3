package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/dbx"
	"github.com/dmitrijs2005/staffdesk/internal/server/models"
	"github.com/dmitrijs2005/staffdesk/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/staffdesk/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/staffdesk/internal/server/repositories/roles"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeAccountsRepo struct {
	byName map[string]*models.Account
	byID   map[string]*models.Account
	getErr error

	created   *models.Account
	createErr error

	updated   *models.Account
	updateErr error
}

func (f *fakeAccountsRepo) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if a, ok := f.byName[username]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if a, ok := f.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = "new-id"
	f.created = a
	return a, nil
}

func (f *fakeAccountsRepo) Update(_ context.Context, a *models.Account) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = a
	return nil
}

type fakeRolesRepo struct {
	roles map[string]string
	err   error
}

func (f *fakeRolesRepo) GetByName(_ context.Context, name string) (*models.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	if id, ok := f.roles[name]; ok {
		return &models.Role{ID: id, Name: name}, nil
	}
	return nil, common.ErrorNotFound
}

type fakeCredentialsRepo struct {
	list      []*models.BiometricCredential
	listErr   error
	created   *models.BiometricCredential
	createErr error
}

func (f *fakeCredentialsRepo) List(context.Context) ([]*models.BiometricCredential, error) {
	return f.list, f.listErr
}

func (f *fakeCredentialsRepo) Create(_ context.Context, c *models.BiometricCredential) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = c
	return nil
}

type fakeRepoManager struct {
	a *fakeAccountsRepo
	r *fakeRolesRepo
	c *fakeCredentialsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository       { return m.a }
func (m *fakeRepoManager) Roles(dbx.DBTX) roles.Repository             { return m.r }
func (m *fakeRepoManager) Credentials(dbx.DBTX) credentials.Repository { return m.c }

func newFakeManager() *fakeRepoManager {
	return &fakeRepoManager{
		a: &fakeAccountsRepo{byName: map[string]*models.Account{}, byID: map[string]*models.Account{}},
		r: &fakeRolesRepo{roles: map[string]string{"admin": "r-admin", "hr": "r-hr", "staff": "r-staff"}},
		c: &fakeCredentialsRepo{},
	}
}
