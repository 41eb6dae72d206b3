package grpc

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/dmitrijs2005/staffdesk/internal/server/models"
)

type fakeAccounts struct {
	lookupOut *models.Account
	lookupErr error
	gotPass   []byte

	getOut *models.Account
	getErr error

	list    []*models.BiometricCredential
	listErr error
}

func (f *fakeAccounts) Lookup(_ context.Context, _ string, password []byte) (*models.Account, error) {
	f.gotPass = password
	return f.lookupOut, f.lookupErr
}

func (f *fakeAccounts) GetByID(context.Context, string) (*models.Account, error) {
	return f.getOut, f.getErr
}

func (f *fakeAccounts) ListCredentials(context.Context) ([]*models.BiometricCredential, error) {
	return f.list, f.listErr
}

func newTestServer(accounts AccountService) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Discard(), accounts, "secret")
}
