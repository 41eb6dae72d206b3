package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/staffdesk/internal/dbx"
	"github.com/dmitrijs2005/staffdesk/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/staffdesk/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/staffdesk/internal/server/repositories/roles"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Roles(db dbx.DBTX) roles.Repository
	Credentials(db dbx.DBTX) credentials.Repository
}
