package accounts

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/server/models"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
}
