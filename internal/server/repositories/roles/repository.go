package roles

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/server/models"
)

type Repository interface {
	GetByName(ctx context.Context, name string) (*models.Role, error)
}
