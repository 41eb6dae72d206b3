package credentials

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.BiometricCredential, error)
	Create(ctx context.Context, credential *models.BiometricCredential) error
}
