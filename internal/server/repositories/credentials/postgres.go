package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/dbx"
	"github.com/dmitrijs2005/staffdesk/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every registered credential, oldest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.BiometricCredential, error) {
	query :=
		`SELECT credential_id, account_id, created_at FROM biometric_credentials
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.BiometricCredential
	for rows.Next() {
		c := &models.BiometricCredential{}
		if err := rows.Scan(&c.CredentialID, &c.AccountID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, credential *models.BiometricCredential) error {
	query :=
		`INSERT INTO biometric_credentials (credential_id, account_id)
		 VALUES ($1, $2)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, credential.CredentialID, credential.AccountID).Scan(&credential.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
