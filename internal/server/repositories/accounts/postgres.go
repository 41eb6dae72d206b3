package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/dbx"
	"github.com/dmitrijs2005/staffdesk/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgInvalidTextFormat  = "22P02"
	selectAccountColumns = `SELECT a.id, a.username, a.password_hash, a.is_active, a.created_at, r.id, r.name
		 FROM accounts a
		 JOIN roles r ON r.id = a.role_id`
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := selectAccountColumns + `
		 WHERE a.username = $1
		 `
	return r.getOne(ctx, query, username)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := selectAccountColumns + `
		 WHERE a.id = $1
		 `
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.IsActive, &a.CreatedAt, &a.Role.ID, &a.Role.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || hasCode(err, pgInvalidTextFormat) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (username, password_hash, role_id, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.PasswordHash, account.Role.ID, account.IsActive).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if hasCode(err, pgUniqueViolation) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) Update(ctx context.Context, account *models.Account) error {
	query :=
		`UPDATE accounts
		 SET username = $2, password_hash = $3, role_id = $4, is_active = $5
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		account.ID, account.Username, account.PasswordHash, account.Role.ID, account.IsActive)
	if err != nil {
		if hasCode(err, pgUniqueViolation) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
