package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avilov/datavault/internal/common"
	"github.com/avilov/datavault/internal/dbx"
	"github.com/avilov/datavault/internal/models"
	"github.com/lib/pq"
)

// pgUniqueViolation is the PostgreSQL error code for unique-constraint violations.
const pgUniqueViolation = "23505"

// PostgresAccountRepository implements account persistence and balance
// transfers over a dbx.DBTX.
type PostgresAccountRepository struct {
	db dbx.DBTX
}

// NewPostgresAccountRepository creates an account repository bound to db.
func NewPostgresAccountRepository(db dbx.DBTX) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// Create inserts a new account with its starting balance.
// A duplicate login is reported as common.ErrAlreadyExists.
func (r *PostgresAccountRepository) Create(ctx context.Context, acc *models.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, login, password_hash, balance) VALUES ($1, $2, $3, $4)
	`, acc.ID, acc.Login, acc.PasswordHash, acc.Balance)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// GetByLogin fetches an account by login. Returns (nil, nil) if no such
// account exists.
func (r *PostgresAccountRepository) GetByLogin(ctx context.Context, login string) (*models.Account, error) {
	var acc models.Account
	err := r.db.QueryRowContext(ctx, `
		SELECT id, login, password_hash, balance FROM accounts WHERE login = $1
	`, login).Scan(&acc.ID, &acc.Login, &acc.PasswordHash, &acc.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &acc, nil
}

// Transfer debits amount from one account and credits it to another. The
// debit is guarded by the current balance, so an underfunded payer fails
// with common.ErrInsufficientBalance and no row changes. Run inside a
// transaction when the transfer must commit together with other writes.
func (r *PostgresAccountRepository) Transfer(ctx context.Context, from, to string, amount int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET balance = balance - $1 WHERE id = $2 AND balance >= $1
	`, amount, from)
	if err != nil {
		return fmt.Errorf("debit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrInsufficientBalance
	}

	res, err = r.db.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + $1 WHERE id = $2
	`, amount, to)
	if err != nil {
		return fmt.Errorf("credit: %w", err)
	}
	n, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("credit rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
