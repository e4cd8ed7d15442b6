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

// PostgresVaultRepository implements vault metadata persistence over a dbx.DBTX.
type PostgresVaultRepository struct {
	db dbx.DBTX
}

// NewPostgresVaultRepository creates a vault repository bound to db.
func NewPostgresVaultRepository(db dbx.DBTX) *PostgresVaultRepository {
	return &PostgresVaultRepository{db: db}
}

// Create inserts a new vault for its owner. The owner column is the primary
// key, so re-creation surfaces as common.ErrAlreadyExists.
func (r *PostgresVaultRepository) Create(ctx context.Context, v *models.Vault) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaults (owner, creation_height, total_entries, access_price) VALUES ($1, $2, $3, $4)
	`, v.Owner, v.CreationHeight, v.TotalEntries, v.AccessPrice)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("create vault: %w", err)
	}
	return nil
}

// Get fetches the owner's vault. Returns (nil, nil) if the owner has none.
func (r *PostgresVaultRepository) Get(ctx context.Context, owner string) (*models.Vault, error) {
	var v models.Vault
	err := r.db.QueryRowContext(ctx, `
		SELECT owner, creation_height, total_entries, access_price FROM vaults WHERE owner = $1
	`, owner).Scan(&v.Owner, &v.CreationHeight, &v.TotalEntries, &v.AccessPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vault: %w", err)
	}
	return &v, nil
}

// UpdateFee replaces the vault's access price, leaving creation height and
// entry count untouched. Fails with common.ErrNotFound if the owner has no vault.
func (r *PostgresVaultRepository) UpdateFee(ctx context.Context, owner string, fee int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaults SET access_price = $1 WHERE owner = $2
	`, fee, owner)
	if err != nil {
		return fmt.Errorf("update fee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update fee rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// SetTotalEntries sets the vault's entry counter to total.
func (r *PostgresVaultRepository) SetTotalEntries(ctx context.Context, owner string, total int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaults SET total_entries = $1 WHERE owner = $2
	`, total, owner)
	if err != nil {
		return fmt.Errorf("set total entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set total entries rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
