package repository

import (
	"context"
	"fmt"

	"github.com/avilov/datavault/internal/dbx"
)

// PostgresChainStateRepository implements the single-row global height
// counter over a dbx.DBTX. The row is seeded by the initial migration.
type PostgresChainStateRepository struct {
	db dbx.DBTX
}

// NewPostgresChainStateRepository creates a chain-state repository bound to db.
func NewPostgresChainStateRepository(db dbx.DBTX) *PostgresChainStateRepository {
	return &PostgresChainStateRepository{db: db}
}

// GetHeight returns the current chain height.
func (r *PostgresChainStateRepository) GetHeight(ctx context.Context) (int64, error) {
	var height int64
	err := r.db.QueryRowContext(ctx, `
		SELECT height FROM chain_state WHERE id = 1
	`).Scan(&height)
	if err != nil {
		return 0, fmt.Errorf("get height: %w", err)
	}
	return height, nil
}

// SetHeight overwrites the chain height. Monotonicity is deliberately not
// enforced here; the admin may set any in-bounds value.
func (r *PostgresChainStateRepository) SetHeight(ctx context.Context, height int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE chain_state SET height = $1 WHERE id = 1
	`, height)
	if err != nil {
		return fmt.Errorf("set height: %w", err)
	}
	return nil
}
