package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avilov/datavault/internal/dbx"
	"github.com/avilov/datavault/internal/models"
)

// PostgresInteractionRepository implements the last-write access log over a dbx.DBTX.
type PostgresInteractionRepository struct {
	db dbx.DBTX
}

// NewPostgresInteractionRepository creates an interaction repository bound to db.
func NewPostgresInteractionRepository(db dbx.DBTX) *PostgresInteractionRepository {
	return &PostgresInteractionRepository{db: db}
}

// Upsert writes the interaction for its (owner, requester, index) key,
// overwriting any previous entry. The log keeps at most one row per triple.
func (r *PostgresInteractionRepository) Upsert(ctx context.Context, in *models.Interaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO interactions (owner, requester, idx, height, request_reason, payment_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner, requester, idx) DO UPDATE SET
			height = EXCLUDED.height,
			request_reason = EXCLUDED.request_reason,
			payment_amount = EXCLUDED.payment_amount
	`, in.Owner, in.Requester, in.Index, in.Timestamp, in.RequestReason, in.PaymentAmount)
	if err != nil {
		return fmt.Errorf("upsert interaction: %w", err)
	}
	return nil
}

// Get fetches the interaction at (owner, requester, index).
// Returns (nil, nil) if absent.
func (r *PostgresInteractionRepository) Get(ctx context.Context, owner, requester string, index int64) (*models.Interaction, error) {
	var in models.Interaction
	err := r.db.QueryRowContext(ctx, `
		SELECT owner, requester, idx, height, request_reason, payment_amount
		FROM interactions WHERE owner = $1 AND requester = $2 AND idx = $3
	`, owner, requester, index).Scan(&in.Owner, &in.Requester, &in.Index,
		&in.Timestamp, &in.RequestReason, &in.PaymentAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get interaction: %w", err)
	}
	return &in, nil
}
