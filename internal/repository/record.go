package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avilov/datavault/internal/common"
	"github.com/avilov/datavault/internal/dbx"
	"github.com/avilov/datavault/internal/models"
)

// PostgresRecordRepository implements encrypted-record persistence over a dbx.DBTX.
type PostgresRecordRepository struct {
	db dbx.DBTX
}

// NewPostgresRecordRepository creates a record repository bound to db.
func NewPostgresRecordRepository(db dbx.DBTX) *PostgresRecordRepository {
	return &PostgresRecordRepository{db: db}
}

// Insert appends a new record at its allocated (owner, index) key.
func (r *PostgresRecordRepository) Insert(ctx context.Context, rec *models.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (owner, idx, content_hash, encrypted_blob, category_tag, is_accessible, proof_signature)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.Owner, rec.Index, rec.ContentHash, rec.EncryptedBlob, rec.CategoryTag, rec.IsAccessible, rec.ProofSignature)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// Get fetches the record at (owner, index). Returns (nil, nil) if absent.
func (r *PostgresRecordRepository) Get(ctx context.Context, owner string, index int64) (*models.Record, error) {
	var rec models.Record
	err := r.db.QueryRowContext(ctx, `
		SELECT owner, idx, content_hash, encrypted_blob, category_tag, is_accessible, proof_signature
		FROM records WHERE owner = $1 AND idx = $2
	`, owner, index).Scan(&rec.Owner, &rec.Index, &rec.ContentHash, &rec.EncryptedBlob,
		&rec.CategoryTag, &rec.IsAccessible, &rec.ProofSignature)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &rec, nil
}

// ToggleAccessible flips the record's visibility flag in place. Fails with
// common.ErrRecordNotFound if no record exists at (owner, index).
func (r *PostgresRecordRepository) ToggleAccessible(ctx context.Context, owner string, index int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE records SET is_accessible = NOT is_accessible WHERE owner = $1 AND idx = $2
	`, owner, index)
	if err != nil {
		return fmt.Errorf("toggle record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("toggle record rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrRecordNotFound
	}
	return nil
}
