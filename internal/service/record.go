package service

import (
	"context"
	"database/sql"

	"github.com/avilov/datavault/internal/common"
	"github.com/avilov/datavault/internal/dbx"
	"github.com/avilov/datavault/internal/models"
	"github.com/avilov/datavault/internal/repository"
)

// RecordService implements encrypted-record storage and visibility control.
type RecordService struct {
	db    *sql.DB
	repos repository.Manager
}

// NewRecordService constructs a RecordService over the given database and
// repository manager.
func NewRecordService(db *sql.DB, repos repository.Manager) *RecordService {
	return &RecordService{db: db, repos: repos}
}

// StoreEncryptedData appends a new record to the caller's vault and returns
// its 1-based index. It fails with ErrNotFound if the caller has no vault,
// and with ErrInvalidInput if the hash or proof is not exactly 64 bytes, or
// the blob or tag is empty or over its limit. The record insert and the
// vault counter bump commit in one transaction: an index is allocated as
// total_entries+1 and both become visible together or not at all.
func (s *RecordService) StoreEncryptedData(ctx context.Context, caller, hash, blob, tag, proof string) (int64, error) {
	var index int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vaults := s.repos.Vaults(tx)

		vault, err := vaults.Get(ctx, caller)
		if err != nil {
			return err
		}
		if vault == nil {
			return common.ErrNotFound
		}

		if len(hash) != models.HashLength || len(proof) != models.HashLength {
			return common.ErrInvalidInput
		}
		if blob == "" || len(blob) > models.MaxBlobLength {
			return common.ErrInvalidInput
		}
		if tag == "" || len(tag) > models.MaxTagLength {
			return common.ErrInvalidInput
		}

		index = vault.TotalEntries + 1

		if err := s.repos.Records(tx).Insert(ctx, &models.Record{
			Owner:          caller,
			Index:          index,
			ContentHash:    hash,
			EncryptedBlob:  blob,
			CategoryTag:    tag,
			IsAccessible:   true,
			ProofSignature: proof,
		}); err != nil {
			return err
		}

		return vaults.SetTotalEntries(ctx, caller, index)
	})
	if err != nil {
		return 0, err
	}

	return index, nil
}

// ToggleDataVisibility flips the accessibility flag of the caller's record
// at index. Visibility is self-service only: the index is always resolved
// against the caller, never a supplied owner. It fails with ErrNotFound if
// the caller has no vault, ErrInvalidInput for a non-positive index, and
// ErrRecordNotFound for an unallocated index or a missing record.
func (s *RecordService) ToggleDataVisibility(ctx context.Context, caller string, index int64) error {
	vault, err := s.repos.Vaults(s.db).Get(ctx, caller)
	if err != nil {
		return err
	}
	if vault == nil {
		return common.ErrNotFound
	}

	if index < 1 {
		return common.ErrInvalidInput
	}
	if index > vault.TotalEntries {
		return common.ErrRecordNotFound
	}

	return s.repos.Records(s.db).ToggleAccessible(ctx, caller, index)
}

// GetEncryptedRecord returns the record at (owner, index), or (nil, nil)
// when absent. Pure read.
func (s *RecordService) GetEncryptedRecord(ctx context.Context, owner string, index int64) (*models.Record, error) {
	return s.repos.Records(s.db).Get(ctx, owner, index)
}
