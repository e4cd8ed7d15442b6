// Package service implements the vault state machine: validation and
// authorization rules for vault registration, record storage, paid access
// requests and the admin-controlled chain height. Each mutating operation is
// one indivisible state transition; operations touching more than one table
// run inside a single database transaction.
package service

import (
	"context"
	"database/sql"

	"github.com/avilov/datavault/internal/common"
	"github.com/avilov/datavault/internal/models"
	"github.com/avilov/datavault/internal/repository"
)

// VaultService implements vault registration and pricing operations.
type VaultService struct {
	db    *sql.DB
	repos repository.Manager
}

// NewVaultService constructs a VaultService over the given database and
// repository manager.
func NewVaultService(db *sql.DB, repos repository.Manager) *VaultService {
	return &VaultService{db: db, repos: repos}
}

// CreateStorage registers a vault for the caller with the given access fee.
// It fails with ErrAlreadyExists if the caller already has a vault - checked
// before fee validation, so a duplicate creation is reported as a duplicate
// regardless of the fee argument - and with ErrInvalidPrice if the fee is
// out of bounds. The new vault is stamped with the current chain height and
// starts with zero entries.
func (s *VaultService) CreateStorage(ctx context.Context, caller string, fee int64) error {
	vaults := s.repos.Vaults(s.db)

	existing, err := vaults.Get(ctx, caller)
	if err != nil {
		return err
	}
	if existing != nil {
		return common.ErrAlreadyExists
	}

	if fee < models.MinAccessFee || fee > models.MaxAccessFee {
		return common.ErrInvalidPrice
	}

	height, err := s.repos.ChainState(s.db).GetHeight(ctx)
	if err != nil {
		return err
	}

	return vaults.Create(ctx, &models.Vault{
		Owner:          caller,
		CreationHeight: height,
		TotalEntries:   0,
		AccessPrice:    fee,
	})
}

// UpdateAccessFee replaces the caller's access price. It fails with
// ErrNotFound if the caller has no vault and ErrInvalidPrice if the fee is
// out of bounds. Creation height and entry count are preserved.
func (s *VaultService) UpdateAccessFee(ctx context.Context, caller string, fee int64) error {
	vaults := s.repos.Vaults(s.db)

	existing, err := vaults.Get(ctx, caller)
	if err != nil {
		return err
	}
	if existing == nil {
		return common.ErrNotFound
	}

	if fee < models.MinAccessFee || fee > models.MaxAccessFee {
		return common.ErrInvalidPrice
	}

	return vaults.UpdateFee(ctx, caller, fee)
}

// GetStorageInfo returns the vault of the given account, or (nil, nil) when
// the account has none. Pure read.
func (s *VaultService) GetStorageInfo(ctx context.Context, account string) (*models.Vault, error) {
	return s.repos.Vaults(s.db).Get(ctx, account)
}
