// Package repository provides PostgreSQL persistence for the data-vault
// ledger: accounts and balances, vault metadata, encrypted-record
// descriptors, access interactions and the global chain height.
package repository

import (
	"context"

	"github.com/avilov/datavault/internal/dbx"
	"github.com/avilov/datavault/internal/models"
)

// Accounts persists caller identities and performs balance transfers.
type Accounts interface {
	// Create inserts a new account. A duplicate login yields ErrAlreadyExists.
	Create(ctx context.Context, acc *models.Account) error
	// GetByLogin returns the account with the given login, or (nil, nil).
	GetByLogin(ctx context.Context, login string) (*models.Account, error)
	// Transfer moves amount from one account to another. It fails with
	// ErrInsufficientBalance when the debit guard rejects the withdrawal.
	Transfer(ctx context.Context, from, to string, amount int64) error
}

// Vaults persists per-owner vault metadata.
type Vaults interface {
	// Create inserts a vault. A duplicate owner yields ErrAlreadyExists.
	Create(ctx context.Context, v *models.Vault) error
	// Get returns the owner's vault, or (nil, nil) if absent.
	Get(ctx context.Context, owner string) (*models.Vault, error)
	// UpdateFee replaces the access price, preserving the other fields.
	UpdateFee(ctx context.Context, owner string, fee int64) error
	// SetTotalEntries sets the vault's entry counter.
	SetTotalEntries(ctx context.Context, owner string, total int64) error
}

// Records persists encrypted-record descriptors keyed by (owner, index).
type Records interface {
	// Insert appends a new record at its allocated index.
	Insert(ctx context.Context, rec *models.Record) error
	// Get returns the record at (owner, index), or (nil, nil) if absent.
	Get(ctx context.Context, owner string, index int64) (*models.Record, error)
	// ToggleAccessible flips the record's visibility flag.
	ToggleAccessible(ctx context.Context, owner string, index int64) error
}

// Interactions persists the last-write access log keyed by
// (owner, requester, index).
type Interactions interface {
	// Upsert writes the interaction, overwriting any previous entry for the
	// same (owner, requester, index) triple.
	Upsert(ctx context.Context, in *models.Interaction) error
	// Get returns the stored interaction, or (nil, nil) if absent.
	Get(ctx context.Context, owner, requester string, index int64) (*models.Interaction, error)
}

// ChainState persists the single global height counter.
type ChainState interface {
	// GetHeight returns the current chain height.
	GetHeight(ctx context.Context) (int64, error)
	// SetHeight overwrites the chain height.
	SetHeight(ctx context.Context, height int64) error
}

// Manager vends repositories bound to a DBTX, so a service can use the same
// repository code against the connection pool or inside a transaction.
type Manager interface {
	Accounts(db dbx.DBTX) Accounts
	Vaults(db dbx.DBTX) Vaults
	Records(db dbx.DBTX) Records
	Interactions(db dbx.DBTX) Interactions
	ChainState(db dbx.DBTX) ChainState
}

// PostgresManager is the PostgreSQL-backed Manager.
type PostgresManager struct{}

// NewPostgresManager constructs a PostgresManager.
func NewPostgresManager() *PostgresManager {
	return &PostgresManager{}
}

func (m *PostgresManager) Accounts(db dbx.DBTX) Accounts {
	return NewPostgresAccountRepository(db)
}

func (m *PostgresManager) Vaults(db dbx.DBTX) Vaults {
	return NewPostgresVaultRepository(db)
}

func (m *PostgresManager) Records(db dbx.DBTX) Records {
	return NewPostgresRecordRepository(db)
}

func (m *PostgresManager) Interactions(db dbx.DBTX) Interactions {
	return NewPostgresInteractionRepository(db)
}

func (m *PostgresManager) ChainState(db dbx.DBTX) ChainState {
	return NewPostgresChainStateRepository(db)
}
