package service_test

import (
	"context"

	"github.com/avilov/datavault/internal/dbx"
	"github.com/avilov/datavault/internal/models"
	"github.com/avilov/datavault/internal/repository"
)

// fakeAccounts implements repository.Accounts with configurable funcs.
type fakeAccounts struct {
	CreateFunc     func(ctx context.Context, acc *models.Account) error
	GetByLoginFunc func(ctx context.Context, login string) (*models.Account, error)
	TransferFunc   func(ctx context.Context, from, to string, amount int64) error
}

func (f *fakeAccounts) Create(ctx context.Context, acc *models.Account) error {
	return f.CreateFunc(ctx, acc)
}
func (f *fakeAccounts) GetByLogin(ctx context.Context, login string) (*models.Account, error) {
	return f.GetByLoginFunc(ctx, login)
}
func (f *fakeAccounts) Transfer(ctx context.Context, from, to string, amount int64) error {
	return f.TransferFunc(ctx, from, to, amount)
}

// fakeVaults implements repository.Vaults with configurable funcs.
type fakeVaults struct {
	CreateFunc          func(ctx context.Context, v *models.Vault) error
	GetFunc             func(ctx context.Context, owner string) (*models.Vault, error)
	UpdateFeeFunc       func(ctx context.Context, owner string, fee int64) error
	SetTotalEntriesFunc func(ctx context.Context, owner string, total int64) error
}

func (f *fakeVaults) Create(ctx context.Context, v *models.Vault) error {
	return f.CreateFunc(ctx, v)
}
func (f *fakeVaults) Get(ctx context.Context, owner string) (*models.Vault, error) {
	return f.GetFunc(ctx, owner)
}
func (f *fakeVaults) UpdateFee(ctx context.Context, owner string, fee int64) error {
	return f.UpdateFeeFunc(ctx, owner, fee)
}
func (f *fakeVaults) SetTotalEntries(ctx context.Context, owner string, total int64) error {
	return f.SetTotalEntriesFunc(ctx, owner, total)
}

// fakeRecords implements repository.Records with configurable funcs.
type fakeRecords struct {
	InsertFunc           func(ctx context.Context, rec *models.Record) error
	GetFunc              func(ctx context.Context, owner string, index int64) (*models.Record, error)
	ToggleAccessibleFunc func(ctx context.Context, owner string, index int64) error
}

func (f *fakeRecords) Insert(ctx context.Context, rec *models.Record) error {
	return f.InsertFunc(ctx, rec)
}
func (f *fakeRecords) Get(ctx context.Context, owner string, index int64) (*models.Record, error) {
	return f.GetFunc(ctx, owner, index)
}
func (f *fakeRecords) ToggleAccessible(ctx context.Context, owner string, index int64) error {
	return f.ToggleAccessibleFunc(ctx, owner, index)
}

// fakeInteractions implements repository.Interactions with configurable funcs.
type fakeInteractions struct {
	UpsertFunc func(ctx context.Context, in *models.Interaction) error
	GetFunc    func(ctx context.Context, owner, requester string, index int64) (*models.Interaction, error)
}

func (f *fakeInteractions) Upsert(ctx context.Context, in *models.Interaction) error {
	return f.UpsertFunc(ctx, in)
}
func (f *fakeInteractions) Get(ctx context.Context, owner, requester string, index int64) (*models.Interaction, error) {
	return f.GetFunc(ctx, owner, requester, index)
}

// fakeChainState implements repository.ChainState with configurable funcs.
type fakeChainState struct {
	GetHeightFunc func(ctx context.Context) (int64, error)
	SetHeightFunc func(ctx context.Context, height int64) error
}

func (f *fakeChainState) GetHeight(ctx context.Context) (int64, error) {
	return f.GetHeightFunc(ctx)
}
func (f *fakeChainState) SetHeight(ctx context.Context, height int64) error {
	return f.SetHeightFunc(ctx, height)
}

// fakeManager vends the configured fakes regardless of the DBTX handle.
type fakeManager struct {
	accounts     repository.Accounts
	vaults       repository.Vaults
	records      repository.Records
	interactions repository.Interactions
	chain        repository.ChainState
}

func (m *fakeManager) Accounts(db dbx.DBTX) repository.Accounts         { return m.accounts }
func (m *fakeManager) Vaults(db dbx.DBTX) repository.Vaults             { return m.vaults }
func (m *fakeManager) Records(db dbx.DBTX) repository.Records           { return m.records }
func (m *fakeManager) Interactions(db dbx.DBTX) repository.Interactions { return m.interactions }
func (m *fakeManager) ChainState(db dbx.DBTX) repository.ChainState     { return m.chain }
