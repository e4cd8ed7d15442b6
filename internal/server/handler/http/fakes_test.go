package http

import (
	"context"

	"github.com/avilov/datavault/internal/models"
)

// fakeAuthService implements AuthService with configurable funcs.
type fakeAuthService struct {
	RegisterFunc func(ctx context.Context, login, password string) (*models.Account, error)
	LoginFunc    func(ctx context.Context, login, password string) (string, error)
}

func (f *fakeAuthService) Register(ctx context.Context, login, password string) (*models.Account, error) {
	return f.RegisterFunc(ctx, login, password)
}
func (f *fakeAuthService) Login(ctx context.Context, login, password string) (string, error) {
	return f.LoginFunc(ctx, login, password)
}

// fakeVaultService implements VaultService with configurable funcs.
type fakeVaultService struct {
	CreateStorageFunc   func(ctx context.Context, caller string, fee int64) error
	UpdateAccessFeeFunc func(ctx context.Context, caller string, fee int64) error
	GetStorageInfoFunc  func(ctx context.Context, account string) (*models.Vault, error)
}

func (f *fakeVaultService) CreateStorage(ctx context.Context, caller string, fee int64) error {
	return f.CreateStorageFunc(ctx, caller, fee)
}
func (f *fakeVaultService) UpdateAccessFee(ctx context.Context, caller string, fee int64) error {
	return f.UpdateAccessFeeFunc(ctx, caller, fee)
}
func (f *fakeVaultService) GetStorageInfo(ctx context.Context, account string) (*models.Vault, error) {
	return f.GetStorageInfoFunc(ctx, account)
}

// fakeRecordService implements RecordService with configurable funcs.
type fakeRecordService struct {
	StoreEncryptedDataFunc   func(ctx context.Context, caller, hash, blob, tag, proof string) (int64, error)
	ToggleDataVisibilityFunc func(ctx context.Context, caller string, index int64) error
	GetEncryptedRecordFunc   func(ctx context.Context, owner string, index int64) (*models.Record, error)
}

func (f *fakeRecordService) StoreEncryptedData(ctx context.Context, caller, hash, blob, tag, proof string) (int64, error) {
	return f.StoreEncryptedDataFunc(ctx, caller, hash, blob, tag, proof)
}
func (f *fakeRecordService) ToggleDataVisibility(ctx context.Context, caller string, index int64) error {
	return f.ToggleDataVisibilityFunc(ctx, caller, index)
}
func (f *fakeRecordService) GetEncryptedRecord(ctx context.Context, owner string, index int64) (*models.Record, error) {
	return f.GetEncryptedRecordFunc(ctx, owner, index)
}

// fakeAccessService implements AccessService with configurable funcs.
type fakeAccessService struct {
	RequestDataAccessFunc func(ctx context.Context, caller, owner string, index int64, reason string) error
	GetInteractionLogFunc func(ctx context.Context, owner, requester string, index int64) (*models.Interaction, error)
}

func (f *fakeAccessService) RequestDataAccess(ctx context.Context, caller, owner string, index int64, reason string) error {
	return f.RequestDataAccessFunc(ctx, caller, owner, index, reason)
}
func (f *fakeAccessService) GetInteractionLog(ctx context.Context, owner, requester string, index int64) (*models.Interaction, error) {
	return f.GetInteractionLogFunc(ctx, owner, requester, index)
}

// fakeHeightService implements HeightService with configurable funcs.
type fakeHeightService struct {
	UpdateChainHeightFunc func(ctx context.Context, caller string, height int64) error
	CurrentHeightFunc     func(ctx context.Context) (int64, error)
}

func (f *fakeHeightService) UpdateChainHeight(ctx context.Context, caller string, height int64) error {
	return f.UpdateChainHeightFunc(ctx, caller, height)
}
func (f *fakeHeightService) CurrentHeight(ctx context.Context) (int64, error) {
	return f.CurrentHeightFunc(ctx)
}
