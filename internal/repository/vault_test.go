package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avilov/datavault/internal/common"
	"github.com/avilov/datavault/internal/models"
	"github.com/lib/pq"
)

func setupVaultMock(t *testing.T) (*PostgresVaultRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresVaultRepository(db)
	cleanup := func() {
		db.Close()
	}
	return repo, mock, cleanup
}

func TestVaultCreate_Success(t *testing.T) {
	repo, mock, cleanup := setupVaultMock(t)
	defer cleanup()

	v := &models.Vault{Owner: "acc-1", CreationHeight: 10, TotalEntries: 0, AccessPrice: 100}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO vaults (owner, creation_height, total_entries, access_price) VALUES ($1, $2, $3, $4)`)).
		WithArgs(v.Owner, v.CreationHeight, v.TotalEntries, v.AccessPrice).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestVaultCreate_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupVaultMock(t)
	defer cleanup()

	v := &models.Vault{Owner: "acc-1", CreationHeight: 10, AccessPrice: 100}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO vaults`)).
		WithArgs(v.Owner, v.CreationHeight, v.TotalEntries, v.AccessPrice).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), v)
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Errorf("error = %v; want ErrAlreadyExists", err)
	}
}

func TestVaultGet_Found(t *testing.T) {
	repo, mock, cleanup := setupVaultMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"owner", "creation_height", "total_entries", "access_price"}).
		AddRow("acc-1", int64(10), int64(3), int64(250))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT owner, creation_height, total_entries, access_price FROM vaults WHERE owner = $1`)).
		WithArgs("acc-1").
		WillReturnRows(rows)

	v, err := repo.Get(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v == nil || v.TotalEntries != 3 || v.AccessPrice != 250 {
		t.Errorf("unexpected vault returned: %+v", v)
	}
}

func TestVaultGet_Absent(t *testing.T) {
	repo, mock, cleanup := setupVaultMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT owner, creation_height, total_entries, access_price FROM vaults`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"owner", "creation_height", "total_entries", "access_price"}))

	v, err := repo.Get(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil vault, got %+v", v)
	}
}

func TestVaultUpdateFee_NotFound(t *testing.T) {
	repo, mock, cleanup := setupVaultMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE vaults SET access_price = $1 WHERE owner = $2`)).
		WithArgs(int64(500), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFee(context.Background(), "ghost", 500)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("error = %v; want ErrNotFound", err)
	}
}

func TestVaultSetTotalEntries_Success(t *testing.T) {
	repo, mock, cleanup := setupVaultMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE vaults SET total_entries = $1 WHERE owner = $2`)).
		WithArgs(int64(4), "acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetTotalEntries(context.Background(), "acc-1", 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
