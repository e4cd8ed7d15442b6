package service

import (
	"context"
	"database/sql"

	"github.com/avilov/datavault/internal/common"
	"github.com/avilov/datavault/internal/dbx"
	"github.com/avilov/datavault/internal/models"
	"github.com/avilov/datavault/internal/repository"
)

// AccessService implements paid access requests and the interaction log.
type AccessService struct {
	db    *sql.DB
	repos repository.Manager
}

// NewAccessService constructs an AccessService over the given database and
// repository manager.
func NewAccessService(db *sql.DB, repos repository.Manager) *AccessService {
	return &AccessService{db: db, repos: repos}
}

// RequestDataAccess logs an access request for (owner, index) and pays the
// owner's current access price from the caller's balance. Checks, in order:
// self-access (ErrInvalidInput), owner vault existence (ErrNotFound), index
// and reason shape (ErrInvalidInput), index bounds against the owner's
// current entry count (ErrRecordNotFound), record existence at the key
// (ErrRecordNotFound - kept as its own check because records and vault
// counters are mutated by different operations), and record accessibility
// (ErrAccessDenied). The interaction write and the balance transfer commit
// in one transaction; if the transfer fails the log entry is rolled back,
// so the log never records a payment that did not occur. A repeated request
// for the same (owner, requester, index) overwrites the previous entry.
func (s *AccessService) RequestDataAccess(ctx context.Context, caller, owner string, index int64, reason string) error {
	if owner == caller {
		return common.ErrInvalidInput
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vault, err := s.repos.Vaults(tx).Get(ctx, owner)
		if err != nil {
			return err
		}
		if vault == nil {
			return common.ErrNotFound
		}

		if index < 1 || reason == "" || len(reason) > models.MaxReasonLength {
			return common.ErrInvalidInput
		}
		if index > vault.TotalEntries {
			return common.ErrRecordNotFound
		}

		record, err := s.repos.Records(tx).Get(ctx, owner, index)
		if err != nil {
			return err
		}
		if record == nil {
			return common.ErrRecordNotFound
		}
		if !record.IsAccessible {
			return common.ErrAccessDenied
		}

		height, err := s.repos.ChainState(tx).GetHeight(ctx)
		if err != nil {
			return err
		}

		// Price is read at request time, not cached from record creation.
		cost := vault.AccessPrice

		if err := s.repos.Interactions(tx).Upsert(ctx, &models.Interaction{
			Owner:         owner,
			Requester:     caller,
			Index:         index,
			Timestamp:     height,
			RequestReason: reason,
			PaymentAmount: cost,
		}); err != nil {
			return err
		}

		return s.repos.Accounts(tx).Transfer(ctx, caller, owner, cost)
	})
}

// GetInteractionLog returns the stored interaction for the triple, or
// (nil, nil) when absent. Pure read.
func (s *AccessService) GetInteractionLog(ctx context.Context, owner, requester string, index int64) (*models.Interaction, error) {
	return s.repos.Interactions(s.db).Get(ctx, owner, requester, index)
}
