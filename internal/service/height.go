package service

import (
	"context"
	"database/sql"

	"github.com/avilov/datavault/internal/common"
	"github.com/avilov/datavault/internal/repository"
	"go.uber.org/zap"
)

// HeightService implements the admin-controlled global height counter.
// The system owner is an immutable value injected at construction.
type HeightService struct {
	db          *sql.DB
	repos       repository.Manager
	systemOwner string
	maxHeight   int64
	logger      *zap.Logger
}

// NewHeightService constructs a HeightService. systemOwner is the only
// account allowed to update the height; maxHeight is the configured ceiling.
func NewHeightService(db *sql.DB, repos repository.Manager, systemOwner string, maxHeight int64, logger *zap.Logger) *HeightService {
	return &HeightService{
		db:          db,
		repos:       repos,
		systemOwner: systemOwner,
		maxHeight:   maxHeight,
		logger:      logger,
	}
}

// UpdateChainHeight overwrites the global height counter. It fails with
// ErrAccessDenied for any caller other than the system owner and with
// ErrInvalidInput for a zero or above-ceiling height. Monotonicity is not
// enforced: the contract allows the admin to set any in-bounds value,
// including one lower than the current height. A backward move is logged as
// a warning so the override is visible without changing the behavior.
func (s *HeightService) UpdateChainHeight(ctx context.Context, caller string, height int64) error {
	if caller != s.systemOwner {
		return common.ErrAccessDenied
	}
	if height < 1 || height > s.maxHeight {
		return common.ErrInvalidInput
	}

	state := s.repos.ChainState(s.db)

	current, err := state.GetHeight(ctx)
	if err != nil {
		return err
	}
	if height < current {
		s.logger.Warn("chain height moved backward",
			zap.Int64("from", current),
			zap.Int64("to", height),
		)
	}

	return state.SetHeight(ctx, height)
}

// CurrentHeight returns the current chain height. Pure read.
func (s *HeightService) CurrentHeight(ctx context.Context) (int64, error) {
	return s.repos.ChainState(s.db).GetHeight(ctx)
}
