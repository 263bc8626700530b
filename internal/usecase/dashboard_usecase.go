package usecase

import (
	"time"

	"github.com/iho/pixdash/internal/domain"
)

// DashboardUseCase recomputes the dashboard aggregates from the cache.
type DashboardUseCase struct {
	state *State
	now   func() time.Time
}

// NewDashboardUseCase creates a new DashboardUseCase. A nil clock means time.Now.
func NewDashboardUseCase(state *State, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}

	return &DashboardUseCase{
		state: state,
		now:   now,
	}
}

// Recompute derives the aggregates from one consistent read of the cache
// and stores them for rendering.
func (uc *DashboardUseCase) Recompute() domain.DashboardSummary {
	snap := uc.state.Snapshot()
	summary := domain.Summarize(snap.User, snap.Accounts, snap.Recent, uc.now())
	uc.state.setSummary(summary)

	return summary
}

// Summary returns the last computed aggregates.
func (uc *DashboardUseCase) Summary() domain.DashboardSummary {
	return uc.state.Summary()
}
