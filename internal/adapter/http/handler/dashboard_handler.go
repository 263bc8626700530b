package handler

import (
	"net/http"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
)

// DashboardService recomputes the dashboard aggregates.
type DashboardService interface {
	Recompute() domain.DashboardSummary
}

// DashboardHandler serves the dashboard view.
type DashboardHandler struct {
	dashboard DashboardService
	state     SnapshotSource
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard DashboardService, state SnapshotSource) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, state: state}
}

// Get returns the user, summary, accounts and recent transactions.
// The summary is recomputed so "today" follows the clock.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.dashboard.Recompute()
	writeJSON(w, http.StatusOK, dto.DashboardFromSnapshot(h.state.Snapshot()))
}
