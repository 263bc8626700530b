package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
)

// TransactionService is the transaction surface used by TransactionHandler.
type TransactionService interface {
	LoadRecentTransactions(ctx context.Context) error
	RecentTransactions() []*domain.Transaction
	LoadTransactionHistory(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	ExportTransactionsCSV(ctx context.Context, filter domain.TransactionFilter, w io.Writer) (int64, error)
	LoadMonthlySummary(ctx context.Context, period domain.Period) (*domain.MonthlySummary, error)
}

// SnapshotSource exposes the cached session state.
type SnapshotSource interface {
	Snapshot() usecase.Snapshot
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	transactions TransactionService
	state        SnapshotSource
	loc          *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. Filter dates are
// read in loc.
func NewTransactionHandler(transactions TransactionService, state SnapshotSource, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionHandler{transactions: transactions, state: state, loc: loc}
}

// Recent returns the cached recent transactions, reloading them first when refresh=true.
func (h *TransactionHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if parseBoolQuery(r, "refresh") {
		if err := h.transactions.LoadRecentTransactions(r.Context()); err != nil {
			writeDomainError(w, "failed to load transactions", err)
			return
		}
	}

	snap := h.state.Snapshot()
	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(h.transactions.RecentTransactions(), snap.User, snap.Accounts))
}

// History queries the server with limit, status, start_date and end_date,
// or with account_id and limit for one account's history.
func (h *TransactionHandler) History(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r, h.loc)
	if err != nil {
		writeDomainError(w, "invalid filter", err)
		return
	}

	txns, err := h.transactions.LoadTransactionHistory(r.Context(), filter)
	if err != nil {
		writeDomainError(w, "failed to load transactions", err)
		return
	}

	snap := h.state.Snapshot()
	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txns, snap.User, snap.Accounts))
}

// MonthlySummary returns the server's tally for year and month, defaulting
// to the current month.
func (h *TransactionHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		writeDomainError(w, "invalid period", err)
		return
	}

	summary, err := h.transactions.LoadMonthlySummary(r.Context(), period)
	if err != nil {
		writeDomainError(w, "failed to load monthly summary", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlySummaryFromDomain(summary))
}

// Export returns the server's CSV export for start_date and end_date.
func (h *TransactionHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r, h.loc)
	if err != nil {
		writeDomainError(w, "invalid filter", err)
		return
	}

	// Buffered so a failed export can still be reported as JSON.
	var buf bytes.Buffer
	if _, err := h.transactions.ExportTransactionsCSV(r.Context(), filter, &buf); err != nil {
		writeDomainError(w, "failed to export transactions", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(filter)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func exportFilename(filter domain.TransactionFilter) string {
	name := "transactions"
	if !filter.StartDate.IsZero() {
		name += "_" + filter.StartDate.Format(domain.DateLayout)
	}
	if !filter.EndDate.IsZero() {
		name += "_" + filter.EndDate.Format(domain.DateLayout)
	}
	return name + ".csv"
}
