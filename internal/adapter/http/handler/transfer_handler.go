package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
)

// TransferService is the transfer surface used by TransferHandler.
type TransferService interface {
	SubmitTransfer(ctx context.Context, input usecase.SubmitTransferInput) (*domain.Transaction, error)
	CancelTransaction(ctx context.Context, transactionID string) error
	TransferStatus(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transfers TransferService
	state     SnapshotSource
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transfers TransferService, state SnapshotSource) *TransferHandler {
	return &TransferHandler{transfers: transfers, state: state}
}

// Create submits an instant transfer. The response carries the server's
// transaction; balances are read from the refreshed dashboard.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	txn, err := h.transfers.SubmitTransfer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to submit transfer", err)
		return
	}

	if txn == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	snap := h.state.Snapshot()
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn, snap.User, snap.Accounts))
}

// Cancel asks the server to cancel a pending transfer.
func (h *TransferHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.transfers.CancelTransaction(r.Context(), id); err != nil {
		writeDomainError(w, "failed to cancel transfer", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Status fetches the current state of a transfer from the server.
func (h *TransferHandler) Status(w http.ResponseWriter, r *http.Request) {
	txn, err := h.transfers.TransferStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to load transfer", err)
		return
	}

	snap := h.state.Snapshot()
	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn, snap.User, snap.Accounts))
}
