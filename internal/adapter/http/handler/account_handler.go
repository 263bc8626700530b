package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/pixdash/internal/adapter/http/dto"
	"github.com/iho/pixdash/internal/domain"
)

// AccountService is the account surface used by AccountHandler.
type AccountService interface {
	LoadAccounts(ctx context.Context) error
	CreateAccount(ctx context.Context, input domain.NewAccount) (*domain.Account, error)
	UpdateAccount(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error)
	Accounts() []*domain.Account
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accounts AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// List returns the cached accounts, reloading them first when refresh=true.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	if parseBoolQuery(r, "refresh") {
		if err := h.accounts.LoadAccounts(r.Context()); err != nil {
			writeDomainError(w, "failed to load accounts", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(h.accounts.Accounts()))
}

// Create opens a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.accounts.CreateAccount(r.Context(), req.ToDomain())
	if err != nil {
		writeDomainError(w, "failed to create account", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Update changes the PIX key, limits or active flag of an account.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID("account_id", chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "invalid account id", err)
		return
	}

	var req dto.UpdateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	update, err := req.ToDomain()
	if err != nil {
		writeDomainError(w, "invalid account update", err)
		return
	}

	account, err := h.accounts.UpdateAccount(r.Context(), id, update)
	if err != nil {
		writeDomainError(w, "failed to update account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
