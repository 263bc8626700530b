package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/domain"
)

// TransferUseCase submits and cancels transfers and refreshes the cache afterwards.
type TransferUseCase struct {
	api          TransferAPI
	state        *State
	accounts     *AccountUseCase
	transactions *TransactionUseCase
	dashboard    *DashboardUseCase
	notifier     Notifier
	presenter    Presenter
	observer     Observer
	logger       zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	api TransferAPI,
	state *State,
	accounts *AccountUseCase,
	transactions *TransactionUseCase,
	dashboard *DashboardUseCase,
	notifier Notifier,
	presenter Presenter,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		api:          api,
		state:        state,
		accounts:     accounts,
		transactions: transactions,
		dashboard:    dashboard,
		notifier:     notifier,
		presenter:    presenter,
		observer:     nopObserver{},
		logger:       logger.With().Str("component", "transfers").Logger(),
	}
}

// SubmitTransferInput represents the transfer form as entered.
type SubmitTransferInput struct {
	SenderAccountID int64
	Form            domain.TransferForm
}

// SubmitTransfer validates the form, then submits it like Submit.
func (uc *TransferUseCase) SubmitTransfer(ctx context.Context, input SubmitTransferInput) (*domain.Transaction, error) {
	if input.SenderAccountID <= 0 {
		return nil, report(uc.logger, uc.notifier, "submit transfer",
			&domain.ValidationError{Field: "sender_account_id", Message: domain.ErrMissingSender.Error(), Err: domain.ErrMissingSender})
	}

	req, err := domain.NewTransferRequest(input.Form)
	if err != nil {
		return nil, report(uc.logger, uc.notifier, "submit transfer", err)
	}

	return uc.Submit(ctx, input.SenderAccountID, req)
}

// Submit sends req from senderAccountID. Validation failures stop before any
// network call. On success the form is cleared and accounts, then recent
// transactions, then the dashboard are refreshed in that order. The returned
// transaction is informational; balances come only from the refresh.
func (uc *TransferUseCase) Submit(ctx context.Context, senderAccountID int64, req *domain.TransferRequest) (*domain.Transaction, error) {
	// 1. Validate locally
	if senderAccountID <= 0 {
		return nil, report(uc.logger, uc.notifier, "submit transfer",
			&domain.ValidationError{Field: "sender_account_id", Message: domain.ErrMissingSender.Error(), Err: domain.ErrMissingSender})
	}

	if err := req.Validate(); err != nil {
		return nil, report(uc.logger, uc.notifier, "submit transfer", err)
	}

	if err := requireSession(uc.state); err != nil {
		return nil, report(uc.logger, uc.notifier, "submit transfer", err)
	}

	// 2. Submit
	txn, err := uc.api.SubmitInstantTransfer(ctx, senderAccountID, req)
	uc.observer.TransferSubmitted(req.Recipient.Kind(), err)
	if err != nil {
		return nil, report(uc.logger, uc.notifier, "submit transfer", err)
	}

	uc.logger.Info().
		Str("transaction_id", txn.TransactionID).
		Str("recipient", string(req.Recipient.Kind())).
		Str("status", string(txn.Status)).
		Msg("transfer submitted")

	uc.notifier.Notify("Transfer of "+domain.FormatBRL(req.Amount)+" submitted", domain.SeveritySuccess)
	uc.presenter.ClearTransferForm()

	// 3. Refresh; each step reports its own failure
	_ = uc.accounts.LoadAccounts(ctx)
	_ = uc.transactions.LoadRecentTransactions(ctx)
	uc.dashboard.Recompute()

	return txn, nil
}

// CancelTransaction asks the server to cancel transactionID and reloads the
// history projection. Eligibility is left to the server.
func (uc *TransferUseCase) CancelTransaction(ctx context.Context, transactionID string) error {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return report(uc.logger, uc.notifier, "cancel transaction",
			domain.NewValidationError("transaction_id", "select the transaction to cancel"))
	}

	if err := requireSession(uc.state); err != nil {
		return report(uc.logger, uc.notifier, "cancel transaction", err)
	}

	if err := uc.api.CancelTransfer(ctx, transactionID); err != nil {
		return report(uc.logger, uc.notifier, "cancel transaction", err)
	}

	uc.logger.Info().Str("transaction_id", transactionID).Msg("transfer cancelled")
	uc.notifier.Notify("Transfer cancelled successfully", domain.SeveritySuccess)

	_, _ = uc.transactions.ReloadHistory(ctx)

	return nil
}

// TransferStatus fetches the current state of transactionID. When a cached
// recent transaction has reached a final status since it was loaded, the
// cache is refreshed the same way a submission refreshes it.
func (uc *TransferUseCase) TransferStatus(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, report(uc.logger, uc.notifier, "transfer status",
			domain.NewValidationError("transaction_id", "enter the transaction id"))
	}

	if err := requireSession(uc.state); err != nil {
		return nil, report(uc.logger, uc.notifier, "transfer status", err)
	}

	txn, err := uc.api.GetTransfer(ctx, transactionID)
	if err != nil {
		return nil, report(uc.logger, uc.notifier, "transfer status", err)
	}

	cached, ok := uc.state.recentStatus(txn.TransactionID)
	if ok && cached != txn.Status && txn.Status.IsTerminal() {
		uc.logger.Info().
			Str("transaction_id", txn.TransactionID).
			Str("from", string(cached)).
			Str("to", string(txn.Status)).
			Msg("transfer settled")

		_ = uc.accounts.LoadAccounts(ctx)
		_ = uc.transactions.LoadRecentTransactions(ctx)
		uc.dashboard.Recompute()
	}

	return txn, nil
}
