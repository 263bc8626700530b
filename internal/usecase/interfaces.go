package usecase

import (
	"context"
	"io"

	"github.com/iho/pixdash/internal/domain"
)

// AuthAPI is the remote authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthToken, error)
	Register(ctx context.Context, reg domain.Registration) error
	Me(ctx context.Context) (*domain.User, error)
}

// AccountAPI is the remote account surface.
type AccountAPI interface {
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	CreateAccount(ctx context.Context, input domain.NewAccount) (*domain.Account, error)
	UpdateAccount(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error)
}

// TransactionAPI is the remote transaction query surface.
type TransactionAPI interface {
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	ExportTransactionsCSV(ctx context.Context, filter domain.TransactionFilter, w io.Writer) (int64, error)
	MonthlySummary(ctx context.Context, period domain.Period) (*domain.MonthlySummary, error)
}

// TransferAPI is the remote money-movement surface.
type TransferAPI interface {
	SubmitInstantTransfer(ctx context.Context, senderAccountID int64, req *domain.TransferRequest) (*domain.Transaction, error)
	CancelTransfer(ctx context.Context, transactionID string) error
	GetTransfer(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// CredentialStore persists the session credential under a single key.
type CredentialStore interface {
	// Get returns domain.ErrNoStoredCredential when nothing is stored.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

// Notifier is the transient notification surface.
type Notifier interface {
	Notify(message string, severity domain.Severity)
}

// Presenter receives navigation signals for the presentation layer.
type Presenter interface {
	ShowLogin()
	ClearTransferForm()
}

// TokenInspector reads claims from a bearer credential without verifying it.
type TokenInspector interface {
	Inspect(token string) (*domain.TokenInfo, error)
}

// Observer receives operational events for metrics.
type Observer interface {
	CacheRefreshed(slice string, err error)
	TransferSubmitted(kind domain.RecipientKind, err error)
}

type nopObserver struct{}

func (nopObserver) CacheRefreshed(string, error) {}
func (nopObserver) TransferSubmitted(domain.RecipientKind, error) {}
