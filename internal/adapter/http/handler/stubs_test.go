package handler

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pixdash/internal/adapter/presenter"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
)

type sessionServiceStub struct {
	loginFn    func(ctx context.Context, creds domain.Credentials) error
	registerFn func(ctx context.Context, reg domain.Registration) error
	restoreFn  func(ctx context.Context) error
	status     usecase.SessionStatus
	loggedOut  bool
}

func (s *sessionServiceStub) Login(ctx context.Context, creds domain.Credentials) error {
	return s.loginFn(ctx, creds)
}

func (s *sessionServiceStub) Logout(ctx context.Context) {
	s.loggedOut = true
	s.status = usecase.SessionStatus{}
}

func (s *sessionServiceStub) Register(ctx context.Context, reg domain.Registration) error {
	return s.registerFn(ctx, reg)
}

func (s *sessionServiceStub) RestoreSession(ctx context.Context) error {
	return s.restoreFn(ctx)
}

func (s *sessionServiceStub) Status() usecase.SessionStatus {
	return s.status
}

type accountServiceStub struct {
	loadFn   func(ctx context.Context) error
	createFn func(ctx context.Context, input domain.NewAccount) (*domain.Account, error)
	updateFn func(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error)
	accounts []*domain.Account
}

func (s *accountServiceStub) LoadAccounts(ctx context.Context) error {
	return s.loadFn(ctx)
}

func (s *accountServiceStub) CreateAccount(ctx context.Context, input domain.NewAccount) (*domain.Account, error) {
	return s.createFn(ctx, input)
}

func (s *accountServiceStub) UpdateAccount(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error) {
	return s.updateFn(ctx, id, update)
}

func (s *accountServiceStub) Accounts() []*domain.Account {
	return s.accounts
}

type transactionServiceStub struct {
	loadRecentFn func(ctx context.Context) error
	historyFn    func(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	exportFn     func(ctx context.Context, filter domain.TransactionFilter, w io.Writer) (int64, error)
	monthlyFn    func(ctx context.Context, period domain.Period) (*domain.MonthlySummary, error)
	recent       []*domain.Transaction
}

func (s *transactionServiceStub) LoadRecentTransactions(ctx context.Context) error {
	return s.loadRecentFn(ctx)
}

func (s *transactionServiceStub) RecentTransactions() []*domain.Transaction {
	return s.recent
}

func (s *transactionServiceStub) LoadTransactionHistory(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	return s.historyFn(ctx, filter)
}

func (s *transactionServiceStub) ExportTransactionsCSV(ctx context.Context, filter domain.TransactionFilter, w io.Writer) (int64, error) {
	return s.exportFn(ctx, filter, w)
}

func (s *transactionServiceStub) LoadMonthlySummary(ctx context.Context, period domain.Period) (*domain.MonthlySummary, error) {
	return s.monthlyFn(ctx, period)
}

type transferServiceStub struct {
	submitFn func(ctx context.Context, input usecase.SubmitTransferInput) (*domain.Transaction, error)
	cancelFn func(ctx context.Context, id string) error
	statusFn func(ctx context.Context, id string) (*domain.Transaction, error)
}

func (s *transferServiceStub) SubmitTransfer(ctx context.Context, input usecase.SubmitTransferInput) (*domain.Transaction, error) {
	return s.submitFn(ctx, input)
}

func (s *transferServiceStub) CancelTransaction(ctx context.Context, id string) error {
	return s.cancelFn(ctx, id)
}

func (s *transferServiceStub) TransferStatus(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.statusFn(ctx, id)
}

type snapshotStub struct {
	snapshot usecase.Snapshot
}

func (s snapshotStub) Snapshot() usecase.Snapshot {
	return s.snapshot
}

type dashboardStub struct {
	recomputed int
}

func (d *dashboardStub) Recompute() domain.DashboardSummary {
	d.recomputed++
	return domain.DashboardSummary{}
}

var _ ViewState = (*presenter.Flags)(nil)

func signedInSnapshot() usecase.Snapshot {
	user := &domain.User{ID: 7, Email: "ana@example.com", Username: "ana", FullName: "Ana Souza"}
	accounts := []*domain.Account{
		{ID: 1, Type: domain.AccountTypeChecking, BankCode: "001", BranchCode: "0001", AccountNumber: "12345-6", Balance: decimal.RequireFromString("250.00")},
	}

	return usecase.Snapshot{
		Authenticated: true,
		User:          user,
		Accounts:      accounts,
		Recent: []*domain.Transaction{
			{TransactionID: "TX1", SenderUserID: 7, SenderAccountID: 1, Amount: decimal.RequireFromString("10.50"), Status: domain.StatusPending, CreatedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
			{TransactionID: "TX2", SenderUserID: 9, SenderAccountID: 4, Amount: decimal.RequireFromString("99.90"), Status: domain.StatusCompleted, CreatedAt: time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)},
		},
		Summary: domain.DashboardSummary{
			TotalBalance: decimal.RequireFromString("250.00"),
			AccountCount: 1,
		},
	}
}
