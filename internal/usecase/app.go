package usecase

import (
	"time"

	"github.com/rs/zerolog"
)

// API is the full remote surface the client consumes.
type API interface {
	AuthAPI
	AccountAPI
	TransactionAPI
	TransferAPI
}

// AppConfig holds what NewApp wires together.
type AppConfig struct {
	API                API
	Store              CredentialStore
	Inspector          TokenInspector
	Notifier           Notifier
	Presenter          Presenter
	Logger             zerolog.Logger
	Now                func() time.Time
	RecentTransactions int
	// Observer is optional.
	Observer Observer
	// State lets callers share one cache; nil creates a fresh one.
	State *State
}

// App owns the single State and the use cases operating on it.
type App struct {
	State        *State
	Session      *SessionUseCase
	Accounts     *AccountUseCase
	Transactions *TransactionUseCase
	Transfers    *TransferUseCase
	Dashboard    *DashboardUseCase
}

// NewApp wires every use case around one State.
func NewApp(cfg AppConfig) *App {
	state := cfg.State
	if state == nil {
		state = NewState()
	}

	dashboard := NewDashboardUseCase(state, cfg.Now)
	accounts := NewAccountUseCase(cfg.API, state, dashboard, cfg.Notifier, cfg.Logger)
	transactions := NewTransactionUseCase(cfg.API, state, dashboard, cfg.Notifier, cfg.Logger, cfg.RecentTransactions)
	transfers := NewTransferUseCase(cfg.API, state, accounts, transactions, dashboard, cfg.Notifier, cfg.Presenter, cfg.Logger)

	if cfg.Observer != nil {
		accounts.observer = cfg.Observer
		transactions.observer = cfg.Observer
		transfers.observer = cfg.Observer
	}

	session := NewSessionUseCase(SessionConfig{
		Auth:         cfg.API,
		Store:        cfg.Store,
		Inspector:    cfg.Inspector,
		State:        state,
		Accounts:     accounts,
		Transactions: transactions,
		Dashboard:    dashboard,
		Notifier:     cfg.Notifier,
		Presenter:    cfg.Presenter,
		Logger:       cfg.Logger,
	})

	return &App{
		State:        state,
		Session:      session,
		Accounts:     accounts,
		Transactions: transactions,
		Transfers:    transfers,
		Dashboard:    dashboard,
	}
}
