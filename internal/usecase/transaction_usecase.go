package usecase

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/domain"
)

// TransactionUseCase loads the recent and history transaction projections.
type TransactionUseCase struct {
	api         TransactionAPI
	state       *State
	dashboard   *DashboardUseCase
	notifier    Notifier
	observer    Observer
	logger      zerolog.Logger
	recentLimit int
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	api TransactionAPI,
	state *State,
	dashboard *DashboardUseCase,
	notifier Notifier,
	logger zerolog.Logger,
	recentLimit int,
) *TransactionUseCase {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentTransactionsLimit
	}

	return &TransactionUseCase{
		api:         api,
		state:       state,
		dashboard:   dashboard,
		notifier:    notifier,
		observer:    nopObserver{},
		logger:      logger.With().Str("component", "transactions").Logger(),
		recentLimit: recentLimit,
	}
}

// LoadRecentTransactions replaces the recent transactions that feed the dashboard.
func (uc *TransactionUseCase) LoadRecentTransactions(ctx context.Context) error {
	if err := uc.refreshRecent(ctx); err != nil {
		return report(uc.logger, uc.notifier, "load recent transactions", err)
	}

	uc.dashboard.Recompute()
	return nil
}

func (uc *TransactionUseCase) refreshRecent(ctx context.Context) error {
	if err := requireSession(uc.state); err != nil {
		return err
	}

	txns, err := uc.api.ListTransactions(ctx, domain.TransactionFilter{Limit: uc.recentLimit})
	uc.observer.CacheRefreshed("recent", err)
	if err != nil {
		return err
	}

	uc.state.replaceRecent(txns)
	uc.logger.Debug().Int("count", len(txns)).Msg("recent transactions replaced")

	return nil
}

// LoadTransactionHistory fetches transactions matching filter into the history
// projection. The dashboard never reads this projection.
func (uc *TransactionUseCase) LoadTransactionHistory(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	if err := filter.Validate(); err != nil {
		return nil, report(uc.logger, uc.notifier, "load transaction history", err)
	}

	if filter.Limit <= 0 || filter.Limit > MaxHistoryLimit {
		filter.Limit = DefaultHistoryLimit
	}

	if err := requireSession(uc.state); err != nil {
		return nil, report(uc.logger, uc.notifier, "load transaction history", err)
	}

	txns, err := uc.api.ListTransactions(ctx, filter)
	uc.observer.CacheRefreshed("history", err)
	if err != nil {
		return nil, report(uc.logger, uc.notifier, "load transaction history", err)
	}

	uc.state.replaceHistory(filter, txns)

	return txns, nil
}

// ReloadHistory repeats the last history query.
func (uc *TransactionUseCase) ReloadHistory(ctx context.Context) ([]*domain.Transaction, error) {
	_, filter := uc.state.History()
	return uc.LoadTransactionHistory(ctx, filter)
}

// ExportTransactionsCSV streams the server's CSV export for the filter's date range into w.
func (uc *TransactionUseCase) ExportTransactionsCSV(ctx context.Context, filter domain.TransactionFilter, w io.Writer) (int64, error) {
	if err := filter.Validate(); err != nil {
		return 0, report(uc.logger, uc.notifier, "export transactions", err)
	}

	if err := requireSession(uc.state); err != nil {
		return 0, report(uc.logger, uc.notifier, "export transactions", err)
	}

	n, err := uc.api.ExportTransactionsCSV(ctx, domain.TransactionFilter{StartDate: filter.StartDate, EndDate: filter.EndDate}, w)
	if err != nil {
		return n, report(uc.logger, uc.notifier, "export transactions", err)
	}

	uc.notifier.Notify("Transactions exported", domain.SeveritySuccess)

	return n, nil
}

// LoadMonthlySummary fetches the server's tally of the user's sent
// transactions for period, the current month when period is zero.
func (uc *TransactionUseCase) LoadMonthlySummary(ctx context.Context, period domain.Period) (*domain.MonthlySummary, error) {
	if period.IsZero() {
		period = domain.PeriodOf(uc.dashboard.now())
	}

	if err := period.Validate(); err != nil {
		return nil, report(uc.logger, uc.notifier, "load monthly summary", err)
	}

	if err := requireSession(uc.state); err != nil {
		return nil, report(uc.logger, uc.notifier, "load monthly summary", err)
	}

	summary, err := uc.api.MonthlySummary(ctx, period)
	uc.observer.CacheRefreshed("monthly", err)
	if err != nil {
		return nil, report(uc.logger, uc.notifier, "load monthly summary", err)
	}

	uc.state.setMonthly(summary)
	uc.logger.Debug().Str("period", period.String()).Int("count", summary.TotalTransactions).Msg("monthly summary loaded")

	return summary, nil
}

// RecentTransactions returns the cached recent transactions.
func (uc *TransactionUseCase) RecentTransactions() []*domain.Transaction {
	return uc.state.RecentTransactions()
}
