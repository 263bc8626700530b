package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/domain"
)

// AccountUseCase keeps the cached account collection in sync with the server.
type AccountUseCase struct {
	api       AccountAPI
	state     *State
	dashboard *DashboardUseCase
	notifier  Notifier
	observer  Observer
	logger    zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	api AccountAPI,
	state *State,
	dashboard *DashboardUseCase,
	notifier Notifier,
	logger zerolog.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		api:       api,
		state:     state,
		dashboard: dashboard,
		notifier:  notifier,
		observer:  nopObserver{},
		logger:    logger.With().Str("component", "accounts").Logger(),
	}
}

// LoadAccounts replaces the cached accounts with the server's list.
// On failure the previous list is kept.
func (uc *AccountUseCase) LoadAccounts(ctx context.Context) error {
	if err := uc.refresh(ctx); err != nil {
		return report(uc.logger, uc.notifier, "load accounts", err)
	}

	uc.dashboard.Recompute()
	return nil
}

func (uc *AccountUseCase) refresh(ctx context.Context) error {
	if err := requireSession(uc.state); err != nil {
		return err
	}

	accounts, err := uc.api.ListAccounts(ctx)
	uc.observer.CacheRefreshed("accounts", err)
	if err != nil {
		return err
	}

	uc.state.replaceAccounts(accounts)
	uc.logger.Debug().Int("count", len(accounts)).Msg("accounts replaced")

	return nil
}

// CreateAccount opens an account and appends the server's record to the cache.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input domain.NewAccount) (*domain.Account, error) {
	if err := input.Validate(); err != nil {
		return nil, report(uc.logger, uc.notifier, "create account", err)
	}

	if err := requireSession(uc.state); err != nil {
		return nil, report(uc.logger, uc.notifier, "create account", err)
	}

	account, err := uc.api.CreateAccount(ctx, input)
	if err != nil {
		return nil, report(uc.logger, uc.notifier, "create account", err)
	}

	uc.state.appendAccount(account)
	uc.dashboard.Recompute()

	uc.logger.Info().Int64("account_id", account.ID).Msg("account created")
	uc.notifier.Notify("Account created successfully", domain.SeveritySuccess)

	return account, nil
}

// UpdateAccount changes the settings of account id and swaps the server's
// record into the cache.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error) {
	if id <= 0 {
		return nil, report(uc.logger, uc.notifier, "update account",
			domain.NewValidationError("account_id", "select the account to update"))
	}

	if err := update.Validate(); err != nil {
		return nil, report(uc.logger, uc.notifier, "update account", err)
	}

	if err := requireSession(uc.state); err != nil {
		return nil, report(uc.logger, uc.notifier, "update account", err)
	}

	account, err := uc.api.UpdateAccount(ctx, id, update)
	if err != nil {
		return nil, report(uc.logger, uc.notifier, "update account", err)
	}

	uc.state.replaceAccount(account)
	uc.dashboard.Recompute()

	uc.logger.Info().Int64("account_id", account.ID).Msg("account updated")
	uc.notifier.Notify("Account updated successfully", domain.SeveritySuccess)

	return account, nil
}

// Accounts returns the cached accounts.
func (uc *AccountUseCase) Accounts() []*domain.Account {
	return uc.state.Accounts()
}
