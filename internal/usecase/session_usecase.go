package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/domain"
)

// SessionUseCase drives the anonymous/authenticated lifecycle.
type SessionUseCase struct {
	auth         AuthAPI
	store        CredentialStore
	inspector    TokenInspector
	state        *State
	accounts     *AccountUseCase
	transactions *TransactionUseCase
	dashboard    *DashboardUseCase
	notifier     Notifier
	presenter    Presenter
	logger       zerolog.Logger
}

// SessionConfig holds the collaborators of SessionUseCase.
type SessionConfig struct {
	Auth         AuthAPI
	Store        CredentialStore
	Inspector    TokenInspector // optional
	State        *State
	Accounts     *AccountUseCase
	Transactions *TransactionUseCase
	Dashboard    *DashboardUseCase
	Notifier     Notifier
	Presenter    Presenter
	Logger       zerolog.Logger
}

// NewSessionUseCase creates a new SessionUseCase.
func NewSessionUseCase(cfg SessionConfig) *SessionUseCase {
	return &SessionUseCase{
		auth:         cfg.Auth,
		store:        cfg.Store,
		inspector:    cfg.Inspector,
		state:        cfg.State,
		accounts:     cfg.Accounts,
		transactions: cfg.Transactions,
		dashboard:    cfg.Dashboard,
		notifier:     cfg.Notifier,
		presenter:    cfg.Presenter,
		logger:       cfg.Logger.With().Str("component", "session").Logger(),
	}
}

// Login exchanges credentials for a token, persists it and loads the user's data.
// On failure the session stays anonymous.
func (uc *SessionUseCase) Login(ctx context.Context, creds domain.Credentials) error {
	if err := domain.ValidateCredentials(creds); err != nil {
		return report(uc.logger, uc.notifier, "login", err)
	}

	token, err := uc.auth.Login(ctx, creds)
	if err != nil {
		return report(uc.logger, uc.notifier, "login", err)
	}

	if err := uc.store.Set(ctx, token.AccessToken); err != nil {
		// The session still works for this process; it just won't survive a restart.
		uc.logger.Warn().Err(err).Msg("failed to persist credential")
	}

	uc.state.setToken(token.AccessToken)
	uc.logger.Info().Str("email", creds.Email).Msg("signed in")
	uc.notifier.Notify("Signed in successfully", domain.SeveritySuccess)

	return uc.LoadUserData(ctx)
}

// LoadUserData reloads the user, accounts and recent transactions, then the dashboard.
func (uc *SessionUseCase) LoadUserData(ctx context.Context) error {
	if err := uc.loadUserData(ctx); err != nil {
		return report(uc.logger, uc.notifier, "load user data", err)
	}
	return nil
}

func (uc *SessionUseCase) loadUserData(ctx context.Context) error {
	if err := requireSession(uc.state); err != nil {
		return err
	}

	user, err := uc.auth.Me(ctx)
	if err != nil {
		return err
	}
	uc.state.setUser(user)

	if err := uc.accounts.refresh(ctx); err != nil {
		return err
	}

	if err := uc.transactions.refreshRecent(ctx); err != nil {
		return err
	}

	uc.dashboard.Recompute()

	return nil
}

// Logout drops the credential and every cached entity. It never fails.
func (uc *SessionUseCase) Logout(ctx context.Context) {
	if err := uc.store.Remove(ctx); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to remove stored credential")
	}

	uc.state.clear()
	uc.logger.Info().Msg("signed out")
	uc.presenter.ShowLogin()
}

// RestoreSession adopts a stored credential and loads the user's data with it.
// Any failure is treated as an expired session: the client signs out silently
// and ErrSessionExpired is returned.
func (uc *SessionUseCase) RestoreSession(ctx context.Context) error {
	token, err := uc.store.Get(ctx)
	if errors.Is(err, domain.ErrNoStoredCredential) {
		uc.presenter.ShowLogin()
		return err
	}

	if err != nil {
		uc.logger.Warn().Err(err).Msg("failed to read stored credential")
		uc.Logout(ctx)
		return fmt.Errorf("%w: %w", domain.ErrSessionExpired, err)
	}

	uc.state.setToken(token)
	uc.logTokenInfo(token)

	if err := uc.loadUserData(ctx); err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			uc.logger.Info().Err(err).Msg("stored session rejected, signing out")
		} else {
			uc.logger.Warn().Err(err).Msg("failed to load user data, signing out")
		}
		uc.Logout(ctx)
		return fmt.Errorf("%w: %w", domain.ErrSessionExpired, err)
	}

	return nil
}

func (uc *SessionUseCase) logTokenInfo(token string) {
	if uc.inspector == nil {
		return
	}

	info, err := uc.inspector.Inspect(token)
	if err != nil {
		uc.logger.Debug().Err(err).Msg("stored credential is not an inspectable token")
		return
	}

	uc.logger.Debug().
		Str("subject", info.Subject).
		Time("expires_at", info.ExpiresAt).
		Bool("expired", info.Expired(time.Now())).
		Msg("restoring session")
}

// Register creates a user. It does not sign in.
func (uc *SessionUseCase) Register(ctx context.Context, reg domain.Registration) error {
	if err := domain.ValidateRegistration(reg); err != nil {
		return report(uc.logger, uc.notifier, "register", err)
	}

	if err := uc.auth.Register(ctx, reg); err != nil {
		return report(uc.logger, uc.notifier, "register", err)
	}

	uc.logger.Info().Str("email", reg.Email).Msg("user registered")
	uc.notifier.Notify("Registration successful, please sign in", domain.SeveritySuccess)
	uc.presenter.ShowLogin()

	return nil
}

// SessionStatus describes the current session.
type SessionStatus struct {
	Authenticated bool
	User          *domain.User
	Token         *domain.TokenInfo
}

// Status reports the session state and, when possible, the credential's claims.
func (uc *SessionUseCase) Status() SessionStatus {
	status := SessionStatus{
		Authenticated: uc.state.Authenticated(),
		User:          uc.state.User(),
	}

	if status.Authenticated && uc.inspector != nil {
		if info, err := uc.inspector.Inspect(uc.state.Token()); err == nil {
			status.Token = info
		}
	}

	return status
}
