package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
	"github.com/iho/pixdash/internal/usecase/mocks"
)

// remoteAPI joins the per-surface mocks into one usecase.API.
type remoteAPI struct {
	*mocks.MockAuthAPI
	*mocks.MockAccountAPI
	*mocks.MockTransactionAPI
	*mocks.MockTransferAPI
}

type harness struct {
	auth      *mocks.MockAuthAPI
	accounts  *mocks.MockAccountAPI
	txns      *mocks.MockTransactionAPI
	transfers *mocks.MockTransferAPI
	store     *mocks.MemoryCredentialStore
	notifier  *mocks.RecordingNotifier
	presenter *mocks.RecordingPresenter
	app       *usecase.App
	now       time.Time
}

func newHarness(t *testing.T, storedToken string) *harness {
	t.Helper()
	return newObservedHarness(t, storedToken, nil)
}

func newObservedHarness(t *testing.T, storedToken string, observer usecase.Observer) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)

	h := &harness{
		auth:      mocks.NewMockAuthAPI(ctrl),
		accounts:  mocks.NewMockAccountAPI(ctrl),
		txns:      mocks.NewMockTransactionAPI(ctrl),
		transfers: mocks.NewMockTransferAPI(ctrl),
		store:     mocks.NewMemoryCredentialStore(storedToken),
		notifier:  mocks.NewRecordingNotifier(),
		presenter: mocks.NewRecordingPresenter(),
		now:       time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
	}

	h.app = usecase.NewApp(usecase.AppConfig{
		API:       remoteAPI{h.auth, h.accounts, h.txns, h.transfers},
		Store:     h.store,
		Notifier:  h.notifier,
		Presenter: h.presenter,
		Logger:    zerolog.Nop(),
		Now:       func() time.Time { return h.now },
		Observer:  observer,
	})

	return h
}

// signIn performs a successful login returning user, accounts and recent.
func (h *harness) signIn(t *testing.T, user *domain.User, accounts []*domain.Account, recent []*domain.Transaction) {
	t.Helper()

	h.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(&domain.AuthToken{AccessToken: "token-1", TokenType: "bearer"}, nil)
	h.auth.EXPECT().Me(gomock.Any()).Return(user, nil)
	h.accounts.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)
	h.txns.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(recent, nil)

	err := h.app.Session.Login(context.Background(), domain.Credentials{Email: "ana@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
}

func testUser() *domain.User {
	return &domain.User{ID: 7, Email: "ana@example.com", Username: "ana", FullName: "Ana Souza"}
}

func account(id int64, balance int64) *domain.Account {
	return &domain.Account{
		ID:            id,
		Type:          domain.AccountTypeChecking,
		AccountNumber: "12345678",
		BankCode:      "001",
		BranchCode:    "0001",
		Balance:       decimal.NewFromInt(balance),
		DailyLimit:    decimal.NewFromInt(5000),
		Active:        true,
		OwnerID:       7,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
