package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pixdash/internal/adapter/presenter"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// UserResponse represents the signed-in user.
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	DisplayName string    `json:"display_name"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to response. A nil user stays nil.
func UserFromDomain(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FullName:    u.FullName,
		DisplayName: u.DisplayName(),
		Verified:    u.Verified,
		CreatedAt:   u.CreatedAt,
	}
}

// TokenResponse describes the claims of the held credential.
type TokenResponse struct {
	Subject   string     `json:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
}

// SessionResponse represents the session and the pending navigation signals.
type SessionResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          *UserResponse  `json:"user,omitempty"`
	Token         *TokenResponse `json:"token,omitempty"`
	View          presenter.View `json:"view"`
}

// SessionFromStatus converts a session status to response.
func SessionFromStatus(status usecase.SessionStatus, view presenter.View, now time.Time) *SessionResponse {
	resp := &SessionResponse{
		Authenticated: status.Authenticated,
		User:          UserFromDomain(status.User),
		View:          view,
	}

	if status.Token != nil {
		resp.Token = &TokenResponse{
			Subject: status.Token.Subject,
			Expired: status.Token.Expired(now),
		}
		if !status.Token.ExpiresAt.IsZero() {
			expires := status.Token.ExpiresAt
			resp.Token.ExpiresAt = &expires
		}
	}

	return resp
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID             int64           `json:"id"`
	AccountType    string          `json:"account_type"`
	AccountNumber  string          `json:"account_number"`
	DisplayNumber  string          `json:"display_number"`
	PixKey         string          `json:"pix_key,omitempty"`
	PixKeyType     string          `json:"pix_key_type,omitempty"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balance_display"`
	DailyLimit     decimal.Decimal `json:"daily_limit"`
	MonthlyLimit   decimal.Decimal `json:"monthly_limit"`
	Active         bool            `json:"active"`
	Blocked        bool            `json:"blocked"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:             a.ID,
		AccountType:    string(a.Type),
		AccountNumber:  a.AccountNumber,
		DisplayNumber:  a.DisplayNumber(),
		PixKey:         a.PixKey,
		PixKeyType:     string(a.PixKeyType),
		Balance:        a.Balance,
		BalanceDisplay: domain.FormatBRL(a.Balance),
		DailyLimit:     a.DailyLimit,
		MonthlyLimit:   a.MonthlyLimit,
		Active:         a.Active,
		Blocked:        a.Blocked,
		CreatedAt:      a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	TransactionID     string          `json:"transaction_id"`
	Type              string          `json:"transaction_type"`
	Status            string          `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	AmountDisplay     string          `json:"amount_display"`
	Currency          string          `json:"currency"`
	Description       string          `json:"description,omitempty"`
	SenderAccountID   int64           `json:"sender_account_id"`
	ReceiverAccountID *int64          `json:"receiver_account_id,omitempty"`
	PixKey            string          `json:"pix_key,omitempty"`
	ExternalRecipient string          `json:"external_recipient,omitempty"`
	ProcessingFee     decimal.Decimal `json:"processing_fee"`
	Sent              bool            `json:"sent"`
	Cancellable       bool            `json:"cancellable"`
	Final             bool            `json:"final"`
	CreatedAt         time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to response. Direction
// and cancellability are computed for the signed-in user.
func TransactionFromDomain(t *domain.Transaction, user *domain.User, accounts []*domain.Account) *TransactionResponse {
	resp := &TransactionResponse{
		TransactionID:     t.TransactionID,
		Type:              string(t.Type),
		Status:            string(t.Status),
		Amount:            t.Amount,
		AmountDisplay:     domain.FormatBRL(t.Amount),
		Currency:          t.Currency,
		Description:       t.Description,
		SenderAccountID:   t.SenderAccountID,
		ReceiverAccountID: t.ReceiverAccountID,
		PixKey:            t.PixKey,
		ExternalRecipient: t.ExternalRecipient,
		ProcessingFee:     t.ProcessingFee,
		Sent:              domain.SentBy(t, user, accounts),
		Final:             t.Status.IsTerminal(),
		CreatedAt:         t.CreatedAt,
	}

	if user != nil {
		resp.Cancellable = t.Cancellable(user.ID)
	}

	return resp
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction, user *domain.User, accounts []*domain.Account) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t, user, accounts)
	}
	return result
}

// TallyResponse is a count with its summed amount.
type TallyResponse struct {
	Count         int             `json:"count"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
}

func tallyFromDomain(t domain.Tally) TallyResponse {
	return TallyResponse{
		Count:         t.Count,
		Amount:        t.Amount,
		AmountDisplay: domain.FormatBRL(t.Amount),
	}
}

// SummaryResponse represents the dashboard aggregates.
type SummaryResponse struct {
	TotalBalance        decimal.Decimal `json:"total_balance"`
	TotalBalanceDisplay string          `json:"total_balance_display"`
	AccountCount        int             `json:"account_count"`
	TodayTransfers      TallyResponse   `json:"today_transfers"`
	PendingExposure     TallyResponse   `json:"pending_exposure"`
	ComputedAt          *time.Time      `json:"computed_at,omitempty"`
}

// SummaryFromDomain converts the dashboard summary to response.
func SummaryFromDomain(s domain.DashboardSummary) SummaryResponse {
	resp := SummaryResponse{
		TotalBalance:        s.TotalBalance,
		TotalBalanceDisplay: domain.FormatBRL(s.TotalBalance),
		AccountCount:        s.AccountCount,
		TodayTransfers:      tallyFromDomain(s.TodayTransfers),
		PendingExposure:     tallyFromDomain(s.PendingExposure),
	}

	if !s.ComputedAt.IsZero() {
		computed := s.ComputedAt
		resp.ComputedAt = &computed
	}

	return resp
}

// DashboardResponse represents everything the dashboard view renders.
type DashboardResponse struct {
	Authenticated      bool                    `json:"authenticated"`
	User               *UserResponse           `json:"user,omitempty"`
	Summary            SummaryResponse         `json:"summary"`
	Accounts           []*AccountResponse      `json:"accounts"`
	RecentTransactions []*TransactionResponse  `json:"recent_transactions"`
	Monthly            *MonthlySummaryResponse `json:"monthly,omitempty"`
}

// DashboardFromSnapshot converts a state snapshot to response.
func DashboardFromSnapshot(s usecase.Snapshot) *DashboardResponse {
	return &DashboardResponse{
		Authenticated:      s.Authenticated,
		User:               UserFromDomain(s.User),
		Summary:            SummaryFromDomain(s.Summary),
		Accounts:           AccountsFromDomain(s.Accounts),
		RecentTransactions: TransactionsFromDomain(s.Recent, s.User, s.Accounts),
		Monthly:            MonthlySummaryFromDomain(s.Monthly),
	}
}

// MonthlySummaryResponse represents the server's tally for one month.
type MonthlySummaryResponse struct {
	Period             string          `json:"period"`
	TotalTransactions  int             `json:"total_transactions"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalAmountDisplay string          `json:"total_amount_display"`
	TotalFees          decimal.Decimal `json:"total_fees"`
	Successful         int             `json:"successful_transactions"`
	Failed             int             `json:"failed_transactions"`
	InFlight           int             `json:"in_flight_transactions"`
}

// MonthlySummaryFromDomain converts a monthly summary to response. A nil
// summary yields nil.
func MonthlySummaryFromDomain(m *domain.MonthlySummary) *MonthlySummaryResponse {
	if m == nil {
		return nil
	}

	return &MonthlySummaryResponse{
		Period:             m.Period.String(),
		TotalTransactions:  m.TotalTransactions,
		TotalAmount:        m.TotalAmount,
		TotalAmountDisplay: domain.FormatBRL(m.TotalAmount),
		TotalFees:          m.TotalFees,
		Successful:         m.Successful,
		Failed:             m.Failed,
		InFlight:           m.InFlight(),
	}
}

// NotificationResponse represents an active notification.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NotificationsFromDomain converts notifications to responses.
func NotificationsFromDomain(notifications []domain.Notification) []*NotificationResponse {
	result := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		result[i] = &NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Severity:  string(n.Severity),
			CreatedAt: n.CreatedAt,
			ExpiresAt: n.ExpiresAt,
		}
	}
	return result
}
