package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pixdash/internal/domain"
)

// Timestamp accepts RFC 3339 values and the zone-less datetimes the API
// emits; zone-less values are read as UTC.
type Timestamp struct {
	time.Time
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}

	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("timestamp: unrecognized format %q", s)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	CPF      *string `json:"cpf,omitempty"`
	Password string  `json:"password"`
}

type userResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	CPF        *string   `json:"cpf"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  Timestamp `json:"created_at"`
}

func (u userResponse) toDomain() *domain.User {
	return &domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CPF:       deref(u.CPF),
		Active:    u.IsActive,
		Verified:  u.IsVerified,
		CreatedAt: u.CreatedAt.Time,
	}
}

type accountRequest struct {
	AccountType string  `json:"account_type"`
	BankCode    string  `json:"bank_code"`
	BranchCode  string  `json:"branch_code"`
	PixKey      *string `json:"pix_key,omitempty"`
	PixKeyType  *string `json:"pix_key_type,omitempty"`
}

type accountResponse struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"account_number"`
	AccountType   string          `json:"account_type"`
	BankCode      string          `json:"bank_code"`
	BranchCode    string          `json:"branch_code"`
	PixKey        *string         `json:"pix_key"`
	PixKeyType    *string         `json:"pix_key_type"`
	Balance       decimal.Decimal `json:"balance"`
	DailyLimit    decimal.Decimal `json:"daily_limit"`
	MonthlyLimit  decimal.Decimal `json:"monthly_limit"`
	IsActive      bool            `json:"is_active"`
	IsBlocked     bool            `json:"is_blocked"`
	OwnerID       int64           `json:"owner_id"`
	CreatedAt     Timestamp       `json:"created_at"`
}

func (a accountResponse) toDomain() *domain.Account {
	return &domain.Account{
		ID:            a.ID,
		Type:          domain.AccountType(a.AccountType),
		AccountNumber: a.AccountNumber,
		BankCode:      a.BankCode,
		BranchCode:    a.BranchCode,
		PixKey:        deref(a.PixKey),
		PixKeyType:    domain.PixKeyType(deref(a.PixKeyType)),
		Balance:       a.Balance,
		DailyLimit:    a.DailyLimit,
		MonthlyLimit:  a.MonthlyLimit,
		Active:        a.IsActive,
		Blocked:       a.IsBlocked,
		OwnerID:       a.OwnerID,
		CreatedAt:     a.CreatedAt.Time,
	}
}

// accountUpdateRequest omits every field left nil.
type accountUpdateRequest struct {
	PixKey       *string          `json:"pix_key,omitempty"`
	PixKeyType   *string          `json:"pix_key_type,omitempty"`
	DailyLimit   *decimal.Decimal `json:"daily_limit,omitempty"`
	MonthlyLimit *decimal.Decimal `json:"monthly_limit,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func newAccountUpdateRequest(u domain.AccountUpdate) accountUpdateRequest {
	body := accountUpdateRequest{
		PixKey:       u.PixKey,
		DailyLimit:   u.DailyLimit,
		MonthlyLimit: u.MonthlyLimit,
		IsActive:     u.Active,
	}
	if u.PixKeyType != nil {
		kt := string(*u.PixKeyType)
		body.PixKeyType = &kt
	}
	return body
}

type monthlySummaryResponse struct {
	TotalTransactions      int             `json:"total_transactions"`
	TotalAmount            decimal.Decimal `json:"total_amount"`
	TotalFees              decimal.Decimal `json:"total_fees"`
	SuccessfulTransactions int             `json:"successful_transactions"`
	FailedTransactions     int             `json:"failed_transactions"`
}

func (m monthlySummaryResponse) toDomain(period domain.Period) *domain.MonthlySummary {
	return &domain.MonthlySummary{
		Period:            period,
		TotalTransactions: m.TotalTransactions,
		TotalAmount:       m.TotalAmount,
		TotalFees:         m.TotalFees,
		Successful:        m.SuccessfulTransactions,
		Failed:            m.FailedTransactions,
	}
}

type transferRequest struct {
	Amount                    string  `json:"amount"`
	Currency                  string  `json:"currency"`
	Description               *string `json:"description,omitempty"`
	TransactionType           string  `json:"transaction_type"`
	ReceiverAccountID         *int64  `json:"receiver_account_id,omitempty"`
	PixKey                    *string `json:"pix_key,omitempty"`
	ExternalRecipientName     *string `json:"external_recipient_name,omitempty"`
	ExternalRecipientAccount  *string `json:"external_recipient_account,omitempty"`
	ExternalRecipientBank     *string `json:"external_recipient_bank,omitempty"`
	ExternalRecipientDocument *string `json:"external_recipient_document,omitempty"`
}

// newTransferRequest lays out exactly the fields of req's recipient kind.
func newTransferRequest(req *domain.TransferRequest) transferRequest {
	currency := req.Currency
	if currency == "" {
		currency = domain.Currency
	}
	txType := req.Type
	if txType == "" {
		txType = domain.TypeInstantTransfer
	}

	body := transferRequest{
		Amount:          req.Amount.StringFixed(2),
		Currency:        currency,
		Description:     optional(req.Description),
		TransactionType: string(txType),
	}

	switch r := req.Recipient.(type) {
	case domain.InternalRecipient:
		id := r.AccountID
		body.ReceiverAccountID = &id
	case domain.PixRecipient:
		body.PixKey = optional(r.Key)
	case domain.ExternalRecipient:
		body.ExternalRecipientName = optional(r.Name)
		body.ExternalRecipientAccount = optional(r.AccountNumber)
		body.ExternalRecipientBank = optional(r.BankCode)
		body.ExternalRecipientDocument = optional(r.Document)
	}

	return body
}

type transactionResponse struct {
	TransactionID         string          `json:"transaction_id"`
	SenderID              *int64          `json:"sender_id"`
	ReceiverID            *int64          `json:"receiver_id"`
	SenderAccountID       *int64          `json:"sender_account_id"`
	ReceiverAccountID     *int64          `json:"receiver_account_id"`
	Amount                decimal.Decimal `json:"amount"`
	Currency              string          `json:"currency"`
	Description           *string         `json:"description"`
	TransactionType       string          `json:"transaction_type"`
	Status                string          `json:"status"`
	ExternalRecipientName *string         `json:"external_recipient_name"`
	PixKey                *string         `json:"pix_key"`
	ProcessingFee         decimal.Decimal `json:"processing_fee"`
	CreatedAt             Timestamp       `json:"created_at"`
}

func (t transactionResponse) toDomain() *domain.Transaction {
	txn := &domain.Transaction{
		TransactionID:     t.TransactionID,
		Amount:            t.Amount,
		Currency:          t.Currency,
		Description:       deref(t.Description),
		Type:              domain.TransactionType(t.TransactionType),
		Status:            domain.TransactionStatus(t.Status),
		ExternalRecipient: deref(t.ExternalRecipientName),
		PixKey:            deref(t.PixKey),
		ProcessingFee:     t.ProcessingFee,
		CreatedAt:         t.CreatedAt.Time,
		ReceiverAccountID: t.ReceiverAccountID,
	}

	if t.SenderID != nil {
		txn.SenderUserID = *t.SenderID
	}
	if t.ReceiverID != nil {
		txn.ReceiverUserID = *t.ReceiverID
	}
	if t.SenderAccountID != nil {
		txn.SenderAccountID = *t.SenderAccountID
	}

	return txn
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
