package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/usecase"
)

// Text accepts a JSON string or number and keeps its literal text.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or a number: %w", err)
	}
	*t = Text(n)

	return nil
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToDomain converts to domain credentials.
func (r *LoginRequest) ToDomain() domain.Credentials {
	return domain.Credentials{Email: r.Email, Password: r.Password}
}

// RegisterRequest represents the sign-up form.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	CPF      string `json:"cpf,omitempty"`
	Password string `json:"password"`
}

// ToDomain converts to a domain registration.
func (r *RegisterRequest) ToDomain() domain.Registration {
	return domain.Registration{
		Email:    r.Email,
		Username: r.Username,
		FullName: r.FullName,
		CPF:      r.CPF,
		Password: r.Password,
	}
}

// CreateAccountRequest represents a request to open an account.
type CreateAccountRequest struct {
	AccountType string `json:"account_type"`
	BankCode    string `json:"bank_code"`
	BranchCode  string `json:"branch_code"`
	PixKey      string `json:"pix_key,omitempty"`
	PixKeyType  string `json:"pix_key_type,omitempty"`
}

// ToDomain converts to the domain account form.
func (r *CreateAccountRequest) ToDomain() domain.NewAccount {
	return domain.NewAccount{
		Type:       domain.AccountType(r.AccountType),
		BankCode:   r.BankCode,
		BranchCode: r.BranchCode,
		PixKey:     r.PixKey,
		PixKeyType: domain.PixKeyType(r.PixKeyType),
	}
}

// UpdateAccountRequest represents a change to an account's settings.
// Omitted fields are left unchanged.
type UpdateAccountRequest struct {
	PixKey       *string `json:"pix_key,omitempty"`
	PixKeyType   *string `json:"pix_key_type,omitempty"`
	DailyLimit   Text    `json:"daily_limit,omitempty"`
	MonthlyLimit Text    `json:"monthly_limit,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// ToDomain converts to a domain account update. Limits are parsed like
// transfer amounts.
func (r *UpdateAccountRequest) ToDomain() (domain.AccountUpdate, error) {
	update := domain.AccountUpdate{PixKey: r.PixKey, Active: r.IsActive}

	if r.PixKeyType != nil {
		kt := domain.PixKeyType(*r.PixKeyType)
		update.PixKeyType = &kt
	}

	var err error
	if update.DailyLimit, err = domain.ParseLimit("daily_limit", string(r.DailyLimit)); err != nil {
		return domain.AccountUpdate{}, err
	}
	if update.MonthlyLimit, err = domain.ParseLimit("monthly_limit", string(r.MonthlyLimit)); err != nil {
		return domain.AccountUpdate{}, err
	}

	return update, nil
}

// TransferRequest represents the transfer form. Only the fields of
// RecipientType may be set; amounts are strings so "1.234,56" is accepted.
type TransferRequest struct {
	SenderAccountID   int64  `json:"sender_account_id"`
	RecipientType     string `json:"recipient_type"`
	Amount            Text   `json:"amount"`
	Description       string `json:"description,omitempty"`
	ReceiverAccountID Text   `json:"receiver_account_id,omitempty"`
	PixKey            string `json:"pix_key,omitempty"`
	ExternalName      string `json:"external_name,omitempty"`
	ExternalAccount   string `json:"external_account,omitempty"`
	ExternalBank      string `json:"external_bank,omitempty"`
	ExternalDocument  string `json:"external_document,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.SubmitTransferInput {
	return usecase.SubmitTransferInput{
		SenderAccountID: r.SenderAccountID,
		Form: domain.TransferForm{
			Kind:              domain.RecipientKind(r.RecipientType),
			Amount:            string(r.Amount),
			Description:       r.Description,
			ReceiverAccountID: string(r.ReceiverAccountID),
			PixKey:            r.PixKey,
			ExternalName:      r.ExternalName,
			ExternalAccount:   r.ExternalAccount,
			ExternalBank:      r.ExternalBank,
			ExternalDocument:  r.ExternalDocument,
		},
	}
}
