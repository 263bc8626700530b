package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the product kind of an account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// PixKeyType is the kind of a PIX key.
type PixKeyType string

const (
	PixKeyCPF    PixKeyType = "cpf"
	PixKeyEmail  PixKeyType = "email"
	PixKeyPhone  PixKeyType = "phone"
	PixKeyRandom PixKeyType = "random"
)

// IsValid reports whether t is a key type the server accepts.
func (t PixKeyType) IsValid() bool {
	switch t {
	case PixKeyCPF, PixKeyEmail, PixKeyPhone, PixKeyRandom:
		return true
	}
	return false
}

// Account represents a bank account owned by the signed-in user.
type Account struct {
	ID            int64
	Type          AccountType
	AccountNumber string
	BankCode      string
	BranchCode    string
	PixKey        string
	PixKeyType    PixKeyType
	Balance       decimal.Decimal
	DailyLimit    decimal.Decimal
	MonthlyLimit  decimal.Decimal
	Active        bool
	Blocked       bool
	OwnerID       int64
	CreatedAt     time.Time
}

// DisplayNumber formats the account as bank-branch-number.
func (a *Account) DisplayNumber() string {
	return FormatAccountNumber(a.BankCode, a.BranchCode, a.AccountNumber)
}

// NewAccount is the account creation form.
type NewAccount struct {
	Type       AccountType `validate:"required,oneof=checking savings"`
	BankCode   string      `validate:"required,bankcode"`
	BranchCode string      `validate:"required,branchcode"`
	PixKey     string
	PixKeyType PixKeyType `validate:"omitempty,oneof=cpf email phone random"`
}

// Validate checks the form, including the PIX key against its type.
func (n *NewAccount) Validate() error {
	if err := validateStruct(n); err != nil {
		return err
	}

	switch {
	case n.PixKey == "" && n.PixKeyType == "":
		return nil
	case n.PixKey == "":
		return NewValidationError("pix_key", "enter the PIX key for the selected key type")
	case n.PixKeyType == "":
		return NewValidationError("pix_key_type", "select the PIX key type")
	}

	if !ValidPixKey(n.PixKey, n.PixKeyType) {
		return NewValidationError("pix_key", "PIX key does not match its type")
	}

	return nil
}

// AccountUpdate changes settings of an existing account. Nil fields are
// left as they are on the server.
type AccountUpdate struct {
	PixKey       *string
	PixKeyType   *PixKeyType
	DailyLimit   *decimal.Decimal
	MonthlyLimit *decimal.Decimal
	Active       *bool
}

// Empty reports whether the update changes nothing.
func (u *AccountUpdate) Empty() bool {
	return u.PixKey == nil && u.PixKeyType == nil && u.DailyLimit == nil && u.MonthlyLimit == nil && u.Active == nil
}

// Validate checks the PIX key against its type when both are given and
// rejects negative limits.
func (u *AccountUpdate) Validate() error {
	if u.Empty() {
		return NewValidationError("account", "nothing to update")
	}

	if u.PixKeyType != nil && !u.PixKeyType.IsValid() {
		return NewValidationError("pix_key_type", "unknown PIX key type "+string(*u.PixKeyType))
	}

	if u.PixKey != nil {
		if strings.TrimSpace(*u.PixKey) == "" {
			return NewValidationError("pix_key", "enter the PIX key")
		}
		if u.PixKeyType != nil && !ValidPixKey(*u.PixKey, *u.PixKeyType) {
			return NewValidationError("pix_key", "PIX key does not match its type")
		}
	}

	if u.DailyLimit != nil && u.DailyLimit.IsNegative() {
		return NewValidationError("daily_limit", "limit cannot be negative")
	}
	if u.MonthlyLimit != nil && u.MonthlyLimit.IsNegative() {
		return NewValidationError("monthly_limit", "limit cannot be negative")
	}

	return nil
}

// ParseLimit reads an optional limit typed by the user. A blank value
// means "unchanged" and yields nil.
func ParseLimit(field, value string) (*decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	limit, err := ParseAmount(value)
	if err != nil {
		return nil, invalid(field, err)
	}

	return &limit, nil
}
