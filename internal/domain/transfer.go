package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the single currency the API settles in.
const Currency = "BRL"

// RecipientKind selects the shape of a transfer request.
type RecipientKind string

const (
	RecipientInternal RecipientKind = "internal"
	RecipientPix      RecipientKind = "pix"
	RecipientExternal RecipientKind = "external"
)

// Recipient is one of InternalRecipient, PixRecipient or ExternalRecipient.
type Recipient interface {
	Kind() RecipientKind
	validate() error
}

// InternalRecipient is another account held at this bank.
type InternalRecipient struct {
	AccountID int64
}

func (InternalRecipient) Kind() RecipientKind { return RecipientInternal }

func (r InternalRecipient) validate() error {
	if r.AccountID <= 0 {
		return NewValidationError("receiver_account_id", "enter the receiving account id")
	}
	return nil
}

// PixRecipient is addressed by a PIX key.
type PixRecipient struct {
	Key string
}

func (PixRecipient) Kind() RecipientKind { return RecipientPix }

func (r PixRecipient) validate() error {
	if strings.TrimSpace(r.Key) == "" {
		return NewValidationError("pix_key", "enter the recipient PIX key")
	}
	return nil
}

// ExternalRecipient is an account at another bank.
type ExternalRecipient struct {
	Name          string
	AccountNumber string
	BankCode      string
	Document      string
}

func (ExternalRecipient) Kind() RecipientKind { return RecipientExternal }

func (r ExternalRecipient) validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return NewValidationError("external_recipient_name", "enter the recipient name")
	case strings.TrimSpace(r.AccountNumber) == "":
		return NewValidationError("external_recipient_account", "enter the recipient account number")
	case strings.TrimSpace(r.BankCode) == "":
		return NewValidationError("external_recipient_bank", "enter the recipient bank code")
	case strings.TrimSpace(r.Document) == "":
		return NewValidationError("external_recipient_document", "enter the recipient CPF/CNPJ")
	}
	return nil
}

// TransferRequest is a validated instant transfer ready for submission.
type TransferRequest struct {
	Amount      decimal.Decimal
	Currency    string
	Description string
	Type        TransactionType
	Recipient   Recipient
}

// Validate checks the common fields and the recipient variant.
func (r *TransferRequest) Validate() error {
	if err := ValidateAmount(r.Amount); err != nil {
		return err
	}

	switch rc := r.Recipient.(type) {
	case InternalRecipient, PixRecipient, ExternalRecipient:
		return rc.validate()
	case nil:
		return NewValidationError("recipient_type", "select a recipient type")
	default:
		return invalid("recipient_type", ErrUnknownRecipient)
	}
}

// TransferForm carries raw form values for every recipient kind.
type TransferForm struct {
	Kind              RecipientKind
	Amount            string
	Description       string
	ReceiverAccountID string
	PixKey            string
	ExternalName      string
	ExternalAccount   string
	ExternalBank      string
	ExternalDocument  string
}

func (f TransferForm) populated() map[RecipientKind]bool {
	kinds := make(map[RecipientKind]bool)

	if strings.TrimSpace(f.ReceiverAccountID) != "" {
		kinds[RecipientInternal] = true
	}

	if strings.TrimSpace(f.PixKey) != "" {
		kinds[RecipientPix] = true
	}

	for _, v := range []string{f.ExternalName, f.ExternalAccount, f.ExternalBank, f.ExternalDocument} {
		if strings.TrimSpace(v) != "" {
			kinds[RecipientExternal] = true
			break
		}
	}

	return kinds
}

// NewTransferRequest builds the variant selected by form.Kind.
// Fields belonging to any other kind make the form invalid.
func NewTransferRequest(form TransferForm) (*TransferRequest, error) {
	if strings.TrimSpace(form.Amount) == "" {
		return nil, NewValidationError("amount", "enter an amount")
	}

	amount, err := ParseAmount(form.Amount)
	if err != nil {
		return nil, invalid("amount", err)
	}

	for kind := range form.populated() {
		if kind != form.Kind {
			return nil, invalid("recipient_type", ErrConflictingRecipient)
		}
	}

	var recipient Recipient

	switch form.Kind {
	case RecipientInternal:
		raw := strings.TrimSpace(form.ReceiverAccountID)
		if raw == "" {
			return nil, NewValidationError("receiver_account_id", "enter the receiving account id")
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, NewValidationError("receiver_account_id", "account id must be a whole number")
		}

		recipient = InternalRecipient{AccountID: id}
	case RecipientPix:
		recipient = PixRecipient{Key: strings.TrimSpace(form.PixKey)}
	case RecipientExternal:
		recipient = ExternalRecipient{
			Name:          strings.TrimSpace(form.ExternalName),
			AccountNumber: strings.TrimSpace(form.ExternalAccount),
			BankCode:      strings.TrimSpace(form.ExternalBank),
			Document:      strings.TrimSpace(form.ExternalDocument),
		}
	case "":
		return nil, NewValidationError("recipient_type", "select a recipient type")
	default:
		return nil, invalid("recipient_type", ErrUnknownRecipient)
	}

	req := &TransferRequest{
		Amount:      amount,
		Currency:    Currency,
		Description: strings.TrimSpace(form.Description),
		Type:        TypeInstantTransfer,
		Recipient:   recipient,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}
