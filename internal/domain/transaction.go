package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is assigned by the server; the client never infers transitions.
type TransactionStatus string

const (
	// StatusPending is submitted but not settled; the sender may cancel it.
	StatusPending TransactionStatus = "pending"
	// StatusProcessing is settling and can no longer be cancelled.
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
	StatusCancelled  TransactionStatus = "cancelled"
)

var validStatuses = map[TransactionStatus]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusCompleted:  true,
	StatusFailed:     true,
	StatusCancelled:  true,
}

// IsValid checks if the status is one the server can assign.
func (s TransactionStatus) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal reports whether no further transition can happen.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// TransactionType tags the kind of money movement.
type TransactionType string

const (
	TypeInstantTransfer TransactionType = "instant_transfer"
)

// Transaction is a money movement as reported by the server.
type Transaction struct {
	// TransactionID is the server-assigned public id used by cancel.
	TransactionID     string
	SenderUserID      int64
	ReceiverUserID    int64
	SenderAccountID   int64
	ReceiverAccountID *int64
	Amount            decimal.Decimal
	Currency          string
	Description       string
	Type              TransactionType
	Status            TransactionStatus
	ExternalRecipient string
	PixKey            string
	ProcessingFee     decimal.Decimal
	CreatedAt         time.Time
}

// Cancellable reports whether the sender may still cancel.
// Only the presentation layer uses this; the server remains authoritative.
func (t *Transaction) Cancellable(userID int64) bool {
	return t.Status == StatusPending && t.SenderUserID == userID
}

// DateLayout is the calendar-date format used by history filters.
const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD filter value as midnight in loc. An empty
// value yields the zero time.
func ParseDate(field, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	if loc == nil {
		loc = time.Local
	}

	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, NewValidationError(field, "use the YYYY-MM-DD format")
	}

	return t, nil
}

// TransactionFilter narrows a history query. Zero values mean "no filter".
// AccountID scopes the query to one account, which the server only pages
// by limit.
type TransactionFilter struct {
	Limit     int
	Status    TransactionStatus
	StartDate time.Time
	EndDate   time.Time
	AccountID int64
}

// Validate rejects unknown statuses and inverted ranges.
func (f TransactionFilter) Validate() error {
	if f.AccountID < 0 {
		return NewValidationError("account_id", "account id must be positive")
	}

	if f.AccountID > 0 && (f.Status != "" || !f.StartDate.IsZero() || !f.EndDate.IsZero()) {
		return NewValidationError("account_id", "account history cannot be combined with status or date filters")
	}

	if f.Status != "" && !f.Status.IsValid() {
		return NewValidationError("status", "unknown transaction status "+string(f.Status))
	}

	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && f.EndDate.Before(f.StartDate) {
		return NewValidationError("end_date", "end date is before start date")
	}

	return nil
}
