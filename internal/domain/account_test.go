package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "R$ 0,00"},
		{"5.5", "R$ 5,50"},
		{"999.99", "R$ 999,99"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.8", "R$ 1.234.567,80"},
		{"-42.1", "R$ -42,10"},
	}

	for _, tt := range tests {
		if got := FormatBRL(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("FormatBRL(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAccount_DisplayNumber(t *testing.T) {
	a := &Account{BankCode: "260", BranchCode: "0001", AccountNumber: "12345678"}
	if got := a.DisplayNumber(); got != "260-0001-12345678" {
		t.Fatalf("unexpected display number %q", got)
	}
}

func TestTransaction_Cancellable(t *testing.T) {
	tx := &Transaction{SenderUserID: 1, Status: StatusPending, CreatedAt: time.Now()}

	if !tx.Cancellable(1) {
		t.Fatal("expected pending transaction to be cancellable by sender")
	}
	if tx.Cancellable(2) {
		t.Fatal("expected other users not to be offered cancel")
	}

	tx.Status = StatusProcessing
	if tx.Cancellable(1) {
		t.Fatal("expected processing transaction not to be cancellable")
	}
	if tx.Status.IsTerminal() {
		t.Fatal("processing is not terminal")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", NewValidationError("amount", "enter an amount"), "enter an amount"},
		{"api with detail", &APIError{StatusCode: 400, Detail: "Insufficient balance"}, "Insufficient balance"},
		{"api without detail", &APIError{StatusCode: 500}, GenericFailureMessage},
		{"network", &NetworkError{Op: "GET /accounts/", Err: errors.New("connection refused")}, NetworkFailureMessage},
		{"unknown", errors.New("boom"), GenericFailureMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Fatalf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
