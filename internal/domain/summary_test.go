package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	user := &User{ID: 1}

	accounts := []*Account{
		{ID: 10, Balance: decimal.NewFromInt(100)},
		{ID: 11, Balance: decimal.RequireFromString("250.50")},
	}

	receiver := int64(10)
	txns := []*Transaction{
		// sent today, completed
		{TransactionID: "a", SenderUserID: 1, SenderAccountID: 10, Amount: decimal.NewFromInt(30), Status: StatusCompleted, CreatedAt: now.Add(-time.Hour)},
		// sent today, pending
		{TransactionID: "b", SenderUserID: 1, SenderAccountID: 11, Amount: decimal.NewFromInt(20), Status: StatusPending, CreatedAt: now.Add(-2 * time.Hour)},
		// received today from someone else
		{TransactionID: "c", SenderUserID: 2, SenderAccountID: 99, ReceiverAccountID: &receiver, ReceiverUserID: 1, Amount: decimal.NewFromInt(500), Status: StatusPending, CreatedAt: now},
		// sent yesterday (local day), pending
		{TransactionID: "d", SenderUserID: 1, SenderAccountID: 10, Amount: decimal.NewFromInt(5), Status: StatusPending, CreatedAt: time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)},
	}

	s := Summarize(user, accounts, txns, now)

	if !s.TotalBalance.Equal(decimal.RequireFromString("350.50")) {
		t.Errorf("expected total 350.50, got %s", s.TotalBalance)
	}
	if s.AccountCount != 2 {
		t.Errorf("expected 2 accounts, got %d", s.AccountCount)
	}
	if s.TodayTransfers.Count != 2 || !s.TodayTransfers.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected 2 transfers totalling 50 today, got %d / %s", s.TodayTransfers.Count, s.TodayTransfers.Amount)
	}
	if s.PendingExposure.Count != 2 || !s.PendingExposure.Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected pending 2 / 25, got %d / %s", s.PendingExposure.Count, s.PendingExposure.Amount)
	}
	if !s.ComputedAt.Equal(now) {
		t.Errorf("expected computed at %v, got %v", now, s.ComputedAt)
	}
}

func TestTodayTransfers_ExcludesReceivedToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	user := &User{ID: 1}
	receiver := int64(10)

	txns := []*Transaction{
		{SenderUserID: 7, ReceiverUserID: 1, SenderAccountID: 70, ReceiverAccountID: &receiver, Amount: decimal.NewFromInt(40), CreatedAt: now},
	}

	got := TodayTransfers(user, []*Account{{ID: 10}}, txns, now)
	if got.Count != 0 || !got.Amount.IsZero() {
		t.Fatalf("expected received transfer to be excluded, got %d / %s", got.Count, got.Amount)
	}
}

func TestSentBy_FallsBackToOwnedAccounts(t *testing.T) {
	user := &User{ID: 1}
	accounts := []*Account{{ID: 10}}

	if !SentBy(&Transaction{SenderAccountID: 10}, user, accounts) {
		t.Fatal("expected owned sender account to count as sent")
	}
	if SentBy(&Transaction{SenderAccountID: 20}, user, accounts) {
		t.Fatal("expected foreign sender account not to count")
	}
}

func TestSummarize_NoUser(t *testing.T) {
	s := Summarize(nil, nil, []*Transaction{{SenderUserID: 1, Status: StatusPending, Amount: decimal.NewFromInt(1)}}, time.Now())

	if s.AccountCount != 0 || !s.TotalBalance.IsZero() {
		t.Fatalf("expected empty totals, got %+v", s)
	}
	if s.PendingExposure.Count != 0 || s.TodayTransfers.Count != 0 {
		t.Fatalf("expected no tallies without a user, got %+v", s)
	}
}

func TestPeriod(t *testing.T) {
	p := PeriodOf(time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC))
	if p != (Period{Year: 2026, Month: time.March}) {
		t.Fatalf("unexpected period %+v", p)
	}
	if p.String() != "2026-03" {
		t.Errorf("expected 2026-03, got %s", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("expected valid period, got %v", err)
	}
	if !(Period{}).IsZero() || p.IsZero() {
		t.Error("IsZero mismatch")
	}

	tests := []struct {
		period Period
		field  string
	}{
		{Period{Year: 2026, Month: 13}, "month"},
		{Period{Year: 2026, Month: 0}, "month"},
		{Period{Year: 0, Month: time.May}, "year"},
		{Period{Year: 10000, Month: time.May}, "year"},
	}

	for _, tt := range tests {
		err := tt.period.Validate()
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != tt.field {
			t.Errorf("Validate(%+v) = %v, want error on %s", tt.period, err, tt.field)
		}
	}
}

func TestMonthlySummary_InFlight(t *testing.T) {
	s := MonthlySummary{TotalTransactions: 5, Successful: 3, Failed: 1}
	if got := s.InFlight(); got != 1 {
		t.Fatalf("expected 1 in flight, got %d", got)
	}

	s = MonthlySummary{TotalTransactions: 1, Successful: 2}
	if got := s.InFlight(); got != 0 {
		t.Fatalf("expected 0 in flight, got %d", got)
	}
}
