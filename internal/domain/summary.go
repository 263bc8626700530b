package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tally is a count with the sum of the amounts counted.
type Tally struct {
	Count  int
	Amount decimal.Decimal
}

func (t *Tally) add(amount decimal.Decimal) {
	t.Count++
	t.Amount = t.Amount.Add(amount)
}

// DashboardSummary holds the aggregates shown on the dashboard.
type DashboardSummary struct {
	TotalBalance    decimal.Decimal
	AccountCount    int
	TodayTransfers  Tally
	PendingExposure Tally
	ComputedAt      time.Time
}

// Summarize derives every dashboard aggregate. It has no side effects.
func Summarize(user *User, accounts []*Account, txns []*Transaction, now time.Time) DashboardSummary {
	return DashboardSummary{
		TotalBalance:    TotalBalance(accounts),
		AccountCount:    len(accounts),
		TodayTransfers:  TodayTransfers(user, accounts, txns, now),
		PendingExposure: PendingExposure(user, accounts, txns),
		ComputedAt:      now,
	}
}

// TotalBalance sums the balances of accounts.
func TotalBalance(accounts []*Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// TodayTransfers tallies transactions sent by user on now's calendar day,
// in now's location.
func TodayTransfers(user *User, accounts []*Account, txns []*Transaction, now time.Time) Tally {
	tally := Tally{Amount: decimal.Zero}
	if user == nil {
		return tally
	}

	y, m, d := now.Date()
	for _, t := range txns {
		ty, tm, td := t.CreatedAt.In(now.Location()).Date()
		if ty == y && tm == m && td == d && SentBy(t, user, accounts) {
			tally.add(t.Amount)
		}
	}

	return tally
}

// PendingExposure tallies pending transactions sent by user.
func PendingExposure(user *User, accounts []*Account, txns []*Transaction) Tally {
	tally := Tally{Amount: decimal.Zero}
	if user == nil {
		return tally
	}

	for _, t := range txns {
		if t.Status == StatusPending && SentBy(t, user, accounts) {
			tally.add(t.Amount)
		}
	}

	return tally
}

// SentBy reports whether user is the sender of t. The sender user id is
// authoritative; when the server omits it, ownership of the sender account
// decides.
func SentBy(t *Transaction, user *User, accounts []*Account) bool {
	if t.SenderUserID != 0 && user != nil {
		return t.SenderUserID == user.ID
	}

	for _, a := range accounts {
		if a.ID == t.SenderAccountID {
			return true
		}
	}
	return false
}

// Period is one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the month containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// IsZero reports whether no month was chosen.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Validate rejects months outside 1..12 and years outside 1..9999.
func (p Period) Validate() error {
	if p.Month < time.January || p.Month > time.December {
		return NewValidationError("month", "month must be between 1 and 12")
	}
	if p.Year < 1 || p.Year > 9999 {
		return NewValidationError("year", "year must be between 1 and 9999")
	}
	return nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// MonthlySummary is the server's tally of the transactions the user sent
// during one month.
type MonthlySummary struct {
	Period            Period
	TotalTransactions int
	TotalAmount       decimal.Decimal
	TotalFees         decimal.Decimal
	Successful        int
	Failed            int
}

// InFlight counts transactions that neither completed nor failed.
func (s *MonthlySummary) InFlight() int {
	if n := s.TotalTransactions - s.Successful - s.Failed; n > 0 {
		return n
	}
	return 0
}
