package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders amount as Brazilian Real, e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return "R$ " + sign + b.String() + "," + frac
}

// FormatAccountNumber joins bank, branch and account number.
func FormatAccountNumber(bankCode, branchCode, accountNumber string) string {
	return bankCode + "-" + branchCode + "-" + accountNumber
}
