package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxTransferAmount = "1000000000" // 1 billion
	MaxAmountDecimals = 2

	// maxAmountScale bounds the exponent of an amount before any arithmetic.
	maxAmountScale = 18
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex  = regexp.MustCompile(`^\+55\d{10,11}$`)
	digitsOnly  = regexp.MustCompile(`[^0-9]`)
	plainAmount = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return ValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("bankcode", func(fl validator.FieldLevel) bool {
		return isDigits(fl.Field().String(), 3)
	})
	_ = v.RegisterValidation("branchcode", func(fl validator.FieldLevel) bool {
		return isDigits(fl.Field().String(), 4)
	})

	return v
}

// validateStruct runs struct tags and converts the first failure to a ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return NewValidationError(toSnake(fe.Field()), fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "cpf":
		return "invalid CPF"
	case "bankcode":
		return "bank code must be 3 digits"
	case "branchcode":
		return "branch code must be 4 digits"
	default:
		return "invalid value"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateCredentials checks the login form.
func ValidateCredentials(c Credentials) error {
	return validateStruct(c)
}

// ValidateRegistration checks the sign-up form.
func ValidateRegistration(r Registration) error {
	return validateStruct(r)
}

// ParseAmount parses a user-typed amount. Both "1234.56" and BRL-style
// "1.234,56" are accepted. Exponent notation is not.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	if !plainAmount.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}

	sign, digits := "", s
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, digits = "-", rest
	}

	whole, frac, _ := strings.Cut(digits, ".")
	whole = strings.TrimLeft(whole, "0")
	frac = strings.TrimRight(frac, "0")

	if len(frac) > MaxAmountDecimals {
		return decimal.Zero, ErrTooManyDecimals
	}
	if len(whole) > len(MaxTransferAmount) {
		return decimal.Zero, fmt.Errorf("maximum amount is %s", MaxTransferAmount)
	}

	if whole == "" {
		whole = "0"
	}
	if frac != "" {
		whole += "." + frac
	}

	amount, err := decimal.NewFromString(sign + whole)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}

	return amount, nil
}

// ValidateAmount checks a transfer amount.
func ValidateAmount(amount decimal.Decimal) error {
	if exp := amount.Exponent(); exp < -maxAmountScale || exp > maxAmountScale {
		return NewValidationError("amount", "amount is out of range")
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return invalid("amount", ErrInvalidAmount)
	}

	if amount.Exponent() < -MaxAmountDecimals && !amount.Equal(amount.Round(MaxAmountDecimals)) {
		return invalid("amount", ErrTooManyDecimals)
	}

	maxAmount := decimal.RequireFromString(MaxTransferAmount)
	if amount.GreaterThan(maxAmount) {
		return NewValidationError("amount", "maximum amount is "+MaxTransferAmount)
	}

	return nil
}

// ValidCPF verifies the two CPF check digits.
func ValidCPF(cpf string) bool {
	cpf = digitsOnly.ReplaceAllString(cpf, "")
	if len(cpf) != 11 || allSame(cpf) {
		return false
	}

	return checkDigit(cpf[:9], []int{10, 9, 8, 7, 6, 5, 4, 3, 2}) == int(cpf[9]-'0') &&
		checkDigit(cpf[:10], []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}) == int(cpf[10]-'0')
}

func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}

	if rem := sum % 11; rem >= 2 {
		return 11 - rem
	}
	return 0
}

func allSame(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}

func isDigits(s string, n int) bool {
	return len(s) == n && digitsOnly.FindStringIndex(s) == nil
}

// ValidPixKey checks key against the format of its type.
func ValidPixKey(key string, keyType PixKeyType) bool {
	if key == "" {
		return false
	}

	switch keyType {
	case PixKeyCPF:
		return ValidCPF(key)
	case PixKeyEmail:
		return emailRegex.MatchString(key)
	case PixKeyPhone:
		return phoneRegex.MatchString(key)
	case PixKeyRandom:
		_, err := uuid.Parse(key)
		return err == nil && len(key) == 36
	default:
		return false
	}
}
