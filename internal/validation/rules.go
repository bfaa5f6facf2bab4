// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/creditcards/internal/errors"
)

var (
	// expirationDateRegex matches MM/YY with a month between 01 and 12
	expirationDateRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Digits validates that a string contains only ASCII digits
var Digits = validation.NewStringRuleWithError(
	isDigits,
	validation.NewError("validation_digits", "must contain only digits"),
)

// Luhn validates that a numeric string passes the Luhn checksum used by payment cards
var Luhn = validation.NewStringRuleWithError(
	func(s string) bool {
		return len(s) >= 2 && isDigits(s) && validLuhn(s)
	},
	validation.NewError("validation_luhn", "must be a valid card number"),
)

// ExpirationDate validates the MM/YY card expiration format
var ExpirationDate = validation.NewStringRuleWithError(
	func(s string) bool {
		return expirationDateRegex.MatchString(s)
	},
	validation.NewError("validation_expiration_date", "must use the MM/YY format"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validLuhn doubles every second digit from the right, check digit included in s.
func validLuhn(s string) bool {
	sum := 0
	for i := 0; i < len(s); i++ {
		digit := int(s[len(s)-1-i] - '0')
		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return sum%10 == 0
}
