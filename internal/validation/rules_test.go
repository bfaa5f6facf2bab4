package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/creditcards/internal/errors"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "digits only", value: "4111111111111111", shouldErr: false},
		{name: "empty is skipped", value: "", shouldErr: false},
		{name: "letters", value: "41111111a1111111", shouldErr: true},
		{name: "spaces", value: "4111 1111 1111 1111", shouldErr: true},
		{name: "non ascii digits", value: "٤١١١", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Digits.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLuhn(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "visa test number", value: "4111111111111111", shouldErr: false},
		{name: "mastercard test number", value: "5500000000000004", shouldErr: false},
		{name: "amex test number", value: "378282246310005", shouldErr: false},
		{name: "empty is skipped", value: "", shouldErr: false},
		{name: "bad check digit", value: "4111111111111112", shouldErr: true},
		{name: "not numeric", value: "41111111111111x1", shouldErr: true},
		{name: "single digit", value: "0", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Luhn.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "must be a valid card number")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpirationDate(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "valid", value: "12/28", shouldErr: false},
		{name: "january", value: "01/30", shouldErr: false},
		{name: "empty is skipped", value: "", shouldErr: false},
		{name: "month zero", value: "00/28", shouldErr: true},
		{name: "month thirteen", value: "13/28", shouldErr: true},
		{name: "four digit year", value: "12/2028", shouldErr: true},
		{name: "missing slash", value: "1228", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ExpirationDate.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNoWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "no whitespace", value: "JOHN DOE", shouldErr: false},
		{name: "leading whitespace", value: " JOHN DOE", shouldErr: true},
		{name: "trailing whitespace", value: "JOHN DOE ", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoWhitespace.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{name: "text", value: "john", shouldErr: false},
		{name: "empty is skipped", value: "", shouldErr: false},
		{name: "only spaces", value: "   ", shouldErr: true},
		{name: "only tabs", value: "\t\t", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(errors.New("card_number: must be a valid card number."))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "card_number")
}
