// Package domain defines the credit card aggregate, its read model and its events.
//
// CardNumber, CVV and ExpirationDate hold plaintext in memory only. They are
// encrypted by the repository layer before storage, while CardNumberHash is a
// deterministic HMAC of the card number used for lookups and uniqueness.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxAmount caps credit limits and transaction amounts, in cents. Keeping every
// money value at or below it leaves balance arithmetic far from int64 overflow.
const MaxAmount int64 = 1_000_000_000_000

// CardNumberHasher computes the deterministic lookup hash of a card number.
type CardNumberHasher interface {
	ComputeHash(value string) (string, error)
}

// CreditCard is the credit card aggregate. Money values are integer cents.
type CreditCard struct {
	ID              uuid.UUID
	CardNumber      string
	CardNumberHash  string
	CardHolderName  string
	ExpirationDate  string
	CVV             string
	CreditLimit     int64
	AvailableCredit int64
	CardType        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// NewCreditCardInput holds the data needed to issue a credit card.
type NewCreditCardInput struct {
	CardNumber     string
	CardHolderName string
	ExpirationDate string
	CVV            string
	CreditLimit    int64
	CardType       string
}

// UpdateCreditCardInput carries the mutable fields of a card. Nil fields are left untouched.
type UpdateCreditCardInput struct {
	CardHolderName *string
	CreditLimit    *int64
}

// NewCreditCard validates input and returns an active card whose available credit
// equals its limit. The card number hash is computed with hasher.
func NewCreditCard(input NewCreditCardInput, hasher CardNumberHasher) (*CreditCard, error) {
	cardNumber := strings.TrimSpace(input.CardNumber)
	if err := validateCardNumber(cardNumber); err != nil {
		return nil, err
	}
	if err := validateCardHolderName(input.CardHolderName); err != nil {
		return nil, err
	}
	cvv := strings.TrimSpace(input.CVV)
	if err := validateCVV(cvv); err != nil {
		return nil, err
	}
	if err := validateCreditLimit(input.CreditLimit); err != nil {
		return nil, err
	}

	hash, err := hasher.ComputeHash(cardNumber)
	if err != nil {
		return nil, err
	}

	return &CreditCard{
		ID:              uuid.Must(uuid.NewV7()),
		CardNumber:      cardNumber,
		CardNumberHash:  hash,
		CardHolderName:  normalizeHolderName(input.CardHolderName),
		ExpirationDate:  strings.TrimSpace(input.ExpirationDate),
		CVV:             cvv,
		CreditLimit:     input.CreditLimit,
		AvailableCredit: input.CreditLimit,
		CardType:        strings.TrimSpace(input.CardType),
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// UpdateCardHolder replaces the holder name, stored upper-cased.
func (c *CreditCard) UpdateCardHolder(name string) error {
	if err := validateCardHolderName(name); err != nil {
		return err
	}
	c.CardHolderName = normalizeHolderName(name)
	c.touch()
	return nil
}

// UpdateCreditLimit sets a new limit and keeps outstanding debt, so available credit
// moves by the same delta as the limit.
func (c *CreditCard) UpdateCreditLimit(limit int64) error {
	if err := validateCreditLimit(limit); err != nil {
		return err
	}
	used := c.CreditLimit - c.AvailableCredit
	c.AvailableCredit = limit - used
	c.CreditLimit = limit
	c.touch()
	return nil
}

// Charge consumes available credit.
func (c *CreditCard) Charge(amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !c.IsActive {
		return ErrCardInactive
	}
	if amount > c.AvailableCredit {
		return ErrInsufficientCredit
	}
	c.AvailableCredit -= amount
	c.touch()
	return nil
}

// Payment restores available credit up to the limit.
func (c *CreditCard) Payment(amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount > c.CreditLimit-c.AvailableCredit {
		return ErrPaymentExceedsLimit
	}
	c.AvailableCredit += amount
	c.touch()
	return nil
}

// Activate marks the card active.
func (c *CreditCard) Activate() {
	c.IsActive = true
	c.touch()
}

// Deactivate marks the card inactive. Inactive cards reject charges but accept payments.
func (c *CreditCard) Deactivate() {
	c.IsActive = false
	c.touch()
}

// MaskedCardNumber returns the card number with every digit but the last four hidden.
func (c *CreditCard) MaskedCardNumber() string {
	return MaskCardNumber(c.CardNumber)
}

// MaskCardNumber hides all but the last four characters of number.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

func (c *CreditCard) touch() {
	now := time.Now().UTC()
	c.UpdatedAt = &now
}

func normalizeHolderName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func validateCardNumber(number string) error {
	if len(number) < 13 || len(number) > 19 || !isDigits(number) {
		return ErrInvalidCardNumber
	}
	return nil
}

func validateCardHolderName(name string) error {
	if len(strings.TrimSpace(name)) < 3 {
		return ErrInvalidCardHolderName
	}
	return nil
}

func validateCreditLimit(limit int64) error {
	if limit <= 0 || limit > MaxAmount {
		return ErrInvalidCreditLimit
	}
	return nil
}

func validateAmount(amount int64) error {
	if amount <= 0 || amount > MaxAmount {
		return ErrInvalidAmount
	}
	return nil
}

func validateCVV(cvv string) error {
	if len(cvv) < 3 || len(cvv) > 4 || !isDigits(cvv) {
		return ErrInvalidCVV
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
