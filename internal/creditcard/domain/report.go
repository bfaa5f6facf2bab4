package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHighUsagePercentage is the threshold used when none is requested.
const DefaultHighUsagePercentage = 80.0

// CreditCardReport is the read model served by the reporting endpoints.
// It never carries the CVV, and the card number is masked.
type CreditCardReport struct {
	ID               uuid.UUID
	MaskedCardNumber string
	CardHolderName   string
	CardType         string
	CreditLimit      int64
	AvailableCredit  int64
	UsedCredit       int64
	UsagePercentage  float64
	IsActive         bool
	CreatedAt        time.Time
}

// NewCreditCardReport projects a card into its report row.
func NewCreditCardReport(card *CreditCard) *CreditCardReport {
	used := card.CreditLimit - card.AvailableCredit
	return &CreditCardReport{
		ID:               card.ID,
		MaskedCardNumber: card.MaskedCardNumber(),
		CardHolderName:   card.CardHolderName,
		CardType:         card.CardType,
		CreditLimit:      card.CreditLimit,
		AvailableCredit:  card.AvailableCredit,
		UsedCredit:       used,
		UsagePercentage:  UsagePercentage(card.CreditLimit, card.AvailableCredit),
		IsActive:         card.IsActive,
		CreatedAt:        card.CreatedAt,
	}
}

// UsagePercentage returns used credit as a percentage of the limit, or 0 for a zero limit.
func UsagePercentage(limit, available int64) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(limit-available) * 100 / float64(limit)
}

// Page is one window of an offset/limit listing.
type Page[T any] struct {
	Items  []T
	Total  int64
	Offset int
	Limit  int
}

// HasPrevious reports whether items exist before this window.
func (p Page[T]) HasPrevious() bool {
	return p.Offset > 0
}

// HasNext reports whether items exist after this window.
func (p Page[T]) HasNext() bool {
	return int64(p.Offset+len(p.Items)) < p.Total
}
