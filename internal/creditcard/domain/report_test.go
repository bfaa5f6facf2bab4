package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreditCardReport(t *testing.T) {
	card := newTestCard(t)
	require.NoError(t, card.Charge(125000))

	report := NewCreditCardReport(card)

	assert.Equal(t, card.ID, report.ID)
	assert.Equal(t, "************1111", report.MaskedCardNumber)
	assert.Equal(t, "JOHN DOE", report.CardHolderName)
	assert.Equal(t, int64(500000), report.CreditLimit)
	assert.Equal(t, int64(375000), report.AvailableCredit)
	assert.Equal(t, int64(125000), report.UsedCredit)
	assert.InDelta(t, 25.0, report.UsagePercentage, 0.0001)
	assert.True(t, report.IsActive)
}

func TestUsagePercentage(t *testing.T) {
	tests := []struct {
		name      string
		limit     int64
		available int64
		expected  float64
	}{
		{"Unused", 1000, 1000, 0},
		{"Half", 1000, 500, 50},
		{"Full", 1000, 0, 100},
		{"Over limit", 1000, -200, 120},
		{"Zero limit", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, UsagePercentage(tt.limit, tt.available), 0.0001)
		})
	}
}

func TestPage(t *testing.T) {
	page := Page[int]{Items: []int{1, 2}, Total: 5, Offset: 0, Limit: 2}
	assert.False(t, page.HasPrevious())
	assert.True(t, page.HasNext())

	page = Page[int]{Items: []int{5}, Total: 5, Offset: 4, Limit: 2}
	assert.True(t, page.HasPrevious())
	assert.False(t, page.HasNext())
}

func TestNewCreditCardCreatedEvent(t *testing.T) {
	card := newTestCard(t)

	event := NewCreditCardCreatedEvent(card)

	assert.Equal(t, card.ID, event.CardID)
	assert.Equal(t, "************1111", event.MaskedCardNumber)
	assert.Equal(t, card.CardHolderName, event.CardHolderName)
	assert.Equal(t, card.CreatedAt, event.OccurredOn)
}
