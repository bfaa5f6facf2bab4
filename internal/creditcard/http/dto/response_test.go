package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
)

func testCard() *creditcardDomain.CreditCard {
	return &creditcardDomain.CreditCard{
		ID:              uuid.Must(uuid.NewV7()),
		CardNumber:      "4111111111111111",
		CardNumberHash:  "hash",
		CardHolderName:  "JOHN DOE",
		ExpirationDate:  "12/28",
		CVV:             "123",
		CreditLimit:     500000,
		AvailableCredit: 350000,
		CardType:        "Visa",
		IsActive:        true,
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestMapCreditCardToResponse(t *testing.T) {
	card := testCard()

	response := MapCreditCardToResponse(card)

	assert.Equal(t, card.ID.String(), response.ID)
	assert.Equal(t, "************1111", response.CardNumber)
	assert.Equal(t, "JOHN DOE", response.CardHolderName)
	assert.Equal(t, int64(500000), response.CreditLimit)
	assert.Equal(t, int64(350000), response.AvailableCredit)
	assert.Nil(t, response.UpdatedAt)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "4111111111111111")
	assert.NotContains(t, string(body), "cvv")
	assert.NotContains(t, string(body), "hash")
	assert.NotContains(t, string(body), "updated_at")
}

func TestMapCreditCardPageToListResponse(t *testing.T) {
	page := &creditcardDomain.Page[*creditcardDomain.CreditCard]{
		Items:  []*creditcardDomain.CreditCard{testCard(), testCard()},
		Total:  5,
		Offset: 2,
		Limit:  2,
	}

	response := MapCreditCardPageToListResponse(page)

	assert.Len(t, response.Data, 2)
	assert.Equal(t, int64(5), response.Total)
	assert.True(t, response.HasPrevious)
	assert.True(t, response.HasNext)
}

func TestMapCreditCardPageToListResponse_Empty(t *testing.T) {
	response := MapCreditCardPageToListResponse(&creditcardDomain.Page[*creditcardDomain.CreditCard]{Limit: 50})

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"data":[]`)
	assert.False(t, response.HasNext)
}

func TestMapReportsToListResponse(t *testing.T) {
	report := creditcardDomain.NewCreditCardReport(testCard())

	response := MapReportsToListResponse([]*creditcardDomain.CreditCardReport{report})

	require.Len(t, response.Data, 1)
	assert.Equal(t, "************1111", response.Data[0].CardNumber)
	assert.Equal(t, int64(150000), response.Data[0].UsedCredit)
	assert.InDelta(t, 30.0, response.Data[0].UsagePercentage, 0.0001)
}
