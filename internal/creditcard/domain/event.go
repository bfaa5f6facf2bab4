package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeCreditCardCreated is the outbox event type emitted when a card is issued.
const EventTypeCreditCardCreated = "creditcard.created"

// CreditCardCreatedEvent is published through the outbox after a card is stored.
// The payload only carries the masked card number.
type CreditCardCreatedEvent struct {
	CardID           uuid.UUID `json:"card_id"`
	MaskedCardNumber string    `json:"masked_card_number"`
	CardHolderName   string    `json:"card_holder_name"`
	CardType         string    `json:"card_type"`
	OccurredOn       time.Time `json:"occurred_on"`
}

// NewCreditCardCreatedEvent builds the event for card.
func NewCreditCardCreatedEvent(card *CreditCard) CreditCardCreatedEvent {
	return CreditCardCreatedEvent{
		CardID:           card.ID,
		MaskedCardNumber: card.MaskedCardNumber(),
		CardHolderName:   card.CardHolderName,
		CardType:         card.CardType,
		OccurredOn:       card.CreatedAt,
	}
}
