package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	"github.com/allisson/creditcards/internal/outbox/domain"
)

// CreditCardEventProcessor publishes credit card events by writing them to the log.
// Unknown event types are logged and acknowledged so they do not block the queue.
type CreditCardEventProcessor struct {
	logger *slog.Logger
}

// NewCreditCardEventProcessor creates a new CreditCardEventProcessor
func NewCreditCardEventProcessor(logger *slog.Logger) *CreditCardEventProcessor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CreditCardEventProcessor{logger: logger}
}

// Process handles a single outbox event.
func (p *CreditCardEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	switch event.EventType {
	case creditcardDomain.EventTypeCreditCardCreated:
		var payload creditcardDomain.CreditCardCreatedEvent
		if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
			return fmt.Errorf("invalid %s payload: %w", event.EventType, err)
		}

		p.logger.InfoContext(ctx, "credit card created",
			slog.String("event_id", event.ID.String()),
			slog.String("card_id", payload.CardID.String()),
			slog.String("masked_card_number", payload.MaskedCardNumber),
			slog.String("card_type", payload.CardType),
			slog.Time("occurred_on", payload.OccurredOn),
		)
	default:
		p.logger.WarnContext(ctx, "unknown event type", slog.String("event_type", event.EventType))
	}

	return nil
}
