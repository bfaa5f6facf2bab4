package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	"github.com/allisson/creditcards/internal/database"
	apperrors "github.com/allisson/creditcards/internal/errors"
	outboxDomain "github.com/allisson/creditcards/internal/outbox/domain"
)

// creditCardUseCase implements the CreditCardUseCase interface.
type creditCardUseCase struct {
	txManager  database.TxManager
	cardRepo   CreditCardRepository
	outboxRepo OutboxEventRepository
	hasher     creditcardDomain.CardNumberHasher
}

// Create issues a new card. The lookup hash is checked first so duplicates fail before
// any write; the unique index still catches concurrent inserts.
func (c *creditCardUseCase) Create(
	ctx context.Context,
	input creditcardDomain.NewCreditCardInput,
) (*creditcardDomain.CreditCard, error) {
	card, err := creditcardDomain.NewCreditCard(input, c.hasher)
	if err != nil {
		return nil, err
	}

	existing, err := c.cardRepo.GetByCardNumberHash(ctx, card.CardNumberHash)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, creditcardDomain.ErrCardAlreadyExists
	}

	event, err := newCreditCardCreatedOutboxEvent(card)
	if err != nil {
		return nil, err
	}

	err = c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := c.cardRepo.Create(txCtx, card); err != nil {
			return err
		}
		return c.outboxRepo.Create(txCtx, event)
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// Get retrieves a card by ID.
func (c *creditCardUseCase) Get(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error) {
	return c.cardRepo.Get(ctx, cardID)
}

// List returns one page of cards ordered by creation time, newest first.
func (c *creditCardUseCase) List(
	ctx context.Context,
	offset, limit int,
) (*creditcardDomain.Page[*creditcardDomain.CreditCard], error) {
	cards, err := c.cardRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := c.cardRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &creditcardDomain.Page[*creditcardDomain.CreditCard]{
		Items:  cards,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}

// Update changes the holder name and/or credit limit.
func (c *creditCardUseCase) Update(
	ctx context.Context,
	cardID uuid.UUID,
	input creditcardDomain.UpdateCreditCardInput,
) (*creditcardDomain.CreditCard, error) {
	return c.mutate(ctx, cardID, func(card *creditcardDomain.CreditCard) error {
		if input.CardHolderName != nil {
			if err := card.UpdateCardHolder(*input.CardHolderName); err != nil {
				return err
			}
		}
		if input.CreditLimit != nil {
			if err := card.UpdateCreditLimit(*input.CreditLimit); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a card.
func (c *creditCardUseCase) Delete(ctx context.Context, cardID uuid.UUID) error {
	if _, err := c.cardRepo.Get(ctx, cardID); err != nil {
		return err
	}
	return c.cardRepo.Delete(ctx, cardID)
}

// Charge debits amount from the available credit.
func (c *creditCardUseCase) Charge(
	ctx context.Context,
	cardID uuid.UUID,
	amount int64,
) (*creditcardDomain.CreditCard, error) {
	return c.mutate(ctx, cardID, func(card *creditcardDomain.CreditCard) error {
		return card.Charge(amount)
	})
}

// Payment credits amount back to the available credit.
func (c *creditCardUseCase) Payment(
	ctx context.Context,
	cardID uuid.UUID,
	amount int64,
) (*creditcardDomain.CreditCard, error) {
	return c.mutate(ctx, cardID, func(card *creditcardDomain.CreditCard) error {
		return card.Payment(amount)
	})
}

// Activate marks a card active.
func (c *creditCardUseCase) Activate(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error) {
	return c.mutate(ctx, cardID, func(card *creditcardDomain.CreditCard) error {
		card.Activate()
		return nil
	})
}

// Deactivate marks a card inactive.
func (c *creditCardUseCase) Deactivate(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCard, error) {
	return c.mutate(ctx, cardID, func(card *creditcardDomain.CreditCard) error {
		card.Deactivate()
		return nil
	})
}

// mutate loads the card under a row lock, applies fn and persists the result in one transaction.
func (c *creditCardUseCase) mutate(
	ctx context.Context,
	cardID uuid.UUID,
	fn func(card *creditcardDomain.CreditCard) error,
) (*creditcardDomain.CreditCard, error) {
	var card *creditcardDomain.CreditCard
	err := c.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		card, err = c.cardRepo.GetForUpdate(txCtx, cardID)
		if err != nil {
			return err
		}
		if err := fn(card); err != nil {
			return err
		}
		return c.cardRepo.Update(txCtx, card)
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

func newCreditCardCreatedOutboxEvent(card *creditcardDomain.CreditCard) (*outboxDomain.OutboxEvent, error) {
	return outboxDomain.NewOutboxEvent(
		creditcardDomain.EventTypeCreditCardCreated,
		creditcardDomain.NewCreditCardCreatedEvent(card),
	)
}

// NewCreditCardUseCase creates a new credit card use case instance.
func NewCreditCardUseCase(
	txManager database.TxManager,
	cardRepo CreditCardRepository,
	outboxRepo OutboxEventRepository,
	hasher creditcardDomain.CardNumberHasher,
) CreditCardUseCase {
	return &creditCardUseCase{
		txManager:  txManager,
		cardRepo:   cardRepo,
		outboxRepo: outboxRepo,
		hasher:     hasher,
	}
}
