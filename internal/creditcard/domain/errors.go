package domain

import (
	"github.com/allisson/creditcards/internal/errors"
)

// Credit card error definitions.
var (
	// ErrCreditCardNotFound indicates no credit card exists with the given ID.
	ErrCreditCardNotFound = errors.Wrap(errors.ErrNotFound, "credit card not found")

	// ErrCardAlreadyExists indicates a card with the same number hash is already stored.
	ErrCardAlreadyExists = errors.Wrap(errors.ErrConflict, "credit card already exists")

	// ErrInvalidCardNumber indicates the card number is missing, not numeric or not 13-19 digits.
	ErrInvalidCardNumber = errors.Wrap(errors.ErrInvalidInput, "card number must have between 13 and 19 digits")

	// ErrInvalidCardHolderName indicates the holder name is blank or shorter than 3 characters.
	ErrInvalidCardHolderName = errors.Wrap(
		errors.ErrInvalidInput,
		"card holder name must have at least 3 characters",
	)

	// ErrInvalidCVV indicates the CVV is missing or not 3-4 digits.
	ErrInvalidCVV = errors.Wrap(errors.ErrInvalidInput, "cvv must have 3 or 4 digits")

	// ErrInvalidCreditLimit indicates a credit limit outside 1..MaxAmount.
	ErrInvalidCreditLimit = errors.Wrap(errors.ErrInvalidInput, "credit limit must be between 1 and 1000000000000 cents")

	// ErrInvalidAmount indicates a charge or payment amount outside 1..MaxAmount.
	ErrInvalidAmount = errors.Wrap(errors.ErrInvalidInput, "amount must be between 1 and 1000000000000 cents")

	// ErrCardInactive indicates a charge against a deactivated card.
	ErrCardInactive = errors.Wrap(errors.ErrInvalidInput, "credit card is inactive")

	// ErrInsufficientCredit indicates a charge larger than the available credit.
	ErrInsufficientCredit = errors.Wrap(errors.ErrInvalidInput, "insufficient credit")

	// ErrPaymentExceedsLimit indicates a payment that would push available credit above the limit.
	ErrPaymentExceedsLimit = errors.Wrap(errors.ErrInvalidInput, "payment exceeds credit limit")

	// ErrInvalidUsagePercentage indicates a high-usage threshold outside 0..100.
	ErrInvalidUsagePercentage = errors.Wrap(
		errors.ErrInvalidInput,
		"usage percentage must be between 0 and 100",
	)
)
