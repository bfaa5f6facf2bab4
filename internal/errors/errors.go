// Package errors holds the five sentinels that every credit card, crypto and outbox
// error wraps. Domain packages declare their own errors on top of them:
//
//	ErrInsufficientCredit = errors.Wrap(errors.ErrInvalidInput, "insufficient credit")
//
// httputil.HandleErrorGin only looks at the sentinel in the chain, so a new domain
// error gets the right status code without touching the HTTP layer. For 422 the
// full message ("insufficient credit: invalid input") is returned to the client.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound maps to 404: an unknown card ID on card and report lookups alike.
	ErrNotFound = errors.New("not found")

	// ErrConflict maps to 409: a card number whose hash is already stored.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput maps to 422: rule violations such as a charge above the
	// available credit, a payment above the outstanding balance, or an amount
	// outside the accepted range. Its message is shown to the client.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized maps to 401: a missing or unknown API key.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden maps to 403.
	ErrForbidden = errors.New("forbidden")
)

// New returns an error that wraps no sentinel; HandleErrorGin answers it with 500.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message and keeps err in the chain. Repositories use it to
// add the failing operation ("failed to get credit card report") to driver errors. A nil
// err stays nil, so `return errors.Wrap(row.Err(), "...")` is safe.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
