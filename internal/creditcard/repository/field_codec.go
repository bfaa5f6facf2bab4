// Package repository provides data persistence implementations for credit card entities.
//
// Card number, CVV and expiration date are never written in plaintext: every row passes
// through a fieldCodec, which delegates to the configured FieldEncryptor. With
// encryption disabled the encryptor is a pass-through and the same code path applies.
package repository

import (
	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	cryptoService "github.com/allisson/creditcards/internal/crypto/service"
	apperrors "github.com/allisson/creditcards/internal/errors"
)

// storedFields holds the sensitive columns as they are stored.
type storedFields struct {
	CardNumber     string
	ExpirationDate string
	CVV            string
}

// fieldCodec converts between plaintext entity fields and stored column values.
type fieldCodec struct {
	encryptor cryptoService.FieldEncryptor
}

func newFieldCodec(encryptor cryptoService.FieldEncryptor) fieldCodec {
	return fieldCodec{encryptor: encryptor}
}

// encode encrypts the sensitive fields of card for storage.
func (c fieldCodec) encode(card *creditcardDomain.CreditCard) (storedFields, error) {
	var (
		stored storedFields
		err    error
	)

	if stored.CardNumber, err = c.encryptor.Encrypt(card.CardNumber); err != nil {
		return storedFields{}, apperrors.Wrap(err, "failed to encrypt card number")
	}
	if stored.ExpirationDate, err = c.encryptor.Encrypt(card.ExpirationDate); err != nil {
		return storedFields{}, apperrors.Wrap(err, "failed to encrypt expiration date")
	}
	if stored.CVV, err = c.encryptor.Encrypt(card.CVV); err != nil {
		return storedFields{}, apperrors.Wrap(err, "failed to encrypt cvv")
	}

	return stored, nil
}

// decode decrypts stored into card. Nothing is written to card if any field fails.
func (c fieldCodec) decode(card *creditcardDomain.CreditCard, stored storedFields) error {
	cardNumber, err := c.encryptor.Decrypt(stored.CardNumber)
	if err != nil {
		return apperrors.Wrap(err, "failed to decrypt credit card")
	}
	expirationDate, err := c.encryptor.Decrypt(stored.ExpirationDate)
	if err != nil {
		return apperrors.Wrap(err, "failed to decrypt credit card")
	}
	cvv, err := c.encryptor.Decrypt(stored.CVV)
	if err != nil {
		return apperrors.Wrap(err, "failed to decrypt credit card")
	}

	card.CardNumber = cardNumber
	card.ExpirationDate = expirationDate
	card.CVV = cvv
	return nil
}

// decodeReport decrypts the card number of a report row and stores only its masked form.
func (c fieldCodec) decodeReport(report *creditcardDomain.CreditCardReport, storedCardNumber string) error {
	cardNumber, err := c.encryptor.Decrypt(storedCardNumber)
	if err != nil {
		return apperrors.Wrap(err, "failed to decrypt credit card")
	}

	report.MaskedCardNumber = creditcardDomain.MaskCardNumber(cardNumber)
	report.UsedCredit = report.CreditLimit - report.AvailableCredit
	report.UsagePercentage = creditcardDomain.UsagePercentage(report.CreditLimit, report.AvailableCredit)
	return nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
