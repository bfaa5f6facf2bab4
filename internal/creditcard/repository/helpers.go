package repository

import (
	"database/sql"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	apperrors "github.com/allisson/creditcards/internal/errors"
)

// checkRowsAffected maps a write that touched no rows to ErrCreditCardNotFound.
func checkRowsAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return creditcardDomain.ErrCreditCardNotFound
	}
	return nil
}
