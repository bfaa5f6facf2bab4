package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	cryptoDomain "github.com/allisson/creditcards/internal/crypto/domain"
	cryptoService "github.com/allisson/creditcards/internal/crypto/service"
	"github.com/allisson/creditcards/internal/database"
	apperrors "github.com/allisson/creditcards/internal/errors"
)

var creditCardColumnNames = []string{
	"id", "card_number", "card_number_hash", "card_holder_name", "expiration_date", "cvv",
	"credit_limit", "available_credit", "card_type", "is_active", "created_at", "updated_at",
}

var reportColumnNames = []string{
	"id", "card_number", "card_holder_name", "card_type", "credit_limit", "available_credit",
	"is_active", "created_at",
}

func setupPostgreSQLRepository(
	t *testing.T,
	encryptor cryptoService.FieldEncryptor,
) (*PostgreSQLCreditCardRepository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgreSQLCreditCardRepository(db, encryptor), db, mock
}

func encryptedRow(t *testing.T, enc cryptoService.FieldEncryptor, card *creditcardDomain.CreditCard) []driver.Value {
	t.Helper()
	stored, err := newFieldCodec(enc).encode(card)
	require.NoError(t, err)
	var updatedAt any
	if card.UpdatedAt != nil {
		updatedAt = *card.UpdatedAt
	}
	return []driver.Value{
		card.ID.String(), stored.CardNumber, card.CardNumberHash, card.CardHolderName,
		stored.ExpirationDate, stored.CVV, card.CreditLimit, card.AvailableCredit,
		card.CardType, card.IsActive, card.CreatedAt, updatedAt,
	}
}

// flipBase64Char swaps one character for another valid base64 character.
func flipBase64Char(s string, i int) string {
	b := []byte(s)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}

func TestPostgreSQLCreditCardRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_EncryptsSensitiveColumns", func(t *testing.T) {
		enc := newTestEncryptor(t)
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		card := newTestCard()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credit_cards")).
			WithArgs(
				card.ID,
				encryptedAs{enc, card.CardNumber},
				card.CardNumberHash,
				card.CardHolderName,
				encryptedAs{enc, card.ExpirationDate},
				encryptedAs{enc, card.CVV},
				card.CreditLimit,
				card.AvailableCredit,
				card.CardType,
				card.IsActive,
				card.CreatedAt,
				card.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, card))
	})

	t.Run("Success_NoOpStoresPlaintext", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, cryptoService.NewNoOpFieldEncryptor())
		card := newTestCard()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credit_cards")).
			WithArgs(
				card.ID, card.CardNumber, card.CardNumberHash, card.CardHolderName,
				card.ExpirationDate, card.CVV, card.CreditLimit, card.AvailableCredit,
				card.CardType, card.IsActive, card.CreatedAt, card.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, card))
	})

	t.Run("Error_UniqueViolation", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, newTestEncryptor(t))

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credit_cards")).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "credit_cards_card_number_hash_key"`))

		err := repo.Create(ctx, newTestCard())

		assert.ErrorIs(t, err, creditcardDomain.ErrCardAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Error_EncryptorClosed", func(t *testing.T) {
		enc := newTestEncryptor(t)
		repo, _, _ := setupPostgreSQLRepository(t, enc)
		enc.Close()

		err := repo.Create(ctx, newTestCard())

		assert.ErrorIs(t, err, cryptoDomain.ErrEncryptorClosed)
	})

	t.Run("UsesTransactionFromContext", func(t *testing.T) {
		repo, db, mock := setupPostgreSQLRepository(t, newTestEncryptor(t))

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credit_cards")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := database.NewTxManager(db).WithTx(ctx, func(txCtx context.Context) error {
			return repo.Create(txCtx, newTestCard())
		})

		assert.NoError(t, err)
	})
}

func TestPostgreSQLCreditCardRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DecryptsRow", func(t *testing.T) {
		enc := newTestEncryptor(t)
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		card := newTestCard()

		mock.ExpectQuery(regexp.QuoteMeta("FROM credit_cards WHERE id = $1")).
			WithArgs(card.ID).
			WillReturnRows(sqlmock.NewRows(creditCardColumnNames).AddRow(encryptedRow(t, enc, card)...))

		result, err := repo.Get(ctx, card.ID)

		require.NoError(t, err)
		assert.Equal(t, card.ID, result.ID)
		assert.Equal(t, "4111111111111111", result.CardNumber)
		assert.Equal(t, "12/30", result.ExpirationDate)
		assert.Equal(t, "123", result.CVV)
		assert.Equal(t, int64(375000), result.AvailableCredit)
		assert.Nil(t, result.UpdatedAt)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, newTestEncryptor(t))
		cardID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(regexp.QuoteMeta("FROM credit_cards WHERE id = $1")).
			WithArgs(cardID).
			WillReturnError(sql.ErrNoRows)

		result, err := repo.Get(ctx, cardID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, creditcardDomain.ErrCreditCardNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Error_TamperedCiphertext", func(t *testing.T) {
		enc := newTestEncryptor(t)
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		card := newTestCard()
		row := encryptedRow(t, enc, card)
		row[5] = flipBase64Char(row[5].(string), 10)

		mock.ExpectQuery(regexp.QuoteMeta("FROM credit_cards WHERE id = $1")).
			WithArgs(card.ID).
			WillReturnRows(sqlmock.NewRows(creditCardColumnNames).AddRow(row...))

		result, err := repo.Get(ctx, card.ID)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		assert.Contains(t, err.Error(), "failed to decrypt credit card")
		assert.False(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestPostgreSQLCreditCardRepository_GetForUpdate(t *testing.T) {
	enc := newTestEncryptor(t)
	repo, _, mock := setupPostgreSQLRepository(t, enc)
	card := newTestCard()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 FOR UPDATE")).
		WithArgs(card.ID).
		WillReturnRows(sqlmock.NewRows(creditCardColumnNames).AddRow(encryptedRow(t, enc, card)...))

	result, err := repo.GetForUpdate(context.Background(), card.ID)

	require.NoError(t, err)
	assert.Equal(t, card.CardNumber, result.CardNumber)
}

func TestPostgreSQLCreditCardRepository_GetByCardNumberHash(t *testing.T) {
	ctx := context.Background()
	enc := newTestEncryptor(t)
	repo, _, mock := setupPostgreSQLRepository(t, enc)
	card := newTestCard()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE card_number_hash = $1")).
		WithArgs("hash-4111").
		WillReturnRows(sqlmock.NewRows(creditCardColumnNames).AddRow(encryptedRow(t, enc, card)...))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE card_number_hash = $1")).
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows(creditCardColumnNames))

	result, err := repo.GetByCardNumberHash(ctx, "hash-4111")
	require.NoError(t, err)
	assert.Equal(t, card.ID, result.ID)

	result, err = repo.GetByCardNumberHash(ctx, "unknown")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, creditcardDomain.ErrCreditCardNotFound)
}

func TestPostgreSQLCreditCardRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		enc := newTestEncryptor(t)
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		card := newTestCard()
		require.NoError(t, card.Charge(1000))

		mock.ExpectExec(regexp.QuoteMeta("UPDATE credit_cards")).
			WithArgs(
				encryptedAs{enc, card.CardNumber},
				card.CardHolderName,
				encryptedAs{enc, card.ExpirationDate},
				encryptedAs{enc, card.CVV},
				card.CreditLimit,
				card.AvailableCredit,
				card.CardType,
				card.IsActive,
				*card.UpdatedAt,
				card.ID,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, card))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, newTestEncryptor(t))

		mock.ExpectExec(regexp.QuoteMeta("UPDATE credit_cards")).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, newTestCard()), creditcardDomain.ErrCreditCardNotFound)
	})
}

func TestPostgreSQLCreditCardRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _, mock := setupPostgreSQLRepository(t, newTestEncryptor(t))
	cardID := uuid.Must(uuid.NewV7())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credit_cards WHERE id = $1")).
		WithArgs(cardID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credit_cards WHERE id = $1")).
		WithArgs(cardID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(ctx, cardID))
	assert.ErrorIs(t, repo.Delete(ctx, cardID), creditcardDomain.ErrCreditCardNotFound)
}

func TestPostgreSQLCreditCardRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	enc := newTestEncryptor(t)
	repo, _, mock := setupPostgreSQLRepository(t, enc)
	first, second := newTestCard(), newTestCard()
	second.CardNumber = "5500000000000004"

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(creditCardColumnNames).
			AddRow(encryptedRow(t, enc, second)...).
			AddRow(encryptedRow(t, enc, first)...))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM credit_cards")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	cards, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "5500000000000004", cards[0].CardNumber)
	assert.Equal(t, "4111111111111111", cards[1].CardNumber)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPostgreSQLCreditCardRepository_Reports(t *testing.T) {
	ctx := context.Background()
	enc := newTestEncryptor(t)
	card := newTestCard()
	storedNumber, err := enc.Encrypt(card.CardNumber)
	require.NoError(t, err)
	reportRow := []driver.Value{
		card.ID.String(), storedNumber, card.CardHolderName, card.CardType,
		card.CreditLimit, card.AvailableCredit, card.IsActive, card.CreatedAt,
	}

	t.Run("GetReport", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		mock.ExpectQuery(regexp.QuoteMeta("FROM credit_cards WHERE id = $1")).
			WithArgs(card.ID).
			WillReturnRows(sqlmock.NewRows(reportColumnNames).AddRow(reportRow...))

		report, err := repo.GetReport(ctx, card.ID)

		require.NoError(t, err)
		assert.Equal(t, "************1111", report.MaskedCardNumber)
		assert.Equal(t, int64(125000), report.UsedCredit)
		assert.InDelta(t, 25.0, report.UsagePercentage, 0.0001)
	})

	t.Run("GetReport_NotFound", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		mock.ExpectQuery(regexp.QuoteMeta("FROM credit_cards WHERE id = $1")).
			WithArgs(card.ID).
			WillReturnRows(sqlmock.NewRows(reportColumnNames))

		report, err := repo.GetReport(ctx, card.ID)

		assert.Nil(t, report)
		assert.ErrorIs(t, err, creditcardDomain.ErrCreditCardNotFound)
	})

	t.Run("ListReports", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(50, 0).
			WillReturnRows(sqlmock.NewRows(reportColumnNames).AddRow(reportRow...))

		reports, err := repo.ListReports(ctx, 0, 50)

		require.NoError(t, err)
		assert.Len(t, reports, 1)
	})

	t.Run("ListActiveReports", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE")).
			WithArgs(50, 0).
			WillReturnRows(sqlmock.NewRows(reportColumnNames))

		reports, err := repo.ListActiveReports(ctx, 0, 50)

		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("ListHighUsageReports", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		mock.ExpectQuery(regexp.QuoteMeta("(credit_limit - available_credit) * 100.0 >= $1 * credit_limit")).
			WithArgs(20.0, 50, 0).
			WillReturnRows(sqlmock.NewRows(reportColumnNames).AddRow(reportRow...))

		reports, err := repo.ListHighUsageReports(ctx, 20, 0, 50)

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, card.ID, reports[0].ID)
	})

	t.Run("ListReports_QueryError", func(t *testing.T) {
		repo, _, mock := setupPostgreSQLRepository(t, enc)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).WillReturnError(errors.New("db down"))

		reports, err := repo.ListReports(ctx, 0, 50)

		assert.Nil(t, reports)
		assert.ErrorContains(t, err, "failed to list credit card reports")
	})
}

func TestIsPostgreSQLUniqueViolation(t *testing.T) {
	assert.False(t, isPostgreSQLUniqueViolation(nil))
	assert.True(t, isPostgreSQLUniqueViolation(errors.New("pq: duplicate key value violates unique constraint")))
	assert.False(t, isPostgreSQLUniqueViolation(errors.New("connection reset")))
	assert.True(t, isPostgreSQLUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isPostgreSQLUniqueViolation(&pq.Error{Code: "23503", Message: "unique constraint"}))
}
