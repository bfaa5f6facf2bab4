package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	cryptoService "github.com/allisson/creditcards/internal/crypto/service"
	"github.com/allisson/creditcards/internal/database"
	apperrors "github.com/allisson/creditcards/internal/errors"
)

const postgresCreditCardColumns = `id, card_number, card_number_hash, card_holder_name, expiration_date, cvv,
	credit_limit, available_credit, card_type, is_active, created_at, updated_at`

const postgresReportColumns = `id, card_number, card_holder_name, card_type, credit_limit, available_credit,
	is_active, created_at`

// PostgreSQLCreditCardRepository handles credit card persistence for PostgreSQL.
type PostgreSQLCreditCardRepository struct {
	db    *sql.DB
	codec fieldCodec
}

// NewPostgreSQLCreditCardRepository creates a new PostgreSQLCreditCardRepository.
func NewPostgreSQLCreditCardRepository(
	db *sql.DB,
	encryptor cryptoService.FieldEncryptor,
) *PostgreSQLCreditCardRepository {
	return &PostgreSQLCreditCardRepository{
		db:    db,
		codec: newFieldCodec(encryptor),
	}
}

// Create inserts a new credit card.
func (r *PostgreSQLCreditCardRepository) Create(ctx context.Context, card *creditcardDomain.CreditCard) error {
	stored, err := r.codec.encode(card)
	if err != nil {
		return err
	}

	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO credit_cards (` + postgresCreditCardColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = querier.ExecContext(
		ctx,
		query,
		card.ID,
		stored.CardNumber,
		card.CardNumberHash,
		card.CardHolderName,
		stored.ExpirationDate,
		stored.CVV,
		card.CreditLimit,
		card.AvailableCredit,
		card.CardType,
		card.IsActive,
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return creditcardDomain.ErrCardAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create credit card")
	}
	return nil
}

// Update persists the mutable fields of a credit card.
func (r *PostgreSQLCreditCardRepository) Update(ctx context.Context, card *creditcardDomain.CreditCard) error {
	stored, err := r.codec.encode(card)
	if err != nil {
		return err
	}

	querier := database.GetTx(ctx, r.db)

	query := `UPDATE credit_cards
			  SET card_number = $1, card_holder_name = $2, expiration_date = $3, cvv = $4,
			      credit_limit = $5, available_credit = $6, card_type = $7, is_active = $8, updated_at = $9
			  WHERE id = $10`

	result, err := querier.ExecContext(
		ctx,
		query,
		stored.CardNumber,
		card.CardHolderName,
		stored.ExpirationDate,
		stored.CVV,
		card.CreditLimit,
		card.AvailableCredit,
		card.CardType,
		card.IsActive,
		card.UpdatedAt,
		card.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update credit card")
	}

	return checkRowsAffected(result, "failed to update credit card")
}

// Delete removes a credit card.
func (r *PostgreSQLCreditCardRepository) Delete(ctx context.Context, cardID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = $1`, cardID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete credit card")
	}

	return checkRowsAffected(result, "failed to delete credit card")
}

// Get retrieves a credit card by ID.
func (r *PostgreSQLCreditCardRepository) Get(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCard, error) {
	query := `SELECT ` + postgresCreditCardColumns + ` FROM credit_cards WHERE id = $1`
	return r.getOne(ctx, query, "failed to get credit card", cardID)
}

// GetForUpdate retrieves a credit card by ID and locks its row.
func (r *PostgreSQLCreditCardRepository) GetForUpdate(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCard, error) {
	query := `SELECT ` + postgresCreditCardColumns + ` FROM credit_cards WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, "failed to get credit card for update", cardID)
}

// GetByCardNumberHash retrieves a credit card by its card number lookup hash.
func (r *PostgreSQLCreditCardRepository) GetByCardNumberHash(
	ctx context.Context,
	hash string,
) (*creditcardDomain.CreditCard, error) {
	query := `SELECT ` + postgresCreditCardColumns + ` FROM credit_cards WHERE card_number_hash = $1`
	return r.getOne(ctx, query, "failed to get credit card by hash", hash)
}

// List retrieves credit cards ordered by creation time, newest first.
func (r *PostgreSQLCreditCardRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCard, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresCreditCardColumns + `
			  FROM credit_cards
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list credit cards")
	}
	defer rows.Close() //nolint:errcheck

	cards := make([]*creditcardDomain.CreditCard, 0)
	for rows.Next() {
		card, err := r.scanCreditCard(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan credit card")
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate credit cards")
	}

	return cards, nil
}

// Count returns the number of stored credit cards.
func (r *PostgreSQLCreditCardRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM credit_cards`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count credit cards")
	}
	return count, nil
}

// GetReport retrieves the report row of a single card.
func (r *PostgreSQLCreditCardRepository) GetReport(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCardReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresReportColumns + ` FROM credit_cards WHERE id = $1`

	report, err := r.scanReport(querier.QueryRowContext(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, creditcardDomain.ErrCreditCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get credit card report")
	}
	return report, nil
}

// ListReports retrieves report rows for all cards, newest first.
func (r *PostgreSQLCreditCardRepository) ListReports(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	query := `SELECT ` + postgresReportColumns + `
			  FROM credit_cards
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`
	return r.listReports(ctx, query, limit, offset)
}

// ListActiveReports retrieves report rows for active cards, newest first.
func (r *PostgreSQLCreditCardRepository) ListActiveReports(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	query := `SELECT ` + postgresReportColumns + `
			  FROM credit_cards
			  WHERE is_active = TRUE
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`
	return r.listReports(ctx, query, limit, offset)
}

// ListHighUsageReports retrieves cards whose usage is at least minPercentage, highest first.
func (r *PostgreSQLCreditCardRepository) ListHighUsageReports(
	ctx context.Context,
	minPercentage float64,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	query := `SELECT ` + postgresReportColumns + `
			  FROM credit_cards
			  WHERE credit_limit > 0
			    AND (credit_limit - available_credit) * 100.0 >= $1 * credit_limit
			  ORDER BY (credit_limit - available_credit) * 1.0 / credit_limit DESC, id DESC
			  LIMIT $2 OFFSET $3`
	return r.listReports(ctx, query, minPercentage, limit, offset)
}

func (r *PostgreSQLCreditCardRepository) getOne(
	ctx context.Context,
	query, message string,
	args ...any,
) (*creditcardDomain.CreditCard, error) {
	querier := database.GetTx(ctx, r.db)

	card, err := r.scanCreditCard(querier.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, creditcardDomain.ErrCreditCardNotFound
		}
		return nil, apperrors.Wrap(err, message)
	}
	return card, nil
}

func (r *PostgreSQLCreditCardRepository) listReports(
	ctx context.Context,
	query string,
	args ...any,
) ([]*creditcardDomain.CreditCardReport, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list credit card reports")
	}
	defer rows.Close() //nolint:errcheck

	reports := make([]*creditcardDomain.CreditCardReport, 0)
	for rows.Next() {
		report, err := r.scanReport(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan credit card report")
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate credit card reports")
	}

	return reports, nil
}

func (r *PostgreSQLCreditCardRepository) scanCreditCard(s rowScanner) (*creditcardDomain.CreditCard, error) {
	var (
		card   creditcardDomain.CreditCard
		stored storedFields
	)

	err := s.Scan(
		&card.ID,
		&stored.CardNumber,
		&card.CardNumberHash,
		&card.CardHolderName,
		&stored.ExpirationDate,
		&stored.CVV,
		&card.CreditLimit,
		&card.AvailableCredit,
		&card.CardType,
		&card.IsActive,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.codec.decode(&card, stored); err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *PostgreSQLCreditCardRepository) scanReport(s rowScanner) (*creditcardDomain.CreditCardReport, error) {
	var (
		report     creditcardDomain.CreditCardReport
		cardNumber string
	)

	err := s.Scan(
		&report.ID,
		&cardNumber,
		&report.CardHolderName,
		&report.CardType,
		&report.CreditLimit,
		&report.AvailableCredit,
		&report.IsActive,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.codec.decodeReport(&report, cardNumber); err != nil {
		return nil, err
	}
	return &report, nil
}

// isPostgreSQLUniqueViolation reports a unique_violation (23505) from the driver, falling
// back to the message for errors that lost their type.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
