package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	cryptoService "github.com/allisson/creditcards/internal/crypto/service"
	"github.com/allisson/creditcards/internal/database"
	apperrors "github.com/allisson/creditcards/internal/errors"
)

const mysqlCreditCardColumns = `id, card_number, card_number_hash, card_holder_name, expiration_date, cvv,
	credit_limit, available_credit, card_type, is_active, created_at, updated_at`

const mysqlReportColumns = `id, card_number, card_holder_name, card_type, credit_limit, available_credit,
	is_active, created_at`

// MySQLCreditCardRepository handles credit card persistence for MySQL. IDs are stored as BINARY(16).
type MySQLCreditCardRepository struct {
	db    *sql.DB
	codec fieldCodec
}

// NewMySQLCreditCardRepository creates a new MySQLCreditCardRepository.
func NewMySQLCreditCardRepository(
	db *sql.DB,
	encryptor cryptoService.FieldEncryptor,
) *MySQLCreditCardRepository {
	return &MySQLCreditCardRepository{
		db:    db,
		codec: newFieldCodec(encryptor),
	}
}

// Create inserts a new credit card.
func (r *MySQLCreditCardRepository) Create(ctx context.Context, card *creditcardDomain.CreditCard) error {
	idBytes, err := card.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	stored, err := r.codec.encode(card)
	if err != nil {
		return err
	}

	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO credit_cards (` + mysqlCreditCardColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		idBytes,
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
		if isMySQLUniqueViolation(err) {
			return creditcardDomain.ErrCardAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create credit card")
	}
	return nil
}

// Update persists the mutable fields of a credit card.
func (r *MySQLCreditCardRepository) Update(ctx context.Context, card *creditcardDomain.CreditCard) error {
	idBytes, err := card.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	stored, err := r.codec.encode(card)
	if err != nil {
		return err
	}

	querier := database.GetTx(ctx, r.db)

	query := `UPDATE credit_cards
			  SET card_number = ?, card_holder_name = ?, expiration_date = ?, cvv = ?,
			      credit_limit = ?, available_credit = ?, card_type = ?, is_active = ?, updated_at = ?
			  WHERE id = ?`

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
		idBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update credit card")
	}

	// MySQL reports zero affected rows when the new values equal the old ones,
	// so a miss is confirmed with a lookup.
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update credit card")
	}
	if affected == 0 {
		if _, err := r.Get(ctx, card.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a credit card.
func (r *MySQLCreditCardRepository) Delete(ctx context.Context, cardID uuid.UUID) error {
	idBytes, err := cardID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete credit card")
	}

	return checkRowsAffected(result, "failed to delete credit card")
}

// Get retrieves a credit card by ID.
func (r *MySQLCreditCardRepository) Get(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error) {
	idBytes, err := cardID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT ` + mysqlCreditCardColumns + ` FROM credit_cards WHERE id = ?`
	return r.getOne(ctx, query, "failed to get credit card", idBytes)
}

// GetForUpdate retrieves a credit card by ID and locks its row.
func (r *MySQLCreditCardRepository) GetForUpdate(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCard, error) {
	idBytes, err := cardID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT ` + mysqlCreditCardColumns + ` FROM credit_cards WHERE id = ? FOR UPDATE`
	return r.getOne(ctx, query, "failed to get credit card for update", idBytes)
}

// GetByCardNumberHash retrieves a credit card by its card number lookup hash.
func (r *MySQLCreditCardRepository) GetByCardNumberHash(
	ctx context.Context,
	hash string,
) (*creditcardDomain.CreditCard, error) {
	query := `SELECT ` + mysqlCreditCardColumns + ` FROM credit_cards WHERE card_number_hash = ?`
	return r.getOne(ctx, query, "failed to get credit card by hash", hash)
}

// List retrieves credit cards ordered by creation time, newest first.
func (r *MySQLCreditCardRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCard, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlCreditCardColumns + `
			  FROM credit_cards
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

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
func (r *MySQLCreditCardRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM credit_cards`).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count credit cards")
	}
	return count, nil
}

// GetReport retrieves the report row of a single card.
func (r *MySQLCreditCardRepository) GetReport(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCardReport, error) {
	idBytes, err := cardID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlReportColumns + ` FROM credit_cards WHERE id = ?`

	report, err := r.scanReport(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, creditcardDomain.ErrCreditCardNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get credit card report")
	}
	return report, nil
}

// ListReports retrieves report rows for all cards, newest first.
func (r *MySQLCreditCardRepository) ListReports(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	query := `SELECT ` + mysqlReportColumns + `
			  FROM credit_cards
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`
	return r.listReports(ctx, query, limit, offset)
}

// ListActiveReports retrieves report rows for active cards, newest first.
func (r *MySQLCreditCardRepository) ListActiveReports(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	query := `SELECT ` + mysqlReportColumns + `
			  FROM credit_cards
			  WHERE is_active = TRUE
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`
	return r.listReports(ctx, query, limit, offset)
}

// ListHighUsageReports retrieves cards whose usage is at least minPercentage, highest first.
func (r *MySQLCreditCardRepository) ListHighUsageReports(
	ctx context.Context,
	minPercentage float64,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	query := `SELECT ` + mysqlReportColumns + `
			  FROM credit_cards
			  WHERE credit_limit > 0
			    AND (credit_limit - available_credit) * 100.0 >= ? * credit_limit
			  ORDER BY (credit_limit - available_credit) / credit_limit DESC, id DESC
			  LIMIT ? OFFSET ?`
	return r.listReports(ctx, query, minPercentage, limit, offset)
}

func (r *MySQLCreditCardRepository) getOne(
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

func (r *MySQLCreditCardRepository) listReports(
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

func (r *MySQLCreditCardRepository) scanCreditCard(s rowScanner) (*creditcardDomain.CreditCard, error) {
	var (
		card    creditcardDomain.CreditCard
		stored  storedFields
		idBytes []byte
	)

	err := s.Scan(
		&idBytes,
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

	if err := card.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	if err := r.codec.decode(&card, stored); err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *MySQLCreditCardRepository) scanReport(s rowScanner) (*creditcardDomain.CreditCardReport, error) {
	var (
		report     creditcardDomain.CreditCardReport
		cardNumber string
		idBytes    []byte
	)

	err := s.Scan(
		&idBytes,
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

	if err := report.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	if err := r.codec.decodeReport(&report, cardNumber); err != nil {
		return nil, err
	}
	return &report, nil
}

// isMySQLUniqueViolation reports a duplicate-key error (1062) from the driver, falling
// back to the message for errors that lost their type.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
