// Package usecase implements the credit card business flows. Use cases work on
// plaintext domain entities; field encryption happens below them, in the repositories.
package usecase

import (
	"context"

	"github.com/google/uuid"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	outboxDomain "github.com/allisson/creditcards/internal/outbox/domain"
)

// CreditCardRepository defines the interface for credit card persistence operations.
type CreditCardRepository interface {
	Create(ctx context.Context, card *creditcardDomain.CreditCard) error
	Update(ctx context.Context, card *creditcardDomain.CreditCard) error
	Delete(ctx context.Context, cardID uuid.UUID) error
	Get(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error)
	// GetForUpdate locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error)
	GetByCardNumberHash(ctx context.Context, hash string) (*creditcardDomain.CreditCard, error)
	List(ctx context.Context, offset, limit int) ([]*creditcardDomain.CreditCard, error)
	Count(ctx context.Context) (int64, error)
}

// ReportRepository defines the read-only queries behind credit card reports.
type ReportRepository interface {
	GetReport(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCardReport, error)
	ListReports(ctx context.Context, offset, limit int) ([]*creditcardDomain.CreditCardReport, error)
	ListActiveReports(ctx context.Context, offset, limit int) ([]*creditcardDomain.CreditCardReport, error)
	ListHighUsageReports(
		ctx context.Context,
		minPercentage float64,
		offset, limit int,
	) ([]*creditcardDomain.CreditCardReport, error)
}

// OutboxEventRepository stores events published by the credit card flows.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// CreditCardUseCase defines the interface for credit card management business logic.
type CreditCardUseCase interface {
	Create(ctx context.Context, input creditcardDomain.NewCreditCardInput) (*creditcardDomain.CreditCard, error)
	Get(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error)
	List(ctx context.Context, offset, limit int) (*creditcardDomain.Page[*creditcardDomain.CreditCard], error)
	Update(
		ctx context.Context,
		cardID uuid.UUID,
		input creditcardDomain.UpdateCreditCardInput,
	) (*creditcardDomain.CreditCard, error)
	Delete(ctx context.Context, cardID uuid.UUID) error
	Charge(ctx context.Context, cardID uuid.UUID, amount int64) (*creditcardDomain.CreditCard, error)
	Payment(ctx context.Context, cardID uuid.UUID, amount int64) (*creditcardDomain.CreditCard, error)
	Activate(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error)
	Deactivate(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error)
}

// ReportUseCase defines the interface for credit card reporting.
type ReportUseCase interface {
	Get(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCardReport, error)
	List(ctx context.Context, offset, limit int) ([]*creditcardDomain.CreditCardReport, error)
	ListActive(ctx context.Context, offset, limit int) ([]*creditcardDomain.CreditCardReport, error)
	ListHighUsage(
		ctx context.Context,
		minPercentage float64,
		offset, limit int,
	) ([]*creditcardDomain.CreditCardReport, error)
}
