package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	"github.com/allisson/creditcards/internal/metrics"
)

const (
	metricsDomainCreditCards = "creditcards"
	metricsDomainReports     = "reports"
)

// recordOperation records the counter and duration of one use case call.
func recordOperation(
	ctx context.Context,
	m metrics.BusinessMetrics,
	domain, operation string,
	start time.Time,
	err error,
) {
	status := metrics.Status(err)
	m.RecordOperation(ctx, domain, operation, status)
	m.RecordDuration(ctx, domain, operation, time.Since(start), status)
}

// creditCardUseCaseWithMetrics decorates CreditCardUseCase with metrics instrumentation.
type creditCardUseCaseWithMetrics struct {
	next    CreditCardUseCase
	metrics metrics.BusinessMetrics
}

// NewCreditCardUseCaseWithMetrics wraps a CreditCardUseCase with metrics recording.
func NewCreditCardUseCaseWithMetrics(useCase CreditCardUseCase, m metrics.BusinessMetrics) CreditCardUseCase {
	return &creditCardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *creditCardUseCaseWithMetrics) Create(
	ctx context.Context,
	input creditcardDomain.NewCreditCardInput,
) (*creditcardDomain.CreditCard, error) {
	start := time.Now()
	card, err := c.next.Create(ctx, input)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_create", start, err)
	return card, err
}

func (c *creditCardUseCaseWithMetrics) Get(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCard, error) {
	start := time.Now()
	card, err := c.next.Get(ctx, cardID)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_get", start, err)
	return card, err
}

func (c *creditCardUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) (*creditcardDomain.Page[*creditcardDomain.CreditCard], error) {
	start := time.Now()
	page, err := c.next.List(ctx, offset, limit)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_list", start, err)
	return page, err
}

func (c *creditCardUseCaseWithMetrics) Update(
	ctx context.Context,
	cardID uuid.UUID,
	input creditcardDomain.UpdateCreditCardInput,
) (*creditcardDomain.CreditCard, error) {
	start := time.Now()
	card, err := c.next.Update(ctx, cardID, input)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_update", start, err)
	return card, err
}

func (c *creditCardUseCaseWithMetrics) Delete(ctx context.Context, cardID uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, cardID)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_delete", start, err)
	return err
}

func (c *creditCardUseCaseWithMetrics) Charge(
	ctx context.Context,
	cardID uuid.UUID,
	amount int64,
) (*creditcardDomain.CreditCard, error) {
	start := time.Now()
	card, err := c.next.Charge(ctx, cardID, amount)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_charge", start, err)
	return card, err
}

func (c *creditCardUseCaseWithMetrics) Payment(
	ctx context.Context,
	cardID uuid.UUID,
	amount int64,
) (*creditcardDomain.CreditCard, error) {
	start := time.Now()
	card, err := c.next.Payment(ctx, cardID, amount)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_payment", start, err)
	return card, err
}

func (c *creditCardUseCaseWithMetrics) Activate(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCard, error) {
	start := time.Now()
	card, err := c.next.Activate(ctx, cardID)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_activate", start, err)
	return card, err
}

func (c *creditCardUseCaseWithMetrics) Deactivate(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCard, error) {
	start := time.Now()
	card, err := c.next.Deactivate(ctx, cardID)
	recordOperation(ctx, c.metrics, metricsDomainCreditCards, "card_deactivate", start, err)
	return card, err
}

// reportUseCaseWithMetrics decorates ReportUseCase with metrics instrumentation.
type reportUseCaseWithMetrics struct {
	next    ReportUseCase
	metrics metrics.BusinessMetrics
}

// NewReportUseCaseWithMetrics wraps a ReportUseCase with metrics recording.
func NewReportUseCaseWithMetrics(useCase ReportUseCase, m metrics.BusinessMetrics) ReportUseCase {
	return &reportUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *reportUseCaseWithMetrics) Get(
	ctx context.Context,
	cardID uuid.UUID,
) (*creditcardDomain.CreditCardReport, error) {
	start := time.Now()
	report, err := r.next.Get(ctx, cardID)
	recordOperation(ctx, r.metrics, metricsDomainReports, "report_get", start, err)
	return report, err
}

func (r *reportUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	start := time.Now()
	reports, err := r.next.List(ctx, offset, limit)
	recordOperation(ctx, r.metrics, metricsDomainReports, "report_list", start, err)
	return reports, err
}

func (r *reportUseCaseWithMetrics) ListActive(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	start := time.Now()
	reports, err := r.next.ListActive(ctx, offset, limit)
	recordOperation(ctx, r.metrics, metricsDomainReports, "report_list_active", start, err)
	return reports, err
}

func (r *reportUseCaseWithMetrics) ListHighUsage(
	ctx context.Context,
	minPercentage float64,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	start := time.Now()
	reports, err := r.next.ListHighUsage(ctx, minPercentage, offset, limit)
	recordOperation(ctx, r.metrics, metricsDomainReports, "report_list_high_usage", start, err)
	return reports, err
}
