package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
)

// reportUseCase implements the ReportUseCase interface.
type reportUseCase struct {
	reportRepo ReportRepository
}

// Get returns the report row of a single card.
func (r *reportUseCase) Get(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCardReport, error) {
	return r.reportRepo.GetReport(ctx, cardID)
}

// List returns report rows for all cards, newest first.
func (r *reportUseCase) List(ctx context.Context, offset, limit int) ([]*creditcardDomain.CreditCardReport, error) {
	return r.reportRepo.ListReports(ctx, offset, limit)
}

// ListActive returns report rows for active cards only.
func (r *reportUseCase) ListActive(
	ctx context.Context,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	return r.reportRepo.ListActiveReports(ctx, offset, limit)
}

// ListHighUsage returns cards whose usage is at least minPercentage, highest usage first.
func (r *reportUseCase) ListHighUsage(
	ctx context.Context,
	minPercentage float64,
	offset, limit int,
) ([]*creditcardDomain.CreditCardReport, error) {
	if math.IsNaN(minPercentage) || minPercentage < 0 || minPercentage > 100 {
		return nil, creditcardDomain.ErrInvalidUsagePercentage
	}
	return r.reportRepo.ListHighUsageReports(ctx, minPercentage, offset, limit)
}

// NewReportUseCase creates a new report use case instance.
func NewReportUseCase(reportRepo ReportRepository) ReportUseCase {
	return &reportUseCase{reportRepo: reportRepo}
}
