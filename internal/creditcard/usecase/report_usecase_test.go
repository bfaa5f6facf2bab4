package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	creditcardUsecaseMocks "github.com/allisson/creditcards/internal/creditcard/usecase/mocks"
	apperrors "github.com/allisson/creditcards/internal/errors"
)

func TestReportUseCase_Get(t *testing.T) {
	ctx := context.Background()
	repo := creditcardUsecaseMocks.NewMockReportRepository(t)
	uc := NewReportUseCase(repo)
	report := &creditcardDomain.CreditCardReport{ID: uuid.Must(uuid.NewV7()), UsagePercentage: 10}

	repo.EXPECT().GetReport(ctx, report.ID).Return(report, nil).Once()

	result, err := uc.Get(ctx, report.ID)

	assert.NoError(t, err)
	assert.Equal(t, report, result)
}

func TestReportUseCase_List(t *testing.T) {
	ctx := context.Background()
	repo := creditcardUsecaseMocks.NewMockReportRepository(t)
	uc := NewReportUseCase(repo)
	reports := []*creditcardDomain.CreditCardReport{{ID: uuid.Must(uuid.NewV7())}}

	repo.EXPECT().ListReports(ctx, 0, 50).Return(reports, nil).Once()
	repo.EXPECT().ListActiveReports(ctx, 10, 5).Return(reports, nil).Once()

	result, err := uc.List(ctx, 0, 50)
	assert.NoError(t, err)
	assert.Equal(t, reports, result)

	result, err = uc.ListActive(ctx, 10, 5)
	assert.NoError(t, err)
	assert.Equal(t, reports, result)
}

func TestReportUseCase_ListHighUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := creditcardUsecaseMocks.NewMockReportRepository(t)
		uc := NewReportUseCase(repo)
		reports := []*creditcardDomain.CreditCardReport{{ID: uuid.Must(uuid.NewV7()), UsagePercentage: 95}}

		repo.EXPECT().ListHighUsageReports(ctx, 80.0, 0, 50).Return(reports, nil).Once()

		result, err := uc.ListHighUsage(ctx, 80, 0, 50)

		assert.NoError(t, err)
		assert.Equal(t, reports, result)
	})

	for _, pct := range []float64{-1, 100.5, 1000, math.NaN(), math.Inf(1)} {
		t.Run("Error_OutOfRange", func(t *testing.T) {
			repo := creditcardUsecaseMocks.NewMockReportRepository(t)
			uc := NewReportUseCase(repo)

			result, err := uc.ListHighUsage(ctx, pct, 0, 50)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, creditcardDomain.ErrInvalidUsagePercentage)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}
