package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	"github.com/allisson/creditcards/internal/creditcard/http/dto"
	"github.com/allisson/creditcards/internal/creditcard/usecase/mocks"
)

func setupReportHandler(t *testing.T) (*ReportHandler, *mocks.MockReportUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := mocks.NewMockReportUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewReportHandler(mockUseCase, logger), mockUseCase
}

func testReport() *creditcardDomain.CreditCardReport {
	return &creditcardDomain.CreditCardReport{
		ID:               uuid.Must(uuid.NewV7()),
		MaskedCardNumber: "************1111",
		CardHolderName:   "JOHN DOE",
		CardType:         "Visa",
		CreditLimit:      100000,
		AvailableCredit:  10000,
		UsedCredit:       90000,
		UsagePercentage:  90,
		IsActive:         true,
		CreatedAt:        time.Now().UTC(),
	}
}

func TestReportHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupReportHandler(t)
		report := testReport()

		mockUseCase.EXPECT().Get(mock.Anything, report.ID).Return(report, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/reports/credit-cards/"+report.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: report.ID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.CreditCardReportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "************1111", response.CardNumber)
		assert.Equal(t, int64(90000), response.UsedCredit)
		assert.InDelta(t, 90.0, response.UsagePercentage, 0.001)
		assert.NotContains(t, w.Body.String(), "cvv")
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, _ := setupReportHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/reports/credit-cards/123", nil)
		c.Params = gin.Params{{Key: "id", Value: "123"}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupReportHandler(t)
		cardID := uuid.Must(uuid.NewV7())

		mockUseCase.EXPECT().Get(mock.Anything, cardID).Return(nil, creditcardDomain.ErrCreditCardNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/reports/credit-cards/"+cardID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: cardID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReportHandler_ListHandlers(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		handler, mockUseCase := setupReportHandler(t)

		mockUseCase.EXPECT().
			List(mock.Anything, 10, 20).
			Return([]*creditcardDomain.CreditCardReport{testReport(), testReport()}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/reports/credit-cards?offset=10&limit=20", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListCreditCardReportsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 2)
	})

	t.Run("ListActive_Empty", func(t *testing.T) {
		handler, mockUseCase := setupReportHandler(t)

		mockUseCase.EXPECT().
			ListActive(mock.Anything, 0, 50).
			Return([]*creditcardDomain.CreditCardReport{}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/reports/credit-cards/active", nil)
		handler.ListActiveHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("List_InvalidOffset", func(t *testing.T) {
		handler, _ := setupReportHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/reports/credit-cards?offset=-1", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandler_ListHighUsageHandler(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		setupMock    func(m *mocks.MockReportUseCase)
		expectedCode int
	}{
		{
			name:  "DefaultThreshold",
			query: "",
			setupMock: func(m *mocks.MockReportUseCase) {
				m.EXPECT().
					ListHighUsage(mock.Anything, creditcardDomain.DefaultHighUsagePercentage, 0, 50).
					Return([]*creditcardDomain.CreditCardReport{testReport()}, nil).
					Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "CustomThreshold",
			query: "?min_percentage=50.5",
			setupMock: func(m *mocks.MockReportUseCase) {
				m.EXPECT().
					ListHighUsage(mock.Anything, 50.5, 0, 50).
					Return([]*creditcardDomain.CreditCardReport{}, nil).
					Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "InvalidThreshold",
			query:        "?min_percentage=abc",
			setupMock:    func(m *mocks.MockReportUseCase) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "NaNThreshold",
			query:        "?min_percentage=NaN",
			setupMock:    func(m *mocks.MockReportUseCase) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "OutOfRangeThreshold",
			query: "?min_percentage=150",
			setupMock: func(m *mocks.MockReportUseCase) {
				m.EXPECT().
					ListHighUsage(mock.Anything, 150.0, 0, 50).
					Return(nil, creditcardDomain.ErrInvalidUsagePercentage).
					Once()
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUseCase := setupReportHandler(t)
			tt.setupMock(mockUseCase)

			c, w := createTestContext(http.MethodGet, "/v1/reports/credit-cards/high-usage"+tt.query, nil)
			handler.ListHighUsageHandler(c)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
