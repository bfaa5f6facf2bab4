package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	"github.com/allisson/creditcards/internal/creditcard/http/dto"
	creditcardUseCase "github.com/allisson/creditcards/internal/creditcard/usecase"
	"github.com/allisson/creditcards/internal/httputil"
)

// ReportHandler serves the read-only credit card reports.
type ReportHandler struct {
	reportUseCase creditcardUseCase.ReportUseCase
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportUseCase creditcardUseCase.ReportUseCase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// GetHandler returns the report row of one card.
// GET /v1/reports/credit-cards/:id
func (h *ReportHandler) GetHandler(c *gin.Context) {
	cardID, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	report, err := h.reportUseCase.Get(c.Request.Context(), cardID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapReportToResponse(report))
}

// ListHandler returns report rows for all cards.
// GET /v1/reports/credit-cards?offset=0&limit=50
func (h *ReportHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	reports, err := h.reportUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapReportsToListResponse(reports))
}

// ListActiveHandler returns report rows for active cards.
// GET /v1/reports/credit-cards/active
func (h *ReportHandler) ListActiveHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	reports, err := h.reportUseCase.ListActive(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapReportsToListResponse(reports))
}

// ListHighUsageHandler returns cards whose usage is at least min_percentage, highest first.
// GET /v1/reports/credit-cards/high-usage?min_percentage=80
func (h *ReportHandler) ListHighUsageHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	minPercentage, err := httputil.ParseFloatQuery(
		c,
		"min_percentage",
		creditcardDomain.DefaultHighUsagePercentage,
	)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	reports, err := h.reportUseCase.ListHighUsage(c.Request.Context(), minPercentage, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapReportsToListResponse(reports))
}
