// Package http provides HTTP handlers for credit card management and reporting.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	"github.com/allisson/creditcards/internal/creditcard/http/dto"
	creditcardUseCase "github.com/allisson/creditcards/internal/creditcard/usecase"
	"github.com/allisson/creditcards/internal/httputil"
	customValidation "github.com/allisson/creditcards/internal/validation"
)

// CreditCardHandler handles HTTP requests for credit card operations.
type CreditCardHandler struct {
	creditCardUseCase creditcardUseCase.CreditCardUseCase
	logger            *slog.Logger
}

// NewCreditCardHandler creates a new credit card handler.
func NewCreditCardHandler(
	creditCardUseCase creditcardUseCase.CreditCardUseCase,
	logger *slog.Logger,
) *CreditCardHandler {
	return &CreditCardHandler{
		creditCardUseCase: creditCardUseCase,
		logger:            logger,
	}
}

// CreateHandler issues a new credit card.
// POST /v1/credit-cards - Returns 201 Created.
func (h *CreditCardHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	card, err := h.creditCardUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Location", "/v1/credit-cards/"+card.ID.String())
	c.JSON(http.StatusCreated, dto.MapCreditCardToResponse(card))
}

// GetHandler returns one credit card.
// GET /v1/credit-cards/:id
func (h *CreditCardHandler) GetHandler(c *gin.Context) {
	cardID, ok := h.parseID(c)
	if !ok {
		return
	}

	card, err := h.creditCardUseCase.Get(c.Request.Context(), cardID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCreditCardToResponse(card))
}

// ListHandler returns a page of credit cards, newest first.
// GET /v1/credit-cards?offset=0&limit=50
func (h *CreditCardHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	page, err := h.creditCardUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCreditCardPageToListResponse(page))
}

// UpdateHandler changes the holder name and/or credit limit.
// PUT /v1/credit-cards/:id
func (h *CreditCardHandler) UpdateHandler(c *gin.Context) {
	cardID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	card, err := h.creditCardUseCase.Update(c.Request.Context(), cardID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCreditCardToResponse(card))
}

// DeleteHandler removes a credit card.
// DELETE /v1/credit-cards/:id - Returns 204 No Content.
func (h *CreditCardHandler) DeleteHandler(c *gin.Context) {
	cardID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.creditCardUseCase.Delete(c.Request.Context(), cardID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ChargeHandler consumes available credit.
// POST /v1/credit-cards/:id/charge
func (h *CreditCardHandler) ChargeHandler(c *gin.Context) {
	h.transaction(c, h.creditCardUseCase.Charge)
}

// PaymentHandler restores available credit.
// POST /v1/credit-cards/:id/payment
func (h *CreditCardHandler) PaymentHandler(c *gin.Context) {
	h.transaction(c, h.creditCardUseCase.Payment)
}

// ActivateHandler activates a card.
// POST /v1/credit-cards/:id/activate
func (h *CreditCardHandler) ActivateHandler(c *gin.Context) {
	h.toggle(c, h.creditCardUseCase.Activate)
}

// DeactivateHandler deactivates a card.
// POST /v1/credit-cards/:id/deactivate
func (h *CreditCardHandler) DeactivateHandler(c *gin.Context) {
	h.toggle(c, h.creditCardUseCase.Deactivate)
}

func (h *CreditCardHandler) transaction(
	c *gin.Context,
	apply func(ctx context.Context, cardID uuid.UUID, amount int64) (*creditcardDomain.CreditCard, error),
) {
	cardID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	card, err := apply(c.Request.Context(), cardID, req.Amount)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCreditCardToResponse(card))
}

func (h *CreditCardHandler) toggle(
	c *gin.Context,
	apply func(ctx context.Context, cardID uuid.UUID) (*creditcardDomain.CreditCard, error),
) {
	cardID, ok := h.parseID(c)
	if !ok {
		return
	}

	card, err := apply(c.Request.Context(), cardID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCreditCardToResponse(card))
}

// parseID writes a 400 response and returns false when the id path parameter is not a UUID.
func (h *CreditCardHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	cardID, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return uuid.Nil, false
	}
	return cardID, true
}
