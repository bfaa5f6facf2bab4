package dto

import (
	"time"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
)

// CreditCardResponse represents a credit card in API responses.
// The card number is always masked and the CVV is never returned.
type CreditCardResponse struct {
	ID              string     `json:"id"`
	CardNumber      string     `json:"card_number"`
	CardHolderName  string     `json:"card_holder_name"`
	ExpirationDate  string     `json:"expiration_date"`
	CardType        string     `json:"card_type"`
	CreditLimit     int64      `json:"credit_limit"`
	AvailableCredit int64      `json:"available_credit"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// MapCreditCardToResponse converts a domain credit card to an API response.
func MapCreditCardToResponse(card *creditcardDomain.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:              card.ID.String(),
		CardNumber:      card.MaskedCardNumber(),
		CardHolderName:  card.CardHolderName,
		ExpirationDate:  card.ExpirationDate,
		CardType:        card.CardType,
		CreditLimit:     card.CreditLimit,
		AvailableCredit: card.AvailableCredit,
		IsActive:        card.IsActive,
		CreatedAt:       card.CreatedAt,
		UpdatedAt:       card.UpdatedAt,
	}
}

// ListCreditCardsResponse represents one page of credit cards.
type ListCreditCardsResponse struct {
	Data        []CreditCardResponse `json:"data"`
	Total       int64                `json:"total"`
	Offset      int                  `json:"offset"`
	Limit       int                  `json:"limit"`
	HasPrevious bool                 `json:"has_previous"`
	HasNext     bool                 `json:"has_next"`
}

// MapCreditCardPageToListResponse converts a page of domain credit cards to a list response.
func MapCreditCardPageToListResponse(
	page *creditcardDomain.Page[*creditcardDomain.CreditCard],
) ListCreditCardsResponse {
	data := make([]CreditCardResponse, 0, len(page.Items))
	for _, card := range page.Items {
		data = append(data, MapCreditCardToResponse(card))
	}

	return ListCreditCardsResponse{
		Data:        data,
		Total:       page.Total,
		Offset:      page.Offset,
		Limit:       page.Limit,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
}

// CreditCardReportResponse represents a report row in API responses.
type CreditCardReportResponse struct {
	ID              string    `json:"id"`
	CardNumber      string    `json:"card_number"`
	CardHolderName  string    `json:"card_holder_name"`
	CardType        string    `json:"card_type"`
	CreditLimit     int64     `json:"credit_limit"`
	AvailableCredit int64     `json:"available_credit"`
	UsedCredit      int64     `json:"used_credit"`
	UsagePercentage float64   `json:"usage_percentage"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// MapReportToResponse converts a domain report to an API response.
func MapReportToResponse(report *creditcardDomain.CreditCardReport) CreditCardReportResponse {
	return CreditCardReportResponse{
		ID:              report.ID.String(),
		CardNumber:      report.MaskedCardNumber,
		CardHolderName:  report.CardHolderName,
		CardType:        report.CardType,
		CreditLimit:     report.CreditLimit,
		AvailableCredit: report.AvailableCredit,
		UsedCredit:      report.UsedCredit,
		UsagePercentage: report.UsagePercentage,
		IsActive:        report.IsActive,
		CreatedAt:       report.CreatedAt,
	}
}

// ListCreditCardReportsResponse represents a list of report rows.
type ListCreditCardReportsResponse struct {
	Data []CreditCardReportResponse `json:"data"`
}

// MapReportsToListResponse converts domain reports to a list response.
func MapReportsToListResponse(reports []*creditcardDomain.CreditCardReport) ListCreditCardReportsResponse {
	data := make([]CreditCardReportResponse, 0, len(reports))
	for _, report := range reports {
		data = append(data, MapReportToResponse(report))
	}

	return ListCreditCardReportsResponse{
		Data: data,
	}
}
