// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
	customValidation "github.com/allisson/creditcards/internal/validation"
)

// CreateCreditCardRequest contains the parameters for issuing a credit card.
// Money fields are integer cents.
type CreateCreditCardRequest struct {
	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	ExpirationDate string `json:"expiration_date"` // MM/YY
	CVV            string `json:"cvv"`
	CreditLimit    int64  `json:"credit_limit"`
	CardType       string `json:"card_type"`
}

// Validate checks if the create credit card request is valid.
func (r *CreateCreditCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CardNumber,
			validation.Required,
			customValidation.Digits,
			validation.Length(13, 19),
			customValidation.Luhn,
		),
		validation.Field(&r.CardHolderName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(3, 100),
		),
		validation.Field(&r.ExpirationDate,
			validation.Required,
			customValidation.ExpirationDate,
		),
		validation.Field(&r.CVV,
			validation.Required,
			customValidation.Digits,
			validation.Length(3, 4),
		),
		validation.Field(&r.CreditLimit,
			validation.Required,
			validation.Min(int64(1)),
			validation.Max(creditcardDomain.MaxAmount),
		),
		validation.Field(&r.CardType,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 50),
		),
	)
}

// ToInput maps the request to the domain input.
func (r *CreateCreditCardRequest) ToInput() creditcardDomain.NewCreditCardInput {
	return creditcardDomain.NewCreditCardInput{
		CardNumber:     r.CardNumber,
		CardHolderName: r.CardHolderName,
		ExpirationDate: r.ExpirationDate,
		CVV:            r.CVV,
		CreditLimit:    r.CreditLimit,
		CardType:       r.CardType,
	}
}

// UpdateCreditCardRequest contains the mutable card fields. Omitted fields are unchanged,
// but at least one must be present.
type UpdateCreditCardRequest struct {
	CardHolderName *string `json:"card_holder_name"`
	CreditLimit    *int64  `json:"credit_limit"`
}

// Validate checks if the update credit card request is valid.
func (r *UpdateCreditCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CardHolderName,
			validation.When(r.CreditLimit == nil, validation.Required),
			validation.NilOrNotEmpty,
			customValidation.NotBlank,
			validation.Length(3, 100),
		),
		validation.Field(&r.CreditLimit,
			validation.When(r.CardHolderName == nil, validation.Required),
			validation.Min(int64(1)),
			validation.Max(creditcardDomain.MaxAmount),
		),
	)
}

// ToInput maps the request to the domain input.
func (r *UpdateCreditCardRequest) ToInput() creditcardDomain.UpdateCreditCardInput {
	return creditcardDomain.UpdateCreditCardInput{
		CardHolderName: r.CardHolderName,
		CreditLimit:    r.CreditLimit,
	}
}

// TransactionRequest carries the amount of a charge or payment in cents.
type TransactionRequest struct {
	Amount int64 `json:"amount"`
}

// Validate checks if the transaction request is valid.
func (r *TransactionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Amount,
			validation.Required,
			validation.Min(int64(1)),
			validation.Max(creditcardDomain.MaxAmount),
		),
	)
}
