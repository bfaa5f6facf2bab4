package commands

import (
	"fmt"
	"io"
	"strings"

	creditcardDomain "github.com/allisson/creditcards/internal/creditcard/domain"
)

// RunHashCardNumber prints the card_number_hash value stored for cardNumber, letting
// operators locate a row without decrypting the table.
func RunHashCardNumber(hasher creditcardDomain.CardNumberHasher, writer io.Writer, cardNumber string) error {
	cardNumber = strings.TrimSpace(cardNumber)
	if cardNumber == "" {
		return fmt.Errorf("card number cannot be empty")
	}

	hash, err := hasher.ComputeHash(cardNumber)
	if err != nil {
		return fmt.Errorf("failed to hash card number: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "Card number: %s\n", creditcardDomain.MaskCardNumber(cardNumber))
	_, _ = fmt.Fprintf(writer, "Lookup hash: %s\n", hash)
	return nil
}
