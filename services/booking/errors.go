package booking

import (
	"errors"
	"fmt"

	"painterbook/models"
	"painterbook/services/scheduling"
)

var (
	ErrMissingCustomer = errors.New("customer id is required")
	ErrMissingPainter  = errors.New("painter id is required")
	ErrCustomerOverlap = models.ErrCustomerOverlap
)

// NoPainterError is returned when nobody can take the requested window. It
// carries the alternative slots the customer may pick instead.
type NoPainterError struct {
	Suggestions []models.BookingSuggestion
}

func (e *NoPainterError) Error() string {
	return fmt.Sprintf("no painters are available for the requested time slot (%d suggestions)", len(e.Suggestions))
}

func (e *NoPainterError) Unwrap() error {
	return scheduling.ErrNoProviderAvailable
}
