package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the referenced record is not live in the ledger.
var ErrNotFound = errors.New("record not found")

const (
	msgRequiredFields = "Please fill in all required fields"
	msgUsageRequired  = "Please select material and enter quantity"
)

// ValidationError reports a rejected form. The ledger is left unchanged.
// Message is suitable for showing to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InsufficientStockError reports a usage that exceeds the material's current stock.
type InsufficientStockError struct {
	MaterialID int
	Requested  float64
	Available  float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for material %d: requested %g, available %g", e.MaterialID, e.Requested, e.Available)
}

func missing(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
