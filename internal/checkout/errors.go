package checkout

import (
	"errors"
	"fmt"
)

// ErrSubmitInFlight rejects a second checkout attempt while one is still
// outstanding for the same session.
var ErrSubmitInFlight = errors.New("checkout: submission already in flight")

// ValidationError means the cart or customer input cannot produce an
// intent. It is user-facing and never reaches the payment collaborator.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: %s: %s", e.Field, e.Reason)
}

// CollaboratorError wraps a payment-collaborator failure. The cart is left
// untouched and the shopper can retry.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("checkout: %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
