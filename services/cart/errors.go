package cart

import "errors"

// Caller-facing failures of the cart engine. Controllers translate these to
// HTTP status codes; the engine never converts one into a different outcome.
var (
	ErrNotAuthorized   = errors.New("cart: requester does not own this item")
	ErrNotFound        = errors.New("cart: record not found")
	ErrProductNotFound = errors.New("cart: product not found")
	ErrInvalidQuantity = errors.New("cart: quantity must be greater than zero")
)
