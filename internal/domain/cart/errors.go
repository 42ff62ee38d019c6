// internal/domain/cart/errors.go
package cart

import "errors"

var (
	// ErrEnquiryOnly is returned when a product can only be enquired about
	ErrEnquiryOnly = errors.New("product is available on enquiry only")
	// ErrCartEmpty is returned when checking out an empty cart
	ErrCartEmpty = errors.New("cart is empty")
	// ErrSessionRequired is returned when no page session id is given
	ErrSessionRequired = errors.New("session id required")
)
