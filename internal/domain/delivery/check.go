// internal/domain/delivery/check.go
package delivery

import (
	"fmt"
	"strings"
)

// Status is the outcome of a delivery lookup
type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "not-available"
	StatusInvalid     Status = "invalid"
)

// Result is what the delivery widget shows
type Result struct {
	Pincode string `json:"pincode"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Available reports whether delivery is possible
func (r Result) Available() bool {
	return r.Status == StatusAvailable
}

// Whitelist is a read-only set of serviceable pincodes
type Whitelist map[string]struct{}

// NewWhitelist builds a whitelist from codes
func NewWhitelist(codes ...string) Whitelist {
	w := make(Whitelist, len(codes))
	for _, c := range codes {
		w[c] = struct{}{}
	}
	return w
}

// Contains is an exact-match membership test
func (w Whitelist) Contains(code string) bool {
	_, ok := w[code]
	return ok
}

// ValidFormat reports whether s is exactly six ASCII digits
func ValidFormat(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Check decides delivery availability for user input.
// Malformed input is rejected before the membership test.
func Check(w Whitelist, input string) Result {
	code := strings.TrimSpace(input)

	if !ValidFormat(code) {
		return Result{
			Pincode: code,
			Status:  StatusInvalid,
			Message: "Please enter a valid 6-digit Pin Code.",
		}
	}

	if w.Contains(code) {
		return Result{
			Pincode: code,
			Status:  StatusAvailable,
			Message: fmt.Sprintf("Delivery available for %s! Estimated delivery: 1-2 business days.", code),
		}
	}

	return Result{
		Pincode: code,
		Status:  StatusUnavailable,
		Message: fmt.Sprintf("Currently, we do not deliver to %s. Please contact us for bulk orders.", code),
	}
}
