// internal/domain/enquiry/prefill.go
package enquiry

import "fmt"

// ContactAnchor is the page section holding the contact form
const ContactAnchor = "#contact"

// Prefill is what the page puts into the contact form before scrolling to it
type Prefill struct {
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
	Notice  string `json:"notice,omitempty"`
	Anchor  string `json:"scroll_to"`
	Source  Source `json:"source"`
}

// ProductPrefill builds the enquiry text for an "Enquire Now" click on a product card
func ProductPrefill(name, priceLabel string) Prefill {
	return Prefill{
		Message: fmt.Sprintf("Enquiry for: %s (Price: %s). Please provide more details or quantity needed.", name, priceLabel),
		Hint:    "Please fill the form below with your enquiry details.",
		Notice:  fmt.Sprintf("Thank you for your interest in %s! Please contact us for details.", name),
		Anchor:  ContactAnchor,
		Source:  SourceProductEnquiry,
	}
}

// BulkPoultryPrefill builds the enquiry text for the "Contact for Bulk Poultry" link
func BulkPoultryPrefill() Prefill {
	return Prefill{
		Message: "Bulk poultry enquiry. Please specify type and quantity of birds needed.",
		Anchor:  ContactAnchor,
		Source:  SourceBulkPoultry,
	}
}
