// internal/domain/page/chrome.go
package page

// Chrome is the open/closed state of the cart sidebar, the search overlay
// and the dimming overlay behind them.
type Chrome struct {
	CartOpen   bool   `json:"cart_open"`
	SearchOpen bool   `json:"search_open"`
	SearchTerm string `json:"search_term"`
}

// OverlayActive is true while either panel is open
func (c Chrome) OverlayActive() bool {
	return c.CartOpen || c.SearchOpen
}

// OpenCart shows the cart sidebar
func (c Chrome) OpenCart() Chrome {
	c.CartOpen = true
	return c
}

// CloseCart hides the cart sidebar
func (c Chrome) CloseCart() Chrome {
	c.CartOpen = false
	return c
}

// OpenSearch shows the search overlay
func (c Chrome) OpenSearch() Chrome {
	c.SearchOpen = true
	return c
}

// CloseSearch hides the search overlay and clears the term, so every card shows again
func (c Chrome) CloseSearch() Chrome {
	c.SearchOpen = false
	c.SearchTerm = ""
	return c
}

// ToggleSearch flips the search overlay; closing clears the term
func (c Chrome) ToggleSearch() Chrome {
	if c.SearchOpen {
		return c.CloseSearch()
	}
	return c.OpenSearch()
}

// Type records the search term while the overlay is open
func (c Chrome) Type(term string) Chrome {
	if c.SearchOpen {
		c.SearchTerm = term
	}
	return c
}

// ClickOverlay closes both panels
func (c Chrome) ClickOverlay() Chrome {
	c.CartOpen = false
	c.SearchOpen = false
	return c
}
