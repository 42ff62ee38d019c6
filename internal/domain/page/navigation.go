// internal/domain/page/navigation.go
package page

// ScrollMargin is the extra space kept above a scrolled-to section
const ScrollMargin = 20

// ScrollOffset is the window position that brings a section just below
// the sticky header. elementTop is relative to the viewport.
func ScrollOffset(elementTop, pageYOffset, headerHeight float64) float64 {
	return elementTop + pageYOffset - headerHeight - ScrollMargin
}

// Link is a navigation shortcut on the page
type Link struct {
	Name    string `json:"name"`
	Target  string `json:"target"`
	Notice  string `json:"notice,omitempty"`
	Prefill string `json:"message_prefill,omitempty"`
}

// Links returns the in-page shortcuts. "View all" is a stub: the page has
// no separate catalog page, so it only scrolls and explains.
func Links() []Link {
	return []Link{
		{Name: "home", Target: "#home"},
		{Name: "products", Target: "#products"},
		{Name: "poultry", Target: "#poultry"},
		{Name: "delivery", Target: "#delivery"},
		{Name: "contact", Target: "#contact"},
		{
			Name:   "view-all-eggs",
			Target: "#products",
			Notice: `This "View all eggs" link would typically go to a dedicated egg products page in a multi-page site.`,
		},
		{
			Name:    "bulk-poultry",
			Target:  "#contact",
			Prefill: "Bulk poultry enquiry. Please specify type and quantity of birds needed.",
		},
	}
}

// FindLink looks a link up by name
func FindLink(name string) (Link, bool) {
	for _, l := range Links() {
		if l.Name == name {
			return l, true
		}
	}
	return Link{}, false
}
