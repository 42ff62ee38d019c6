// internal/domain/catalog/filter.go
package catalog

import "strings"

// Visibility is the show/hide decision for one product card
type Visibility struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
}

// Matches reports whether a product card stays visible for the search term.
// The term is compared case-insensitively against name, category and description.
func Matches(p Product, term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

// Filter returns a visibility decision for every product, in catalog order
func Filter(products []Product, term string) []Visibility {
	out := make([]Visibility, len(products))
	for i, p := range products {
		out[i] = Visibility{ID: p.Slug, Visible: Matches(p, term)}
	}
	return out
}

// Visible returns only the products that match the term
func Visible(products []Product, term string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if Matches(p, term) {
			out = append(out, p)
		}
	}
	return out
}
