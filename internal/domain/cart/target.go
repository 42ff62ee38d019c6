// internal/domain/cart/target.go
package cart

import (
	"bytes"
	"html/template"
	"sync"
)

// Target receives every freshly rendered view
type Target interface {
	Paint(View)
}

// TargetFunc adapts a function to Target
type TargetFunc func(View)

// Paint calls f(view)
func (f TargetFunc) Paint(view View) { f(view) }

var sidebarTemplate = template.Must(template.New("cart-sidebar").Parse(`<div class="cart-items">
{{- range .Items}}
<div class="cart-item">
<img src="{{.Image}}" alt="{{.Name}}">
<div class="cart-item-details">
<h4>{{.Name}}</h4>
<span class="item-price">{{.UnitPriceText}}</span>
</div>
<div class="cart-item-controls">
<button data-id="{{.ID}}" data-action="decrease">-</button>
<span>{{.Quantity}}</span>
<button data-id="{{.ID}}" data-action="increase">+</button>
</div>
<button class="remove-item" data-id="{{.ID}}">&times;</button>
</div>
{{- end}}
</div>
<p class="empty-cart-message" style="display: {{if .Empty}}block{{else}}none{{end}}">Your cart is empty.</p>
<span class="cart-count">{{.Count}}</span>
<span id="cartTotal">{{.TotalText}}</span>
`))

// RenderHTML renders the cart sidebar fragment for a view
func RenderHTML(view View) (string, error) {
	var buf bytes.Buffer
	if err := sidebarTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HTMLTarget keeps the last rendered sidebar fragment.
// The fragment is regenerated in full on every paint.
type HTMLTarget struct {
	mu   sync.Mutex
	html string
	err  error
}

// NewHTMLTarget creates an empty HTML target
func NewHTMLTarget() *HTMLTarget {
	return &HTMLTarget{}
}

// Paint replaces the fragment with a rendering of view
func (t *HTMLTarget) Paint(view View) {
	html, err := RenderHTML(view)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.html, t.err = html, err
}

// Fragment returns the last rendered fragment
func (t *HTMLTarget) Fragment() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.html, t.err
}
