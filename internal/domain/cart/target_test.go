package cart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML_Items(t *testing.T) {
	view := BuildView([]LineItem{
		{ID: "farm-eggs", Name: "Farm Eggs", UnitPrice: price("120"), Image: "images/farm-eggs.jpg", Quantity: 2},
	}, DefaultCurrencySign)

	html, err := RenderHTML(view)
	require.NoError(t, err)

	assert.Contains(t, html, `<img src="images/farm-eggs.jpg" alt="Farm Eggs">`)
	assert.Contains(t, html, `data-id="farm-eggs" data-action="decrease"`)
	assert.Contains(t, html, `<span>2</span>`)
	assert.Contains(t, html, `<span id="cartTotal">₹ 240.00</span>`)
	assert.Contains(t, html, `style="display: none"`)
	assert.Contains(t, html, `<span class="cart-count">1</span>`)
}

func TestRenderHTML_EmptyShowsMessage(t *testing.T) {
	html, err := RenderHTML(BuildView(nil, DefaultCurrencySign))
	require.NoError(t, err)

	assert.Contains(t, html, `style="display: block"`)
	assert.NotContains(t, html, `class="cart-item"`)
	assert.Contains(t, html, `<span class="cart-count">0</span>`)
}

func TestRenderHTML_EscapesNames(t *testing.T) {
	view := BuildView([]LineItem{
		{ID: "x", Name: `<script>alert("x")</script>`, UnitPrice: price("1"), Quantity: 1},
	}, DefaultCurrencySign)

	html, err := RenderHTML(view)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>"))
}

func TestHTMLTarget_RegeneratesOnEveryPaint(t *testing.T) {
	target := NewHTMLTarget()
	m := NewManager("", target)

	m.AddItem("farm-eggs", "Farm Eggs", price("120"), "")
	first, err := target.Fragment()
	require.NoError(t, err)
	assert.Contains(t, first, "Farm Eggs")

	m.RemoveItem("farm-eggs")
	second, err := target.Fragment()
	require.NoError(t, err)
	assert.NotContains(t, second, "Farm Eggs")
	assert.Contains(t, second, `style="display: block"`)
}
