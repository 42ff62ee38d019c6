package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChrome_OverlayFollowsPanels(t *testing.T) {
	var c Chrome
	assert.False(t, c.OverlayActive())

	c = c.OpenCart()
	assert.True(t, c.OverlayActive())

	c = c.CloseCart()
	assert.False(t, c.OverlayActive())
}

func TestChrome_CloseSearchClearsTerm(t *testing.T) {
	c := Chrome{}.OpenSearch().Type("quail")
	assert.Equal(t, "quail", c.SearchTerm)

	c = c.CloseSearch()
	assert.False(t, c.SearchOpen)
	assert.Empty(t, c.SearchTerm)
}

func TestChrome_TypeIgnoredWhileClosed(t *testing.T) {
	c := Chrome{}.Type("duck")
	assert.Empty(t, c.SearchTerm)
}

func TestChrome_ToggleSearch(t *testing.T) {
	c := Chrome{}.ToggleSearch()
	assert.True(t, c.SearchOpen)

	c = c.Type("eggs").ToggleSearch()
	assert.False(t, c.SearchOpen)
	assert.Empty(t, c.SearchTerm)
}

func TestChrome_ClickOverlayClosesBoth(t *testing.T) {
	c := Chrome{}.OpenCart().OpenSearch().ClickOverlay()

	assert.False(t, c.CartOpen)
	assert.False(t, c.SearchOpen)
	assert.False(t, c.OverlayActive())
}

func TestScrollOffset(t *testing.T) {
	assert.Equal(t, 1380.0, ScrollOffset(400, 1080, 80))
	assert.Equal(t, -100.0, ScrollOffset(0, 0, 80))
}

func TestFindLink(t *testing.T) {
	l, ok := FindLink("bulk-poultry")
	require.True(t, ok)
	assert.Equal(t, "#contact", l.Target)
	assert.NotEmpty(t, l.Prefill)

	l, ok = FindLink("view-all-eggs")
	require.True(t, ok)
	assert.Equal(t, "#products", l.Target)

	_, ok = FindLink("blog")
	assert.False(t, ok)
}
