package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestManager_AddSameItemTwice(t *testing.T) {
	m := NewManager("", nil)

	m.AddItem("farm-eggs", "Farm Eggs", price("120.00"), "eggs.jpg")
	view := m.AddItem("farm-eggs", "Farm Eggs", price("120.00"), "eggs.jpg")

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, "₹ 240.00", view.TotalText)
}

func TestManager_DecreaseFromOneRemoves(t *testing.T) {
	m := NewManager("", nil)
	m.AddItem("duck-eggs", "Duck Eggs", price("240"), "")

	view := m.ChangeQuantity("duck-eggs", -1)

	assert.True(t, view.Empty)
	assert.Equal(t, 0, m.Len())
}

func TestManager_RemoveMissingIsNoop(t *testing.T) {
	m := NewManager("", nil)
	m.AddItem("farm-eggs", "Farm Eggs", price("120"), "")
	before := m.Items()

	view := m.RemoveItem("goose-eggs")

	assert.Equal(t, before, m.Items())
	assert.Equal(t, 1, view.Count)
}

func TestManager_ChangeQuantityMissingIsNoop(t *testing.T) {
	m := NewManager("", nil)
	m.AddItem("farm-eggs", "Farm Eggs", price("120"), "")

	m.ChangeQuantity("goose-eggs", 1)
	m.ChangeQuantity("goose-eggs", -1)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestManager_ChangeQuantityRejectsOtherDeltas(t *testing.T) {
	m := NewManager("", nil)
	m.AddItem("farm-eggs", "Farm Eggs", price("120"), "")

	m.ChangeQuantity("farm-eggs", 5)
	m.ChangeQuantity("farm-eggs", -3)
	m.ChangeQuantity("farm-eggs", 0)

	assert.Equal(t, 1, m.Items()[0].Quantity)
}

func TestManager_AddTwiceDecreaseOnce(t *testing.T) {
	m := NewManager("", nil)
	m.AddItem("farm-eggs", "Farm Eggs", price("120.00"), "")
	m.AddItem("farm-eggs", "Farm Eggs", price("120.00"), "")

	view := m.ChangeQuantity("farm-eggs", -1)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.True(t, view.Total.Equal(price("120")))
	assert.Equal(t, "₹ 120.00", view.TotalText)
}

func TestManager_InsertionOrderSurvivesMutation(t *testing.T) {
	m := NewManager("", nil)
	m.AddItem("a", "A", price("1"), "")
	m.AddItem("b", "B", price("2"), "")
	m.AddItem("c", "C", price("3"), "")
	m.AddItem("a", "A", price("1"), "")
	m.RemoveItem("b")

	view := m.AddItem("d", "D", price("4"), "")

	var ids []string
	for _, l := range view.Items {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
}

func TestManager_QuantityNeverBelowOne(t *testing.T) {
	m := NewManager("", nil)
	m.AddItem("a", "A", price("10"), "")
	m.AddItem("b", "B", price("20"), "")

	for i := 0; i < 4; i++ {
		m.ChangeQuantity("a", -1)
		m.ChangeQuantity("b", 1)
		for _, item := range m.Items() {
			assert.GreaterOrEqual(t, item.Quantity, 1)
		}
	}
	assert.Equal(t, 1, m.Len())
}

func TestManager_EveryOperationPaints(t *testing.T) {
	var painted []View
	m := NewManager("", TargetFunc(func(v View) { painted = append(painted, v) }))

	m.AddItem("a", "A", price("10"), "")
	m.ChangeQuantity("a", 1)
	m.ChangeQuantity("missing", 1)
	m.RemoveItem("missing")
	m.RemoveItem("a")
	m.Render()

	require.Len(t, painted, 6)
	assert.Equal(t, 2, painted[1].Items[0].Quantity)
	assert.True(t, painted[4].Empty)
}

func TestManager_ItemsIsACopy(t *testing.T) {
	m := NewManager("", nil)
	m.AddItem("a", "A", price("10"), "")

	items := m.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, m.Items()[0].Quantity)
}

func TestManager_Clear(t *testing.T) {
	m := NewManager("Rs.", nil)
	m.AddItem("a", "A", price("10"), "")

	view := m.Clear()

	assert.True(t, view.Empty)
	assert.Equal(t, "Rs. 0.00", view.TotalText)
}
