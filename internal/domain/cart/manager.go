// internal/domain/cart/manager.go
package cart

import (
	"github.com/shopspring/decimal"
)

// Manager owns the ordered line items of one page session.
// Every mutation re-renders the full view into the target.
// A Manager is not safe for concurrent use; Store serializes access.
type Manager struct {
	items  []LineItem
	sign   string
	target Target
}

// NewManager creates an empty cart. target may be nil.
func NewManager(sign string, target Target) *Manager {
	if sign == "" {
		sign = DefaultCurrencySign
	}
	return &Manager{
		sign:   sign,
		target: target,
	}
}

// AddItem increments the quantity of an existing item or appends a new one with quantity 1
func (m *Manager) AddItem(id, name string, price decimal.Decimal, image string) View {
	if i := m.indexOf(id); i >= 0 {
		m.items[i].Quantity++
	} else {
		m.items = append(m.items, LineItem{
			ID:        id,
			Name:      name,
			UnitPrice: price,
			Image:     image,
			Quantity:  1,
		})
	}
	return m.Render()
}

// ChangeQuantity applies delta (+1 or -1) to an item. An item that
// drops to zero is removed. Unknown ids and other deltas are no-ops.
func (m *Manager) ChangeQuantity(id string, delta int) View {
	if delta == 1 || delta == -1 {
		if i := m.indexOf(id); i >= 0 {
			m.items[i].Quantity += delta
			if m.items[i].Quantity <= 0 {
				m.removeAt(i)
			}
		}
	}
	return m.Render()
}

// RemoveItem deletes an item if present
func (m *Manager) RemoveItem(id string) View {
	if i := m.indexOf(id); i >= 0 {
		m.removeAt(i)
	}
	return m.Render()
}

// Clear empties the cart
func (m *Manager) Clear() View {
	m.items = nil
	return m.Render()
}

// Render recomputes the view and paints it into the target
func (m *Manager) Render() View {
	view := BuildView(m.items, m.sign)
	if m.target != nil {
		m.target.Paint(view)
	}
	return view
}

// Items returns a copy of the line items in insertion order
func (m *Manager) Items() []LineItem {
	out := make([]LineItem, len(m.items))
	copy(out, m.items)
	return out
}

// Len is the number of distinct line items
func (m *Manager) Len() int {
	return len(m.items)
}

// Target returns the rendering target, possibly nil
func (m *Manager) Target() Target {
	return m.target
}

func (m *Manager) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) removeAt(i int) {
	m.items = append(m.items[:i], m.items[i+1:]...)
}
