// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in the cart with its own quantity
type LineItem struct {
	ID        string          `json:"id"` // derived from the product name
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is unit price times quantity
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineView is one rendered row of the cart sidebar
type LineView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Image         string          `json:"image"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	UnitPriceText string          `json:"unit_price_text"`
	Quantity      int             `json:"quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// View is the cart summary computed from the line items
type View struct {
	Items     []LineView      `json:"items"`
	Total     decimal.Decimal `json:"total_amount"`
	TotalText string          `json:"total"`
	Count     int             `json:"count"` // distinct line items, not units
	Empty     bool            `json:"empty"`
}
