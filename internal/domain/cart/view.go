// internal/domain/cart/view.go
package cart

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrencySign prefixes every formatted amount
const DefaultCurrencySign = "₹"

// FormatAmount renders an amount as "<sign> 120.00"
func FormatAmount(sign string, amount decimal.Decimal) string {
	return sign + " " + amount.StringFixed(2)
}

// BuildView computes the cart summary from the line items.
// It never mutates items and has no side effects.
func BuildView(items []LineItem, sign string) View {
	view := View{
		Items: make([]LineView, 0, len(items)),
		Total: decimal.Zero,
		Count: len(items),
		Empty: len(items) == 0,
	}

	for _, item := range items {
		subtotal := item.Subtotal()
		view.Total = view.Total.Add(subtotal)
		view.Items = append(view.Items, LineView{
			ID:            item.ID,
			Name:          item.Name,
			Image:         item.Image,
			UnitPrice:     item.UnitPrice,
			UnitPriceText: FormatAmount(sign, item.UnitPrice),
			Quantity:      item.Quantity,
			Subtotal:      subtotal,
		})
	}

	view.TotalText = FormatAmount(sign, view.Total)
	return view
}
