// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/farm-storefront/internal/domain/catalog"
)

// ProductFinder resolves a product card by its id
type ProductFinder interface {
	Get(ctx context.Context, slug string) (*catalog.Product, error)
}

// Service handles cart actions for page sessions
type Service struct {
	store    *Store
	products ProductFinder
	sign     string
	log      logrus.FieldLogger
}

// NewService creates a new cart service
func NewService(store *Store, products ProductFinder, sign string, log logrus.FieldLogger) *Service {
	if sign == "" {
		sign = DefaultCurrencySign
	}
	return &Service{
		store:    store,
		products: products,
		sign:     sign,
		log:      log,
	}
}

// NewSessionManager is the Store factory used by the HTTP server:
// every session renders into its own HTML sidebar target.
func NewSessionManager(sign string) func() *Manager {
	return func() *Manager {
		return NewManager(sign, NewHTMLTarget())
	}
}

// AddResult is the outcome of an add-to-cart click
type AddResult struct {
	View    View   `json:"cart"`
	Message string `json:"notice"`
}

// CheckoutResult is the outcome of the checkout placeholder
type CheckoutResult struct {
	Message string `json:"notice"`
	Anchor  string `json:"scroll_to"`
	Prefill string `json:"message_prefill"`
	View    View   `json:"cart"`
}

// Add puts one unit of a catalog product into the session's cart
func (s *Service) Add(ctx context.Context, sessionID, productID string) (*AddResult, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.EnquiryOnly {
		return nil, ErrEnquiryOnly
	}

	id := catalog.Slugify(p.Name)
	view := s.store.With(sessionID, func(m *Manager) View {
		return m.AddItem(id, p.Name, p.Price, p.Image)
	})

	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"item":    id,
		"count":   view.Count,
	}).Debug("item added to cart")

	return &AddResult{
		View:    view,
		Message: fmt.Sprintf("%s added to cart!", p.Name),
	}, nil
}

// Increase adds one unit of an item already in the cart
func (s *Service) Increase(sessionID, itemID string) View {
	return s.changeQuantity(sessionID, itemID, 1)
}

// Decrease removes one unit, dropping the item at zero
func (s *Service) Decrease(sessionID, itemID string) View {
	return s.changeQuantity(sessionID, itemID, -1)
}

// Remove deletes an item from the cart
func (s *Service) Remove(sessionID, itemID string) View {
	return s.store.With(sessionID, func(m *Manager) View {
		return m.RemoveItem(itemID)
	})
}

// View renders the current cart
func (s *Service) View(sessionID string) View {
	return s.store.With(sessionID, func(m *Manager) View {
		return m.Render()
	})
}

// Clear empties the cart
func (s *Service) Clear(sessionID string) View {
	return s.store.With(sessionID, func(m *Manager) View {
		return m.Clear()
	})
}

// Fragment renders the cart and returns the HTML sidebar fragment
func (s *Service) Fragment(sessionID string) (string, error) {
	var (
		html string
		err  error
	)
	s.store.With(sessionID, func(m *Manager) View {
		view := m.Render()
		if t, ok := m.Target().(*HTMLTarget); ok {
			html, err = t.Fragment()
		} else {
			html, err = RenderHTML(view)
		}
		return view
	})
	return html, err
}

// Checkout is a placeholder: it does not place an order. It summarises the
// cart into a contact-form message and points the page at the contact section.
func (s *Service) Checkout(sessionID string) (*CheckoutResult, error) {
	var items []LineItem
	view := s.store.With(sessionID, func(m *Manager) View {
		items = m.Items()
		return m.Render()
	})

	if view.Empty {
		return nil, ErrCartEmpty
	}

	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s (Qty: %d)", item.Name, item.Quantity)
	}

	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"total":   view.TotalText,
	}).Info("checkout placeholder requested")

	return &CheckoutResult{
		Message: "Proceeding to Checkout! (This is a placeholder. In a real site, you would go to a checkout page)",
		Anchor:  "#contact",
		Prefill: fmt.Sprintf("Order from cart: %s. Total: %s. Please confirm delivery details.",
			strings.Join(parts, ", "), view.TotalText),
		View: view,
	}, nil
}

func (s *Service) changeQuantity(sessionID, itemID string, delta int) View {
	return s.store.With(sessionID, func(m *Manager) View {
		return m.ChangeQuantity(itemID, delta)
	})
}
