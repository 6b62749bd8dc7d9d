package ledger

import (
	"github.com/rogerio-castellano/stock-ledger/internal/models"
)

// Ledger holds the current set of products, in load order. Duplicate ids are
// not rejected; lookups return the first match. All operations assume one
// caller at a time, synchronization is the integrator's concern.
type Ledger struct {
	products []models.Product
}

// New creates a ledger seeded with the given products. The slice is copied so
// the caller cannot alias ledger state.
func New(products []models.Product) *Ledger {
	l := &Ledger{products: make([]models.Product, len(products))}
	copy(l.products, products)
	return l
}

// FindProduct returns a pointer to the first product with the given id, or
// false when no product matches. The pointer stays valid until the ledger is
// replaced.
func (l *Ledger) FindProduct(productID string) (*models.Product, bool) {
	for i := range l.products {
		if l.products[i].ProductID == productID {
			return &l.products[i], true
		}
	}
	return nil, false
}

// AddStock increases the product's quantity. It returns false only when the
// product does not exist; the quantity argument itself is not validated.
func (l *Ledger) AddStock(productID string, quantity int) bool {
	product, ok := l.FindProduct(productID)
	if !ok {
		return false
	}
	product.Quantity += quantity
	return true
}

// RemoveStock decreases the product's quantity. It returns false when the
// product does not exist or holds less than the requested amount; draining to
// exactly zero succeeds. On failure the ledger is left unchanged.
func (l *Ledger) RemoveStock(productID string, quantity int) bool {
	product, ok := l.FindProduct(productID)
	if !ok {
		return false
	}
	if product.Quantity < quantity {
		return false
	}
	product.Quantity -= quantity
	return true
}

// Products returns a snapshot copy of all products in ledger order.
func (l *Ledger) Products() []models.Product {
	out := make([]models.Product, len(l.products))
	copy(out, l.products)
	return out
}

// Len returns the number of products, duplicates included.
func (l *Ledger) Len() int {
	return len(l.products)
}
