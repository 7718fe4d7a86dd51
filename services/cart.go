package services

import (
	"github.com/ai-software-engineering-group/tech-store-website/models"
)

// CartLine is the storage-agnostic view of one cart entry. The owner (user id
// or guest cookie scope) is bound when the store is constructed, so lines only
// carry the product reference and quantity.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartStore unifies the two cart backends: rows in the cart_items table for
// authenticated users, and a signed cookie for guests. One store instance is
// selected per request.
type CartStore interface {
	// Get returns all lines for the owner, order irrelevant.
	Get() ([]CartLine, error)
	// GetOne returns the line for productID, or ErrNotFound.
	GetOne(productID string) (*CartLine, error)
	// Add creates a new line. The caller checks for an existing line first:
	// the database store fails on a duplicate, the cookie store would append
	// one blindly.
	Add(line CartLine) (bool, error)
	// UpdateQuantity overwrites the line's quantity and reports whether the
	// write took effect.
	UpdateQuantity(productID string, qty int) (bool, error)
	// Remove deletes the line and reports whether anything was deleted.
	Remove(productID string) (bool, error)
}

// Quantity change types accepted by the cart update endpoint. Any other value
// is treated as an absolute set.
const (
	ChangeTypePlus  = "plus"
	ChangeTypeMinus = "minus"
)

// ResolveQuantity turns a change request into a final quantity. The result is
// floored at 1; stock ceilings are applied separately by ClampQuantity.
func ResolveQuantity(changeType string, current, requested int) int {
	switch changeType {
	case ChangeTypePlus:
		current += requested
	case ChangeTypeMinus:
		current -= requested
	default:
		current = requested
	}
	if current < 1 {
		return 1
	}
	return current
}

// ClampQuantity ceilings qty at the available warehouse stock. The second
// return reports whether clamping happened.
func ClampQuantity(qty, stock int) (int, bool) {
	if qty > stock {
		return stock, true
	}
	return qty, false
}

// LineTotal is the subtotal of one line at the product's effective price.
func LineTotal(p models.Product, qty int) float64 {
	return p.EffectivePrice() * float64(qty)
}
