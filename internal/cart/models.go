// Package cart implements the shopping cart: line-item merge rules, the
// local and remote durable mirrors, and the reconciliation controller that
// decides which mirror is authoritative for a session.
package cart

import (
	"codedrip/internal/catalog"
	id "codedrip/pkg/domain"
)

// LineItem is one (product, size, color) entry with a quantity.
type LineItem struct {
	ProductID id.ProductID  `json:"productId"`
	Size      catalog.Size  `json:"size"`
	Color     catalog.Color `json:"color"`
	Quantity  int           `json:"quantity"`
}

// Key is the identity triple that decides whether two entries are the same
// line item. Quantity never participates in identity.
type Key struct {
	ProductID id.ProductID
	Size      catalog.Size
	Color     catalog.Color
}

// Key returns the identity triple of the item.
func (i LineItem) Key() Key {
	return Key{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

// Cart is the server-side anonymous cart resource.
type Cart struct {
	ID    id.CartID  `json:"id"`
	Items []LineItem `json:"items"`
}

// AddItem merges item into items under the uniqueness invariant: at most one
// entry per identity triple. A matching entry is replaced by one with the
// summed quantity, keeping its position; otherwise the item is appended.
// The input slice is not mutated.
func AddItem(items []LineItem, item LineItem) []LineItem {
	key := item.Key()
	for i, existing := range items {
		if existing.Key() == key {
			updated := make([]LineItem, len(items))
			copy(updated, items)
			updated[i] = LineItem{
				ProductID: existing.ProductID,
				Size:      existing.Size,
				Color:     existing.Color,
				Quantity:  existing.Quantity + item.Quantity,
			}
			return updated
		}
	}
	updated := make([]LineItem, 0, len(items)+1)
	updated = append(updated, items...)
	return append(updated, item)
}

// RemoveItem drops every entry matching the key. Removing an absent key is a
// no-op.
func RemoveItem(items []LineItem, key Key) []LineItem {
	updated := make([]LineItem, 0, len(items))
	for _, existing := range items {
		if existing.Key() == key {
			continue
		}
		updated = append(updated, existing)
	}
	return updated
}

// UpdateQuantity replaces the quantity of the entry matching key. A quantity
// below 1 removes the entry instead. When no entry matches, the list is
// returned unchanged; an update never creates an entry.
func UpdateQuantity(items []LineItem, key Key, quantity int) []LineItem {
	if quantity < 1 {
		return RemoveItem(items, key)
	}
	for i, existing := range items {
		if existing.Key() == key {
			updated := make([]LineItem, len(items))
			copy(updated, items)
			updated[i].Quantity = quantity
			return updated
		}
	}
	return items
}

// ItemCount is the sum of quantities, not the number of distinct entries.
func ItemCount(items []LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Subtotal prices the items against a catalog snapshot. Items whose product
// is missing from the lookup contribute zero rather than failing.
func Subtotal(items []LineItem, lookup catalog.PriceLookup) float64 {
	sum := 0.0
	for _, item := range items {
		if price, ok := lookup(item.ProductID); ok {
			sum += price * float64(item.Quantity)
		}
	}
	return sum
}
