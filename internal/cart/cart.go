// Package cart derives totals and line items from a client-submitted cart
// against the current catalog snapshot. The cart itself lives on the client;
// the catalog is always the source of truth for prices.
package cart

import "kazistore/internal/models"

// Item references a variant by id. Quantity is expected to be >= 1; callers
// clamp before handing items to this package.
type Item struct {
	ProductID string `json:"productId" binding:"required"`
	VariantID string `json:"variantId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// Catalog is an in-memory snapshot of the product set.
type Catalog []models.Product

// ResolveVariant looks up a cart reference in the snapshot. A miss is an
// expected outcome: the cart can outlive catalog edits.
func (k Catalog) ResolveVariant(productID, variantID string) (models.Product, models.ProductVariant, bool) {
	for _, p := range k {
		if p.ID.Hex() != productID {
			continue
		}
		if v, ok := p.Variant(variantID); ok {
			return p, v, true
		}
	}
	return models.Product{}, models.ProductVariant{}, false
}

// Total sums variant price * quantity over all resolvable items. Items whose
// product or variant no longer exists contribute 0 rather than failing.
func Total(items []Item, catalog Catalog) float64 {
	total := 0.0
	for _, item := range items {
		if _, variant, ok := catalog.ResolveVariant(item.ProductID, item.VariantID); ok {
			total += variant.Price * float64(item.Quantity)
		}
	}
	return total
}

// ItemCount sums quantities regardless of catalog validity.
func ItemCount(items []Item) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Add merges by variant id: an existing entry gains quantity, otherwise a new
// entry is appended. The input slice is not mutated.
func Add(items []Item, productID, variantID string, quantity int) []Item {
	next := make([]Item, len(items))
	copy(next, items)
	for i := range next {
		if next[i].VariantID == variantID {
			next[i].Quantity += quantity
			return next
		}
	}
	return append(next, Item{ProductID: productID, VariantID: variantID, Quantity: quantity})
}

// UpdateQuantity adjusts the matching entry by delta, floored at 1. Removal
// is a separate operation and never happens through here.
func UpdateQuantity(items []Item, variantID string, delta int) []Item {
	next := make([]Item, len(items))
	copy(next, items)
	for i := range next {
		if next[i].VariantID == variantID {
			q := next[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			next[i].Quantity = q
		}
	}
	return next
}

// Remove filters out the matching entry; no-op when absent.
func Remove(items []Item, variantID string) []Item {
	next := make([]Item, 0, len(items))
	for _, item := range items {
		if item.VariantID != variantID {
			next = append(next, item)
		}
	}
	return next
}
