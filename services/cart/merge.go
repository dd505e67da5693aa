package cart

import (
	"time"

	"github.com/qin-coder/ecommerce-multivendor/models"
)

// matchItem finds the line item holding this (product, size) pair. At most one
// such item exists per cart. Size is compared byte-for-byte: "M" and "m" are
// different entries.
func matchItem(items []models.CartItem, productID uint, size string) *models.CartItem {
	for i := range items {
		if items[i].ProductID == productID && items[i].Size == size {
			return &items[i]
		}
	}
	return nil
}

// mergeItem folds quantity into the existing matching line item, or shapes a
// new one bound to the cart and its owner. Either way the result carries
// extended prices: quantity times the product's current unit prices.
func mergeItem(cart *models.Cart, items []models.CartItem, product *models.Product, size string, quantity int) models.CartItem {
	if existing := matchItem(items, product.ID, size); existing != nil {
		existing.Quantity += quantity
		reprice(existing, product)
		return *existing
	}

	item := models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Size:      size,
		Quantity:  quantity,
		UserID:    cart.UserID,
		AddedAt:   time.Now(),
	}
	reprice(&item, product)
	return item
}

// reprice rewrites the item's extended prices from its quantity and the
// product's current unit prices.
func reprice(item *models.CartItem, product *models.Product) {
	item.MrpPrice = item.Quantity * product.MrpPrice
	item.SellingPrice = item.Quantity * product.SellingPrice
}
