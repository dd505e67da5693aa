package cart

import "github.com/qin-coder/ecommerce-multivendor/models"

// recalculateTotals rereads the cart's full item list and rewrites the four
// aggregate fields. Incremental deltas are deliberately avoided; recomputing
// from scratch keeps the aggregates drift-free no matter which mutation ran.
// Every code path that touches a line item must end here.
func recalculateTotals(store Store, cart *models.Cart) error {
	items, err := store.ItemsByCart(cart.ID)
	if err != nil {
		return err
	}

	totalMrp, totalSelling, totalItems := sumItems(items)
	cart.TotalMrpPrice = totalMrp
	cart.TotalSellingPrice = totalSelling
	cart.TotalItems = totalItems
	cart.DiscountedPrice = DiscountPercentage(totalMrp, totalSelling)
	return store.SaveCart(cart)
}

func sumItems(items []models.CartItem) (totalMrp, totalSelling, totalItems int) {
	for _, item := range items {
		totalMrp += item.MrpPrice
		totalSelling += item.SellingPrice
		totalItems += item.Quantity
	}
	return totalMrp, totalSelling, totalItems
}

// DiscountPercentage returns the whole-number discount of selling against mrp,
// truncated toward zero. A non-positive mrp yields 0.
func DiscountPercentage(mrp, selling int) int {
	if mrp <= 0 {
		return 0
	}
	return (mrp - selling) * 100 / mrp
}
