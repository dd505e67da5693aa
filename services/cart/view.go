package cart

import (
	"errors"

	"github.com/qin-coder/ecommerce-multivendor/models"
)

// CartView is the read shape of a cart. The field names are wire contract:
// mrpPrice/sellingPrice on an item are extended (quantity-scaled) totals and
// discountedPrice is a percentage, exactly as existing clients expect.
type CartView struct {
	ID                uint           `json:"id"`
	CartItems         []CartItemView `json:"cartItems"`
	TotalSellingPrice int            `json:"totalSellingPrice"`
	TotalItems        int            `json:"totalItems"`
	TotalMrpPrice     int            `json:"totalMrpPrice"`
	DiscountedPrice   int            `json:"discountedPrice"`
	CouponCode        string         `json:"couponCode,omitempty"`
}

type CartItemView struct {
	ID           uint         `json:"id"`
	Size         string       `json:"size"`
	Quantity     int          `json:"quantity"`
	MrpPrice     int          `json:"mrpPrice"`
	SellingPrice int          `json:"sellingPrice"`
	UserID       uint         `json:"userId"`
	Product      *ProductView `json:"product,omitempty"`
}

type ProductView struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MrpPrice        int      `json:"mrpPrice"`
	SellingPrice    int      `json:"sellingPrice"`
	DiscountPercent int      `json:"discountPercent"`
	Color           string   `json:"color"`
	Images          []string `json:"images"`
	Sizes           string   `json:"sizes"`
}

// CartSnapshot returns the user's cart shaped for display. A user without a
// cart row gets the zero-valued view; that fallback covers only the absent
// cart and nothing else. Every other failure propagates to the caller.
//
// The aggregates are recomputed from the item list this call fetched rather
// than copied off the cart row. The row and the items are read without a
// lock, so a mutation committing between the two reads could otherwise leave
// the view with totals that do not match its items.
func (e *Engine) CartSnapshot(userID uint) (*CartView, error) {
	cart, err := e.store.CartByUser(userID)
	if errors.Is(err, ErrNotFound) {
		return &CartView{CartItems: []CartItemView{}}, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := e.store.ItemsByCart(cart.ID)
	if err != nil {
		return nil, err
	}

	totalMrp, totalSelling, totalItems := sumItems(items)
	view := &CartView{
		ID:                cart.ID,
		CartItems:         make([]CartItemView, 0, len(items)),
		TotalSellingPrice: totalSelling,
		TotalItems:        totalItems,
		TotalMrpPrice:     totalMrp,
		DiscountedPrice:   DiscountPercentage(totalMrp, totalSelling),
		CouponCode:        cart.CouponCode,
	}
	for _, item := range items {
		itemView, err := e.ItemView(item)
		if err != nil {
			return nil, err
		}
		view.CartItems = append(view.CartItems, itemView)
	}
	return view, nil
}

// ItemView shapes one line item for transport, attaching current product
// details. An item whose product has since left the catalog is still shown,
// just without the product block.
func (e *Engine) ItemView(item models.CartItem) (CartItemView, error) {
	view := CartItemView{
		ID:           item.ID,
		Size:         item.Size,
		Quantity:     item.Quantity,
		MrpPrice:     item.MrpPrice,
		SellingPrice: item.SellingPrice,
		UserID:       item.UserID,
	}

	product, err := e.store.ProductByID(item.ProductID)
	if errors.Is(err, ErrNotFound) {
		return view, nil
	}
	if err != nil {
		return view, err
	}
	view.Product = &ProductView{
		ID:              product.ID,
		Title:           product.Title,
		Description:     product.Description,
		MrpPrice:        product.MrpPrice,
		SellingPrice:    product.SellingPrice,
		DiscountPercent: product.DiscountPercent,
		Color:           product.Color,
		Images:          product.Images,
		Sizes:           product.Sizes,
	}
	return view, nil
}
