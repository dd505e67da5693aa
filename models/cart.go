package models

import "time"

// Cart is the single in-progress order a user owns. The aggregate fields
// (totalItems, totalMrpPrice, totalSellingPrice, discountedPrice) are derived
// from the line items by services/cart and must never be written elsewhere.
//
// discountedPrice holds a whole-number percentage, not a currency amount; the
// name is kept for wire compatibility with existing clients.
type Cart struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"uniqueIndex" json:"userId"` // one cart per user
	Items             []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cartItems"`
	TotalSellingPrice int        `json:"totalSellingPrice"`
	TotalItems        int        `json:"totalItems"`
	TotalMrpPrice     int        `json:"totalMrpPrice"`
	DiscountedPrice   int        `json:"discountedPrice"`
	CouponCode        string     `json:"couponCode"`
	CreatedAt         time.Time  `json:"-"`
	UpdatedAt         time.Time  `json:"-"`
}

// CartItem is one (product, size) entry inside a cart. MrpPrice and
// SellingPrice are extended prices (quantity x unit price), not unit prices.
// UserID duplicates the cart owner so authorization checks need no join.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"cartId"`
	ProductID    uint      `gorm:"index" json:"productId"`
	Size         string    `json:"size"`
	Quantity     int       `json:"quantity"`
	MrpPrice     int       `json:"mrpPrice"`
	SellingPrice int       `json:"sellingPrice"`
	UserID       uint      `gorm:"index" json:"userId"`
	AddedAt      time.Time `json:"-"`
}
