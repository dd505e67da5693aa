package models

import (
	"time"

	"gorm.io/gorm"
)

// Product prices are whole currency units. MrpPrice and SellingPrice here are
// unit prices; the cart layer stores extended (quantity-scaled) prices under
// the same field names.
type Product struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `json:"description"`
	MrpPrice        int            `gorm:"not null" json:"mrpPrice"`
	SellingPrice    int            `gorm:"not null" json:"sellingPrice"`
	DiscountPercent int            `json:"discountPercent"`
	Quantity        int            `json:"quantity"`
	Color           string         `json:"color"`
	Images          []string       `gorm:"serializer:json" json:"images"`
	Sizes           string         `json:"sizes"`
	Rating          int            `json:"rating"`
	CategoryID      *uint          `gorm:"index" json:"-"`
	Category        *Category      `json:"category,omitempty"`
	SellerID        uint           `gorm:"index" json:"-"`
	Seller          *Seller        `json:"seller,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"-"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
