package models

import "time"

// Coupon is stored and can be attached to a cart via couponCode, but no
// validation or discount application happens in this service.
type Coupon struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code               string    `gorm:"uniqueIndex;not null" json:"code"`
	DiscountPercentage float64   `json:"discountPercentage"`
	ValidityEndDate    time.Time `json:"validityEndDate"`
	MinimumOrderValue  float64   `json:"minimumOrderValue"`
	Active             bool      `gorm:"default:true" json:"active"`
}
