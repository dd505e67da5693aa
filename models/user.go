package models

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "ROLE_CUSTOMER"
	RoleSeller   UserRole = "ROLE_SELLER"
	RoleAdmin    UserRole = "ROLE_ADMIN"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      UserRole  `gorm:"default:ROLE_CUSTOMER" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
