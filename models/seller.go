package models

import "time"

type AccountStatus string

const (
	AccountPendingVerification AccountStatus = "PENDING_VERIFICATION"
	AccountActive              AccountStatus = "ACTIVE"
	AccountSuspended           AccountStatus = "SUSPENDED"
	AccountDeactivated         AccountStatus = "DEACTIVATED"
)

type BusinessDetails struct {
	BusinessName    string `json:"businessName"`
	BusinessEmail   string `json:"businessEmail"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessAddress string `json:"businessAddress"`
	Logo            string `json:"logo"`
	Banner          string `json:"banner"`
}

type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	AccountHolderName string `json:"accountHolderName"`
	IfscCode          string `json:"ifscCode"`
}

// Address model embedded in Seller
type Address struct {
	Name     string `json:"name"`
	Locality string `json:"locality"`
	Street   string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pinCode"`
	Phone    string `json:"phone"`
}

type Seller struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerName      string          `json:"sellerName"`
	Phone           string          `json:"phone"`
	Email           string          `gorm:"unique;not null" json:"email"`
	BusinessDetails BusinessDetails `gorm:"embedded;embeddedPrefix:business_" json:"businessDetails"`
	BankDetails     BankDetails     `gorm:"embedded;embeddedPrefix:bank_" json:"bankDetails"`
	PickupAddress   Address         `gorm:"embedded;embeddedPrefix:pickup_" json:"pickupAddress"`
	GSTIN           string          `json:"gstin"`
	Role            UserRole        `gorm:"default:ROLE_SELLER" json:"role"`
	EmailVerified   bool            `json:"emailVerified"`
	AccountStatus   AccountStatus   `gorm:"default:PENDING_VERIFICATION" json:"accountStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
}
