package models

import "time"

// VerificationCode holds the latest login/signup OTP issued for an email.
// Re-requesting an OTP replaces the previous row.
type VerificationCode struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Otp       string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}
