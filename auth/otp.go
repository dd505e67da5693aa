package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qin-coder/ecommerce-multivendor/models"
	"gorm.io/gorm"
)

// Emails prefixed with signingPrefix request a login OTP for an account that
// must already exist; bare emails cover both signup and login.
const signingPrefix = "signing_"

const otpValidity = 10 * time.Minute

type OtpRequest struct {
	Email string `json:"email" binding:"required"`
}

type SigningRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Otp      string `json:"otp" binding:"required"`
	FullName string `json:"fullName"`
}

// GenerateOTP returns a 6-digit numeric one-time password.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// POST /auth/sent/login-signup-otp
func SendLoginOtp(db *gorm.DB, sender EmailSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OtpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		email := req.Email
		if strings.HasPrefix(email, signingPrefix) {
			email = strings.TrimPrefix(email, signingPrefix)
			var user models.User
			if err := db.Where("email = ?", email).First(&user).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
		}

		otp, err := GenerateOTP()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
			return
		}

		// a fresh OTP replaces any previous one for this email
		if err := db.Where("email = ?", email).Delete(&models.VerificationCode{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store OTP"})
			return
		}
		code := models.VerificationCode{Email: email, Otp: otp, ExpiresAt: time.Now().Add(otpValidity)}
		if err := db.Create(&code).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store OTP"})
			return
		}

		if err := sender.SendOtp(email, otp); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP email. Please try again later."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
	}
}

// POST /auth/signing
// Verifies the OTP and returns a JWT, creating the user (with an empty cart)
// on first login. Seller accounts authenticate through the same flow and get
// a seller-role token.
func Signing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SigningRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var code models.VerificationCode
		if err := db.Where("email = ?", req.Email).First(&code).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
			return
		}
		if code.Otp != req.Otp || time.Now().After(code.ExpiresAt) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired OTP"})
			return
		}
		// the code must be consumed before any token is issued; a failed
		// delete would leave it replayable
		if err := db.Delete(&code).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify OTP"})
			return
		}

		var seller models.Seller
		if err := db.Where("email = ?", req.Email).First(&seller).Error; err == nil {
			if !seller.EmailVerified {
				db.Model(&seller).Update("email_verified", true)
			}
			token, err := IssueJWT(seller.ID, seller.Email, string(models.RoleSeller))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"jwt": token, "role": models.RoleSeller, "message": "Login successful"})
			return
		}

		var user models.User
		err := db.Where("email = ?", req.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{Email: req.Email, FullName: req.FullName, Role: models.RoleCustomer}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
			// every user starts with an empty cart
			if err := db.Create(&models.Cart{UserID: user.ID}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		token, err := IssueJWT(user.ID, user.Email, string(user.Role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"jwt": token, "role": user.Role, "message": "Login successful"})
	}
}
