package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/qin-coder/ecommerce-multivendor/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, sender auth.EmailSender) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/sent/login-signup-otp", auth.SendLoginOtp(db, sender))
		authGroup.POST("/signing", auth.Signing(db))
	}
}
