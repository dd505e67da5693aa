package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/qin-coder/ecommerce-multivendor/auth"
	"github.com/qin-coder/ecommerce-multivendor/services/cart"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Seller and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, engine *cart.Engine, sender auth.EmailSender) {
	// Public Auth routes (no middleware)
	SetupAuthRoutes(r, db, sender)

	// User routes (JWT-protected) plus public catalog browsing
	SetupUserRoutes(r, db, engine)

	// Seller routes (JWT-protected, seller accounts)
	SetupSellerRoutes(r, db)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, db, engine)
}
