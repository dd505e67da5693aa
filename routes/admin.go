package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/qin-coder/ecommerce-multivendor/controllers/cart"
	productcontroller "github.com/qin-coder/ecommerce-multivendor/controllers/product"
	sellercontroller "github.com/qin-coder/ecommerce-multivendor/controllers/seller"
	usercontroller "github.com/qin-coder/ecommerce-multivendor/controllers/user"
	"github.com/qin-coder/ecommerce-multivendor/middleware"
	"github.com/qin-coder/ecommerce-multivendor/services/cart"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, engine *cart.Engine) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// User Management
		adminGroup.GET("/users", usercontroller.GetAllUsers(db))
		adminGroup.GET("/users/:user_id/cart", cartControllers.GetAdminUserCart(engine))

		// Seller Management
		sellerAdmin := adminGroup.Group("/sellers")
		{
			sellerAdmin.GET("", sellercontroller.ListSellers(db))
			sellerAdmin.PATCH("/:id/status", sellercontroller.UpdateSellerStatus(db))
		}

		// Product Management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
	}
}
