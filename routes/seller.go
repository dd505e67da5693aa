package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/qin-coder/ecommerce-multivendor/controllers/product"
	sellercontroller "github.com/qin-coder/ecommerce-multivendor/controllers/seller"
	"github.com/qin-coder/ecommerce-multivendor/middleware"
	"github.com/qin-coder/ecommerce-multivendor/models"
	"gorm.io/gorm"
)

// SetupSellerRoutes registers seller signup (public), the public seller page,
// and the JWT-protected "/seller/*" endpoints.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/sellers", sellercontroller.CreateSeller(db))
	r.GET("/sellers/:id", sellercontroller.GetSellerByID(db))

	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleSeller))
	{
		sellerGroup.GET("/profile", sellercontroller.GetSellerProfile(db))
		sellerGroup.PATCH("/", sellercontroller.UpdateSeller(db))

		productSeller := sellerGroup.Group("/products")
		{
			productSeller.POST("", productcontroller.CreateProduct(db))
			productSeller.GET("", productcontroller.GetSellerProducts(db))
			productSeller.PUT("/:id", productcontroller.UpdateProduct(db))
			productSeller.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
