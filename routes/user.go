package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/qin-coder/ecommerce-multivendor/controllers/cart"
	productcontroller "github.com/qin-coder/ecommerce-multivendor/controllers/product"
	usercontroller "github.com/qin-coder/ecommerce-multivendor/controllers/user"
	"github.com/qin-coder/ecommerce-multivendor/middleware"
	"github.com/qin-coder/ecommerce-multivendor/models"
	"github.com/qin-coder/ecommerce-multivendor/services/cart"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the public catalog plus all "/user/*" endpoints.
// The /user group requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, engine *cart.Engine) {
	// Public catalog browsing
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/products/search", productcontroller.SearchProducts(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken,
		middleware.RequireRole(models.RoleCustomer, models.RoleAdmin))
	{
		// User Profile
		userGroup.GET("/profile", usercontroller.GetUser(db))
		userGroup.PUT("/profile", usercontroller.UpdateUser(db))

		// Shopping Cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(engine))
			cartGroup.PUT("/add", cartControllers.AddItemToCart(engine))
			cartGroup.PUT("/item/:id", cartControllers.UpdateCartItem(engine))
			cartGroup.DELETE("/item/:id", cartControllers.DeleteCartItem(engine))
			cartGroup.GET("/ws", cartControllers.CartWebSocketHandler)
		}
	}
}
