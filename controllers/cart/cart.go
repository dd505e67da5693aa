package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qin-coder/ecommerce-multivendor/services/cart"
)

type AddItemInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

// currentUserID reads the identity the JWT middleware resolved. Handlers pass
// it explicitly into the engine; nothing below this layer touches the context.
func currentUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than zero"})
	case errors.Is(err, cart.ErrProductNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
	case errors.Is(err, cart.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "You can't modify this item"})
	case errors.Is(err, cart.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}

// GET /user/cart
func GetUserCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		view, err := engine.CartSnapshot(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// PUT /user/cart/add
func AddItemToCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := engine.AddItem(userID, input.ProductID, input.Size, input.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}

		view, err := engine.ItemView(*item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		notifyCartChanged(engine, userID)
		c.JSON(http.StatusCreated, view)
	}
}

// PUT /user/cart/item/:id
func UpdateCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := engine.UpdateItem(userID, uint(itemID), input.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}

		view, err := engine.ItemView(*item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		notifyCartChanged(engine, userID)
		c.JSON(http.StatusOK, view)
	}
}

// DELETE /user/cart/item/:id
func DeleteCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
			return
		}

		if err := engine.DeleteItem(userID, uint(itemID)); err != nil {
			respondCartError(c, err)
			return
		}

		notifyCartChanged(engine, userID)
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}

// GET /admin/users/:user_id/cart
func GetAdminUserCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		view, err := engine.CartSnapshot(uint(userID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
