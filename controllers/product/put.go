package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qin-coder/ecommerce-multivendor/models"
	"github.com/qin-coder/ecommerce-multivendor/services/cart"
	"gorm.io/gorm"
)

type UpdateProductRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	MrpPrice     *int      `json:"mrpPrice"`
	SellingPrice *int      `json:"sellingPrice"`
	Color        *string   `json:"color"`
	Images       *[]string `json:"images"`
	Sizes        *string   `json:"sizes"`
	Quantity     *int      `json:"quantity"`
}

// PUT /seller/products/:id
// Only the owning seller may update; the discount percentage is recomputed
// whenever either price changes.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		if product.SellerID != seller.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can't modify this product"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.Title != nil {
			product.Title = *req.Title
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.MrpPrice != nil {
			product.MrpPrice = *req.MrpPrice
		}
		if req.SellingPrice != nil {
			product.SellingPrice = *req.SellingPrice
		}
		if req.Color != nil {
			product.Color = *req.Color
		}
		if req.Images != nil {
			product.Images = *req.Images
		}
		if req.Sizes != nil {
			product.Sizes = *req.Sizes
		}
		if req.Quantity != nil {
			product.Quantity = *req.Quantity
		}
		if product.MrpPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mrpPrice must be greater than zero"})
			return
		}
		product.DiscountPercent = cart.DiscountPercentage(product.MrpPrice, product.SellingPrice)

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
