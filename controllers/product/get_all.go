package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qin-coder/ecommerce-multivendor/models"
	"gorm.io/gorm"
)

const defaultPageSize = 10

// GetProducts lists the catalog with optional filters, sorting and pagination.
// Query params: category, color, size, minPrice, maxPrice, minDiscount,
// sort (price_low|price_high), pageNumber.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")

		if category := c.Query("category"); category != "" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.category_id = ?", category)
		}
		if color := c.Query("color"); color != "" {
			query = query.Where("color = ?", color)
		}
		if size := c.Query("size"); size != "" {
			query = query.Where("sizes LIKE ?", "%"+size+"%")
		}

		if minPriceStr := c.Query("minPrice"); minPriceStr != "" {
			minPrice, err := strconv.Atoi(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			query = query.Where("selling_price >= ?", minPrice)
		}
		if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
			maxPrice, err := strconv.Atoi(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			query = query.Where("selling_price <= ?", maxPrice)
		}
		if minDiscountStr := c.Query("minDiscount"); minDiscountStr != "" {
			minDiscount, err := strconv.Atoi(minDiscountStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minDiscount"})
				return
			}
			query = query.Where("discount_percent >= ?", minDiscount)
		}

		switch c.Query("sort") {
		case "price_low":
			query = query.Order("selling_price asc")
		case "price_high":
			query = query.Order("selling_price desc")
		default:
			query = query.Order("created_at desc")
		}

		pageNumber := 0
		if pageStr := c.Query("pageNumber"); pageStr != "" {
			p, err := strconv.Atoi(pageStr)
			if err != nil || p < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pageNumber"})
				return
			}
			pageNumber = p
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var products []models.Product
		err := query.Offset(pageNumber * defaultPageSize).
			Limit(defaultPageSize).
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		totalPages := (total + defaultPageSize - 1) / defaultPageSize
		c.JSON(http.StatusOK, gin.H{
			"content":       products,
			"pageNumber":    pageNumber,
			"totalPages":    totalPages,
			"totalElements": total,
		})
	}
}

// GET /seller/products lists the requesting seller's own catalog.
func GetSellerProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		var products []models.Product
		err := db.Preload("Category").
			Where("seller_id = ?", seller.ID).
			Order("created_at desc").
			Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
