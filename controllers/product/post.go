package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/qin-coder/ecommerce-multivendor/models"
	"github.com/qin-coder/ecommerce-multivendor/services/cart"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	MrpPrice       int      `json:"mrpPrice" binding:"required"`
	SellingPrice   int      `json:"sellingPrice" binding:"required"`
	Color          string   `json:"color"`
	Images         []string `json:"images"`
	Sizes          string   `json:"sizes"`
	Category       string   `json:"category"`
	SubCategory    string   `json:"subCategory"`
	SubSubCategory string   `json:"subSubCategory"`
}

// POST /seller/products
// Creates a product under the requesting seller, bootstrapping the three-level
// category hierarchy (level 1 -> 2 -> 3) from the supplied names.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.MrpPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mrpPrice must be greater than zero"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		category, err := ensureCategory(tx, req.Category, 1, nil)
		if err == nil && category != nil {
			var sub *models.Category
			sub, err = ensureCategory(tx, req.SubCategory, 2, category)
			if err == nil && sub != nil {
				category, err = ensureCategory(tx, req.SubSubCategory, 3, sub)
				if category == nil {
					category = sub
				}
			}
		}
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve categories"})
			return
		}

		product := models.Product{
			Title:           req.Title,
			Description:     req.Description,
			MrpPrice:        req.MrpPrice,
			SellingPrice:    req.SellingPrice,
			DiscountPercent: cart.DiscountPercentage(req.MrpPrice, req.SellingPrice),
			Color:           req.Color,
			Images:          req.Images,
			Sizes:           req.Sizes,
			SellerID:        seller.ID,
		}
		if category != nil {
			product.CategoryID = &category.ID
		}

		if err := tx.Create(&product).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// ensureCategory finds a category by name and level, creating it (with a
// minted public id) the first time a seller uses it.
func ensureCategory(tx *gorm.DB, name string, level int, parent *models.Category) (*models.Category, error) {
	if name == "" {
		return nil, nil
	}

	var category models.Category
	err := tx.Where("name = ? AND level = ?", name, level).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.Category{
			Name:       name,
			CategoryID: uuid.NewString(),
			Level:      level,
		}
		if parent != nil {
			category.ParentID = &parent.ID
		}
		if err := tx.Create(&category).Error; err != nil {
			return nil, err
		}
		return &category, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// currentSeller resolves the seller account behind the JWT's email claim.
func currentSeller(c *gin.Context, db *gorm.DB) (*models.Seller, bool) {
	emailVal, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	email, _ := emailVal.(string)

	var seller models.Seller
	if err := db.Where("email = ?", email).First(&seller).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seller account not found"})
		return nil, false
	}
	return &seller, true
}
