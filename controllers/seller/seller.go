package sellercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qin-coder/ecommerce-multivendor/models"
	"gorm.io/gorm"
)

type CreateSellerRequest struct {
	SellerName      string                 `json:"sellerName" binding:"required"`
	Phone           string                 `json:"phone"`
	Email           string                 `json:"email" binding:"required,email"`
	BusinessDetails models.BusinessDetails `json:"businessDetails"`
	BankDetails     models.BankDetails     `json:"bankDetails"`
	PickupAddress   models.Address         `json:"pickupAddress"`
	GSTIN           string                 `json:"gstin"`
}

// POST /sellers
// Registers a seller account. The email must not already belong to a seller;
// the account starts as PENDING_VERIFICATION until the first OTP login.
func CreateSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSellerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.Seller
		err := db.Where("email = ?", req.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Seller already exists, use a different email"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check seller"})
			return
		}

		seller := models.Seller{
			SellerName:      req.SellerName,
			Phone:           req.Phone,
			Email:           req.Email,
			BusinessDetails: req.BusinessDetails,
			BankDetails:     req.BankDetails,
			PickupAddress:   req.PickupAddress,
			GSTIN:           req.GSTIN,
			Role:            models.RoleSeller,
			AccountStatus:   models.AccountPendingVerification,
		}
		if err := db.Create(&seller).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create seller"})
			return
		}
		c.JSON(http.StatusCreated, seller)
	}
}

// GET /seller/profile returns the seller behind the JWT's email claim.
func GetSellerProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		email, _ := emailVal.(string)

		var seller models.Seller
		if err := db.Where("email = ?", email).First(&seller).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller"})
			}
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}

// GET /sellers/:id
func GetSellerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller ID"})
			return
		}

		var seller models.Seller
		if err := db.First(&seller, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller"})
			}
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}

// GET /admin/sellers?status=
func ListSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Seller{})
		if status := c.Query("status"); status != "" {
			query = query.Where("account_status = ?", status)
		}

		var sellers []models.Seller
		if err := query.Order("created_at desc").Find(&sellers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
			return
		}
		c.JSON(http.StatusOK, sellers)
	}
}

type UpdateSellerRequest struct {
	SellerName      *string                 `json:"sellerName"`
	Phone           *string                 `json:"phone"`
	BusinessDetails *models.BusinessDetails `json:"businessDetails"`
	BankDetails     *models.BankDetails     `json:"bankDetails"`
	PickupAddress   *models.Address         `json:"pickupAddress"`
	GSTIN           *string                 `json:"gstin"`
}

// PATCH /seller applies a partial update to the requesting seller's own profile.
func UpdateSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailVal, exists := c.Get("email")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		email, _ := emailVal.(string)

		var seller models.Seller
		if err := db.Where("email = ?", email).First(&seller).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			return
		}

		var req UpdateSellerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.SellerName != nil {
			seller.SellerName = *req.SellerName
		}
		if req.Phone != nil {
			seller.Phone = *req.Phone
		}
		if req.BusinessDetails != nil {
			seller.BusinessDetails = *req.BusinessDetails
		}
		if req.BankDetails != nil {
			seller.BankDetails = *req.BankDetails
		}
		if req.PickupAddress != nil {
			seller.PickupAddress = *req.PickupAddress
		}
		if req.GSTIN != nil {
			seller.GSTIN = *req.GSTIN
		}

		if err := db.Save(&seller).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update seller"})
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}

type UpdateSellerStatusRequest struct {
	AccountStatus models.AccountStatus `json:"accountStatus" binding:"required"`
}

// PATCH /admin/sellers/:id/status
func UpdateSellerStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller ID"})
			return
		}

		var req UpdateSellerStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		switch req.AccountStatus {
		case models.AccountPendingVerification, models.AccountActive,
			models.AccountSuspended, models.AccountDeactivated:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown account status"})
			return
		}

		var seller models.Seller
		if err := db.First(&seller, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller"})
			}
			return
		}

		seller.AccountStatus = req.AccountStatus
		if err := db.Save(&seller).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update seller"})
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}
