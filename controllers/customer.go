package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"barberpro-backend/config"
	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const referralCodeLength = 6

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name         string     `json:"name" binding:"required"`
	Phone        string     `json:"phone" binding:"required"`
	Email        *string    `json:"email"` // Pointer to allow null
	Birthday     *time.Time `json:"birthday"`
	Notes        string     `json:"notes"`
	ReferralCode string     `json:"referralCode"` // code of the customer who referred them
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name     *string    `json:"name"`
	Phone    *string    `json:"phone"`
	Email    *string    `json:"email"`
	Birthday *time.Time `json:"birthday"`
	Notes    *string    `json:"notes"`
	IsActive *bool      `json:"isActive"`
}

// CreateCustomer registers a new customer and issues their referral code
func CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	phone, ok := utils.NormalizePhone(input.Phone)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists
	var existingCustomer models.Customer
	if err := config.DB.Where("phone = ?", phone).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		ID:       uuid.New(),
		Name:     input.Name,
		Phone:    phone,
		Birthday: input.Birthday,
		Notes:    input.Notes,
		IsActive: true,
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}

	// The referrer must exist when a code is given
	if code := strings.ToUpper(strings.TrimSpace(input.ReferralCode)); code != "" {
		var referrer models.Customer
		if err := config.DB.Where("referral_code = ?", code).First(&referrer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Referral code not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		customer.ReferralCodeUsed = code
	}

	code, err := uniqueReferralCode(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to issue referral code")
		return
	}
	customer.ReferralCode = code

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func uniqueReferralCode(db *gorm.DB) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code := utils.GenerateRandomString(referralCodeLength)
		var count int64
		if err := db.Model(&models.Customer{}).Where("referral_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("referral code space exhausted")
}

// GetCustomers retrieves customers, optionally filtered by name
func GetCustomers(c *gin.Context) {
	query := config.DB.Order("name")
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	customerUUID, ok := parseIDParam(c, "customer")
	if !ok {
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer. Referral fields are owned by
// the appointment engine and cannot be edited here.
func UpdateCustomer(c *gin.Context) {
	customerUUID, ok := parseIDParam(c, "customer")
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		phone, ok := utils.NormalizePhone(*input.Phone)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		// Check if phone is being changed to another existing customer
		if customer.Phone != phone {
			var existingCustomer models.Customer
			if err := config.DB.Where("phone = ?", phone).
				First(&existingCustomer).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Phone = phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Birthday != nil {
		customer.Birthday = input.Birthday
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer soft deletes a customer
func DeleteCustomer(c *gin.Context) {
	customerUUID, ok := parseIDParam(c, "customer")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", customerUUID).Delete(&models.Customer{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
