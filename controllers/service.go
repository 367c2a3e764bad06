// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"barberpro-backend/config"
	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PricingInput is shared by services and products
type PricingInput struct {
	Value            *float64 `json:"value" binding:"required,min=0"`
	PromotionValue   *float64 `json:"promotionValue" binding:"omitempty,min=0"`
	PromotionEnabled bool     `json:"promotionEnabled"`
}

func (p PricingInput) toModel() models.Pricing {
	return models.Pricing{
		Value:            *p.Value,
		PromotionValue:   p.PromotionValue,
		PromotionEnabled: p.PromotionEnabled,
	}
}

// UpdatePricingInput changes only the provided price fields. A catalog change
// never alters appointments already holding a snapshot of the old price.
type UpdatePricingInput struct {
	Value            *float64 `json:"value" binding:"omitempty,min=0"`
	PromotionValue   *float64 `json:"promotionValue" binding:"omitempty,min=0"`
	PromotionEnabled *bool    `json:"promotionEnabled"`
}

func (p UpdatePricingInput) applyTo(m *models.Pricing) {
	if p.Value != nil {
		m.Value = *p.Value
	}
	if p.PromotionValue != nil {
		m.PromotionValue = p.PromotionValue
	}
	if p.PromotionEnabled != nil {
		m.PromotionEnabled = *p.PromotionEnabled
	}
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PricingInput
	Weight   *int   `json:"weight" binding:"omitempty,min=0"`
	Duration int    `json:"duration" binding:"min=0"` // in minutes
	Category string `json:"category"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UpdatePricingInput
	Weight   *int    `json:"weight" binding:"omitempty,min=0"`
	Duration *int    `json:"duration"`
	Category *string `json:"category"`
	IsActive *bool   `json:"isActive"`
}

// CreateService adds a service to the catalog
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Pricing:     input.PricingInput.toModel(),
		Weight:      1,
		Duration:    input.Duration,
		Category:    input.Category,
		IsActive:    true,
	}
	if input.Weight != nil {
		service.Weight = *input.Weight
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the whole service catalog
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("name").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, ok := parseIDParam(c, "service")
	if !ok {
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, ok := parseIDParam(c, "service")
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	input.UpdatePricingInput.applyTo(&service.Pricing)
	if input.Weight != nil {
		service.Weight = *input.Weight
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService deletes a service
func DeleteService(c *gin.Context) {
	serviceUUID, ok := parseIDParam(c, "service")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
