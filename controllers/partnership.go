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

type CreatePartnershipInput struct {
	Name          string   `json:"name" binding:"required"`
	DiscountType  string   `json:"discountType" binding:"required,oneof=FIXED PERCENTAGE"`
	DiscountValue *float64 `json:"discountValue" binding:"required,min=0"`
}

type UpdatePartnershipInput struct {
	Name          *string  `json:"name"`
	DiscountType  *string  `json:"discountType" binding:"omitempty,oneof=FIXED PERCENTAGE"`
	DiscountValue *float64 `json:"discountValue" binding:"omitempty,min=0"`
	IsActive      *bool    `json:"isActive"`
}

func CreatePartnership(c *gin.Context) {
	var input CreatePartnershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.DiscountType == string(models.DiscountPercentage) && *input.DiscountValue > 100 {
		utils.RespondWithError(c, http.StatusBadRequest, "Percentage discount cannot exceed 100")
		return
	}

	partnership := models.Partnership{
		Name:          input.Name,
		DiscountType:  models.DiscountType(input.DiscountType),
		DiscountValue: *input.DiscountValue,
		IsActive:      true,
	}
	if err := config.DB.Create(&partnership).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create partnership")
		return
	}

	c.JSON(http.StatusCreated, partnership)
}

func GetPartnerships(c *gin.Context) {
	var partnerships []models.Partnership
	if err := config.DB.Order("name").Find(&partnerships).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve partnerships")
		return
	}

	c.JSON(http.StatusOK, partnerships)
}

func UpdatePartnership(c *gin.Context) {
	partnershipUUID, ok := parseIDParam(c, "partnership")
	if !ok {
		return
	}

	var input UpdatePartnershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var partnership models.Partnership
	if err := config.DB.First(&partnership, "id = ?", partnershipUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Partnership not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		partnership.Name = *input.Name
	}
	if input.DiscountType != nil {
		partnership.DiscountType = models.DiscountType(*input.DiscountType)
	}
	if input.DiscountValue != nil {
		partnership.DiscountValue = *input.DiscountValue
	}
	if input.IsActive != nil {
		partnership.IsActive = *input.IsActive
	}
	if partnership.DiscountType == models.DiscountPercentage && partnership.DiscountValue > 100 {
		utils.RespondWithError(c, http.StatusBadRequest, "Percentage discount cannot exceed 100")
		return
	}

	if err := config.DB.Save(&partnership).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update partnership")
		return
	}

	c.JSON(http.StatusOK, partnership)
}

func DeletePartnership(c *gin.Context) {
	partnershipUUID, ok := parseIDParam(c, "partnership")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", partnershipUUID).Delete(&models.Partnership{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete partnership")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Partnership not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partnership deleted successfully"})
}
