// controllers/product.go
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

type CreateProductInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PricingInput
	Stock int `json:"stock" binding:"min=0"`
}

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UpdatePricingInput
	Stock    *int  `json:"stock" binding:"omitempty,min=0"`
	IsActive *bool `json:"isActive"`
}

// CreateProduct adds a retail product to the catalog
func CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Pricing:     input.PricingInput.toModel(),
		Stock:       input.Stock,
		IsActive:    true,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("name").Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	productUUID, ok := parseIDParam(c, "product")
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", productUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

func UpdateProduct(c *gin.Context) {
	productUUID, ok := parseIDParam(c, "product")
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", productUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	input.UpdatePricingInput.applyTo(&product.Pricing)
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	productUUID, ok := parseIDParam(c, "product")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", productUUID).Delete(&models.Product{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
