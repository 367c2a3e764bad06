package controllers

import (
	"context"
	"net/http"

	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type feeSettingsStore interface {
	Current(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, s models.Settings) (models.Settings, error)
}

type UpdateFeeSettingsInput struct {
	CreditCardFee *float64 `json:"creditCardFee" binding:"omitempty,min=0"`
	DebitCardFee  *float64 `json:"debitCardFee" binding:"omitempty,min=0"`
}

type SettingsController struct {
	Store feeSettingsStore
}

// GetFeeSettings returns the per-weight card fee rates
func (sc *SettingsController) GetFeeSettings(c *gin.Context) {
	settings, err := sc.Store.Current(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateFeeSettings changes card fee rates. Appointments keep the fee they
// were settled with until their payment is recomputed.
func (sc *SettingsController) UpdateFeeSettings(c *gin.Context) {
	var input UpdateFeeSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	settings, err := sc.Store.Current(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	if input.CreditCardFee != nil {
		settings.CreditCardFee = *input.CreditCardFee
	}
	if input.DebitCardFee != nil {
		settings.DebitCardFee = *input.DebitCardFee
	}

	settings, err = sc.Store.Update(c.Request.Context(), settings)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
