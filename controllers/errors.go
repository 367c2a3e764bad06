package controllers

import (
	"errors"
	"net/http"

	"barberpro-backend/services"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAppointmentNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case services.IsNotFound(err), services.IsValidation(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func parseIDParam(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+entity+" ID format")
		return uuid.Nil, false
	}
	return id, true
}
