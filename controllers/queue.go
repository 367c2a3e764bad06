package controllers

import (
	"context"
	"net/http"

	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type waitingLister interface {
	Waiting(ctx context.Context) ([]string, error)
}

type QueueController struct {
	Board waitingLister
}

// GetWaiting returns the ids of waiting appointments, oldest first
func (qc *QueueController) GetWaiting(c *gin.Context) {
	ids, err := qc.Board.Waiting(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Queue board unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"waiting": ids, "count": len(ids)})
}
