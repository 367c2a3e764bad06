// controllers/report.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AttendantReportQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// GetAttendantSummaries returns per-barber productivity and revenue for a date range
func (ac *AppointmentController) GetAttendantSummaries(c *gin.Context) {
	var query AttendantReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	summaries, err := ac.Engine.SummarizeByAttendant(c.Request.Context(), query.StartDate, query.EndDate)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"startDate": query.StartDate,
		"endDate":   query.EndDate,
		"results":   summaries,
	})
}
