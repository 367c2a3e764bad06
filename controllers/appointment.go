// controllers/appointment.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"barberpro-backend/models"
	"barberpro-backend/services"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type appointmentEngine interface {
	Create(ctx context.Context, in services.CreateAppointmentInput) (*models.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, in services.UpdateAppointmentInput) (*models.Appointment, error)
	FindOne(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	FindAll(ctx context.Context, f services.AppointmentFilter) (*services.AppointmentPage, error)
	Remove(ctx context.Context, id uuid.UUID) error
	SummarizeByAttendant(ctx context.Context, startDate, endDate string) ([]services.AttendantSummary, error)
}

// CreateAppointmentInput defines the expected JSON structure for queueing a customer
type CreateAppointmentInput struct {
	CustomerID     uuid.UUID   `json:"customerId" binding:"required"`
	AttendantID    *uuid.UUID  `json:"attendantId"`
	ServiceIDs     []uuid.UUID `json:"serviceIds"`
	ProductIDs     []uuid.UUID `json:"productIds"`
	PartnershipIDs []uuid.UUID `json:"partnershipIds"`
	PaymentMethod  string      `json:"paymentMethod" binding:"omitempty,oneof=CASH PIX TRANSFER DEBIT_CARD CREDIT_CARD"`
	RedeemCoupon   string      `json:"redeemCoupon"`
	CreatedAt      *time.Time  `json:"createdAt"`
}

// UpdateAppointmentInput defines the expected JSON structure for updating an appointment
type UpdateAppointmentInput struct {
	AttendantID    *uuid.UUID   `json:"attendantId"`
	ServiceIDs     *[]uuid.UUID `json:"serviceIds"`
	ProductIDs     *[]uuid.UUID `json:"productIds"`
	PartnershipIDs *[]uuid.UUID `json:"partnershipIds"`
	PaymentMethod  *string      `json:"paymentMethod" binding:"omitempty,oneof=CASH PIX TRANSFER DEBIT_CARD CREDIT_CARD"`
	RedeemCoupon   *string      `json:"redeemCoupon"`
	Status         *string      `json:"status" binding:"omitempty,oneof=WAITING ON_SERVICE FINISHED CANCELLED NO_SHOW"`
}

type ListAppointmentsQuery struct {
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
	OnlyToday     bool   `form:"onlyToday"`
	Status        string `form:"status"`
	PaymentMethod string `form:"paymentMethod"`
	AttendantID   string `form:"attendantId"`
	CustomerName  string `form:"customerName"`
	SortBy        string `form:"sortBy"`
	Order         string `form:"order" binding:"omitempty,oneof=asc desc ASC DESC"`
	Page          int    `form:"page" binding:"min=0"`
	Limit         int    `form:"limit" binding:"min=0"`
}

type AppointmentController struct {
	Engine appointmentEngine
}

func NewAppointmentController(engine appointmentEngine) *AppointmentController {
	return &AppointmentController{Engine: engine}
}

// CreateAppointment puts a customer in the queue
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := ac.Engine.Create(c.Request.Context(), services.CreateAppointmentInput{
		CustomerID:     input.CustomerID,
		AttendantID:    input.AttendantID,
		ServiceIDs:     input.ServiceIDs,
		ProductIDs:     input.ProductIDs,
		PartnershipIDs: input.PartnershipIDs,
		PaymentMethod:  models.PaymentMethod(input.PaymentMethod),
		RedeemCoupon:   input.RedeemCoupon,
		CreatedAt:      input.CreatedAt,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// GetAppointments lists appointments with filters, sorting and pagination
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	var query ListAppointmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}

	filter := services.AppointmentFilter{
		StartDate:     query.StartDate,
		EndDate:       query.EndDate,
		OnlyToday:     query.OnlyToday,
		Status:        models.AppointmentStatus(query.Status),
		PaymentMethod: models.PaymentMethod(query.PaymentMethod),
		CustomerName:  query.CustomerName,
		SortBy:        query.SortBy,
		Order:         query.Order,
		Page:          query.Page,
		Limit:         query.Limit,
	}
	if query.AttendantID != "" {
		attendantUUID, err := uuid.Parse(query.AttendantID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendant ID format")
			return
		}
		filter.AttendantID = &attendantUUID
	}

	page, err := ac.Engine.FindAll(c.Request.Context(), filter)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetAppointment retrieves a specific appointment by ID
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	appointmentUUID, ok := parseIDParam(c, "appointment")
	if !ok {
		return
	}

	appt, err := ac.Engine.FindOne(c.Request.Context(), appointmentUUID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// UpdateAppointment changes attendant, lines, payment or status
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	appointmentUUID, ok := parseIDParam(c, "appointment")
	if !ok {
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	update := services.UpdateAppointmentInput{
		AttendantID:    input.AttendantID,
		ServiceIDs:     input.ServiceIDs,
		ProductIDs:     input.ProductIDs,
		PartnershipIDs: input.PartnershipIDs,
		RedeemCoupon:   input.RedeemCoupon,
	}
	if input.PaymentMethod != nil {
		method := models.PaymentMethod(*input.PaymentMethod)
		update.PaymentMethod = &method
	}
	if input.Status != nil {
		status := models.AppointmentStatus(*input.Status)
		update.Status = &status
	}

	appt, err := ac.Engine.Update(c.Request.Context(), appointmentUUID, update)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment removes an appointment; administrative only
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	appointmentUUID, ok := parseIDParam(c, "appointment")
	if !ok {
		return
	}

	if err := ac.Engine.Remove(c.Request.Context(), appointmentUUID); err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
