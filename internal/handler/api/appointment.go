package api

import (
	"net/http"
	"time"

	reqdto "client-scheduler/internal/handler/dto/request"
	"client-scheduler/internal/handler/middleware"
	"client-scheduler/internal/pkg/errs"
	"client-scheduler/internal/usecase/commands"
	"client-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// upcomingWindow is how far ahead the alert endpoint looks for the signed-in
// user's next appointments.
const upcomingWindow = 15 * time.Minute

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
}

func NewAppointmentHandler(appointmentCommands commands.AppointmentCommands, appointmentQueries queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Create appointment
// @Description Schedule a new appointment after business-hours and overlap validation
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AppointmentRequest true "Appointment request"
// @Success 201 {object} queries.AppointmentView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCommands.Create(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		abortAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update appointment
// @Description Replace an appointment's fields after re-validation
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.AppointmentRequest true "Appointment request"
// @Success 200 {object} queries.AppointmentView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	var req reqdto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCommands.Update(c.Request.Context(), id, req.ToParams(userID))
	if err != nil {
		abortAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	if err := h.appointmentCommands.Delete(c.Request.Context(), id); err != nil {
		abortAppointmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} queries.AppointmentView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Appointment not found",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List appointments
// @Description List all appointments, optionally filtered by customer
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Filter by customer ID"
// @Success 200 {array} queries.AppointmentListItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid customer ID format",
			})
			return
		}

		items, err := h.appointmentQueries.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.appointmentQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Upcoming appointments
// @Description List the signed-in user's appointments starting within 15 minutes
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AppointmentListItem
// @Failure 401 {object} map[string]string
// @Router /appointments/upcoming [get]
func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.appointmentQueries.ListUpcoming(c.Request.Context(), userID, upcomingWindow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

func abortAppointmentError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Appointment not found",
		})
	case errs.Is(err, commands.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
	case errs.Is(err, commands.ErrBlankField):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "A required field is blank",
		})
	case errs.Is(err, commands.ErrFieldTooLong):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "A field exceeds the maximum length",
		})
	case errs.Is(err, commands.ErrStartAfterEnd):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Start must be before end",
		})
	case errs.Is(err, commands.ErrSpansMultipleDays):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Appointment must fall on a single business day",
		})
	case errs.Is(err, commands.ErrOutsideBusinessHours):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Appointment is outside business hours",
		})
	case errs.Is(err, commands.ErrAppointmentConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Appointment overlaps an existing appointment for this customer",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
