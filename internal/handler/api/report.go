package api

import (
	"net/http"

	"client-scheduler/internal/handler/httperr"
	"client-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Appointment totals report
// @Description Appointment counts grouped by calendar month and type
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AppointmentTotal
// @Failure 401 {object} map[string]string
// @Router /reports/appointment-totals [get]
func (h *ReportHandler) AppointmentTotals(c *gin.Context) {
	rows, err := h.reportQueries.AppointmentTotals(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report", nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Customers by country report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CountryCustomerCount
// @Failure 401 {object} map[string]string
// @Router /reports/customers-by-country [get]
func (h *ReportHandler) CustomersByCountry(c *gin.Context) {
	rows, err := h.reportQueries.CustomersByCountry(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report", nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Contact schedule report
// @Description All appointments assigned to one contact, in start order
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {array} queries.AppointmentListItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reports/contacts/{id}/schedule [get]
func (h *ReportHandler) ContactSchedule(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid contact id", nil)
		return
	}

	rows, err := h.reportQueries.ContactSchedule(c.Request.Context(), contactID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report", nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}
