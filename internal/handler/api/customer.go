package api

import (
	"net/http"

	reqdto "client-scheduler/internal/handler/dto/request"
	"client-scheduler/internal/pkg/errs"
	"client-scheduler/internal/usecase/commands"
	"client-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
	customerQueries  queries.CustomerQueries
}

func NewCustomerHandler(customerCommands commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
		customerQueries:  customerQueries,
	}
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CustomerRequest true "Customer request"
// @Success 201 {object} queries.CustomerView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.customerCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		abortCustomerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.CustomerRequest true "Customer request"
// @Success 200 {object} queries.CustomerView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.customerCommands.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete customer
// @Description Delete a customer and all of their appointments
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	if err := h.customerCommands.Delete(c.Request.Context(), id); err != nil {
		abortCustomerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} queries.CustomerView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	view, err := h.customerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CustomerView
// @Failure 401 {object} map[string]string
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	views, err := h.customerQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

func abortCustomerError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrCustomerHasNoRecord):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
	case errs.Is(err, commands.ErrDivisionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "First-level division not found",
		})
	case errs.Is(err, commands.ErrCustomerValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Customer validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
