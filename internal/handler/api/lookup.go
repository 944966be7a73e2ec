package api

import (
	"net/http"

	"client-scheduler/internal/handler/httperr"
	"client-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LookupHandler struct {
	lookupQueries queries.LookupQueries
}

func NewLookupHandler(lookupQueries queries.LookupQueries) *LookupHandler {
	return &LookupHandler{lookupQueries: lookupQueries}
}

// @Summary List contacts
// @Tags lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ContactView
// @Failure 401 {object} map[string]string
// @Router /contacts [get]
func (h *LookupHandler) ListContacts(c *gin.Context) {
	views, err := h.lookupQueries.ListContacts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load contacts", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List countries
// @Tags lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CountryView
// @Failure 401 {object} map[string]string
// @Router /countries [get]
func (h *LookupHandler) ListCountries(c *gin.Context) {
	views, err := h.lookupQueries.ListCountries(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load countries", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List divisions for a country
// @Tags lookups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Country ID"
// @Success 200 {array} queries.DivisionView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /countries/{id}/divisions [get]
func (h *LookupHandler) ListDivisions(c *gin.Context) {
	countryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid country id", nil)
		return
	}

	views, err := h.lookupQueries.ListDivisionsByCountry(c.Request.Context(), countryID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load divisions", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List users
// @Tags lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UserView
// @Failure 401 {object} map[string]string
// @Router /users [get]
func (h *LookupHandler) ListUsers(c *gin.Context) {
	views, err := h.lookupQueries.ListUsers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load users", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}
