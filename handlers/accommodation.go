package handlers

import (
	"net/http"

	"stellartours/models"
	accommodationService "stellartours/services/accommodation"
	"stellartours/utils"

	"github.com/gin-gonic/gin"
)

// AccommodationHandler serves the public accommodation catalog.
type AccommodationHandler struct {
	Service accommodationService.AccommodationService
}

func NewAccommodationHandler(svc accommodationService.AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{Service: svc}
}

// GetAccommodationsHandler handles GET /api/accommodations with optional
// location, amenity and priceRange query filters.
func (h *AccommodationHandler) GetAccommodationsHandler(c *gin.Context) {
	accommodations, err := h.Service.GetFilteredAccommodations(
		c.Query("location"),
		c.Query("amenity"),
		c.Query("priceRange"),
	)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch accommodations", err.Error())
		return
	}
	if accommodations == nil {
		accommodations = []models.Accommodation{}
	}
	c.JSON(http.StatusOK, accommodations)
}
