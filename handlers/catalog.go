package handlers

import (
	"net/http"

	"stellartours/models"

	"github.com/gin-gonic/gin"
)

// GetDestinationsHandler handles GET /api/destinations. The catalog is
// static reference data.
func GetDestinationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.DestinationDetails)
}

// GetPackagesHandler handles GET /api/packages.
func GetPackagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.PackageDetails)
}
