package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/cities
func GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": catalogStore.Cities()})
}

// GET /api/cities/:city/pois
// An unknown city yields an empty list, matching the planner's view.
func GetCityPois(c *gin.Context) {
	city := c.Param("city")
	c.JSON(http.StatusOK, gin.H{
		"city": city,
		"pois": catalogStore.Pois(city),
	})
}

// GET /api/transport-routes
func GetTransportRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": catalogStore.TransportRoutes()})
}
