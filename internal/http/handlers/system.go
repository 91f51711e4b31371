package handlers

import (
	"net/http"

	intconfig "tripplanner/internal/config"
	"tripplanner/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   utils.FormatDateTime(utils.NowUTC()),
		"cities": len(catalogStore.Cities()),
	})
}

// GET /api/db-check
// Saved-trip storage is optional; a missing DB is degraded, not down.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"database": "unavailable",
			"detail":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"database": "ok"})
}
