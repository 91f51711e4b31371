package handlers

import (
	"net/http"

	"tripplanner/internal/domain"
	"tripplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondCoded(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondCoded(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondCoded(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsInternal(err):
		respondCoded(c, http.StatusServiceUnavailable, "unavailable", err.Error())
	default:
		respondCoded(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

func respondCoded(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}
