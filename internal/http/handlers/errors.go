package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
	"github.com/SantoTourViagens/santo-tour-agency/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "ocorreu um erro interno")
	}
}
