package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/wellness-catalog/internal/catalog"
)

func respondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondWriteError выбирает статус для ошибки записи. К сообщению
// пользователю дописывается текст ошибки бэкенда.
func respondWriteError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, catalog.ErrNotConfigured):
		respondWithError(c, http.StatusServiceUnavailable, message+": "+err.Error())
	case errors.Is(err, catalog.ErrServiceNotFound):
		respondWithError(c, http.StatusNotFound, "Service not found")
	default:
		respondWithError(c, http.StatusBadGateway, message+": "+err.Error())
	}
}
