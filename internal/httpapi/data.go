package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/wellness-catalog/internal/model"
)

// DataServices отдаёт содержимое файла услуг.
func (h *Handler) DataServices(c *gin.Context) {
	services, err := h.store.List()
	if err != nil {
		_ = c.Error(err)
		respondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, services)
}

// WriteDataServices: массив заменяет файл целиком, объект добавляется
// новой услугой.
func (h *Handler) WriteDataServices(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	body = bytes.TrimSpace(body)

	switch {
	case bytes.HasPrefix(body, []byte("[")):
		var services []model.Service
		if err := json.Unmarshal(body, &services); err != nil {
			respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		if err := h.store.Replace(services); err != nil {
			_ = c.Error(err)
			respondWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(services)})

	case bytes.HasPrefix(body, []byte("{")):
		var svc model.Service
		if err := json.Unmarshal(body, &svc); err != nil {
			respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		stored, err := h.store.Append(svc)
		if err != nil {
			_ = c.Error(err)
			respondWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		c.JSON(http.StatusCreated, stored)

	default:
		respondWithError(c, http.StatusBadRequest, "Invalid input: expected a service or a list of services")
	}
}
