package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/wellness-catalog/internal/catalog"
	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/utils"
)

// CreateServiceInput: форма провайдера. Duration, если задан, заменяет
// текст, собранный из DurationMinutes.
type CreateServiceInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Duration        string  `json:"duration" binding:"omitempty,duration_unit"`
	Image           *string `json:"image"`
	Category        *string `json:"category"`
	Provider        *string `json:"provider"`
}

type UpdateServiceInput struct {
	Name            *string  `json:"name" binding:"omitnil,notblank,max=100"`
	Description     *string  `json:"description" binding:"omitnil,notblank"`
	Price           *float64 `json:"price" binding:"omitnil,gt=0"`
	DurationMinutes *int     `json:"durationMinutes" binding:"omitnil,gt=0"`
	Duration        *string  `json:"duration" binding:"omitnil,duration_unit"`
	Image           *string  `json:"image"`
	Category        *string  `json:"category"`
	Provider        *string  `json:"provider"`
	Active          *bool    `json:"active"`
}

func (in UpdateServiceInput) patch() model.ServicePatch {
	p := model.ServicePatch{
		Name:        trimmed(in.Name),
		Description: trimmed(in.Description),
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Provider:    in.Provider,
		Duration:    in.Duration,
		Active:      in.Active,
	}
	if p.Duration == nil && in.DurationMinutes != nil {
		d := utils.FormatDuration(*in.DurationMinutes)
		p.Duration = &d
	}
	return p
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return 0, false
	}
	return id, true
}

// ListServices: активные услуги, опционально с ?category.
// С ?page или ?pageSize ответ заворачивается в страницу.
func (h *Handler) ListServices(c *gin.Context) {
	var services []model.Service
	if category := c.Query("category"); category != "" {
		services = h.manager.ServicesByCategory(c.Request.Context(), category)
	} else {
		services = h.manager.AllServices(c.Request.Context())
	}

	pageParam, hasPage := c.GetQuery("page")
	sizeParam, hasSize := c.GetQuery("pageSize")
	if !hasPage && !hasSize {
		c.JSON(http.StatusOK, services)
		return
	}
	page, _ := strconv.Atoi(pageParam)
	pageSize, _ := strconv.Atoi(sizeParam)
	c.JSON(http.StatusOK, catalog.Paginate(services, page, pageSize))
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc, found := h.manager.ServiceByID(c.Request.Context(), id)
	if !found {
		respondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := utils.ValidateService(utils.ServiceForm{
		Title:       input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.DurationMinutes,
	})
	if !result.IsValid {
		c.AbortWithStatusJSON(http.StatusBadRequest, result)
		return
	}

	duration := strings.TrimSpace(input.Duration)
	if duration == "" {
		duration = utils.FormatDuration(input.DurationMinutes)
	}

	svc, err := h.manager.AddService(c.Request.Context(), model.ServiceDraft{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Duration:    &duration,
		Image:       input.Image,
		Category:    input.Category,
		Provider:    input.Provider,
	})
	if err != nil {
		respondWriteError(c, "Failed to add service", err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc, err := h.manager.UpdateService(c.Request.Context(), id, input.patch())
	if err != nil {
		respondWriteError(c, "Failed to update service", err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.manager.DeleteService(c.Request.Context(), id)
	if err != nil {
		respondWriteError(c, "Failed to delete service", err)
		return
	}
	if !deleted {
		respondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.AllCategories(c.Request.Context()))
}

func (h *Handler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.AllProviders())
}

func (h *Handler) GetProvider(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid provider ID format")
		return
	}
	p, found := h.manager.ProviderByID(id)
	if !found {
		respondWithError(c, http.StatusNotFound, "Provider not found")
		return
	}
	c.JSON(http.StatusOK, p)
}
