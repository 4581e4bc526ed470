// Package httpapi: HTTP API каталога на gin.
package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Leganyst/wellness-catalog/internal/catalog"
	"github.com/Leganyst/wellness-catalog/internal/static"
	"github.com/Leganyst/wellness-catalog/internal/utils"
)

type Handler struct {
	manager *catalog.Manager
	store   *static.Store
	logger  *slog.Logger
	now     func() time.Time
}

func NewHandler(manager *catalog.Manager, store *static.Store, logger *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		store:   store,
		logger:  logger.With("component", "http"),
		now:     time.Now,
	}
}

// NewRouter собирает все маршруты на новом engine.
func NewRouter(h *Handler) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := utils.RegisterValidators(v); err != nil {
			return nil, fmt.Errorf("register validators: %w", err)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(h.logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition", RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		services := api.Group("/services")
		{
			services.GET("", h.ListServices)
			services.POST("", h.CreateService)
			services.GET("/:id", h.GetService)
			services.PUT("/:id", h.UpdateService)
			services.DELETE("/:id", h.DeleteService)
		}

		api.GET("/categories", h.ListCategories)

		providers := api.Group("/providers")
		{
			providers.GET("", h.ListProviders)
			providers.GET("/:id", h.GetProvider)
		}

		api.GET("/reports/:name", h.Report)

		data := api.Group("/data")
		{
			data.GET("/services", h.DataServices)
			data.POST("/services", h.WriteDataServices)
		}
	}

	return r, nil
}

func (h *Handler) Health(c *gin.Context) {
	status := http.StatusOK
	if !h.manager.Ready() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"ready":   h.manager.Ready(),
		"backend": h.manager.Backend(),
	})
}
