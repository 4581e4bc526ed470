package httpapi

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Leganyst/wellness-catalog/internal/report"
)

// Report: /api/reports/summary отдаёт JSON, /api/reports/<kind>.csv файл.
func (h *Handler) Report(c *gin.Context) {
	name := c.Param("name")
	now := h.now()
	services := h.manager.AllServices(c.Request.Context())

	if name == "summary" {
		c.JSON(http.StatusOK, report.Build(services, now))
		return
	}

	base, isCSV := strings.CutSuffix(name, ".csv")
	kind, ok := report.ParseKind(base)
	if !isCSV || !ok {
		respondWithError(c, http.StatusNotFound, "Unknown report")
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, kind, services, now); err != nil {
		_ = c.Error(err)
		respondWithError(c, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(kind, now)+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
