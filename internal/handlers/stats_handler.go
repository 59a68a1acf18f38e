package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/services"
)

type StatsHandler struct {
	statsService  *services.StatsService
	exportService *services.ExportService
}

func NewStatsHandler(statsService *services.StatsService, exportService *services.ExportService) *StatsHandler {
	return &StatsHandler{statsService: statsService, exportService: exportService}
}

// @Summary Tuition Collection Statistics
// @Description Totals, percentages and breakdowns over the payment records matching the filters.
// @Description Each filter accepts a numeric id or a label; niveau and option also accept a code.
// @Tags Stats
// @Produce json
// @Param annee query string false "School year id or label (e.g. 2023-2024)"
// @Param classe query string false "Class id or label"
// @Param niveau query string false "Level ordinal id, code or label"
// @Param option query string false "Track ordinal id, code or label"
// @Success 200 {object} models.StatsReport
// @Router /stats/recouvrements [get]
func (h *StatsHandler) Collection(c *gin.Context) {
	report, err := h.statsService.Aggregate(c.Request.Context(), parseStatsFilters(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Export Tuition Collection Statistics
// @Description Same report as /stats/recouvrements as a CSV, XLSX or PDF file
// @Tags Stats
// @Produce application/octet-stream
// @Param format query string true "csv, xlsx or pdf"
// @Param annee query string false "School year id or label"
// @Param classe query string false "Class id or label"
// @Param niveau query string false "Level ordinal id, code or label"
// @Param option query string false "Track ordinal id, code or label"
// @Success 200 {file} file "report"
// @Failure 400 {object} map[string]string
// @Router /stats/recouvrements/export [get]
func (h *StatsHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", services.FormatCSV)

	data, filename, contentType, err := h.exportService.Export(c.Request.Context(), parseStatsFilters(c), format)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

// parseStatsFilters resolves each present filter once into an id or a label
func parseStatsFilters(c *gin.Context) models.StatsFilters {
	var filters models.StatsFilters
	ref := func(key string) *models.Ref {
		if r, ok := models.ParseRef(c.Query(key)); ok {
			return &r
		}
		return nil
	}
	filters.Year = ref("annee")
	filters.Class = ref("classe")
	filters.Level = ref("niveau")
	filters.Track = ref("option")
	return filters
}
