package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/services"
)

type FeeScheduleHandler struct {
	feeService *services.FeeScheduleService
}

func NewFeeScheduleHandler(feeService *services.FeeScheduleService) *FeeScheduleHandler {
	return &FeeScheduleHandler{feeService: feeService}
}

type FeeScheduleRequest struct {
	SchoolYearID *uint           `json:"annee_fs"`
	ClassID      uint            `json:"classe_fs"`
	AnnualFee    decimal.Decimal `json:"frais_annuel"`
	Tranche1     decimal.Decimal `json:"t1_fs"`
	Tranche2     decimal.Decimal `json:"t2_fs"`
	Tranche3     decimal.Decimal `json:"t3_fs"`
}

func (r FeeScheduleRequest) toModel() *models.FeeSchedule {
	return &models.FeeSchedule{
		SchoolYearID: r.SchoolYearID,
		ClassID:      r.ClassID,
		AnnualFee:    r.AnnualFee,
		Tranche1:     r.Tranche1,
		Tranche2:     r.Tranche2,
		Tranche3:     r.Tranche3,
	}
}

// @Summary List Fee Schedules
// @Tags FeeSchedules
// @Produce json
// @Param annee_fs query int false "School year ID"
// @Param classe_fs query int false "Class ID"
// @Success 200 {object} map[string]interface{}
// @Router /frais [get]
func (h *FeeScheduleHandler) Index(c *gin.Context) {
	query := listQuery(c, "annee_fs", "classe_fs")
	fees, total, err := h.feeService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.FeeScheduleResponse, 0, len(fees))
	for i := range fees {
		responses = append(responses, fees[i].ToResponse())
	}
	respondList(c, "frais", responses, total, query)
}

// @Summary Look up a Fee Schedule
// @Description Returns the fee schedule applying to a class within a school year
// @Tags FeeSchedules
// @Produce json
// @Param classe query int true "Class ID"
// @Param annee query int false "School year ID (absent means no year)"
// @Success 200 {object} models.FeeScheduleResponse
// @Failure 404 {object} map[string]string
// @Router /frais/lookup [get]
func (h *FeeScheduleHandler) Lookup(c *gin.Context) {
	classID, err := strconv.ParseUint(c.Query("classe"), 10, 32)
	if err != nil || classID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "classe est requise"})
		return
	}

	var yearID *uint
	if raw := c.Query("annee"); raw != "" {
		y, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "annee invalide"})
			return
		}
		id := uint(y)
		yearID = &id
	}

	fee, err := h.feeService.Lookup(c.Request.Context(), yearID, uint(classID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"frais": fee.ToResponse()})
}

// @Summary Get Fee Schedule
// @Tags FeeSchedules
// @Produce json
// @Param id path int true "Fee schedule ID"
// @Success 200 {object} models.FeeScheduleResponse
// @Failure 404 {object} map[string]string
// @Router /frais/{id} [get]
func (h *FeeScheduleHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fee, err := h.feeService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"frais": fee.ToResponse()})
}

// @Summary Create Fee Schedule
// @Tags FeeSchedules
// @Accept json
// @Produce json
// @Param request body FeeScheduleRequest true "Fee schedule"
// @Success 201 {object} models.FeeScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /frais [post]
func (h *FeeScheduleHandler) Create(c *gin.Context) {
	var req FeeScheduleRequest
	if !bindBody(c, "frais", &req) {
		return
	}

	fee := req.toModel()
	if err := h.feeService.Create(c.Request.Context(), fee); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"frais": fee.ToResponse(), "message": "Frais de scolarité créés"})
}

// @Summary Update Fee Schedule
// @Description Existing payment records keep their amounts until saved or recomputed
// @Tags FeeSchedules
// @Accept json
// @Produce json
// @Param id path int true "Fee schedule ID"
// @Param request body FeeScheduleRequest true "Fee schedule"
// @Success 200 {object} models.FeeScheduleResponse
// @Router /frais/{id} [put]
func (h *FeeScheduleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req FeeScheduleRequest
	if !bindBody(c, "frais", &req) {
		return
	}

	fee := req.toModel()
	fee.ID = id
	if err := h.feeService.Update(c.Request.Context(), fee); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"frais": fee.ToResponse(), "message": "Frais de scolarité mis à jour"})
}

// @Summary Delete Fee Schedule
// @Tags FeeSchedules
// @Param id path int true "Fee schedule ID"
// @Success 200 {object} map[string]string
// @Router /frais/{id} [delete]
func (h *FeeScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.feeService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Frais de scolarité supprimés"})
}
