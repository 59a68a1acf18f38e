package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/services"
)

type PaymentRecordHandler struct {
	recordService *services.PaymentRecordService
	reportService *services.ReportService
}

func NewPaymentRecordHandler(recordService *services.PaymentRecordService, reportService *services.ReportService) *PaymentRecordHandler {
	return &PaymentRecordHandler{recordService: recordService, reportService: reportService}
}

// PaymentRecordRequest carries the caller-editable fields of a payment record.
// Discounted amounts and the total paid are always recomputed.
type PaymentRecordRequest struct {
	EnrollmentID       *uint                `json:"affectation"`
	RegistrationKind   string               `json:"statut_ar"`
	RegistrationAmount decimal.Decimal      `json:"montant_statut_ar"`
	Discount           *decimal.Decimal     `json:"reduction"`
	GuardianName       *string              `json:"tuteur_paiement"`
	GuardianContact    *string              `json:"contact_tuteur_paiement"`
	GuardianAddress    *string              `json:"adresse_tuteur_paiement"`
	GuardianProfession *string              `json:"profession_tuteur_paiement"`
	Installments       []models.Installment `json:"versements"`
}

func (r PaymentRecordRequest) toModel() (*models.PaymentRecord, error) {
	if len(r.Installments) > models.InstallmentSlots {
		return nil, fmt.Errorf("%w: %d versements au maximum", services.ErrValidation, models.InstallmentSlots)
	}
	record := &models.PaymentRecord{
		EnrollmentID:       r.EnrollmentID,
		RegistrationKind:   r.RegistrationKind,
		RegistrationAmount: r.RegistrationAmount,
		Discount:           r.Discount,
		GuardianName:       r.GuardianName,
		GuardianContact:    r.GuardianContact,
		GuardianAddress:    r.GuardianAddress,
		GuardianProfession: r.GuardianProfession,
	}
	var slots [models.InstallmentSlots]models.Installment
	copy(slots[:], r.Installments)
	record.SetInstallments(slots)
	return record, nil
}

// @Summary List Payment Records
// @Tags PaymentRecords
// @Produce json
// @Param affectation query int false "Enrollment ID"
// @Param annee_aff query int false "School year ID"
// @Param classe_aff query int false "Class ID"
// @Param statut_ar query string false "Registration kind"
// @Param search query string false "Search by student name or matricule"
// @Success 200 {object} map[string]interface{}
// @Router /recouvrements [get]
func (h *PaymentRecordHandler) Index(c *gin.Context) {
	query := listQuery(c, "affectation", "annee_aff", "classe_aff", "statut_ar")
	records, total, err := h.recordService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.PaymentRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}
	respondList(c, "recouvrements", responses, total, query)
}

// @Summary Get Payment Record
// @Tags PaymentRecords
// @Produce json
// @Param id path int true "Payment record ID"
// @Success 200 {object} models.PaymentRecordResponse
// @Failure 404 {object} map[string]string
// @Router /recouvrements/{id} [get]
func (h *PaymentRecordHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	record, err := h.recordService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recouvrement": record.ToResponse()})
}

// @Summary Create Payment Record
// @Description Derives the discounted fee, tranches and total paid from the enrollment's fee schedule
// @Tags PaymentRecords
// @Accept json
// @Produce json
// @Param request body PaymentRecordRequest true "Payment record"
// @Success 201 {object} models.PaymentRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /recouvrements [post]
func (h *PaymentRecordHandler) Create(c *gin.Context) {
	var req PaymentRecordRequest
	if !bindBody(c, "recouvrement", &req) {
		return
	}
	record, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.recordService.Create(c.Request.Context(), record); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recouvrement": record.ToResponse(), "message": "Recouvrement enregistré"})
}

// @Summary Update Payment Record
// @Tags PaymentRecords
// @Accept json
// @Produce json
// @Param id path int true "Payment record ID"
// @Param request body PaymentRecordRequest true "Payment record"
// @Success 200 {object} models.PaymentRecordResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recouvrements/{id} [put]
func (h *PaymentRecordHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req PaymentRecordRequest
	if !bindBody(c, "recouvrement", &req) {
		return
	}
	input, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := h.recordService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recouvrement": record.ToResponse(), "message": "Recouvrement mis à jour"})
}

// @Summary Recompute Payment Record
// @Description Re-derives the amounts from the current fee schedule
// @Tags PaymentRecords
// @Produce json
// @Param id path int true "Payment record ID"
// @Success 200 {object} models.PaymentRecordResponse
// @Router /recouvrements/{id}/recompute [post]
func (h *PaymentRecordHandler) Recompute(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	record, err := h.recordService.Recompute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recouvrement": record.ToResponse()})
}

// @Summary Delete Payment Record
// @Tags PaymentRecords
// @Param id path int true "Payment record ID"
// @Success 200 {object} map[string]string
// @Router /recouvrements/{id} [delete]
func (h *PaymentRecordHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.recordService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recouvrement supprimé"})
}

// @Summary Payment Receipt
// @Description Receipt of a payment record as PDF, or HTML with format=html
// @Tags PaymentRecords
// @Produce application/pdf
// @Param id path int true "Payment record ID"
// @Param format query string false "pdf (default) or html"
// @Success 200 {file} file "recu.pdf"
// @Failure 404 {object} map[string]string
// @Router /recouvrements/{id}/recu [get]
func (h *PaymentRecordHandler) Receipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if c.Query("format") == "html" {
		record, err := h.recordService.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		buf, err := h.reportService.RenderReceiptHTML(record)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
		return
	}

	buf, err := h.reportService.GenerateReceiptPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=recu_%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
