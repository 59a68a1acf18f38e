package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/services"
)

type EnrollmentHandler struct {
	enrollmentService *services.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

type EnrollmentRequest struct {
	StudentID uint   `json:"eleve_aff"`
	ClassID   uint   `json:"classe_aff"`
	YearID    uint   `json:"annee_aff"`
	Status    string `json:"etat_aff"`
}

func (r EnrollmentRequest) toInput() services.EnrollInput {
	return services.EnrollInput{
		StudentID: r.StudentID,
		ClassID:   r.ClassID,
		YearID:    r.YearID,
		Status:    r.Status,
	}
}

// @Summary List Enrollments
// @Tags Enrollments
// @Produce json
// @Param annee_aff query int false "School year ID"
// @Param classe_aff query int false "Class ID"
// @Param eleve_aff query int false "Student ID"
// @Param etat_aff query string false "Status"
// @Param search query string false "Search by student name or matricule"
// @Success 200 {object} map[string]interface{}
// @Router /affectations [get]
func (h *EnrollmentHandler) Index(c *gin.Context) {
	query := listQuery(c, "annee_aff", "classe_aff", "eleve_aff", "etat_aff")
	enrollments, total, err := h.enrollmentService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		responses = append(responses, enrollments[i].ToResponse())
	}
	respondList(c, "affectations", responses, total, query)
}

// @Summary Get Enrollment
// @Tags Enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} models.EnrollmentResponse
// @Failure 404 {object} map[string]string
// @Router /affectations/{id} [get]
func (h *EnrollmentHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	enrollment, err := h.enrollmentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"affectation": enrollment.ToResponse()})
}

// @Summary Create Enrollment
// @Description A student holds at most one enrollment per school year
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param request body EnrollmentRequest true "Enrollment"
// @Success 201 {object} models.EnrollmentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /affectations [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req EnrollmentRequest
	if !bindBody(c, "affectation", &req) {
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"affectation": enrollment.ToResponse(), "message": "Affectation créée"})
}

// @Summary Ensure Enrollment
// @Description Returns the enrollment for student, class and year, creating it when absent
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param request body EnrollmentRequest true "Enrollment"
// @Success 200 {object} models.EnrollmentResponse
// @Success 201 {object} models.EnrollmentResponse
// @Failure 409 {object} map[string]string
// @Router /affectations/ensure [post]
func (h *EnrollmentHandler) Ensure(c *gin.Context) {
	var req EnrollmentRequest
	if !bindBody(c, "affectation", &req) {
		return
	}

	enrollment, created, err := h.enrollmentService.Ensure(c.Request.Context(), req.StudentID, req.ClassID, req.YearID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"affectation": enrollment.ToResponse(), "created": created})
}

// @Summary Update Enrollment
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body EnrollmentRequest true "Enrollment"
// @Success 200 {object} models.EnrollmentResponse
// @Failure 409 {object} map[string]string
// @Router /affectations/{id} [put]
func (h *EnrollmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req EnrollmentRequest
	if !bindBody(c, "affectation", &req) {
		return
	}

	enrollment, err := h.enrollmentService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"affectation": enrollment.ToResponse(), "message": "Affectation mise à jour"})
}

// @Summary Delete Enrollment
// @Description Removes the enrollment and its payment record
// @Tags Enrollments
// @Param id path int true "Enrollment ID"
// @Success 200 {object} map[string]string
// @Router /affectations/{id} [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.enrollmentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Affectation supprimée"})
}
