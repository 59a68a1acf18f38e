package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/services"
)

type StudentHandler struct {
	studentService *services.StudentService
	imageService   *services.ImageService
	now            func() time.Time
}

func NewStudentHandler(studentService *services.StudentService, imageService *services.ImageService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		imageService:   imageService,
		now:            time.Now,
	}
}

// StudentRequest holds the editable student fields. Matricule, full name and
// birth date string are derived server side.
type StudentRequest struct {
	LastName   string  `json:"nom"`
	FirstName1 string  `json:"prenom1"`
	FirstName2 *string `json:"prenom2"`
	FirstName3 *string `json:"prenom3"`
	Sex        string  `json:"sexe"`
	BirthDay   int     `json:"jour_naissance"`
	BirthMonth int     `json:"mois_naissance"`
	BirthYear  int     `json:"annee_naissance"`
	BirthPlace *string `json:"lieu_naissance"`
	Father     *string `json:"pere"`
	Mother     *string `json:"mere"`
}

func (r StudentRequest) toModel() *models.Student {
	return &models.Student{
		LastName:   r.LastName,
		FirstName1: r.FirstName1,
		FirstName2: r.FirstName2,
		FirstName3: r.FirstName3,
		Sex:        r.Sex,
		BirthDay:   r.BirthDay,
		BirthMonth: r.BirthMonth,
		BirthYear:  r.BirthYear,
		BirthPlace: r.BirthPlace,
		Father:     r.Father,
		Mother:     r.Mother,
	}
}

// @Summary List Students
// @Description Get a paginated list of students
// @Tags Students
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search query string false "Search by full name or matricule"
// @Param sexe query string false "Filter by sex (F, M, O)"
// @Success 200 {object} map[string]interface{}
// @Router /eleves [get]
func (h *StudentHandler) Index(c *gin.Context) {
	query := listQuery(c, "sexe")
	students, total, err := h.studentService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, students[i].ToResponse())
	}
	respondList(c, "eleves", responses, total, query)
}

// @Summary Get Student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentResponse
// @Failure 404 {object} map[string]string
// @Router /eleves/{id} [get]
func (h *StudentHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	student, err := h.studentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"eleve": student.ToResponse()})
}

// @Summary Create Student
// @Description Registers a student; the matricule is generated once from the new id
// @Tags Students
// @Accept json
// @Produce json
// @Param request body StudentRequest true "Student data"
// @Success 201 {object} models.StudentResponse
// @Failure 400 {object} map[string]string
// @Router /eleves [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req StudentRequest
	if !bindBody(c, "eleve", &req) {
		return
	}

	student := req.toModel()
	if err := h.studentService.Create(c.Request.Context(), student, h.now().Year()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"eleve": student.ToResponse(), "message": "Élève enregistré"})
}

// @Summary Update Student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body StudentRequest true "Student data"
// @Success 200 {object} models.StudentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /eleves/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req StudentRequest
	if !bindBody(c, "eleve", &req) {
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, req.toModel(), h.now().Year())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"eleve": student.ToResponse(), "message": "Élève mis à jour"})
}

// @Summary Delete Student
// @Description Removes the student with its enrollments and payment records
// @Tags Students
// @Param id path int true "Student ID"
// @Success 200 {object} map[string]string
// @Router /eleves/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	student, err := h.studentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	if student.PhotoPath != nil {
		h.imageService.Remove(*student.PhotoPath)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Élève supprimé"})
}

// @Summary Upload Student Photo
// @Description Stores a JPG or PNG photo with a square thumbnail
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Student ID"
// @Param photo formData file true "Photo"
// @Success 200 {object} services.StoredPhoto
// @Failure 400 {object} map[string]string
// @Router /eleves/{id}/photo [post]
func (h *StudentHandler) UploadPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	student, err := h.studentService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	photo, ok := receivePhoto(c, h.imageService, services.StudentPhotoDir)
	if !ok {
		return
	}
	if err := h.studentService.SetPhoto(c.Request.Context(), id, photo.Original); err != nil {
		h.imageService.Remove(photo.Original)
		respondError(c, err)
		return
	}
	if student.PhotoPath != nil && *student.PhotoPath != photo.Original {
		h.imageService.Remove(*student.PhotoPath)
	}
	c.JSON(http.StatusOK, gin.H{"photo": photo, "message": "Photo enregistrée"})
}
