package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/services"
)

type SchoolYearHandler struct {
	yearService *services.SchoolYearService
}

func NewSchoolYearHandler(yearService *services.SchoolYearService) *SchoolYearHandler {
	return &SchoolYearHandler{yearService: yearService}
}

// SchoolYearRequest carries the bounds of a school year; the label is derived
type SchoolYearRequest struct {
	Start int `json:"debut" binding:"required"`
	End   int `json:"fin" binding:"required"`
}

// @Summary List School Years
// @Description Get a paginated list of school years, most recent first
// @Tags SchoolYears
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /annees [get]
func (h *SchoolYearHandler) Index(c *gin.Context) {
	query := listQuery(c)
	years, total, err := h.yearService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "annees", years, total, query)
}

// @Summary Get School Year
// @Tags SchoolYears
// @Produce json
// @Param id path int true "School year ID"
// @Success 200 {object} models.SchoolYear
// @Failure 404 {object} map[string]string
// @Router /annees/{id} [get]
func (h *SchoolYearHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	year, err := h.yearService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"annee": year})
}

// @Summary Create School Year
// @Description The label is computed as "{debut}-{fin}"; fin must be debut+1
// @Tags SchoolYears
// @Accept json
// @Produce json
// @Param request body SchoolYearRequest true "School year bounds"
// @Success 201 {object} models.SchoolYear
// @Failure 400 {object} map[string]string
// @Router /annees [post]
func (h *SchoolYearHandler) Create(c *gin.Context) {
	var req SchoolYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "debut et fin sont requis"})
		return
	}

	year := &models.SchoolYear{Start: req.Start, End: req.End}
	if err := h.yearService.Create(c.Request.Context(), year); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"annee": year, "message": "Année scolaire créée"})
}

// @Summary Update School Year
// @Tags SchoolYears
// @Accept json
// @Produce json
// @Param id path int true "School year ID"
// @Param request body SchoolYearRequest true "School year bounds"
// @Success 200 {object} models.SchoolYear
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /annees/{id} [put]
func (h *SchoolYearHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req SchoolYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "debut et fin sont requis"})
		return
	}

	year, err := h.yearService.Update(c.Request.Context(), id, req.Start, req.End)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"annee": year, "message": "Année scolaire mise à jour"})
}

// @Summary Delete School Year
// @Description Enrollments and fee schedules of the year keep existing without a year
// @Tags SchoolYears
// @Param id path int true "School year ID"
// @Success 200 {object} map[string]string
// @Router /annees/{id} [delete]
func (h *SchoolYearHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.yearService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Année scolaire supprimée"})
}

type ClassHandler struct {
	classService *services.ClassService
}

func NewClassHandler(classService *services.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

type ClassRequest struct {
	Code  string        `json:"code_classe" binding:"required"`
	Label string        `json:"lib_classe" binding:"required"`
	Level *models.Level `json:"niveau_classe"`
	Track *models.Track `json:"option_classe"`
}

func (r ClassRequest) toModel() *models.Class {
	return &models.Class{Code: r.Code, Label: r.Label, Level: r.Level, Track: r.Track}
}

// @Summary List Classes
// @Tags Classes
// @Produce json
// @Param search query string false "Search by code or label"
// @Param niveau_classe query string false "Level code"
// @Param option_classe query string false "Track code"
// @Success 200 {object} map[string]interface{}
// @Router /classes [get]
func (h *ClassHandler) Index(c *gin.Context) {
	query := listQuery(c, "niveau_classe", "option_classe")
	classes, total, err := h.classService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, classes[i].ToResponse())
	}
	respondList(c, "classes", responses, total, query)
}

// @Summary Get Class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} models.ClassResponse
// @Failure 404 {object} map[string]string
// @Router /classes/{id} [get]
func (h *ClassHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	class, err := h.classService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"classe": class.ToResponse()})
}

// @Summary Create Class
// @Tags Classes
// @Accept json
// @Produce json
// @Param request body ClassRequest true "Class data"
// @Success 201 {object} models.ClassResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class := req.toModel()
	if err := h.classService.Create(c.Request.Context(), class); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"classe": class.ToResponse(), "message": "Classe créée"})
}

// @Summary Update Class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param request body ClassRequest true "Class data"
// @Success 200 {object} models.ClassResponse
// @Router /classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class := req.toModel()
	class.ID = id
	if err := h.classService.Update(c.Request.Context(), class); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"classe": class.ToResponse(), "message": "Classe mise à jour"})
}

// @Summary Delete Class
// @Description Removes the class and its fee schedules; enrollments lose their class
// @Tags Classes
// @Param id path int true "Class ID"
// @Success 200 {object} map[string]string
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.classService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Classe supprimée"})
}

// @Summary List Levels
// @Description Education levels with the ordinal ids accepted by the stats filters
// @Tags Classes
// @Produce json
// @Success 200 {array} models.ChoiceOption
// @Router /niveaux [get]
func (h *ClassHandler) Levels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"niveaux": models.LevelChoices()})
}

// @Summary List Tracks
// @Description Tracks with the ordinal ids accepted by the stats filters
// @Tags Classes
// @Produce json
// @Success 200 {array} models.ChoiceOption
// @Router /options [get]
func (h *ClassHandler) Tracks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": models.TrackChoices()})
}

type RoleHandler struct {
	roleService *services.RoleService
}

func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

type NamedRequest struct {
	Name        string `json:"nom" binding:"required"`
	Description string `json:"description"`
}

// @Summary List Roles
// @Tags Roles
// @Produce json
// @Success 200 {array} models.Role
// @Router /roles [get]
func (h *RoleHandler) Index(c *gin.Context) {
	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

// @Summary Get Role
// @Tags Roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} models.Role
// @Router /roles/{id} [get]
func (h *RoleHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	role, err := h.roleService.FindRole(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// @Summary Create Role
// @Tags Roles
// @Accept json
// @Produce json
// @Param request body NamedRequest true "Role data"
// @Success 201 {object} models.Role
// @Router /roles [post]
func (h *RoleHandler) Create(c *gin.Context) {
	var req NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom est requis"})
		return
	}
	role := &models.Role{Name: req.Name, Description: req.Description}
	if err := h.roleService.CreateRole(c.Request.Context(), role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"role": role})
}

// @Summary Update Role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path int true "Role ID"
// @Param request body NamedRequest true "Role data"
// @Success 200 {object} models.Role
// @Router /roles/{id} [put]
func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom est requis"})
		return
	}
	role := &models.Role{ID: id, Name: req.Name, Description: req.Description}
	if err := h.roleService.UpdateRole(c.Request.Context(), role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// @Summary Delete Role
// @Description Users holding the role keep existing without one
// @Tags Roles
// @Param id path int true "Role ID"
// @Success 200 {object} map[string]string
// @Router /roles/{id} [delete]
func (h *RoleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.roleService.DeleteRole(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rôle supprimé"})
}

// @Summary List Permissions
// @Tags Permissions
// @Produce json
// @Success 200 {array} models.Permission
// @Router /permissions [get]
func (h *RoleHandler) IndexPermissions(c *gin.Context) {
	permissions, err := h.roleService.ListPermissions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": permissions})
}

// @Summary Get Permission
// @Tags Permissions
// @Produce json
// @Param id path int true "Permission ID"
// @Success 200 {object} models.Permission
// @Router /permissions/{id} [get]
func (h *RoleHandler) ShowPermission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	permission, err := h.roleService.FindPermission(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permission": permission})
}

// @Summary Create Permission
// @Tags Permissions
// @Accept json
// @Produce json
// @Param request body NamedRequest true "Permission data"
// @Success 201 {object} models.Permission
// @Router /permissions [post]
func (h *RoleHandler) CreatePermission(c *gin.Context) {
	var req NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom est requis"})
		return
	}
	permission := &models.Permission{Name: req.Name, Description: req.Description}
	if err := h.roleService.CreatePermission(c.Request.Context(), permission); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"permission": permission})
}

// @Summary Update Permission
// @Tags Permissions
// @Accept json
// @Produce json
// @Param id path int true "Permission ID"
// @Param request body NamedRequest true "Permission data"
// @Success 200 {object} models.Permission
// @Router /permissions/{id} [put]
func (h *RoleHandler) UpdatePermission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req NamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le nom est requis"})
		return
	}
	permission := &models.Permission{ID: id, Name: req.Name, Description: req.Description}
	if err := h.roleService.UpdatePermission(c.Request.Context(), permission); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permission": permission})
}

// @Summary Delete Permission
// @Tags Permissions
// @Param id path int true "Permission ID"
// @Success 200 {object} map[string]string
// @Router /permissions/{id} [delete]
func (h *RoleHandler) DeletePermission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.roleService.DeletePermission(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Permission supprimée"})
}
