package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/services"
)

type UserHandler struct {
	userService  *services.UserService
	imageService *services.ImageService
}

func NewUserHandler(userService *services.UserService, imageService *services.ImageService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		imageService: imageService,
	}
}

// UserRequest holds the editable account fields. The password is hashed
// before storage and never returned.
type UserRequest struct {
	Username     string  `json:"username"`
	LastName     string  `json:"nom"`
	FirstName    string  `json:"prenom"`
	Function     string  `json:"fonction"`
	Contact      string  `json:"contact"`
	Email        *string `json:"email"`
	Password     string  `json:"password"`
	RoleID       *uint   `json:"role"`
	PermissionID *uint   `json:"permission"`
	Status       string  `json:"statut"`
}

func (r UserRequest) toModel() *models.User {
	return &models.User{
		Username:     r.Username,
		LastName:     r.LastName,
		FirstName:    r.FirstName,
		Function:     r.Function,
		Contact:      r.Contact,
		Email:        r.Email,
		RoleID:       r.RoleID,
		PermissionID: r.PermissionID,
		Status:       r.Status,
	}
}

// @Summary List Users
// @Description Get a paginated list of users
// @Tags Users
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search query string false "Search by username or name"
// @Param role query int false "Filter by role ID"
// @Param statut query string false "Filter by status (On, Off)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /utilisateurs [get]
func (h *UserHandler) Index(c *gin.Context) {
	query := listQuery(c, "role", "statut")

	users, total, err := h.userService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	respondList(c, "utilisateurs", responses, total, query)
}

// @Summary Get User
// @Description Get a user by ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Router /utilisateurs/{id} [get]
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"utilisateur": user.ToResponse()})
}

// @Summary Create User
// @Description Create a new user account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User Data"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /utilisateurs [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if !bindBody(c, "utilisateur", &req) {
		return
	}

	user := req.toModel()
	if err := h.userService.Create(c.Request.Context(), user, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"utilisateur": user.ToResponse(), "message": "Utilisateur créé"})
}

// @Summary Update User
// @Description Update a user; an empty password keeps the current one
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UserRequest true "User Data"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Router /utilisateurs/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UserRequest
	if !bindBody(c, "utilisateur", &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req.toModel(), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"utilisateur": user.ToResponse(), "message": "Utilisateur mis à jour"})
}

// @Summary Toggle User Status
// @Description Switches the account between On and Off
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Router /utilisateurs/{id}/toggle_status [put]
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Compte activé"
	if !user.IsActive() {
		message = "Compte désactivé"
	}
	c.JSON(http.StatusOK, gin.H{"utilisateur": user.ToResponse(), "message": message})
}

// @Summary Upload User Photo
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "User ID"
// @Param photo formData file true "Photo"
// @Success 200 {object} services.StoredPhoto
// @Router /utilisateurs/{id}/photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	photo, ok := receivePhoto(c, h.imageService, services.UserPhotoDir)
	if !ok {
		return
	}
	if err := h.userService.SetPhoto(c.Request.Context(), id, photo.Original); err != nil {
		h.imageService.Remove(photo.Original)
		respondError(c, err)
		return
	}
	if user.PhotoPath != nil && *user.PhotoPath != photo.Original {
		h.imageService.Remove(*user.PhotoPath)
	}
	c.JSON(http.StatusOK, gin.H{"photo": photo, "message": "Photo enregistrée"})
}

// @Summary Delete User
// @Tags Users
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Router /utilisateurs/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur supprimé"})
}
