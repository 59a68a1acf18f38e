package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/sjperalta/scolarite-api/internal/services"
	"github.com/sjperalta/scolarite-api/pkg/logger"
)

// Handlers holds all handler instances
type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	User          *UserHandler
	Role          *RoleHandler
	SchoolYear    *SchoolYearHandler
	Class         *ClassHandler
	FeeSchedule   *FeeScheduleHandler
	Student       *StudentHandler
	Enrollment    *EnrollmentHandler
	PaymentRecord *PaymentRecordHandler
	Stats         *StatsHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(svcs.Health),
		Auth:          NewAuthHandler(svcs.Auth),
		User:          NewUserHandler(svcs.User, svcs.Image),
		Role:          NewRoleHandler(svcs.Role),
		SchoolYear:    NewSchoolYearHandler(svcs.SchoolYear),
		Class:         NewClassHandler(svcs.Class),
		FeeSchedule:   NewFeeScheduleHandler(svcs.FeeSchedule),
		Student:       NewStudentHandler(svcs.Student, svcs.Image),
		Enrollment:    NewEnrollmentHandler(svcs.Enrollment),
		PaymentRecord: NewPaymentRecordHandler(svcs.PaymentRecord, svcs.Report),
		Stats:         NewStatsHandler(svcs.Stats, svcs.Export),
	}
}

// statusFor maps a service error onto its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAccountDisabled):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": msg} with the matching status.
// Internal errors are logged and their detail is not exposed.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "Erreur interne du serveur"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseID reads a positive numeric path parameter, answering 400 otherwise
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return 0, false
	}
	return uint(id), true
}

// listQuery builds a repository query from the common paging, search and
// sort parameters plus the given filter keys.
func listQuery(c *gin.Context, filters ...string) *repository.ListQuery {
	query := repository.NewListQuery()
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		query.Page = page
	}
	if perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20")); err == nil && perPage > 0 {
		query.PerPage = perPage
	}
	query.Search = c.Query("search")
	query.SortBy = c.Query("sort_by")
	query.SortDir = c.Query("sort_dir")
	for _, key := range filters {
		query.Filters[key] = c.Query(key)
	}
	return query
}

// respondList writes a page of items with its pagination block
func respondList(c *gin.Context, key string, items interface{}, total int64, query *repository.ListQuery) {
	perPage := int64(query.PerPage)
	if perPage <= 0 {
		perPage = 1
	}
	c.JSON(http.StatusOK, gin.H{
		key: items,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + perPage - 1) / perPage,
		},
	})
}

// bindBody decodes the request into obj, nested under key or flat,
// answering 400 on malformed input.
func bindBody(c *gin.Context, key string, obj interface{}) bool {
	if err := BindNestedOrFlat(c, key, obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corps de requête invalide: " + err.Error()})
		return false
	}
	return true
}
