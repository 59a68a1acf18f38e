package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/sjperalta/scolarite-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	repository.UserRepository
	users        map[uint]*models.User
	mockList     func(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error)
	touched      []uint
	statusWrites map[uint]string
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uint]*models.User{}, statusWrites: map[uint]string{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return m.mockList(ctx, query)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	m.touched = append(m.touched, id)
	return nil
}

func (m *mockUserRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	m.statusWrites[id] = status
	return nil
}

func newUser(t *testing.T, id uint, username, password, status string) *models.User {
	t.Helper()
	hash, err := services.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:                id,
		Username:          username,
		LastName:          "Kouassi",
		FirstName:         "Awa",
		Contact:           "0700000000",
		EncryptedPassword: hash,
		Status:            status,
	}
}

func TestUserHandler_Index_Filters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := newMockUserRepo()
	handler := NewUserHandler(services.NewUserService(mockRepo), nil)

	var captured *repository.ListQuery
	mockRepo.mockList = func(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
		captured = query
		return []models.User{{ID: 1, Username: "awa", FirstName: "Awa", LastName: "Kouassi"}}, 41, nil
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/utilisateurs?statut=Off&role=2&page=2&per_page=20&search=awa", nil)
	handler.Index(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Off", captured.Filters["statut"])
	assert.Equal(t, "2", captured.Filters["role"])
	assert.Equal(t, "awa", captured.Search)
	assert.Equal(t, 2, captured.Page)

	var body struct {
		Users      []models.UserResponse `json:"utilisateurs"`
		Pagination map[string]int64      `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Users, 1)
	assert.Equal(t, "Awa Kouassi", body.Users[0].FullName)
	assert.Equal(t, int64(3), body.Pagination["total_pages"])
}

func TestUserHandler_ToggleStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockRepo := newMockUserRepo(newUser(t, 7, "awa", "secret", models.StatusOn))
	handler := NewUserHandler(services.NewUserService(mockRepo), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request, _ = http.NewRequest("PUT", "/utilisateurs/7/toggle_status", nil)
	handler.ToggleStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusOff, mockRepo.statusWrites[7])
	assert.Contains(t, w.Body.String(), "Compte désactivé")
}

func TestUserHandler_Show_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewUserHandler(services.NewUserService(newMockUserRepo()), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	c.Request, _ = http.NewRequest("GET", "/utilisateurs/99", nil)
	handler.Show(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserRequest_DoesNotExposePassword(t *testing.T) {
	payload := []byte(`{"utilisateur": {"username": "awa", "password": "secret", "nom": "Kouassi", "prenom": "Awa", "contact": "0700000000"}}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/utilisateurs", bytes.NewBuffer(payload))

	var req UserRequest
	require.True(t, bindBody(c, "utilisateur", &req))
	assert.Equal(t, "secret", req.Password)

	out, err := json.Marshal(req.toModel().ToResponse())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secret")
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			body:           `{"username": "awa", "password": "secret"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			body:           `{"username": "nobody", "password": "secret"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  services.ErrInvalidCredentials.Error(),
		},
		{
			name:           "wrong password",
			body:           `{"username": "awa", "password": "wrong"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  services.ErrInvalidCredentials.Error(),
		},
		{
			name:           "disabled account with wrong password",
			body:           `{"username": "off", "password": "wrong"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  services.ErrInvalidCredentials.Error(),
		},
		{
			name:           "disabled account",
			body:           `{"username": "off", "password": "secret"}`,
			expectedStatus: http.StatusForbidden,
			expectedError:  services.ErrAccountDisabled.Error(),
		},
		{
			name:           "missing fields",
			body:           `{"username": "awa"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := newMockUserRepo(
				newUser(t, 1, "awa", "secret", models.StatusOn),
				newUser(t, 2, "off", "secret", models.StatusOff),
			)
			handler := NewAuthHandler(services.NewAuthService(mockRepo))

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("POST", "/auth/login", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			handler.Login(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			}
			if tt.expectedStatus == http.StatusOK {
				var result services.LoginResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
				assert.Equal(t, "awa", result.User.Username)
				assert.Equal(t, models.DefaultRoleName, result.User.Role)
				assert.Equal(t, []uint{1}, mockRepo.touched)
			} else {
				assert.Empty(t, mockRepo.touched)
			}
		})
	}
}
