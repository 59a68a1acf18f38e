package services

import (
	"context"
	"testing"
	"time"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T, status string) (*AuthService, *mockUserRepo) {
	t.Helper()
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	mockRepo := &mockUserRepo{}
	mockRepo.mockFindByUsername = func(ctx context.Context, username string) (*models.User, error) {
		if username != "awa" {
			return nil, gorm.ErrRecordNotFound
		}
		return &models.User{
			ID:                3,
			Username:          "awa",
			FirstName:         "Awa",
			LastName:          "Kouassi",
			EncryptedPassword: hash,
			Status:            status,
			Role:              &models.Role{Name: "Comptable"},
		}, nil
	}
	return NewAuthService(mockRepo), mockRepo
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	service, mockRepo := newAuthFixture(t, models.StatusOn)

	result, err := service.Login(context.Background(), "nobody", "secret")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, mockRepo.touched)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, _ := newAuthFixture(t, models.StatusOn)

	result, err := service.Login(context.Background(), "awa", "wrong")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	service, mockRepo := newAuthFixture(t, models.StatusOff)

	// A wrong password on a disabled account reveals nothing about its status
	_, err := service.Login(context.Background(), "awa", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	result, err := service.Login(context.Background(), "awa", "secret")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrAccountDisabled)
	assert.Empty(t, mockRepo.touched)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, mockRepo := newAuthFixture(t, models.StatusOn)
	fixed := time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	result, err := service.Login(context.Background(), " awa ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Connexion réussie", result.Message)
	assert.Equal(t, uint(3), result.User.ID)
	assert.Equal(t, "Awa Kouassi", result.User.FullName)
	assert.Equal(t, "Comptable", result.User.Role)
	assert.Equal(t, []uint{3}, mockRepo.touched)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.True(t, IsHashed(hash))
	assert.True(t, VerifyPassword("secret", hash))
	assert.False(t, VerifyPassword("other", hash))

	again, err := HashPassword(hash)
	require.NoError(t, err)
	assert.Equal(t, hash, again, "an existing hash is stored as is")

	for _, v := range []string{"$2a$10$abc", "$2b$12$abc", "$2y$10$abc"} {
		assert.True(t, IsHashed(v), v)
	}
	for _, v := range []string{"", "secret", "$1$abc", "2a$10$"} {
		assert.False(t, IsHashed(v), v)
	}
}
