package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/sjperalta/scolarite-api/internal/statemachine"
	"github.com/sjperalta/scolarite-api/pkg/logger"
)

// UserService handles user-related business logic
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return s.repo.List(ctx, query)
}

// Create stores a new account with a hashed password
func (s *UserService) Create(ctx context.Context, user *models.User, password string) error {
	if password == "" {
		return fmt.Errorf("%w: le mot de passe est requis", ErrValidation)
	}
	if err := user.Validate(); err != nil {
		return err
	}
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.EncryptedPassword = hashedPassword
	if err := s.repo.Create(ctx, user); err != nil {
		return userConflict(err)
	}
	return nil
}

// Update overwrites the profile of user id; a non-empty password is re-hashed
func (s *UserService) Update(ctx context.Context, id uint, input *models.User, password string) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.LastName = input.LastName
	user.FirstName = input.FirstName
	user.Function = input.Function
	user.Contact = input.Contact
	user.Email = input.Email
	user.RoleID = input.RoleID
	user.PermissionID = input.PermissionID
	if input.Status != "" {
		user.Status = input.Status
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	if password != "" {
		hashed, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		user.EncryptedPassword = hashed
	}

	user.Role = nil
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, userConflict(err)
	}
	return s.FindByID(ctx, id)
}

// ToggleStatus switches the account between On and Off
func (s *UserService) ToggleStatus(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account := statemachine.NewAccountFSM(user)
	if err := account.Toggle(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	if err := s.repo.UpdateStatus(ctx, id, user.Status); err != nil {
		return nil, translate(err)
	}
	logger.Info("User status changed", "user_id", id, "status", user.Status)
	return user, nil
}

// SetPhoto records the stored photo path of a user
func (s *UserService) SetPhoto(ctx context.Context, id uint, path string) error {
	return translate(s.repo.UpdatePhoto(ctx, id, path))
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return translate(s.repo.Delete(ctx, id))
}

func userConflict(err error) error {
	err = translate(err)
	if errors.Is(err, ErrConflict) {
		return conflict("un utilisateur avec ce nom d'utilisateur, ce contact ou cet e-mail existe déjà")
	}
	return err
}
