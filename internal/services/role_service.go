package services

import (
	"context"
	"errors"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
)

// RoleService handles roles and permissions
type RoleService struct {
	roles       repository.RoleRepository
	permissions repository.PermissionRepository
}

func NewRoleService(roles repository.RoleRepository, permissions repository.PermissionRepository) *RoleService {
	return &RoleService{roles: roles, permissions: permissions}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]models.Role, error) {
	return s.roles.FindAll(ctx)
}

func (s *RoleService) FindRole(ctx context.Context, id uint) (*models.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return role, nil
}

func (s *RoleService) CreateRole(ctx context.Context, role *models.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	return nameConflict(s.roles.Create(ctx, role), "rôle", role.Name)
}

func (s *RoleService) UpdateRole(ctx context.Context, role *models.Role) error {
	if _, err := s.FindRole(ctx, role.ID); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}
	return nameConflict(s.roles.Update(ctx, role), "rôle", role.Name)
}

func (s *RoleService) DeleteRole(ctx context.Context, id uint) error {
	return translate(s.roles.Delete(ctx, id))
}

func (s *RoleService) ListPermissions(ctx context.Context) ([]models.Permission, error) {
	return s.permissions.FindAll(ctx)
}

func (s *RoleService) FindPermission(ctx context.Context, id uint) (*models.Permission, error) {
	permission, err := s.permissions.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return permission, nil
}

func (s *RoleService) CreatePermission(ctx context.Context, permission *models.Permission) error {
	if err := permission.Validate(); err != nil {
		return err
	}
	return nameConflict(s.permissions.Create(ctx, permission), "permission", permission.Name)
}

func (s *RoleService) UpdatePermission(ctx context.Context, permission *models.Permission) error {
	if _, err := s.FindPermission(ctx, permission.ID); err != nil {
		return err
	}
	if err := permission.Validate(); err != nil {
		return err
	}
	return nameConflict(s.permissions.Update(ctx, permission), "permission", permission.Name)
}

func (s *RoleService) DeletePermission(ctx context.Context, id uint) error {
	return translate(s.permissions.Delete(ctx, id))
}

func nameConflict(err error, entity, name string) error {
	err = translate(err)
	if errors.Is(err, ErrConflict) {
		return conflict("%s %q existe déjà", entity, name)
	}
	return err
}
