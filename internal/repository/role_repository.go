package repository

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"gorm.io/gorm"
)

// RoleRepository defines the interface for role data access
type RoleRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]models.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByID(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	return translateError(r.db.WithContext(ctx).Create(role).Error)
}

func (r *roleRepository) Update(ctx context.Context, role *models.Role) error {
	return translateError(r.db.WithContext(ctx).Save(role).Error)
}

// Delete removes the role and detaches it from users
func (r *roleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("role = ?", id).Update("role", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Role{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *roleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.WithContext(ctx).Order("nom ASC").Find(&roles).Error
	return roles, err
}

// PermissionRepository defines the interface for permission data access
type PermissionRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Permission, error)
	Create(ctx context.Context, permission *models.Permission) error
	Update(ctx context.Context, permission *models.Permission) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]models.Permission, error)
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) FindByID(ctx context.Context, id uint) (*models.Permission, error) {
	var permission models.Permission
	if err := r.db.WithContext(ctx).First(&permission, id).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepository) Create(ctx context.Context, permission *models.Permission) error {
	return translateError(r.db.WithContext(ctx).Create(permission).Error)
}

func (r *permissionRepository) Update(ctx context.Context, permission *models.Permission) error {
	return translateError(r.db.WithContext(ctx).Save(permission).Error)
}

// Delete removes the permission and detaches it from users
func (r *permissionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("permission = ?", id).Update("permission", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Permission{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *permissionRepository) FindAll(ctx context.Context) ([]models.Permission, error) {
	var permissions []models.Permission
	err := r.db.WithContext(ctx).Order("nom ASC").Find(&permissions).Error
	return permissions, err
}
