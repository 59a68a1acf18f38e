package repository

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"gorm.io/gorm"
)

// ClassRepository defines the interface for class data access
type ClassRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Class, error)
	FindByLabel(ctx context.Context, label string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Class, int64, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) FindByID(ctx context.Context, id uint) (*models.Class, error) {
	var class models.Class
	if err := r.db.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindByLabel(ctx context.Context, label string) (*models.Class, error) {
	var class models.Class
	err := r.db.WithContext(ctx).
		Where("lib_classe = ?", label).
		Order("id ASC").
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	return translateError(r.db.WithContext(ctx).Create(class).Error)
}

func (r *classRepository) Update(ctx context.Context, class *models.Class) error {
	return translateError(r.db.WithContext(ctx).Save(class).Error)
}

// Delete removes the class with its fee schedules and clears it from enrollments
func (r *classRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Enrollment{}).
			Where("classe_aff = ?", id).
			Update("classe_aff", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("classe_fs = ?", id).Delete(&models.FeeSchedule{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Class{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *classRepository) List(ctx context.Context, query *ListQuery) ([]models.Class, int64, error) {
	var classes []models.Class
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Class{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("code_classe ILIKE ? OR lib_classe ILIKE ?", search, search)
	}
	if query.Filters["niveau_classe"] != "" {
		db = db.Where("niveau_classe = ?", query.Filters["niveau_classe"])
	}
	if query.Filters["option_classe"] != "" {
		db = db.Where("option_classe = ?", query.Filters["option_classe"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = paginate(db, query, "lib_classe ASC", map[string]string{
		"code_classe": "code_classe",
		"lib_classe":  "lib_classe",
	})
	err := db.Find(&classes).Error
	return classes, total, err
}
