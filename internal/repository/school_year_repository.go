package repository

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"gorm.io/gorm"
)

// SchoolYearRepository defines the interface for school year data access
type SchoolYearRepository interface {
	FindByID(ctx context.Context, id uint) (*models.SchoolYear, error)
	FindByLabel(ctx context.Context, label string) (*models.SchoolYear, error)
	Create(ctx context.Context, year *models.SchoolYear) error
	Update(ctx context.Context, year *models.SchoolYear) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.SchoolYear, int64, error)
}

type schoolYearRepository struct {
	db *gorm.DB
}

// NewSchoolYearRepository creates a new school year repository
func NewSchoolYearRepository(db *gorm.DB) SchoolYearRepository {
	return &schoolYearRepository{db: db}
}

func (r *schoolYearRepository) FindByID(ctx context.Context, id uint) (*models.SchoolYear, error) {
	var year models.SchoolYear
	if err := r.db.WithContext(ctx).First(&year, id).Error; err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *schoolYearRepository) FindByLabel(ctx context.Context, label string) (*models.SchoolYear, error) {
	var year models.SchoolYear
	err := r.db.WithContext(ctx).
		Where("annee_scolaire = ?", label).
		Order("id ASC").
		First(&year).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *schoolYearRepository) Create(ctx context.Context, year *models.SchoolYear) error {
	return translateError(r.db.WithContext(ctx).Create(year).Error)
}

func (r *schoolYearRepository) Update(ctx context.Context, year *models.SchoolYear) error {
	return translateError(r.db.WithContext(ctx).Save(year).Error)
}

// Delete removes the year and clears it from enrollments and fee schedules
func (r *schoolYearRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Enrollment{}).
			Where("annee_aff = ?", id).
			Update("annee_aff", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.FeeSchedule{}).
			Where("annee_fs = ?", id).
			Update("annee_fs", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.SchoolYear{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *schoolYearRepository) List(ctx context.Context, query *ListQuery) ([]models.SchoolYear, int64, error) {
	var years []models.SchoolYear
	var total int64

	db := r.db.WithContext(ctx).Model(&models.SchoolYear{})
	if query.Search != "" {
		db = db.Where("annee_scolaire ILIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = paginate(db, query, "debut DESC", map[string]string{"debut": "debut", "annee_scolaire": "annee_scolaire"})
	err := db.Find(&years).Error
	return years, total, err
}
