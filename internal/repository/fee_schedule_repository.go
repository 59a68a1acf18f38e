package repository

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"gorm.io/gorm"
)

// FeeScheduleRepository defines the interface for fee schedule data access
type FeeScheduleRepository interface {
	FindByID(ctx context.Context, id uint) (*models.FeeSchedule, error)
	// Find returns the fee row for (year, class); lowest id wins.
	Find(ctx context.Context, yearID *uint, classID uint) (*models.FeeSchedule, error)
	Create(ctx context.Context, fee *models.FeeSchedule) error
	Update(ctx context.Context, fee *models.FeeSchedule) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.FeeSchedule, int64, error)
}

type feeScheduleRepository struct {
	db *gorm.DB
}

// NewFeeScheduleRepository creates a new fee schedule repository
func NewFeeScheduleRepository(db *gorm.DB) FeeScheduleRepository {
	return &feeScheduleRepository{db: db}
}

func (r *feeScheduleRepository) FindByID(ctx context.Context, id uint) (*models.FeeSchedule, error) {
	var fee models.FeeSchedule
	err := r.db.WithContext(ctx).
		Preload("Class").
		Preload("SchoolYear").
		First(&fee, id).Error
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *feeScheduleRepository) Find(ctx context.Context, yearID *uint, classID uint) (*models.FeeSchedule, error) {
	return findFee(r.db.WithContext(ctx), yearID, classID)
}

// findFee runs the (year, class) lookup on db, which may be a transaction.
// A nil year matches rows without a year.
func findFee(db *gorm.DB, yearID *uint, classID uint) (*models.FeeSchedule, error) {
	q := db.Where("classe_fs = ?", classID)
	if yearID == nil {
		q = q.Where("annee_fs IS NULL")
	} else {
		q = q.Where("annee_fs = ?", *yearID)
	}

	var fee models.FeeSchedule
	if err := q.Order("id ASC").First(&fee).Error; err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *feeScheduleRepository) Create(ctx context.Context, fee *models.FeeSchedule) error {
	return translateError(r.db.WithContext(ctx).Omit("Class", "SchoolYear").Create(fee).Error)
}

func (r *feeScheduleRepository) Update(ctx context.Context, fee *models.FeeSchedule) error {
	return translateError(r.db.WithContext(ctx).Omit("Class", "SchoolYear").Save(fee).Error)
}

func (r *feeScheduleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.FeeSchedule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *feeScheduleRepository) List(ctx context.Context, query *ListQuery) ([]models.FeeSchedule, int64, error) {
	var fees []models.FeeSchedule
	var total int64

	db := r.db.WithContext(ctx).Model(&models.FeeSchedule{})
	if query.Filters["annee_fs"] != "" {
		db = db.Where("annee_fs = ?", query.Filters["annee_fs"])
	}
	if query.Filters["classe_fs"] != "" {
		db = db.Where("classe_fs = ?", query.Filters["classe_fs"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = paginate(db, query, "id ASC", map[string]string{"frais_annuel": "frais_annuel"})
	err := db.Preload("Class").Preload("SchoolYear").Find(&fees).Error
	return fees, total, err
}
