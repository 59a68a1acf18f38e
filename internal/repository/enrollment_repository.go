package repository

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"gorm.io/gorm"
)

// EnrollmentRepository defines the interface for enrollment data access
type EnrollmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Enrollment, error)
	FindByStudentYear(ctx context.Context, studentID, yearID uint) (*models.Enrollment, error)
	FindExact(ctx context.Context, studentID, classID, yearID uint) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Enrollment, int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Student").
		Preload("Class").
		Preload("SchoolYear")
}

func (r *enrollmentRepository) FindByID(ctx context.Context, id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.withDetails(ctx).First(&enrollment, id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByStudentYear(ctx context.Context, studentID, yearID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Where("eleve_aff = ? AND annee_aff = ?", studentID, yearID).
		Order("id ASC").
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindExact(ctx context.Context, studentID, classID, yearID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.withDetails(ctx).
		Where("eleve_aff = ? AND classe_aff = ? AND annee_aff = ?", studentID, classID, yearID).
		Order("id ASC").
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	err := r.db.WithContext(ctx).
		Omit("Student", "Class", "SchoolYear", "PaymentRecord").
		Create(enrollment).Error
	return translateError(err)
}

func (r *enrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	err := r.db.WithContext(ctx).
		Omit("Student", "Class", "SchoolYear", "PaymentRecord", "EnrolledAt").
		Save(enrollment).Error
	return translateError(err)
}

// Delete removes the enrollment and its payment record
func (r *enrollmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("affectation = ?", id).Delete(&models.PaymentRecord{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Enrollment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *enrollmentRepository) List(ctx context.Context, query *ListQuery) ([]models.Enrollment, int64, error) {
	var enrollments []models.Enrollment
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Enrollment{})

	if query.Filters["annee_aff"] != "" {
		db = db.Where("affectations.annee_aff = ?", query.Filters["annee_aff"])
	}
	if query.Filters["classe_aff"] != "" {
		db = db.Where("affectations.classe_aff = ?", query.Filters["classe_aff"])
	}
	if query.Filters["eleve_aff"] != "" {
		db = db.Where("affectations.eleve_aff = ?", query.Filters["eleve_aff"])
	}
	if query.Filters["etat_aff"] != "" {
		db = db.Where("affectations.etat_aff = ?", query.Filters["etat_aff"])
	}
	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Joins("JOIN eleves ON eleves.id = affectations.eleve_aff").
			Where("eleves.fullname ILIKE ? OR eleves.matricule ILIKE ?", search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = paginate(db, query, "affectations.date_aff DESC", map[string]string{
		"date_aff": "affectations.date_aff",
	})
	err := db.Preload("Student").Preload("Class").Preload("SchoolYear").Find(&enrollments).Error
	return enrollments, total, err
}
