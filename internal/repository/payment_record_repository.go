package repository

import (
	"context"
	"errors"

	"github.com/sjperalta/scolarite-api/internal/models"
	"gorm.io/gorm"
)

// ComputeFunc fills the derived fields of a record from its enrollment and
// the matching fee schedule, which is nil when none exists.
type ComputeFunc func(record *models.PaymentRecord, enrollment *models.Enrollment, fee *models.FeeSchedule) error

// PaymentRecordRepository defines the interface for payment record data access
type PaymentRecordRepository interface {
	FindByID(ctx context.Context, id uint) (*models.PaymentRecord, error)
	FindByEnrollment(ctx context.Context, enrollmentID uint) (*models.PaymentRecord, error)
	// SaveComputed loads the enrollment and its fee row, runs compute and
	// persists the record, all in one transaction.
	SaveComputed(ctx context.Context, record *models.PaymentRecord, compute ComputeFunc) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.PaymentRecord, int64, error)
}

type paymentRecordRepository struct {
	db *gorm.DB
}

// NewPaymentRecordRepository creates a new payment record repository
func NewPaymentRecordRepository(db *gorm.DB) PaymentRecordRepository {
	return &paymentRecordRepository{db: db}
}

func (r *paymentRecordRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Enrollment.Student").
		Preload("Enrollment.Class").
		Preload("Enrollment.SchoolYear")
}

func (r *paymentRecordRepository) FindByID(ctx context.Context, id uint) (*models.PaymentRecord, error) {
	var record models.PaymentRecord
	if err := r.withDetails(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *paymentRecordRepository) FindByEnrollment(ctx context.Context, enrollmentID uint) (*models.PaymentRecord, error) {
	var record models.PaymentRecord
	err := r.withDetails(ctx).
		Where("affectation = ?", enrollmentID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *paymentRecordRepository) SaveComputed(ctx context.Context, record *models.PaymentRecord, compute ComputeFunc) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		if err := tx.Preload("Student").Preload("Class").Preload("SchoolYear").
			First(&enrollment, *record.EnrollmentID).Error; err != nil {
			return err
		}

		var fee *models.FeeSchedule
		if enrollment.ClassID != nil {
			found, err := findFee(tx, enrollment.SchoolYearID, *enrollment.ClassID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			fee = found
		}

		if err := compute(record, &enrollment, fee); err != nil {
			return err
		}

		if err := tx.Omit("Enrollment").Save(record).Error; err != nil {
			return err
		}
		record.Enrollment = &enrollment
		return nil
	})
	return translateError(err)
}

func (r *paymentRecordRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.PaymentRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *paymentRecordRepository) List(ctx context.Context, query *ListQuery) ([]models.PaymentRecord, int64, error) {
	var records []models.PaymentRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&models.PaymentRecord{}).
		Joins("LEFT JOIN affectations ON affectations.id = recouvrements.affectation")

	if query.Filters["affectation"] != "" {
		db = db.Where("recouvrements.affectation = ?", query.Filters["affectation"])
	}
	if query.Filters["annee_aff"] != "" {
		db = db.Where("affectations.annee_aff = ?", query.Filters["annee_aff"])
	}
	if query.Filters["classe_aff"] != "" {
		db = db.Where("affectations.classe_aff = ?", query.Filters["classe_aff"])
	}
	if query.Filters["statut_ar"] != "" {
		db = db.Where("recouvrements.statut_ar = ?", query.Filters["statut_ar"])
	}
	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Joins("LEFT JOIN eleves ON eleves.id = affectations.eleve_aff").
			Where("eleves.fullname ILIKE ? OR eleves.matricule ILIKE ?", search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = paginate(db, query, "recouvrements.id DESC", map[string]string{
		"total_paye":     "recouvrements.total_paye",
		"frais_paiement": "recouvrements.frais_paiement",
	})
	err := db.Preload("Enrollment.Student").
		Preload("Enrollment.Class").
		Preload("Enrollment.SchoolYear").
		Find(&records).Error
	return records, total, err
}
