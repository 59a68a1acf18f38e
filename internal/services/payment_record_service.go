package services

import (
	"context"
	"errors"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/sjperalta/scolarite-api/internal/tuition"
	"github.com/sjperalta/scolarite-api/pkg/logger"
)

// PaymentRecordService records tuition collection and keeps the derived
// amounts consistent with the fee schedule.
type PaymentRecordService struct {
	repo repository.PaymentRecordRepository
}

func NewPaymentRecordService(repo repository.PaymentRecordRepository) *PaymentRecordService {
	return &PaymentRecordService{repo: repo}
}

func (s *PaymentRecordService) FindByID(ctx context.Context, id uint) (*models.PaymentRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return record, nil
}

func (s *PaymentRecordService) List(ctx context.Context, query *repository.ListQuery) ([]models.PaymentRecord, int64, error) {
	return s.repo.List(ctx, query)
}

// Create stores a new record for its enrollment with freshly derived amounts
func (s *PaymentRecordService) Create(ctx context.Context, record *models.PaymentRecord) error {
	record.ID = 0
	if err := record.Validate(); err != nil {
		return err
	}
	return s.save(ctx, record)
}

// Update replaces the caller-editable fields of record id and recomputes
// the derived amounts.
func (s *PaymentRecordService) Update(ctx context.Context, id uint, input *models.PaymentRecord) (*models.PaymentRecord, error) {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.EnrollmentID != nil {
		record.EnrollmentID = input.EnrollmentID
	}
	record.RegistrationKind = input.RegistrationKind
	record.RegistrationAmount = input.RegistrationAmount
	record.Discount = input.Discount
	record.GuardianName = input.GuardianName
	record.GuardianContact = input.GuardianContact
	record.GuardianAddress = input.GuardianAddress
	record.GuardianProfession = input.GuardianProfession
	record.SetInstallments(input.Installments())
	record.Enrollment = nil

	if err := record.Validate(); err != nil {
		return nil, err
	}
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Recompute re-derives the amounts of record id from the current fee schedule
func (s *PaymentRecordService) Recompute(ctx context.Context, id uint) (*models.PaymentRecord, error) {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Enrollment = nil
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// RecomputeForEnrollment re-derives the record attached to an enrollment.
// It returns nil, nil when the enrollment has no record.
func (s *PaymentRecordService) RecomputeForEnrollment(ctx context.Context, enrollmentID uint) (*models.PaymentRecord, error) {
	record, err := s.repo.FindByEnrollment(ctx, enrollmentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	record.Enrollment = nil
	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *PaymentRecordService) Delete(ctx context.Context, id uint) error {
	return translate(s.repo.Delete(ctx, id))
}

// save derives the amounts and persists inside one transaction
func (s *PaymentRecordService) save(ctx context.Context, record *models.PaymentRecord) error {
	err := s.repo.SaveComputed(ctx, record, func(r *models.PaymentRecord, enrollment *models.Enrollment, fee *models.FeeSchedule) error {
		d := tuition.Apply(r, fee)
		if !d.FeeFound() {
			logger.Warn("No fee schedule for enrollment, derived fees left empty",
				"enrollment_id", enrollment.ID,
				"class_id", enrollment.ClassID,
				"year_id", enrollment.SchoolYearID)
		}
		return nil
	})
	if err != nil {
		err = translate(err)
		if errors.Is(err, ErrNotFound) {
			return notFound("affectation", *record.EnrollmentID)
		}
		if errors.Is(err, ErrConflict) {
			return conflict("un recouvrement existe déjà pour cette affectation")
		}
		return err
	}
	return nil
}
