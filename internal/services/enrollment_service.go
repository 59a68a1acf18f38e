package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
)

// EnrollmentService enforces one enrollment per (student, year) and per
// (student, class, year).
type EnrollmentService struct {
	repo        repository.EnrollmentRepository
	studentRepo repository.StudentRepository
	classRepo   repository.ClassRepository
	yearRepo    repository.SchoolYearRepository
	records     *PaymentRecordService
}

// NewEnrollmentService wires the enrollment rules. records may be nil, in
// which case payment records are not recomputed when an enrollment moves.
func NewEnrollmentService(repo repository.EnrollmentRepository, studentRepo repository.StudentRepository, classRepo repository.ClassRepository, yearRepo repository.SchoolYearRepository, records *PaymentRecordService) *EnrollmentService {
	return &EnrollmentService{
		repo:        repo,
		studentRepo: studentRepo,
		classRepo:   classRepo,
		yearRepo:    yearRepo,
		records:     records,
	}
}

// EnrollInput carries the fields a caller may set on an enrollment
type EnrollInput struct {
	StudentID uint
	ClassID   uint
	YearID    uint
	Status    string
}

func (s *EnrollmentService) FindByID(ctx context.Context, id uint) (*models.Enrollment, error) {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return enrollment, nil
}

func (s *EnrollmentService) List(ctx context.Context, query *repository.ListQuery) ([]models.Enrollment, int64, error) {
	return s.repo.List(ctx, query)
}

// Enroll creates an enrollment, rejecting any existing one for the same
// student and year.
func (s *EnrollmentService) Enroll(ctx context.Context, in EnrollInput) (*models.Enrollment, error) {
	enrollment, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, enrollment, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("l'élève est déjà affecté pour cette année scolaire")
		}
		return nil, err
	}
	return s.FindByID(ctx, enrollment.ID)
}

// Ensure returns the enrollment for (student, class, year), creating it with
// the default status when absent. created reports whether a row was added.
// An enrollment for the same student and year in another class is a conflict.
func (s *EnrollmentService) Ensure(ctx context.Context, studentID, classID, yearID uint) (enrollment *models.Enrollment, created bool, err error) {
	existing, err := s.repo.FindExact(ctx, studentID, classID, yearID)
	if err == nil {
		return existing, false, nil
	}
	if !repository.IsNotFound(err) {
		return nil, false, err
	}

	enrollment, err = s.Enroll(ctx, EnrollInput{StudentID: studentID, ClassID: classID, YearID: yearID})
	if err == nil {
		return enrollment, true, nil
	}

	// A concurrent Ensure may have inserted the same row first
	if errors.Is(err, ErrConflict) {
		if existing, findErr := s.repo.FindExact(ctx, studentID, classID, yearID); findErr == nil {
			return existing, false, nil
		}
	}
	return nil, false, err
}

// Update re-targets an enrollment, checking both uniqueness rules against
// every other enrollment. Moving it to another class or year re-derives the
// linked payment record against the new fee schedule.
func (s *EnrollmentService) Update(ctx context.Context, id uint, in EnrollInput) (*models.Enrollment, error) {
	current, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	updated.ID = current.ID
	updated.EnrolledAt = current.EnrolledAt

	if err := s.checkUnique(ctx, updated, current.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("l'élève est déjà affecté pour cette année scolaire")
		}
		return nil, err
	}

	if s.records != nil && !current.SameSlot(updated.ClassID, updated.SchoolYearID) {
		if _, err := s.records.RecomputeForEnrollment(ctx, id); err != nil {
			return nil, fmt.Errorf("recompute payment record of enrollment %d: %w", id, err)
		}
	}
	return s.FindByID(ctx, id)
}

// Delete removes the enrollment and its payment record
func (s *EnrollmentService) Delete(ctx context.Context, id uint) error {
	return translate(s.repo.Delete(ctx, id))
}

// build validates input and checks that the referenced rows exist
func (s *EnrollmentService) build(ctx context.Context, in EnrollInput) (*models.Enrollment, error) {
	if in.ClassID == 0 || in.YearID == 0 {
		return nil, fmt.Errorf("%w: la classe et l'année scolaire sont requises", ErrValidation)
	}
	enrollment := &models.Enrollment{
		StudentID:    in.StudentID,
		ClassID:      &in.ClassID,
		SchoolYearID: &in.YearID,
		Status:       in.Status,
	}
	if err := enrollment.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.FindByID(ctx, in.StudentID); err != nil {
		if repository.IsNotFound(err) {
			return nil, notFound("élève", in.StudentID)
		}
		return nil, err
	}
	if _, err := s.classRepo.FindByID(ctx, in.ClassID); err != nil {
		if repository.IsNotFound(err) {
			return nil, notFound("classe", in.ClassID)
		}
		return nil, err
	}
	if _, err := s.yearRepo.FindByID(ctx, in.YearID); err != nil {
		if repository.IsNotFound(err) {
			return nil, notFound("année scolaire", in.YearID)
		}
		return nil, err
	}
	return enrollment, nil
}

// checkUnique rejects e when another enrollment (id != self) holds the same
// student and year. The (student, class, year) rule is implied by it.
func (s *EnrollmentService) checkUnique(ctx context.Context, e *models.Enrollment, self uint) error {
	other, err := s.repo.FindByStudentYear(ctx, e.StudentID, *e.SchoolYearID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil
		}
		return err
	}
	if other.ID == self {
		return nil
	}
	if other.SameSlot(e.ClassID, e.SchoolYearID) {
		return conflict("cette affectation existe déjà")
	}
	return conflict("l'élève est déjà affecté à une autre classe pour cette année scolaire")
}
