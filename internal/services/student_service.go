package services

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/sjperalta/scolarite-api/pkg/logger"
)

// StudentService handles the student registry
type StudentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

func (s *StudentService) FindByID(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return student, nil
}

func (s *StudentService) List(ctx context.Context, query *repository.ListQuery) ([]models.Student, int64, error) {
	return s.repo.List(ctx, query)
}

// Create stores a new student and assigns its matricule from the allocated
// id and creationYear. The matricule is never regenerated afterwards.
func (s *StudentService) Create(ctx context.Context, student *models.Student, creationYear int) error {
	if err := student.Validate(creationYear); err != nil {
		return err
	}
	student.Derive()

	err := s.repo.CreateWithMatricule(ctx, student, func(id uint) string {
		return student.GenerateMatricule(id, creationYear)
	})
	if err != nil {
		return translate(err)
	}

	logger.Info("Student registered", "student_id", student.ID, "matricule", *student.Matricule)
	return nil
}

// Update overwrites the editable fields of student id with input.
// The matricule and the creation date are kept.
func (s *StudentService) Update(ctx context.Context, id uint, input *models.Student, currentYear int) (*models.Student, error) {
	student, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.LastName = input.LastName
	student.FirstName1 = input.FirstName1
	student.FirstName2 = input.FirstName2
	student.FirstName3 = input.FirstName3
	student.Sex = input.Sex
	student.BirthDay = input.BirthDay
	student.BirthMonth = input.BirthMonth
	student.BirthYear = input.BirthYear
	student.BirthPlace = input.BirthPlace
	student.Father = input.Father
	student.Mother = input.Mother

	if err := student.Validate(currentYear); err != nil {
		return nil, err
	}
	student.Derive()

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, translate(err)
	}
	return student, nil
}

// SetPhoto records the stored photo path of a student
func (s *StudentService) SetPhoto(ctx context.Context, id uint, path string) error {
	return translate(s.repo.UpdatePhoto(ctx, id, path))
}

// Delete removes the student with its enrollments and payment records
func (s *StudentService) Delete(ctx context.Context, id uint) error {
	return translate(s.repo.Delete(ctx, id))
}
