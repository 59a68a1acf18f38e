package services

import (
	"context"
	"errors"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
)

// ClassService handles classes
type ClassService struct {
	repo repository.ClassRepository
}

func NewClassService(repo repository.ClassRepository) *ClassService {
	return &ClassService{repo: repo}
}

func (s *ClassService) FindByID(ctx context.Context, id uint) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return class, nil
}

func (s *ClassService) List(ctx context.Context, query *repository.ListQuery) ([]models.Class, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *ClassService) Create(ctx context.Context, class *models.Class) error {
	if err := class.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return s.codeConflict(err, class.Code)
	}
	return nil
}

func (s *ClassService) Update(ctx context.Context, class *models.Class) error {
	if _, err := s.FindByID(ctx, class.ID); err != nil {
		return err
	}
	if err := class.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, class); err != nil {
		return s.codeConflict(err, class.Code)
	}
	return nil
}

func (s *ClassService) Delete(ctx context.Context, id uint) error {
	return translate(s.repo.Delete(ctx, id))
}

func (s *ClassService) codeConflict(err error, code string) error {
	err = translate(err)
	if errors.Is(err, ErrConflict) {
		return conflict("une classe avec le code %s existe déjà", code)
	}
	return err
}
