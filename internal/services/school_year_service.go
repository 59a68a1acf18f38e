package services

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
)

// SchoolYearService handles school years
type SchoolYearService struct {
	repo repository.SchoolYearRepository
}

func NewSchoolYearService(repo repository.SchoolYearRepository) *SchoolYearService {
	return &SchoolYearService{repo: repo}
}

func (s *SchoolYearService) FindByID(ctx context.Context, id uint) (*models.SchoolYear, error) {
	year, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return year, nil
}

func (s *SchoolYearService) List(ctx context.Context, query *repository.ListQuery) ([]models.SchoolYear, int64, error) {
	return s.repo.List(ctx, query)
}

// Create validates the span and stores the year with its derived label
func (s *SchoolYearService) Create(ctx context.Context, year *models.SchoolYear) error {
	if err := year.Normalize(); err != nil {
		return err
	}
	return translate(s.repo.Create(ctx, year))
}

// Update changes start and end; the label follows
func (s *SchoolYearService) Update(ctx context.Context, id uint, start, end int) (*models.SchoolYear, error) {
	year, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	year.Start, year.End = start, end
	if err := year.Normalize(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, year); err != nil {
		return nil, translate(err)
	}
	return year, nil
}

func (s *SchoolYearService) Delete(ctx context.Context, id uint) error {
	return translate(s.repo.Delete(ctx, id))
}
