package services

import (
	"context"
	"errors"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
)

// FeeScheduleService handles fee schedules
type FeeScheduleService struct {
	repo      repository.FeeScheduleRepository
	classRepo repository.ClassRepository
	yearRepo  repository.SchoolYearRepository
}

func NewFeeScheduleService(repo repository.FeeScheduleRepository, classRepo repository.ClassRepository, yearRepo repository.SchoolYearRepository) *FeeScheduleService {
	return &FeeScheduleService{repo: repo, classRepo: classRepo, yearRepo: yearRepo}
}

func (s *FeeScheduleService) FindByID(ctx context.Context, id uint) (*models.FeeSchedule, error) {
	fee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return fee, nil
}

// Lookup returns the fee row for (year, class), or ErrNotFound
func (s *FeeScheduleService) Lookup(ctx context.Context, yearID *uint, classID uint) (*models.FeeSchedule, error) {
	fee, err := s.repo.Find(ctx, yearID, classID)
	if err != nil {
		return nil, translate(err)
	}
	return fee, nil
}

func (s *FeeScheduleService) List(ctx context.Context, query *repository.ListQuery) ([]models.FeeSchedule, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *FeeScheduleService) Create(ctx context.Context, fee *models.FeeSchedule) error {
	if err := s.check(ctx, fee); err != nil {
		return err
	}
	return s.save(ctx, fee, s.repo.Create)
}

func (s *FeeScheduleService) Update(ctx context.Context, fee *models.FeeSchedule) error {
	if _, err := s.FindByID(ctx, fee.ID); err != nil {
		return err
	}
	if err := s.check(ctx, fee); err != nil {
		return err
	}
	return s.save(ctx, fee, s.repo.Update)
}

func (s *FeeScheduleService) Delete(ctx context.Context, id uint) error {
	return translate(s.repo.Delete(ctx, id))
}

// check validates amounts and makes sure the referenced rows exist
func (s *FeeScheduleService) check(ctx context.Context, fee *models.FeeSchedule) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	class, err := s.classRepo.FindByID(ctx, fee.ClassID)
	if err != nil {
		if repository.IsNotFound(err) {
			return notFound("classe", fee.ClassID)
		}
		return err
	}
	fee.Class = *class
	if fee.SchoolYearID != nil {
		year, err := s.yearRepo.FindByID(ctx, *fee.SchoolYearID)
		if err != nil {
			if repository.IsNotFound(err) {
				return notFound("année scolaire", *fee.SchoolYearID)
			}
			return err
		}
		fee.SchoolYear = year
	}
	return nil
}

func (s *FeeScheduleService) save(ctx context.Context, fee *models.FeeSchedule, write func(context.Context, *models.FeeSchedule) error) error {
	err := translate(write(ctx, fee))
	if errors.Is(err, ErrConflict) {
		return conflict("des frais existent déjà pour cette classe et cette année")
	}
	return err
}
