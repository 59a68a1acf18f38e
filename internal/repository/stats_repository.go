package repository

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"gorm.io/gorm"
)

// StatsRepository reads the raw material of the tuition statistics
type StatsRepository interface {
	// Rows returns one row per payment record matching filters
	Rows(ctx context.Context, filters models.StatsFilters) ([]models.StatsRow, error)
	// CountEnrollments counts enrollments matching filters
	CountEnrollments(ctx context.Context, filters models.StatsFilters) (int64, error)
	// GlobalCounts counts every enrollment and every payment record
	GlobalCounts(ctx context.Context) (enrollments int64, records int64, err error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// applyStatsFilters expects affectations joined with classes and annees.
// A level or track that cannot be resolved matches nothing.
func applyStatsFilters(db *gorm.DB, f models.StatsFilters) *gorm.DB {
	if f.Year != nil {
		if f.Year.ID != nil {
			db = db.Where("affectations.annee_aff = ?", *f.Year.ID)
		} else {
			db = db.Where("annees.annee_scolaire = ?", f.Year.Label)
		}
	}
	if f.Class != nil {
		if f.Class.ID != nil {
			db = db.Where("affectations.classe_aff = ?", *f.Class.ID)
		} else {
			db = db.Where("classes.lib_classe = ?", f.Class.Label)
		}
	}
	if f.Level != nil {
		if level, ok := models.ResolveLevel(*f.Level); ok {
			db = db.Where("classes.niveau_classe = ?", string(level))
		} else {
			db = db.Where("1 = 0")
		}
	}
	if f.Track != nil {
		if track, ok := models.ResolveTrack(*f.Track); ok {
			db = db.Where("classes.option_classe = ?", string(track))
		} else {
			db = db.Where("1 = 0")
		}
	}
	return db
}

func (r *statsRepository) enrollmentScope(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("LEFT JOIN classes ON classes.id = affectations.classe_aff").
		Joins("LEFT JOIN annees ON annees.id = affectations.annee_aff")
}

func (r *statsRepository) Rows(ctx context.Context, filters models.StatsFilters) ([]models.StatsRow, error) {
	var rows []models.StatsRow

	db := r.db.WithContext(ctx).
		Table("recouvrements").
		Select(`recouvrements.id AS payment_record_id,
			classes.lib_classe AS class_label,
			classes.niveau_classe AS level,
			classes.option_classe AS track,
			recouvrements.frais_paiement AS discounted_fee,
			recouvrements.total_paye AS total_paid`).
		Joins("JOIN affectations ON affectations.id = recouvrements.affectation").
		Joins("LEFT JOIN classes ON classes.id = affectations.classe_aff").
		Joins("LEFT JOIN annees ON annees.id = affectations.annee_aff")

	err := applyStatsFilters(db, filters).
		Order("recouvrements.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) CountEnrollments(ctx context.Context, filters models.StatsFilters) (int64, error) {
	var count int64
	db := r.enrollmentScope(ctx).Model(&models.Enrollment{})
	err := applyStatsFilters(db, filters).
		Distinct("affectations.id").
		Count(&count).Error
	return count, err
}

func (r *statsRepository) GlobalCounts(ctx context.Context) (int64, int64, error) {
	var enrollments, records int64
	if err := r.db.WithContext(ctx).Model(&models.Enrollment{}).Count(&enrollments).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&models.PaymentRecord{}).Count(&records).Error; err != nil {
		return 0, 0, err
	}
	return enrollments, records, nil
}
