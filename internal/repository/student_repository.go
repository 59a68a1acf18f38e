package repository

import (
	"context"

	"github.com/sjperalta/scolarite-api/internal/models"
	"gorm.io/gorm"
)

// StudentRepository defines the interface for student data access
type StudentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Student, error)
	// CreateWithMatricule inserts the student, then stores the matricule
	// returned by generate for the allocated id, in one transaction.
	CreateWithMatricule(ctx context.Context, student *models.Student, generate func(id uint) string) error
	Update(ctx context.Context, student *models.Student) error
	UpdatePhoto(ctx context.Context, id uint, path string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Student, int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) CreateWithMatricule(ctx context.Context, student *models.Student, generate func(id uint) string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student.Matricule = nil
		if err := tx.Omit("Enrollments").Create(student).Error; err != nil {
			return err
		}

		matricule := generate(student.ID)
		if err := tx.Model(student).UpdateColumn("matricule", matricule).Error; err != nil {
			return err
		}
		student.Matricule = &matricule
		return nil
	})
	if err != nil {
		student.Matricule = nil
	}
	return translateError(err)
}

// Update saves every column except the matricule and the creation date
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	err := r.db.WithContext(ctx).
		Omit("Matricule", "CreatedAt", "Enrollments").
		Save(student).Error
	return translateError(err)
}

func (r *studentRepository) UpdatePhoto(ctx context.Context, id uint, path string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Update("photo", path)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the student, its enrollments and their payment records
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollments := tx.Model(&models.Enrollment{}).Select("id").Where("eleve_aff = ?", id)
		if err := tx.Where("affectation IN (?)", enrollments).Delete(&models.PaymentRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("eleve_aff = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Student{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *studentRepository) List(ctx context.Context, query *ListQuery) ([]models.Student, int64, error) {
	var students []models.Student
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Student{})

	// Search by full name or matricule
	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("fullname ILIKE ? OR matricule ILIKE ?", search, search)
	}
	if query.Filters["sexe"] != "" {
		db = db.Where("sexe = ?", query.Filters["sexe"])
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = paginate(db, query, "nom ASC, prenom1 ASC", map[string]string{
		"nom":       "nom",
		"fullname":  "fullname",
		"matricule": "matricule",
		"dateajout": "dateajout",
	})
	err := db.Find(&students).Error
	return students, total, err
}
