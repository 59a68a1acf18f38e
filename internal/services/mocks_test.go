package services

import (
	"context"
	"time"

	"github.com/sjperalta/scolarite-api/internal/models"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	repository.UserRepository
	mockFindByUsername func(ctx context.Context, username string) (*models.User, error)
	touched            []uint
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.mockFindByUsername(ctx, username)
}

func (m *mockUserRepo) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	m.touched = append(m.touched, id)
	return nil
}

type mockStudentRepo struct {
	repository.StudentRepository
	students map[uint]*models.Student
	nextID   uint
	updated  *models.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: map[uint]*models.Student{}, nextID: 1}
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id uint) (*models.Student, error) {
	if s, ok := m.students[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) CreateWithMatricule(ctx context.Context, s *models.Student, generate func(id uint) string) error {
	s.ID = m.nextID
	m.nextID++
	matricule := generate(s.ID)
	s.Matricule = &matricule
	copied := *s
	m.students[s.ID] = &copied
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, s *models.Student) error {
	copied := *s
	m.updated = &copied
	m.students[s.ID] = &copied
	return nil
}

type mockClassRepo struct{ repository.ClassRepository }

func (mockClassRepo) FindByID(ctx context.Context, id uint) (*models.Class, error) {
	return &models.Class{ID: id}, nil
}

type mockYearRepo struct{ repository.SchoolYearRepository }

func (mockYearRepo) FindByID(ctx context.Context, id uint) (*models.SchoolYear, error) {
	return &models.SchoolYear{ID: id}, nil
}

type mockEnrollmentRepo struct {
	repository.EnrollmentRepository
	rows       []models.Enrollment
	mockCreate func(ctx context.Context, e *models.Enrollment) error
}

func (m *mockEnrollmentRepo) FindByID(ctx context.Context, id uint) (*models.Enrollment, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			e := m.rows[i]
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) FindByStudentYear(ctx context.Context, studentID, yearID uint) (*models.Enrollment, error) {
	for i := range m.rows {
		e := m.rows[i]
		if e.StudentID == studentID && e.SchoolYearID != nil && *e.SchoolYearID == yearID {
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) FindExact(ctx context.Context, studentID, classID, yearID uint) (*models.Enrollment, error) {
	e, err := m.FindByStudentYear(ctx, studentID, yearID)
	if err != nil {
		return nil, err
	}
	if e.ClassID == nil || *e.ClassID != classID {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, e *models.Enrollment) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, e)
	}
	e.ID = uint(len(m.rows) + 1)
	m.rows = append(m.rows, *e)
	return nil
}

func (m *mockEnrollmentRepo) Update(ctx context.Context, e *models.Enrollment) error {
	for i := range m.rows {
		if m.rows[i].ID == e.ID {
			m.rows[i] = *e
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockPaymentRecordRepo struct {
	repository.PaymentRecordRepository
	enrollment *models.Enrollment
	fee        *models.FeeSchedule
	saved      *models.PaymentRecord
	records    map[uint]*models.PaymentRecord
}

func (m *mockPaymentRecordRepo) FindByID(ctx context.Context, id uint) (*models.PaymentRecord, error) {
	if r, ok := m.records[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRecordRepo) FindByEnrollment(ctx context.Context, enrollmentID uint) (*models.PaymentRecord, error) {
	for _, r := range m.records {
		if r.EnrollmentID != nil && *r.EnrollmentID == enrollmentID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRecordRepo) SaveComputed(ctx context.Context, record *models.PaymentRecord, compute repository.ComputeFunc) error {
	if m.enrollment == nil {
		return gorm.ErrRecordNotFound
	}
	if err := compute(record, m.enrollment, m.fee); err != nil {
		return err
	}
	if record.ID == 0 {
		record.ID = 1
	}
	copied := *record
	m.saved = &copied
	return nil
}

type mockStatsRepo struct {
	repository.StatsRepository
	rows []models.StatsRow
}

func (m *mockStatsRepo) Rows(ctx context.Context, filters models.StatsFilters) ([]models.StatsRow, error) {
	return m.rows, nil
}

func (m *mockStatsRepo) CountEnrollments(ctx context.Context, filters models.StatsFilters) (int64, error) {
	return int64(len(m.rows)), nil
}

func (m *mockStatsRepo) GlobalCounts(ctx context.Context) (int64, int64, error) {
	return 12, int64(len(m.rows)), nil
}
