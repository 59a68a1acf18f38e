package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	SchoolYear    SchoolYearRepository
	Class         ClassRepository
	FeeSchedule   FeeScheduleRepository
	Student       StudentRepository
	Enrollment    EnrollmentRepository
	PaymentRecord PaymentRecordRepository
	User          UserRepository
	Role          RoleRepository
	Permission    PermissionRepository
	Stats         StatsRepository

	db *gorm.DB
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		SchoolYear:    NewSchoolYearRepository(db),
		Class:         NewClassRepository(db),
		FeeSchedule:   NewFeeScheduleRepository(db),
		Student:       NewStudentRepository(db),
		Enrollment:    NewEnrollmentRepository(db),
		PaymentRecord: NewPaymentRecordRepository(db),
		User:          NewUserRepository(db),
		Role:          NewRoleRepository(db),
		Permission:    NewPermissionRepository(db),
		Stats:         NewStatsRepository(db),
		db:            db,
	}
}

// Ping checks that the database answers
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
