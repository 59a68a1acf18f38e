package services

import (
	"github.com/sjperalta/scolarite-api/internal/config"
	"github.com/sjperalta/scolarite-api/internal/repository"
	"github.com/sjperalta/scolarite-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Health        *HealthService
	Auth          *AuthService
	User          *UserService
	Role          *RoleService
	SchoolYear    *SchoolYearService
	Class         *ClassService
	FeeSchedule   *FeeScheduleService
	Student       *StudentService
	Enrollment    *EnrollmentService
	PaymentRecord *PaymentRecordService
	Stats         *StatsService
	Export        *ExportService
	Report        *ReportService
	Image         *ImageService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, storage *storage.LocalStorage, cfg *config.Config) *Services {
	statsSvc := NewStatsService(repos.Stats)
	paymentRecordSvc := NewPaymentRecordService(repos.PaymentRecord)

	return &Services{
		Health:        NewHealthService(repos.Ping),
		Auth:          NewAuthService(repos.User),
		User:          NewUserService(repos.User),
		Role:          NewRoleService(repos.Role, repos.Permission),
		SchoolYear:    NewSchoolYearService(repos.SchoolYear),
		Class:         NewClassService(repos.Class),
		FeeSchedule:   NewFeeScheduleService(repos.FeeSchedule, repos.Class, repos.SchoolYear),
		Student:       NewStudentService(repos.Student),
		Enrollment:    NewEnrollmentService(repos.Enrollment, repos.Student, repos.Class, repos.SchoolYear, paymentRecordSvc),
		PaymentRecord: paymentRecordSvc,
		Stats:         statsSvc,
		Export:        NewExportService(statsSvc),
		Report:        NewReportService(repos.PaymentRecord, cfg.SchoolName),
		Image:         NewImageService(storage),
	}
}
