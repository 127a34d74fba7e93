package repository

import (
	domainRepo "clinic-admin/internal/domain/repository"

	"gorm.io/gorm"
)

// NewGormStore wires every gorm repository onto one connection.
func NewGormStore(db *gorm.DB) *domainRepo.Store {
	return &domainRepo.Store{
		Employees:     NewEmployeeRepository(db),
		Doctors:       NewDoctorRepository(db),
		Consultations: NewConsultationRepository(db),
		Users:         NewUserRepository(db),
		Credentials:   NewCredentialRepository(db),
		AuditLogs:     NewAuditLogRepository(db),
	}
}
