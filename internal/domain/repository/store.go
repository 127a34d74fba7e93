package repository

// Store groups the repositories of one storage backend.
type Store struct {
	Employees     EmployeeRepository
	Doctors       DoctorRepository
	Consultations ConsultationRepository
	Users         UserRepository
	Credentials   CredentialRepository
	AuditLogs     AuditLogRepository
}
