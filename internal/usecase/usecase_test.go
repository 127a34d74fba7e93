package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"clinic-admin/config"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/domain/apperror"
	"clinic-admin/internal/domain/entity"
	domainRepo "clinic-admin/internal/domain/repository"
	"clinic-admin/internal/infrastructure/database"
	"clinic-admin/internal/listing"
	"clinic-admin/internal/query"
	"clinic-admin/internal/repository"
	"clinic-admin/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memorySessions keeps view sessions in a map in place of Redis.
type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]query.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: map[string]query.Session{}}
}

func (m *memorySessions) key(viewerID uuid.UUID, view string) string {
	return viewerID.String() + ":" + view
}

func (m *memorySessions) Get(_ context.Context, viewerID uuid.UUID, view string) (*query.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[m.key(viewerID, view)]
	if !ok {
		return nil, nil
	}
	facets := make(map[query.FieldPath]string, len(s.Facets))
	for k, v := range s.Facets {
		facets[k] = v
	}
	s.Facets = facets
	return &s, nil
}

func (m *memorySessions) Save(_ context.Context, viewerID uuid.UUID, s *query.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[m.key(viewerID, s.View)] = *s
	return nil
}

func (m *memorySessions) Delete(_ context.Context, viewerID uuid.UUID, view string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, m.key(viewerID, view))
	return nil
}

type fixture struct {
	store         *domainRepo.Store
	snapshots     *service.SnapshotService
	employees     EmployeeUsecase
	doctors       DoctorUsecase
	consultations ConsultationUsecase
	users         UserUsecase
	views         ViewUsecase
	reports       *reportUsecase
	auditLogs     AuditLogUsecase
	sessions      *memorySessions
	admin         uuid.UUID
	ctx           context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log, _ := test.NewNullLogger()
	store := repository.NewGormStore(db)
	snapshots := service.NewSnapshotService(store, nil, "", log)
	require.NoError(t, snapshots.Start(context.Background()))
	t.Cleanup(snapshots.Stop)

	audit := service.NewAuditService(log, store.AuditLogs)
	catalog, err := listing.NewCatalog(nil)
	require.NoError(t, err)

	admin := &entity.User{ID: uuid.New(), Email: "admin@clinic.mr", Nom: "Admin", Prenom: "Root", Role: entity.RoleAdmin}
	require.NoError(t, store.Users.Create(context.Background(), admin))
	snapshots.NotifyChanged(context.Background(), entity.KindUser)

	sessions := newMemorySessions()
	reports := NewReportUsecase(log, store.Employees, snapshots, audit, config.BillingConfig{
		Client:   config.PartyConfig{Name: "Port Autonome"},
		Provider: config.PartyConfig{Name: "Cabinet Médical", NIF: "123"},
	}, time.UTC).(*reportUsecase)
	reports.now = func() time.Time { return time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC) }

	return &fixture{
		store:         store,
		snapshots:     snapshots,
		employees:     NewEmployeeUsecase(log, store.Employees, snapshots, audit),
		doctors:       NewDoctorUsecase(log, store.Doctors, snapshots, audit),
		consultations: NewConsultationUsecase(log, store.Consultations, snapshots, audit, time.UTC),
		users:         NewUserUsecase(log, store.Users, store.Credentials, snapshots, audit, nil),
		views:         NewViewUsecase(log, catalog, sessions, snapshots, time.UTC),
		reports:       reports,
		auditLogs:     NewAuditLogUsecase(log, store.AuditLogs),
		sessions:      sessions,
		admin:         admin.ID,
		ctx:           middleware.WithViewer(context.Background(), admin.ID, admin.Email, entity.RoleAdmin),
	}
}

func (f *fixture) employee(t *testing.T, matricule, nom, prenom string) *dto.EmployeeResponse {
	t.Helper()
	resp, err := f.employees.CreateEmployee(f.ctx, &dto.EmployeeRequest{
		Matricule: matricule, Nom: nom, Prenom: prenom, Civilite: string(entity.CiviliteMonsieur),
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) doctor(t *testing.T, nom, prenom, telephone string) *dto.DoctorResponse {
	t.Helper()
	resp, err := f.doctors.CreateDoctor(f.ctx, &dto.DoctorRequest{
		Nom: nom, Prenom: prenom, Telephone: telephone, Specialite: "Généraliste", Role: string(entity.DoctorRoleMedecin),
	})
	require.NoError(t, err)
	return resp
}

func (f *fixture) consultation(t *testing.T, employeID, medecinID uuid.UUID, date string, cout int64, repos dto.RestGrantRequest) *dto.ConsultationResponse {
	t.Helper()
	c := decimal.NewFromInt(cout)
	resp, err := f.consultations.CreateConsultation(f.ctx, &dto.ConsultationRequest{
		EmployeID: employeID.String(),
		MedecinID: medecinID.String(),
		Date:      date,
		Lieu:      string(entity.LieuCabinet),
		Motif:     "Visite",
		Cout:      &c,
		Repos:     repos,
	})
	require.NoError(t, err)
	return resp
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func grant(days int, from, to string) dto.RestGrantRequest {
	return dto.RestGrantRequest{Accorde: true, Duree: intPtr(days), DateDebut: strPtr(from), DateFin: strPtr(to), Motif: "Repos"}
}

func TestEmployeeMatriculeUniqueness(t *testing.T) {
	f := newFixture(t)
	first := f.employee(t, "M-001", "Rakoto", "Jean")

	_, err := f.employees.CreateEmployee(f.ctx, &dto.EmployeeRequest{
		Matricule: "M-001", Nom: "Other", Prenom: "Person", Civilite: string(entity.CiviliteMadame),
	})
	assert.ErrorIs(t, err, apperror.ErrDuplicateKey)

	updated, err := f.employees.UpdateEmployee(f.ctx, first.ID, &dto.EmployeeRequest{
		Matricule: "M-001", Nom: "Rakotobe", Prenom: "Jean", Civilite: string(entity.CiviliteMonsieur),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rakotobe", updated.Nom)
	assert.Equal(t, "Rakotobe", f.snapshots.Employees.Latest().Records[0].Nom)
}

func TestEmployeeNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.employees.GetEmployee(f.ctx, uuid.New())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.ErrorIs(t, f.employees.DeleteEmployee(f.ctx, uuid.New()), ErrEmployeeNotFound)
}

func TestDoctorTelephoneUniqueness(t *testing.T) {
	f := newFixture(t)
	f.doctor(t, "Kane", "Amadou", "44700138")

	_, err := f.doctors.CreateDoctor(f.ctx, &dto.DoctorRequest{Nom: "Ba", Prenom: "Aïcha", Telephone: "44700138", Role: "infirmier"})

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindDuplicateKey, appErr.Kind)
	assert.Equal(t, "telephone", appErr.Field)
}

func TestConsultationFillsNamesAndChecksRest(t *testing.T) {
	f := newFixture(t)
	e := f.employee(t, "M-001", "Rakoto", "Jean")
	d := f.doctor(t, "Kane", "Amadou", "44700138")

	created := f.consultation(t, e.ID, d.ID, "2024-03-01", 100, grant(2, "2024-03-01", "2024-03-03"))
	assert.Equal(t, "Jean Rakoto", created.EmployeNom)
	assert.Equal(t, "M-001", created.EmployeMatricule)
	assert.Equal(t, "Dr. Amadou Kane", created.MedicinNom)

	_, err := f.consultations.CreateConsultation(f.ctx, &dto.ConsultationRequest{
		EmployeID: e.ID.String(), MedecinID: d.ID.String(), Date: "2024-03-01", Lieu: "Cabinet",
		Repos: grant(2, "2024-03-03", "2024-03-01"),
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidRange)

	_, err = f.consultations.CreateConsultation(f.ctx, &dto.ConsultationRequest{
		EmployeID: e.ID.String(), MedecinID: d.ID.String(), Date: "2024-03-01",
	})
	assert.ErrorIs(t, err, &apperror.Error{Kind: apperror.KindMissingField, Field: "lieu"})

	_, err = f.consultations.CreateConsultation(f.ctx, &dto.ConsultationRequest{
		EmployeID: uuid.NewString(), MedecinID: d.ID.String(), Date: "2024-03-01", Lieu: "Port",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestConsultationDropsRestDetailsWhenNotAccorded(t *testing.T) {
	f := newFixture(t)
	e := f.employee(t, "M-001", "Rakoto", "Jean")
	d := f.doctor(t, "Kane", "Amadou", "44700138")

	created := f.consultation(t, e.ID, d.ID, "2024-03-01", 50, dto.RestGrantRequest{Duree: intPtr(4), Motif: "ignored"})

	assert.False(t, created.Repos.Accorde)
	assert.Nil(t, created.Repos.Duree)
	assert.Empty(t, created.Repos.Motif)
}

func TestUserCreation(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.CreateUser(f.ctx, &dto.CreateUserRequest{
		Email: "agent@clinic.mr", Nom: "Sy", Prenom: "Mariem", Role: "user", Password: "secret1", ConfirmPassword: "secret2",
	})
	assert.ErrorIs(t, err, apperror.ErrPasswordMismatch)

	created, err := f.users.CreateUser(f.ctx, &dto.CreateUserRequest{
		Email: " Agent@Clinic.mr ", Nom: "Sy", Prenom: "Mariem", Role: "user", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "agent@clinic.mr", created.Email)

	credential, err := f.store.Credentials.FindByUserID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, credential)
	assert.NotEqual(t, "secret1", credential.PasswordHash)

	_, err = f.users.CreateUser(f.ctx, &dto.CreateUserRequest{
		Email: "admin@clinic.mr", Nom: "X", Prenom: "Y", Role: "user", Password: "secret1", ConfirmPassword: "secret1",
	})
	assert.ErrorIs(t, err, apperror.ErrDuplicateKey)
}

func TestOnlyAdminsAssignAdmin(t *testing.T) {
	f := newFixture(t)
	userCtx := middleware.WithViewer(context.Background(), uuid.New(), "u@clinic.mr", entity.RoleUser)

	_, err := f.users.CreateUser(userCtx, &dto.CreateUserRequest{
		Email: "boss@clinic.mr", Nom: "B", Prenom: "C", Role: "admin", Password: "secret1", ConfirmPassword: "secret1",
	})
	assert.ErrorIs(t, err, ErrForbiddenRole)

	assert.Equal(t, []string{"user"}, f.users.GetOfferableRoles(userCtx).Roles)
	assert.Equal(t, []string{"user", "admin"}, f.users.GetOfferableRoles(f.ctx).Roles)
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.users.DeleteUser(f.ctx, f.admin), ErrCannotDeleteSelf)

	created, err := f.users.CreateUser(f.ctx, &dto.CreateUserRequest{
		Email: "agent@clinic.mr", Nom: "Sy", Prenom: "Mariem", Role: "user", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	require.NoError(t, f.users.DeleteUser(f.ctx, created.ID))

	credential, err := f.store.Credentials.FindByUserID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, credential)
}

func TestSeedAdmin(t *testing.T) {
	f := newFixture(t)

	created, err := f.users.SeedAdmin(context.Background(), config.AdminConfig{Email: "other@clinic.mr", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, created, "an admin already exists")

	_, err = f.store.Users.Delete(context.Background(), f.admin)
	require.NoError(t, err)

	_, err = f.users.SeedAdmin(context.Background(), config.AdminConfig{})
	assert.ErrorIs(t, err, ErrAdminNotConfigured)

	created, err = f.users.SeedAdmin(context.Background(), config.AdminConfig{Email: "root@clinic.mr", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, created)

	count, err := f.store.Users.CountByRole(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestViewSessionLifecycle(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 45; i++ {
		f.employee(t, fmt.Sprintf("M-%03d", i), fmt.Sprintf("Nom%02d", i), "Prenom")
	}

	view, err := f.views.GetView(f.ctx, f.admin, "employees")
	require.NoError(t, err)
	assert.Equal(t, 3, view.Pagination.PageCount)
	assert.Len(t, view.Items, 20)

	view, err = f.views.UpdateSession(f.ctx, f.admin, "employees", &dto.UpdateSessionRequest{Action: "last"})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Session.Page)
	assert.Len(t, view.Items, 5)

	view, err = f.views.UpdateSession(f.ctx, f.admin, "employees", &dto.UpdateSessionRequest{Action: "next"})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Session.Page, "next on the last page stays put")

	view, err = f.views.UpdateSession(f.ctx, f.admin, "employees", &dto.UpdateSessionRequest{Page: intPtr(-4)})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Session.Page)

	view, err = f.views.UpdateSession(f.ctx, f.admin, "employees", &dto.UpdateSessionRequest{
		SearchTerm: strPtr("nom4"),
		Facets:     map[string]string{"civilite": "Monsieur"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, view.Pagination.Total)
	assert.Equal(t, 1, view.Session.ActiveFilters)

	view, err = f.views.ClearSession(f.ctx, f.admin, "employees")
	require.NoError(t, err)
	assert.Equal(t, 45, view.Pagination.Total)
	assert.Equal(t, 0, view.Session.ActiveFilters)
}

func TestViewErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.views.GetView(f.ctx, f.admin, "patients")
	assert.ErrorIs(t, err, ErrUnknownView)

	_, err = f.views.UpdateSession(f.ctx, f.admin, "employees", &dto.UpdateSessionRequest{
		Facets: map[string]string{"matricule": "M-001"},
	})
	assert.ErrorIs(t, err, ErrUnknownFacet)
}

func TestUsersViewExcludesViewer(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.CreateUser(f.ctx, &dto.CreateUserRequest{
		Email: "agent@clinic.mr", Nom: "Sy", Prenom: "Mariem", Role: "user", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	view, err := f.views.GetView(f.ctx, f.admin, "users")
	require.NoError(t, err)

	users := view.Items.([]dto.UserResponse)
	require.Len(t, users, 1)
	assert.Equal(t, "agent@clinic.mr", users[0].Email)
	assert.Contains(t, view.FacetOptions, "role")
}

func TestActivityReportScenario(t *testing.T) {
	f := newFixture(t)
	e1 := f.employee(t, "M-001", "Rakoto", "Jean")
	e2 := f.employee(t, "M-002", "Sy", "Mariem")
	d1 := f.doctor(t, "Kane", "Amadou", "44700138")

	f.consultation(t, e1.ID, d1.ID, "2024-03-01", 100, grant(2, "2024-03-01", "2024-03-03"))
	f.consultation(t, e2.ID, d1.ID, "2024-03-15", 200, dto.RestGrantRequest{})
	f.consultation(t, e2.ID, d1.ID, "2024-04-01", 999, dto.RestGrantRequest{})

	report, err := f.reports.GenerateActivityReport(f.ctx, &dto.ReportRequest{From: "2024-03-01", To: "2024-03-31"})
	require.NoError(t, err)

	assert.Equal(t, "01/03/2024 - 31/03/2024", report.Periode)
	assert.Equal(t, 2, report.Stats.TotalConsultations)
	assert.True(t, decimal.NewFromInt(300).Equal(report.Stats.TotalRevenue))
	assert.True(t, decimal.NewFromInt(150).Equal(report.Stats.AverageCost))
	assert.Equal(t, 1, report.Stats.ReposAccordes)
	assert.Equal(t, 2, report.Stats.TotalRestDays)
	assert.Equal(t, 2, report.Stats.UniqueEmployees)
	assert.Equal(t, 1, report.Stats.UniqueDoctors)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "2 jour(s)", report.Rows[0].Repos)

	_, err = f.reports.GenerateActivityReport(f.ctx, &dto.ReportRequest{From: "2024-03-31", To: "2024-03-01"})
	assert.ErrorIs(t, err, apperror.ErrInvalidRange)
}

func TestDashboardCoversWholeCollection(t *testing.T) {
	f := newFixture(t)
	e1 := f.employee(t, "M-001", "Rakoto", "Jean")
	e2 := f.employee(t, "M-002", "Sy", "Mariem")
	f.employee(t, "M-003", "Ba", "Aminata")
	d1 := f.doctor(t, "Kane", "Amadou", "44700138")
	f.doctor(t, "Diop", "Fatou", "44700139")

	f.consultation(t, e1.ID, d1.ID, "2023-12-20", 100, grant(3, "2023-12-20", "2023-12-23"))
	f.consultation(t, e2.ID, d1.ID, "2024-03-15", 200, grant(1, "2024-03-15", "2024-03-16"))
	f.consultation(t, e2.ID, d1.ID, "2024-04-01", 50, dto.RestGrantRequest{})

	dashboard := f.reports.GetDashboard(f.ctx)

	assert.Equal(t, 3, dashboard.TotalEmployees)
	assert.Equal(t, 2, dashboard.TotalDoctors)
	assert.Equal(t, 3, dashboard.Stats.TotalConsultations)
	assert.Equal(t, 2, dashboard.Stats.ReposAccordes)
	assert.Equal(t, 4, dashboard.Stats.TotalRestDays)
	assert.True(t, decimal.NewFromInt(350).Equal(dashboard.Stats.TotalRevenue))
}

func TestInvoice(t *testing.T) {
	f := newFixture(t)
	e := f.employee(t, "M-001", "Rakoto", "Jean")
	d := f.doctor(t, "Kane", "Amadou", "44700138")
	f.consultation(t, e.ID, d.ID, "2024-03-10", 100, dto.RestGrantRequest{})

	invoice, err := f.reports.GenerateInvoice(f.ctx, &dto.InvoiceRequest{
		ReportRequest: dto.ReportRequest{From: "2024-03-01", To: "2024-03-31"},
	})
	require.NoError(t, err)
	assert.Equal(t, "FACT-2024-04", invoice.Numero)
	assert.Equal(t, "02/04/2024", invoice.Date)
	assert.Equal(t, "Cabinet Médical", invoice.Prestataire.Nom)
	assert.True(t, decimal.NewFromInt(120).Equal(invoice.Total))

	honoraires := decimal.NewFromInt(500)
	manual, err := f.reports.GenerateInvoice(f.ctx, &dto.InvoiceRequest{
		ReportRequest: dto.ReportRequest{From: "2024-03-01", To: "2024-03-31"},
		Numero:        "FACT-CUSTOM",
		Honoraires:    &honoraires,
	})
	require.NoError(t, err)
	assert.Equal(t, "FACT-CUSTOM", manual.Numero)
	assert.True(t, decimal.NewFromInt(500).Equal(manual.SousTotal))
	assert.True(t, decimal.NewFromInt(600).Equal(manual.Total))
}

func TestEmployeeHistoryPaging(t *testing.T) {
	f := newFixture(t)
	e := f.employee(t, "M-001", "Rakoto", "Jean")
	d := f.doctor(t, "Kane", "Amadou", "44700138")
	for day := 1; day <= 7; day++ {
		f.consultation(t, e.ID, d.ID, fmt.Sprintf("2024-03-%02d", day), 10, dto.RestGrantRequest{})
	}

	first, err := f.reports.GetEmployeeHistory(f.ctx, e.ID, 1)
	require.NoError(t, err)
	require.Len(t, first.Consultations, 5)
	assert.Equal(t, "2024-03-07", first.Consultations[0].Date)
	assert.Equal(t, 2, first.Pagination.PageCount)
	assert.Equal(t, "2024-03-07", *first.LastConsultation)

	beyond, err := f.reports.GetEmployeeHistory(f.ctx, e.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, beyond.Pagination.Page)
	assert.Len(t, beyond.Consultations, 2)

	export, err := f.reports.ExportEmployeeHistory(f.ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, export.Consultations, 7)
	assert.Nil(t, export.Pagination)
	assert.True(t, decimal.NewFromInt(70).Equal(export.TotalCost))

	_, err = f.reports.GetEmployeeHistory(f.ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestAuditTrail(t *testing.T) {
	f := newFixture(t)
	e := f.employee(t, "M-001", "Rakoto", "Jean")
	require.NoError(t, f.employees.DeleteEmployee(f.ctx, e.ID))

	logs, err := f.auditLogs.GetAllAuditLogs(f.ctx, &dto.AuditLogListRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), logs.Total)
	assert.Equal(t, entity.AuditActionEmployeeDelete, logs.Logs[0].Action)
	require.NotNil(t, logs.Logs[0].User)
	assert.Equal(t, f.admin, logs.Logs[0].User.ID)

	_, err = f.auditLogs.GetAuditLog(f.ctx, 9999)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
