package usecase

import (
	"context"
	"time"

	"clinic-admin/config"
	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/query"
	"clinic-admin/internal/reporting"
	"clinic-admin/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ReportUsecase interface {
	GenerateActivityReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error)
	GenerateInvoice(ctx context.Context, req *dto.InvoiceRequest) (*reporting.Invoice, error)
	GetEmployeeHistory(ctx context.Context, employeeID uuid.UUID, page int) (*dto.HistoryResponse, error)
	ExportEmployeeHistory(ctx context.Context, employeeID uuid.UUID) (*dto.HistoryResponse, error)
	GetDashboard(ctx context.Context) *dto.DashboardResponse
}

type reportUsecase struct {
	log          *logrus.Logger
	employeeRepo repository.EmployeeRepository
	snapshots    *service.SnapshotService
	auditService service.AuditService
	billing      config.BillingConfig
	loc          *time.Location
	now          func() time.Time
}

func NewReportUsecase(
	log *logrus.Logger,
	employeeRepo repository.EmployeeRepository,
	snapshots *service.SnapshotService,
	auditService service.AuditService,
	billing config.BillingConfig,
	loc *time.Location,
) ReportUsecase {
	return &reportUsecase{
		log:          log,
		employeeRepo: employeeRepo,
		snapshots:    snapshots,
		auditService: auditService,
		billing:      billing,
		loc:          loc,
		now:          time.Now,
	}
}

func (u *reportUsecase) GenerateActivityReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	report, err := u.build(req)
	if err != nil {
		return nil, err
	}

	_ = u.auditService.LogEvent(ctx, actorID(ctx), entity.AuditActionReportGenerate, map[string]interface{}{
		"kind":          "activity",
		"periode":       report.Period.Label(),
		"lieu":          report.Lieu,
		"consultations": report.Stats.TotalConsultations,
	})

	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) GenerateInvoice(ctx context.Context, req *dto.InvoiceRequest) (*reporting.Invoice, error) {
	report, err := u.build(&req.ReportRequest)
	if err != nil {
		return nil, err
	}

	opts := reporting.InvoiceOptions{
		Numero:   req.Numero,
		IssuedAt: u.now().In(u.location()),
		Client:   partyFromConfig(u.billing.Client),
		Provider: partyFromConfig(u.billing.Provider),
	}
	if req.Honoraires != nil || req.Medicaments != nil {
		opts.Manual = &reporting.ManualAmounts{
			Honoraires:  valueOrZero(req.Honoraires),
			Medicaments: valueOrZero(req.Medicaments),
		}
	}

	invoice := reporting.BuildInvoice(report, opts)

	_ = u.auditService.LogEvent(ctx, actorID(ctx), entity.AuditActionReportGenerate, map[string]interface{}{
		"kind":    "invoice",
		"numero":  invoice.Numero,
		"periode": invoice.Periode,
		"total":   invoice.Total.String(),
	})

	return &invoice, nil
}

func (u *reportUsecase) GetDashboard(ctx context.Context) *dto.DashboardResponse {
	return &dto.DashboardResponse{
		TotalEmployees: len(u.snapshots.Employees.Latest().Records),
		TotalDoctors:   len(u.snapshots.Doctors.Latest().Records),
		Stats:          reporting.ComputeStats(u.snapshots.Consultations.Latest().Records),
	}
}

func (u *reportUsecase) GetEmployeeHistory(ctx context.Context, employeeID uuid.UUID, page int) (*dto.HistoryResponse, error) {
	history, err := u.history(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	pageCount := query.PageCount(len(history.Consultations), reporting.HistoryPageSize)
	current := query.Paginate(history.Consultations, query.ClampPage(page, pageCount), reporting.HistoryPageSize)

	return converter.HistoryToResponse(history, &current, u.location()), nil
}

func (u *reportUsecase) ExportEmployeeHistory(ctx context.Context, employeeID uuid.UUID) (*dto.HistoryResponse, error) {
	history, err := u.history(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return converter.HistoryToResponse(history, nil, u.location()), nil
}

func (u *reportUsecase) history(ctx context.Context, employeeID uuid.UUID) (reporting.History, error) {
	employee, err := u.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		u.log.Warnf("Failed to find employee by ID: %+v", err)
		return reporting.History{}, err
	}
	if employee == nil {
		return reporting.History{}, ErrEmployeeNotFound
	}

	return reporting.BuildHistory(
		*employee,
		u.snapshots.Consultations.Latest().Records,
		u.snapshots.Doctors.Latest().Records,
		u.location(),
	), nil
}

func (u *reportUsecase) build(req *dto.ReportRequest) (reporting.Report, error) {
	from, err := converter.ParseDate(req.From, u.location())
	if err != nil {
		return reporting.Report{}, ErrInvalidDateFormat
	}
	to, err := converter.ParseDate(req.To, u.location())
	if err != nil {
		return reporting.Report{}, ErrInvalidDateFormat
	}

	interval, err := reporting.NewInterval(from, to, u.location())
	if err != nil {
		return reporting.Report{}, err
	}

	return reporting.BuildReport(
		u.snapshots.Consultations.Latest().Records,
		u.snapshots.Employees.Latest().Records,
		u.snapshots.Doctors.Latest().Records,
		interval,
		entity.Lieu(req.Lieu),
	), nil
}

func (u *reportUsecase) location() *time.Location {
	if u.loc == nil {
		return time.UTC
	}
	return u.loc
}

func partyFromConfig(p config.PartyConfig) reporting.Party {
	return reporting.Party{
		Nom:       p.Name,
		Adresse:   p.Address,
		Telephone: p.Phone,
		Email:     p.Email,
		NIF:       p.NIF,
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
