package usecase

import (
	"context"
	"time"

	"clinic-admin/internal/converter"
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/internal/domain/repository"
	"clinic-admin/internal/listing"
	"clinic-admin/internal/query"
	"clinic-admin/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ViewUsecase serves the list views. Every call works on the viewer's stored
// session for the view, or a fresh one when none is stored.
type ViewUsecase interface {
	GetView(ctx context.Context, viewerID uuid.UUID, view string) (*dto.ViewResponse, error)
	UpdateSession(ctx context.Context, viewerID uuid.UUID, view string, req *dto.UpdateSessionRequest) (*dto.ViewResponse, error)
	ClearSession(ctx context.Context, viewerID uuid.UUID, view string) (*dto.ViewResponse, error)
}

type viewUsecase struct {
	log         *logrus.Logger
	catalog     *listing.Catalog
	sessionRepo repository.ViewSessionRepository
	snapshots   *service.SnapshotService
	loc         *time.Location
}

func NewViewUsecase(
	log *logrus.Logger,
	catalog *listing.Catalog,
	sessionRepo repository.ViewSessionRepository,
	snapshots *service.SnapshotService,
	loc *time.Location,
) ViewUsecase {
	return &viewUsecase{
		log:         log,
		catalog:     catalog,
		sessionRepo: sessionRepo,
		snapshots:   snapshots,
		loc:         loc,
	}
}

func (u *viewUsecase) GetView(ctx context.Context, viewerID uuid.UUID, view string) (*dto.ViewResponse, error) {
	v, session, err := u.load(ctx, viewerID, view)
	if err != nil {
		return nil, err
	}

	resp, _ := u.render(v, viewerID, session)
	return resp, nil
}

func (u *viewUsecase) UpdateSession(ctx context.Context, viewerID uuid.UUID, view string, req *dto.UpdateSessionRequest) (*dto.ViewResponse, error) {
	v, session, err := u.load(ctx, viewerID, view)
	if err != nil {
		return nil, err
	}

	for path := range req.Facets {
		if !u.catalog.HasFacet(v, query.FieldPath(path)) {
			return nil, ErrUnknownFacet
		}
	}

	if req.SearchTerm != nil {
		session.SetSearchTerm(*req.SearchTerm)
	}
	for path, value := range req.Facets {
		session.SetFacet(query.FieldPath(path), value)
	}
	if req.PageSize != nil && *req.PageSize != session.PageSize {
		session.PageSize = *req.PageSize
		session.Page = 1
	}

	_, pageCount := u.render(v, viewerID, session)
	if req.Page != nil {
		session.GoToPage(*req.Page, pageCount)
	}
	switch req.Action {
	case "next":
		session.Next(pageCount)
	case "previous":
		session.Previous(pageCount)
	case "first":
		session.First(pageCount)
	case "last":
		session.Last(pageCount)
	}

	if err := u.sessionRepo.Save(ctx, viewerID, session); err != nil {
		u.log.Warnf("Failed to save view session: %+v", err)
		return nil, err
	}

	resp, _ := u.render(v, viewerID, session)
	return resp, nil
}

func (u *viewUsecase) ClearSession(ctx context.Context, viewerID uuid.UUID, view string) (*dto.ViewResponse, error) {
	v, session, err := u.load(ctx, viewerID, view)
	if err != nil {
		return nil, err
	}

	session.Clear()

	if err := u.sessionRepo.Save(ctx, viewerID, session); err != nil {
		u.log.Warnf("Failed to save view session: %+v", err)
		return nil, err
	}

	resp, _ := u.render(v, viewerID, session)
	return resp, nil
}

func (u *viewUsecase) load(ctx context.Context, viewerID uuid.UUID, name string) (listing.View, *query.Session, error) {
	v, ok := listing.ParseView(name)
	if !ok {
		return "", nil, ErrUnknownView
	}

	session, err := u.sessionRepo.Get(ctx, viewerID, string(v))
	if err != nil {
		u.log.Warnf("Failed to load view session: %+v", err)
		return "", nil, err
	}
	if session == nil {
		session = u.catalog.NewSession(v)
	}

	return v, session, nil
}

// render runs the view over its latest snapshot and returns the response with
// the page count of the filtered set.
func (u *viewUsecase) render(v listing.View, viewerID uuid.UUID, session *query.Session) (*dto.ViewResponse, int) {
	switch v {
	case listing.ViewEmployees:
		return renderView(u.catalog.Employees, u.snapshots.Employees.Latest().Records, session,
			converter.EmployeesToResponses, listing.EmployeeFacetOptions())
	case listing.ViewDoctors:
		doctors := u.snapshots.Doctors.Latest().Records
		return renderView(u.catalog.Doctors, doctors, session,
			converter.DoctorsToResponses, listing.DoctorFacetOptions(doctors))
	case listing.ViewConsultations:
		toResponses := func(items []entity.Consultation) []dto.ConsultationResponse {
			return converter.ConsultationsToResponses(items, u.loc)
		}
		return renderView(u.catalog.Consultations, u.snapshots.Consultations.Latest().Records, session,
			toResponses, listing.ConsultationFacetOptions(u.snapshots.Doctors.Latest().Records))
	default:
		return renderView(u.catalog.Users, excludeUser(u.snapshots.Users.Latest().Records, viewerID), session,
			converter.UsersToResponses, listing.UserFacetOptions())
	}
}

func renderView[T any, R any](
	def listing.Definition[T],
	records []T,
	session *query.Session,
	toResponses func([]T) []R,
	options map[query.FieldPath][]listing.FacetOption,
) (*dto.ViewResponse, int) {
	page := def.Run(records, session)

	return &dto.ViewResponse{
		View:         string(def.Name),
		Session:      converter.SessionToResponse(session),
		Items:        toResponses(page.Items),
		Pagination:   converter.PageToResponse(page),
		FacetOptions: converter.FacetOptionsToResponse(options),
	}, page.PageCount
}

// excludeUser hides the viewer from the user listing.
func excludeUser(users []entity.User, id uuid.UUID) []entity.User {
	out := make([]entity.User, 0, len(users))
	for _, user := range users {
		if user.ID != id {
			out = append(out, user)
		}
	}
	return out
}
