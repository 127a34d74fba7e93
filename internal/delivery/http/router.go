package http

import (
	"net/http"

	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// Authenticator resolves the viewer of a request and stores it in the
// request context.
type Authenticator interface {
	Authenticate(next http.Handler) http.Handler
}

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	employeeHandler     *handler.EmployeeHandler
	doctorHandler       *handler.DoctorHandler
	consultationHandler *handler.ConsultationHandler
	userHandler         *handler.UserHandler
	viewHandler         *handler.ViewHandler
	reportHandler       *handler.ReportHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      Authenticator
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	doctorHandler *handler.DoctorHandler,
	consultationHandler *handler.ConsultationHandler,
	userHandler *handler.UserHandler,
	viewHandler *handler.ViewHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware Authenticator,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		employeeHandler:     employeeHandler,
		doctorHandler:       doctorHandler,
		consultationHandler: consultationHandler,
		userHandler:         userHandler,
		viewHandler:         viewHandler,
		reportHandler:       reportHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Authenticated routes, any role
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	protected.HandleFunc("/employees", r.employeeHandler.CreateEmployee).Methods(http.MethodPost)
	protected.HandleFunc("/employees/{id}", r.employeeHandler.GetEmployee).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{id}", r.employeeHandler.UpdateEmployee).Methods(http.MethodPut)
	protected.HandleFunc("/employees/{id}", r.employeeHandler.DeleteEmployee).Methods(http.MethodDelete)
	protected.HandleFunc("/employees/{id}/history", r.employeeHandler.GetHistory).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{id}/history/export", r.employeeHandler.ExportHistory).Methods(http.MethodGet)

	protected.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	protected.HandleFunc("/consultations", r.consultationHandler.CreateConsultation).Methods(http.MethodPost)
	protected.HandleFunc("/consultations/{id}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	protected.HandleFunc("/consultations/{id}", r.consultationHandler.UpdateConsultation).Methods(http.MethodPut)
	protected.HandleFunc("/consultations/{id}", r.consultationHandler.DeleteConsultation).Methods(http.MethodDelete)

	protected.HandleFunc("/views/{view}", r.viewHandler.GetView).Methods(http.MethodGet)
	protected.HandleFunc("/views/{view}/session", r.viewHandler.UpdateSession).Methods(http.MethodPatch)
	protected.HandleFunc("/views/{view}/session", r.viewHandler.ClearSession).Methods(http.MethodDelete)

	protected.HandleFunc("/dashboard", r.reportHandler.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/reports/activity", r.reportHandler.Activity).Methods(http.MethodPost)

	// Registered before the admin /users/{id} routes so that "roles" is not read as an id.
	protected.HandleFunc("/users/roles", r.userHandler.GetRoles).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.NewRoute().Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	admin.HandleFunc("/reports/invoice", r.reportHandler.Invoice).Methods(http.MethodPost)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
