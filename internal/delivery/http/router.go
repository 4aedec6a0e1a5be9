package http

import (
	"net/http"

	"clinic-management/internal/delivery/http/handler"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the resource handlers mounted under /api
type Handlers struct {
	Auth        *handler.AuthHandler
	Client      *handler.ClientHandler
	Program     *handler.ProgramHandler
	Enrollment  *handler.EnrollmentHandler
	Appointment *handler.AppointmentHandler
	User        *handler.UserHandler
	Dashboard   *handler.DashboardHandler
	AuditLog    *handler.AuditLogHandler
}

type Router struct {
	router              *mux.Router
	handlers            Handlers
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		handlers:            handlers,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

// Setup registers every route and returns the root handler. CORS wraps the
// router itself so preflight requests are answered for any path.
func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(notFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	r.router.Use(r.loggingMiddleware.Handle)

	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public, rate limited)
	api.Handle("/auth/register", r.rateLimited(r.handlers.Auth.Register)).Methods(http.MethodPost)
	api.Handle("/auth/login", r.rateLimited(r.handlers.Auth.Login)).Methods(http.MethodPost)

	// Everything below requires a live session
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.handlers.Auth.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.handlers.Auth.Me).Methods(http.MethodGet)

	// Clients
	protected.HandleFunc("/clients", r.handlers.Client.GetAllClients).Methods(http.MethodGet)
	protected.HandleFunc("/clients", r.handlers.Client.CreateClient).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{id}", r.handlers.Client.GetClient).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.handlers.Client.UpdateClient).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{id}", r.handlers.Client.DeleteClient).Methods(http.MethodDelete)

	// Programs
	protected.HandleFunc("/programs", r.handlers.Program.GetAllPrograms).Methods(http.MethodGet)
	protected.HandleFunc("/programs", r.handlers.Program.CreateProgram).Methods(http.MethodPost)
	protected.HandleFunc("/programs/{id}", r.handlers.Program.GetProgram).Methods(http.MethodGet)
	protected.HandleFunc("/programs/{id}", r.handlers.Program.UpdateProgram).Methods(http.MethodPatch)
	protected.HandleFunc("/programs/{id}", r.handlers.Program.DeleteProgram).Methods(http.MethodDelete)

	// Enrollments
	protected.HandleFunc("/enrollments", r.handlers.Enrollment.GetAllEnrollments).Methods(http.MethodGet)
	protected.HandleFunc("/enrollments", r.handlers.Enrollment.CreateEnrollment).Methods(http.MethodPost)
	protected.HandleFunc("/enrollments/{id}", r.handlers.Enrollment.GetEnrollment).Methods(http.MethodGet)
	protected.HandleFunc("/enrollments/client/{id}", r.handlers.Enrollment.GetEnrollmentsByClient).Methods(http.MethodGet)
	protected.HandleFunc("/enrollments/program/{id}", r.handlers.Enrollment.GetEnrollmentsByProgram).Methods(http.MethodGet)
	protected.HandleFunc("/enrollments/{id}", r.handlers.Enrollment.UpdateEnrollment).Methods(http.MethodPatch)
	protected.HandleFunc("/enrollments/{id}", r.handlers.Enrollment.DeleteEnrollment).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.handlers.Appointment.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.handlers.Appointment.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.handlers.Appointment.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/client/{id}", r.handlers.Appointment.GetAppointmentsByClient).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/doctor/{id}", r.handlers.Appointment.GetAppointmentsByDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.handlers.Appointment.UpdateAppointment).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", r.handlers.Appointment.DeleteAppointment).Methods(http.MethodDelete)

	// Users (writes admin only)
	protected.HandleFunc("/users", r.handlers.User.GetAllUsers).Methods(http.MethodGet)
	protected.Handle("/users", adminOnly(r.handlers.User.CreateUser)).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}", r.handlers.User.GetUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}/appointments", r.handlers.User.GetUserAppointments).Methods(http.MethodGet)
	protected.Handle("/users/{id}", adminOnly(r.handlers.User.UpdateUser)).Methods(http.MethodPatch)
	protected.Handle("/users/{id}", adminOnly(r.handlers.User.DeleteUser)).Methods(http.MethodDelete)

	// Dashboard
	protected.HandleFunc("/dashboard/statistics", r.handlers.Dashboard.GetStatistics).Methods(http.MethodGet)

	// Audit logs (admin only)
	protected.Handle("/audit-logs", adminOnly(r.handlers.AuditLog.GetAuditLogs)).Methods(http.MethodGet)
	protected.Handle("/audit-logs/{id}", adminOnly(r.handlers.AuditLog.GetAuditLog)).Methods(http.MethodGet)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) rateLimited(h http.HandlerFunc) http.Handler {
	return r.rateLimitMiddleware.Handle(h)
}

func adminOnly(h http.HandlerFunc) http.Handler {
	return middleware.RequireAdmin(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Route not found")
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}
