package http

import (
	"net/http"

	"hospital-ipd-engine/internal/delivery/http/handler"
	"hospital-ipd-engine/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	admissionHandler      *handler.AdmissionHandler
	patientContextHandler *handler.PatientContextHandler
	dashboardHandler      *handler.DashboardHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	admissionHandler *handler.AdmissionHandler,
	patientContextHandler *handler.PatientContextHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		admissionHandler:      admissionHandler,
		patientContextHandler: patientContextHandler,
		dashboardHandler:      dashboardHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Everything below acts on behalf of a staff member
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Admission lifecycle
	protected.HandleFunc("/admissions", r.admissionHandler.CreateAdmission).Methods(http.MethodPost)
	protected.HandleFunc("/admissions/{id}", r.admissionHandler.UpdateAdmission).Methods(http.MethodPatch)
	protected.HandleFunc("/admissions/{id}/status", r.admissionHandler.UpdateAdmissionStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/admissions/{id}/schedule-ot", r.admissionHandler.ScheduleOT).Methods(http.MethodPost)

	// Patient-context source lists for the admission form
	protected.HandleFunc("/patients/{id}/contexts", r.patientContextHandler.ListContextOptions).Methods(http.MethodGet)

	// Admission history from the local snapshot read-model
	protected.HandleFunc("/patients/{id}/admissions", r.dashboardHandler.GetPatientAdmissionHistory).Methods(http.MethodGet)

	// Dashboard
	protected.HandleFunc("/capacity", r.dashboardHandler.GetCapacityOverview).Methods(http.MethodGet)
	protected.HandleFunc("/audit", r.dashboardHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
