package http

import (
	"net/http"

	"clinic-api/internal/delivery/http/handler"
	"clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	patientHandler *handler.PatientHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		userHandler:    userHandler,
		patientHandler: patientHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/verify-code", r.authHandler.VerifyCode).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User management (protected; per-action policy inside the handlers)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("", r.userHandler.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("", r.userHandler.ListUsers).Methods(http.MethodGet)
	users.HandleFunc("/search", r.userHandler.SearchUsers).Methods(http.MethodGet)
	users.HandleFunc("/statistics", r.userHandler.GetUserStatistics).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.UpdateUser).Methods(http.MethodPatch)
	users.HandleFunc("/{id}/status", r.userHandler.SetUserStatus).Methods(http.MethodPatch)

	roles := api.PathPrefix("/roles").Subrouter()
	roles.Use(r.authMiddleware.Authenticate)
	roles.HandleFunc("", r.userHandler.ListRoles).Methods(http.MethodGet)

	// Patient records (protected)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.ListPatients).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("/my-patients", r.patientHandler.ListMyPatients).Methods(http.MethodGet)
	patients.HandleFunc("/me", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patients.HandleFunc("/me", r.patientHandler.UpdateMyProfile).Methods(http.MethodPatch)
	patients.HandleFunc("/search", r.patientHandler.SearchPatient).Methods(http.MethodGet)
	patients.HandleFunc("/statistics", r.patientHandler.GetPatientStatistics).Methods(http.MethodGet)
	patients.HandleFunc("/user/{id}", r.patientHandler.GetPatientByUser).Methods(http.MethodGet)
	patients.HandleFunc("/user/{id}", r.patientHandler.UpdatePatientByUser).Methods(http.MethodPatch)
	patients.HandleFunc("/user/{id}/first-visit", r.patientHandler.CompleteFirstVisit).Methods(http.MethodPatch)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
