package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/remix-pengkefei/ai-training-admin/internal/service"
	"github.com/remix-pengkefei/ai-training-admin/internal/transport/rest/handler"
	"github.com/remix-pengkefei/ai-training-admin/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService  *service.AuthService
	EventService *service.EventService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	eventHandler := handler.NewEventHandler(c.EventService)
	regHandler := handler.NewRegistrationHandler(c.EventService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require a valid session)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/events", eventHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/events", eventHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/events/{id}", eventHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/events/{id}", eventHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/events/{id}", eventHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/events/{id}/registrations", regHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/events/{id}/registrations/export", regHandler.Export).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/upload", eventHandler.Upload).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
