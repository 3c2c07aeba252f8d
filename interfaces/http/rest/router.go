package rest

import (
	"net/http"

	"mathsolver-backend/infrastructure/config"
	"mathsolver-backend/interfaces/http/rest/handlers"
	"mathsolver-backend/interfaces/http/rest/middleware"
	"mathsolver-backend/pkg/auth"
	"mathsolver-backend/pkg/common"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	config         *config.Config
	problemHandler *handlers.ProblemHandler
	jwtValidator   *auth.JWTValidator
	logger         *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	problemHandler *handlers.ProblemHandler,
	jwtValidator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		config:         cfg,
		problemHandler: problemHandler,
		jwtValidator:   jwtValidator,
		logger:         logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Public endpoints
	router.Get("/", rt.root)
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.jwtValidator))

		r.Post("/solve", rt.problemHandler.Solve)
		r.Get("/history", rt.problemHandler.GetHistory)
		r.Delete("/history/{problemID}", rt.problemHandler.DeleteProblem)
	})

	return router
}

// root handles service info requests
func (rt *Router) root(w http.ResponseWriter, req *http.Request) {
	common.RespondJSON(w, http.StatusOK, common.InfoResponse{
		Message: "Math Photo Solver API",
		Version: rt.config.APIVersion,
	})
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	common.RespondJSON(w, http.StatusOK, common.HealthResponse{Status: "healthy"})
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	common.RespondJSON(w, http.StatusOK, common.HealthResponse{Status: "ready"})
}
