package rest

import (
	"net/http"

	"elevate-backend/infrastructure/config"
	"elevate-backend/interfaces/http/rest/handlers"
	"elevate-backend/interfaces/http/rest/middleware"
	"elevate-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg       *config.Config
	entities  *handlers.EntityHandler
	admin     *handlers.AdminHandler
	validator *auth.JWTValidator
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	entities *handlers.EntityHandler,
	admin *handlers.AdminHandler,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		entities:  entities,
		admin:     admin,
		validator: validator,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.elevate.ph"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.logger))

		r.Get("/map", rt.entities.MapList)

		r.Route("/{entityType}", func(r chi.Router) {
			r.Post("/", rt.entities.Create)
			r.Get("/", rt.entities.List)
			r.Get("/{entityID}", rt.entities.Get)
			r.Put("/{entityID}", rt.entities.Update)
		})

		r.Route("/saved-profiles", func(r chi.Router) {
			r.Get("/", rt.entities.SavedProfiles)
			r.Post("/", rt.entities.SaveProfile)
			r.Delete("/", rt.entities.UnsaveProfile)
		})

		r.Post("/name-change-requests", rt.entities.RequestNameChange)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(auth.RoleAdmin))

			r.Get("/map", rt.admin.MapList)
			r.Get("/{entityType}", rt.admin.List)
			r.Get("/name-change-requests", rt.admin.ListRequests)
			r.Get("/name-change-requests/{requestID}", rt.admin.GetRequest)
			r.Post("/name-change-requests/{requestID}/respond", rt.admin.RespondRequest)
			r.Post("/suggestion-flags/reset", rt.admin.ResetSuggestionFlags)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
