package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/ridwansameer/simple-todo-api/internal/api/handlers"
	"github.com/ridwansameer/simple-todo-api/internal/api/middleware"
	"github.com/ridwansameer/simple-todo-api/internal/auth"
	"github.com/ridwansameer/simple-todo-api/internal/authz"
	"github.com/ridwansameer/simple-todo-api/internal/store"
	"gorm.io/gorm"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	JWTService     *auth.JWTService
	AuthService    *auth.Service
	Store          *store.Store
	Authz          *authz.Service
	AllowedOrigins []string // CORS allowed origins
	RateLimitReqs  int      // Rate limit requests per window
	RateLimitSecs  int      // Rate limit window in seconds
}

func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	if cfg.RateLimitReqs > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitReqs, cfg.RateLimitSecs))
	}

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		// Default to localhost for development - configure in production
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	authHandler := handlers.NewAuthHandler(cfg.AuthService)
	orgHandler := handlers.NewOrganisationHandler(cfg.Store, cfg.Authz)
	projectHandler := handlers.NewProjectHandler(cfg.Store, cfg.Authz)
	todoHandler := handlers.NewTodoHandler(cfg.Store)
	commentHandler := handlers.NewCommentHandler(cfg.Store)

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Public auth endpoints
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTService))

		r.Route("/organisations", func(r chi.Router) {
			r.Get("/", orgHandler.List)
			r.Post("/", orgHandler.Create)
			r.Get("/{id}", orgHandler.Get)
			r.Patch("/{id}", orgHandler.Update)
			r.Delete("/{id}", orgHandler.Delete)
			r.Get("/{id}/projects", orgHandler.ListProjects)
			r.Post("/{id}/projects", orgHandler.CreateProject)
			r.Get("/{id}/members", orgHandler.ListMembers)
			r.Post("/{id}/members", orgHandler.AddMember)
			r.Put("/{id}/members", orgHandler.UpdateMember)
			r.Delete("/{id}/members", orgHandler.RemoveMember)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/{id}/todos", projectHandler.CreateTodo)
			r.Get("/{id}/todos", projectHandler.ListTodos)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Post("/{id}/assignments", todoHandler.CreateAssignments)
			r.Get("/{id}/assignments", todoHandler.ListAssignments)
			r.Delete("/{id}/assignments", todoHandler.DeleteAssignments)
			r.Get("/{id}/comments", todoHandler.ListComments)
			r.Post("/{id}/comments", todoHandler.CreateComment)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Patch("/{id}", commentHandler.Update)
			r.Delete("/{id}", commentHandler.Delete)
		})
	})

	return &Router{r}
}
