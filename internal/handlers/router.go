package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/middlewares"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	httpSwagger "github.com/swaggo/http-swagger"
)

// AuthService is everything the auth routes need.
type AuthService interface {
	Registerer
	Loginer
	Profiler
}

// ModuleService is everything the module routes need.
type ModuleService interface {
	ModuleLister
	ModuleSearcher
	ModuleFacetser
	ModuleGetter
	ModuleCreator
	ModuleUpdater
	ModuleDeleter
}

// FavoriteService is everything the favorite routes need.
type FavoriteService interface {
	FavoriteLister
	FavoriteAdder
	FavoriteRemover
	FavoriteStatusChecker
	FavoriteCounter
}

// UserService is everything the user routes need.
type UserService interface {
	UserLister
	UserGetter
	UserRemover
}

// RouterDeps collects what NewRouter wires together. DB, Metrics,
// MetricsHandler and AuthLimiter are optional.
type RouterDeps struct {
	Tokener            middlewares.Tokener
	DB                 *sqlx.DB
	Metrics            middlewares.RequestRecorder
	MetricsHandler     http.Handler
	AuthLimiter        *middlewares.RateLimiter
	CORSAllowedOrigins []string
	SwaggerURL         string

	Auth      AuthService
	Modules   ModuleService
	Favorites FavoriteService
	Users     UserService
}

// NewRouter builds the HTTP API.
//
// Middleware order: Recoverer, RealIP, logging, metrics, CORS. Write
// requests on /modules and /favorites additionally run in a transaction.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	if deps.Metrics != nil {
		r.Use(middlewares.MetricsMiddleware(deps.Metrics))
	}
	r.Use(middlewares.CORSMiddleware(deps.CORSAllowedOrigins))

	authMiddleware := middlewares.AuthMiddleware(deps.Tokener)

	// Public routes
	r.Group(func(r chi.Router) {
		if deps.AuthLimiter != nil {
			r.Use(deps.AuthLimiter.Middleware)
		}
		r.Post("/auth/register", NewRegisterHandler(deps.Auth))
		r.Post("/auth/login", NewLoginHandler(deps.Auth))
	})

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/auth/profile", NewProfileHandler(deps.Auth))
		r.Post("/auth/logout", NewLogoutHandler())

		r.Route("/modules", func(r chi.Router) {
			if deps.DB != nil {
				r.Use(middlewares.TxMiddleware(deps.DB))
			}
			r.Get("/", NewListModulesHandler(deps.Modules))
			r.Post("/", NewCreateModuleHandler(deps.Modules))
			r.Get("/search", NewSearchModulesHandler(deps.Modules))
			r.Get("/facets", NewModuleFacetsHandler(deps.Modules))
			r.Get("/{id}", NewGetModuleHandler(deps.Modules))
			r.Put("/{id}", NewUpdateModuleHandler(deps.Modules))
			r.Delete("/{id}", NewDeleteModuleHandler(deps.Modules))
		})

		r.Route("/favorites", func(r chi.Router) {
			if deps.DB != nil {
				r.Use(middlewares.TxMiddleware(deps.DB))
			}
			r.Get("/", NewListFavoritesHandler(deps.Favorites))
			r.Post("/", NewAddFavoriteHandler(deps.Favorites))
			r.Get("/count", NewFavoriteCountHandler(deps.Favorites))
			r.Get("/{moduleId}", NewFavoriteStatusHandler(deps.Favorites))
			r.Delete("/{moduleId}", NewRemoveFavoriteHandler(deps.Favorites))
		})

		r.Route("/users", func(r chi.Router) {
			r.With(middlewares.RequireRole(models.RoleAdmin)).Get("/", NewListUsersHandler(deps.Users))
			r.Get("/{id}", NewGetUserHandler(deps.Users))
			r.With(middlewares.RequireRole(models.RoleAdmin)).Delete("/{id}", NewDeleteUserHandler(deps.Users))
		})
	})

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	swaggerURL := deps.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
