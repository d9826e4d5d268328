package handlers

import (
	"StaffPortal/internal/config"
	"StaffPortal/internal/middleware"
	"StaffPortal/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	staffService *service.StaffService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	staffHandler := NewStaffHandler(staffService, logger, config)

	r.Route(config.ResourcePath, func(r chi.Router) {
		// Auth routes
		r.Post("/auth/signup", staffHandler.SignUp)
		r.Post("/auth/signin", staffHandler.SignIn)

		// Staff routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", staffHandler.List)
			r.Post("/", staffHandler.Create)
			r.Delete("/", staffHandler.DeleteAll)
			r.Get("/{id}", staffHandler.Get)
			r.Put("/{id}", staffHandler.Update)
			r.Delete("/{id}", staffHandler.Delete)
		})
	})

	return &Handler{Router: r}
}
