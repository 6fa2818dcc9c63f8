package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/wisbaq/webfolio-be/internal/api/handlers"
	"github.com/wisbaq/webfolio-be/internal/auth"
	"github.com/wisbaq/webfolio-be/internal/config"
	"github.com/wisbaq/webfolio-be/internal/services"
	"github.com/wisbaq/webfolio-be/internal/storage"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	tokens *auth.Manager,
	userService services.UserServiceProvider,
	blogService services.BlogServiceProvider,
	metaTagService services.MetaTagServiceProvider,
	uploads *storage.Store,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	blogHandler := handlers.NewBlogHandler(blogService, uploads)
	metaTagHandler := handlers.NewMetaTagHandler(metaTagService)

	r.Get("/healthz", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogHandler.GetAll)
			r.Get("/{id}", blogHandler.Get)

			// Mutations require a valid bearer token
			r.Group(func(r chi.Router) {
				r.Use(tokens.Middleware())
				r.Post("/", blogHandler.Create)
				r.Put("/{id}", blogHandler.Update)
				r.Delete("/{id}", blogHandler.Delete)
			})
		})

		// Meta tag mutations are deliberately left open; the admin
		// frontend calls them without a token.
		r.Route("/metatags", func(r chi.Router) {
			r.Get("/", metaTagHandler.GetAll)
			r.Get("/{id}", metaTagHandler.Get)
			r.Post("/", metaTagHandler.Create)
			r.Put("/{id}", metaTagHandler.Update)
			r.Delete("/{id}", metaTagHandler.Delete)
		})
	})

	// Uploaded images are served back under the same path stored in
	// blog rows.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	// In production the built frontend is served from the root.
	if cfg.Production {
		r.Handle("/*", http.FileServer(http.Dir(cfg.ClientDir)))
	}

	return r
}
