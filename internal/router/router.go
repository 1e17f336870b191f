package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/bookmarker/internal/handlers"
	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/middlewares"
)

// AuthService is everything the auth routes need.
type AuthService interface {
	handlers.Registerer
	handlers.Loginer
	handlers.WhoAmIer
	handlers.Refresher
}

// BookmarkService is everything the bookmark routes need.
type BookmarkService interface {
	handlers.BookmarkCreator
	handlers.BookmarkLister
	handlers.BookmarkGetter
	handlers.BookmarkUpdater
	handlers.BookmarkDeleter
	handlers.StatsReader
}

// Deps holds everything the HTTP surface is built from.
type Deps struct {
	DB         *sqlx.DB
	Tokens     middlewares.Tokener
	Auth       AuthService
	Bookmarks  BookmarkService
	Redirects  handlers.Resolver
	Build      handlers.BuildInfo
	StartTime  time.Time
	SwaggerURL string
}

// New builds the chi router with all routes and middlewares.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(chimiddleware.StripSlashes)

	r.NotFound(handlers.NewNotFoundHandler())
	r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

	r.Get("/healthz", handlers.NewHealthzHandler(d.Build, d.StartTime))
	r.Get("/readyz", handlers.NewReadyzHandler(d.DB))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	tx := middlewares.TxMiddleware(d.DB)
	auth := middlewares.AuthMiddleware(d.Tokens)

	r.Route("/api", func(r chi.Router) {
		r.Use(tx)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.NewRegisterHandler(d.Auth))
			r.Post("/login", handlers.NewLoginHandler(d.Auth))
			r.With(auth).Get("/user", handlers.NewWhoAmIHandler(d.Auth))
			r.Get("/token/refresh", handlers.NewRefreshHandler(d.Tokens, d.Auth))
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Use(auth)

			r.Get("/", handlers.NewListBookmarksHandler(d.Bookmarks))
			r.Post("/", handlers.NewCreateBookmarkHandler(d.Bookmarks))
			r.Get("/stats", handlers.NewStatsHandler(d.Bookmarks))

			update := handlers.NewUpdateBookmarkHandler(d.Bookmarks)
			r.Get("/{id}", handlers.NewGetBookmarkHandler(d.Bookmarks))
			r.Put("/{id}", update)
			r.Patch("/{id}", update)
			r.Delete("/{id}", handlers.NewDeleteBookmarkHandler(d.Bookmarks))
		})
	})

	r.With(tx).Get("/{code}", handlers.NewRedirectHandler(d.Redirects))

	return r
}
