package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"statcheck/adapters/stats"
	"statcheck/domain/htest"
	"statcheck/internal"
	"statcheck/internal/config"
)

//go:embed templates/* static/* GUIDE.md
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	engine    *htest.Engine
	config    *config.Config
	logger    *internal.Logger
	templates *template.Template
}

// NewApp creates a new UI application
func NewApp(cfg *config.Config) (*App, error) {
	engine := htest.NewEngine(htest.DistFactory{
		Normal:    stats.Normal,
		StudentsT: stats.StudentsT,
	})

	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		engine:    engine,
		config:    cfg,
		logger:    internal.DefaultLogger,
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(requestID)
	a.router.Use(requestLogger(a.logger))
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Main pages
	a.router.Get("/", a.handleIndex)
	a.router.Get("/guide", a.handleGuide)

	// Test evaluation endpoints
	a.router.Post("/test/one", a.handleOneSample)
	a.router.Post("/test/two", a.handleTwoSample)

	// Sample ingestion from spreadsheet/CSV files
	a.router.Post("/upload", a.handleUpload)

	a.router.Get("/healthz", a.handleHealth)
}

// Router exposes the HTTP handler for serving and tests
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server on the configured port
func (a *App) Start() error {
	addr := ":" + a.config.Server.Port
	a.logger.Info("StatCheck UI listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
