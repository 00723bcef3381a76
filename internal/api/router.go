package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/v4health/clinic-api/docs"
	"github.com/v4health/clinic-api/internal/api/handler"
	"github.com/v4health/clinic-api/internal/api/middleware"
	"github.com/v4health/clinic-api/internal/infrastructure/http/handlers"
)

// RouterConfig carries everything NewRouter wires into the Echo instance.
type RouterConfig struct {
	Log        zerolog.Logger
	BasePath   string
	Principals *handler.PrincipalHandler
	Catalog    *handler.CatalogHandler
	// Health lists the dependencies checked by /health/ready.
	Health []handlers.Dependency
	// ImageDir is served under /images when uploads go to local disk.
	ImageDir string
	// MaxBodyBytes caps request bodies; zero disables the limit.
	MaxBodyBytes int64
	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default Prometheus registry, where the domain metrics live.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(cfg.Log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "clinic",
		Registerer: registerer,
	}))
	if cfg.MaxBodyBytes > 0 {
		// multipart framing on top of the file itself
		e.Use(echomiddleware.BodyLimit(fmt.Sprintf("%dK", cfg.MaxBodyBytes/1024+64)))
	}

	// --- Clinic API ---
	g := e.Group(cfg.BasePath)

	g.POST("/v4_staffs", cfg.Principals.CreateStaff)
	g.POST("/doctors", cfg.Principals.CreateDoctor)
	g.POST("/patients", cfg.Principals.CreatePatient)

	g.POST("/sloatAmount", cfg.Catalog.CreateSlotAmount)
	g.POST("/questionnaire", cfg.Catalog.AddQuestion)
	g.POST("/images", cfg.Catalog.UploadImage)
	g.POST("/designations", cfg.Catalog.CreateDesignation)
	g.POST("/all_privileges", cfg.Catalog.AddPrivilege)
	g.POST("/departments", cfg.Catalog.AddDepartment)
	g.POST("/languages", cfg.Catalog.CreateLanguage)
	g.POST("/medicines", cfg.Catalog.CreateMedicine)
	g.POST("/extra_charges", cfg.Catalog.CreateExtraCharge)

	if cfg.ImageDir != "" {
		e.Static("/images", cfg.ImageDir)
	}

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(cfg.Health...)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
