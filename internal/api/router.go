package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/kashxsh001/SkillStream/internal/api/handler"
	"github.com/kashxsh001/SkillStream/internal/api/middleware"
	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/config"
	"github.com/kashxsh001/SkillStream/internal/infrastructure/http/handlers"
)

// Deps is everything the router needs to serve requests.
type Deps struct {
	Config           *config.Config
	Logger           zerolog.Logger
	AuthService      ports.AuthService
	CourseService    ports.CourseService
	FavouriteService ports.FavouriteService
	Gateway          ports.Gateway
	HealthChecks     map[string]handlers.Check

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	cfg := deps.Config
	log := deps.Logger

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{echo.HeaderXRequestID},
	}).Handler))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "skillstream",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational routes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	courseHandler := handler.NewCourseHandler(deps.CourseService)
	adminHandler := handler.NewAdminHandler(deps.CourseService, log)
	favouriteHandler := handler.NewFavouriteHandler(deps.Gateway, deps.FavouriteService)

	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth", middleware.RateLimit(cfg.Auth.RateLimit))
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	courses := v1.Group("/courses")
	courses.GET("", courseHandler.List)
	courses.GET("/search", courseHandler.Search)

	admin := v1.Group("/admin", middleware.RequireRole(deps.Gateway, domain.RoleAdmin))
	admin.GET("/courses", adminHandler.ListCourses)
	admin.POST("/courses", adminHandler.CreateCourse)
	admin.PUT("/courses/:id", adminHandler.UpdateCourse)
	admin.DELETE("/courses/:id", adminHandler.DeleteCourse)

	favourites := v1.Group("/favourites")
	favourites.GET("", favouriteHandler.List)
	favourites.POST("", favouriteHandler.Add)
	favourites.DELETE("/:code", favouriteHandler.Remove)

	return e
}

// requestLogger writes one access log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
