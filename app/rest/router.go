package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"session-manager/app/port"
	"session-manager/app/rest/handlers"
	custommw "session-manager/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	Sessions       port.SessionManager
	Presenter      port.ThemePresenter
	AllowedOrigins []string
	HealthChecks   map[string]handlers.HealthCheckFunc
	EnableDebug    bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	sessionHandler := handlers.NewSessionHandler(config.Sessions, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.Sessions, config.Presenter, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthChecks)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.CORSWithOrigins(config.AllowedOrigins))
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	v1 := e.Group("/v1")

	// Health endpoints
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Session lifecycle endpoints
	auth := v1.Group("/auth")
	auth.POST("/register", sessionHandler.Register)
	auth.POST("/login", sessionHandler.Login)
	auth.POST("/logout", sessionHandler.Logout)
	auth.GET("/me", sessionHandler.CurrentUser)
	auth.POST("/recover", sessionHandler.Recover)

	// Profile and presentation endpoints
	user := v1.Group("/user")
	user.PUT("/profile", profileHandler.UpdateProfile)
	user.POST("/theme", profileHandler.ApplyTheme)

	return e
}
