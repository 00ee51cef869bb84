package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"session-manager/app/config"
	"session-manager/app/domain"
	"session-manager/app/driver/kratos"
	"session-manager/app/driver/postgres"
	"session-manager/app/driver/rediscache"
	"session-manager/app/gateway"
	"session-manager/app/port"
	"session-manager/app/rest"
	"session-manager/app/rest/handlers"
	"session-manager/app/usecase"
	"session-manager/app/utils/presentation"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client
	Credentials  *rediscache.CredentialStore
	Watcher      *kratos.SessionWatcher

	// Presentation
	Presenter *presentation.Context

	// Gateways
	IdentityGateway port.IdentityGateway

	// Usecases
	Sessions port.SessionManager
}

// NewContainer creates and initializes a new dependency injection container.
// The reloader is invoked when local credential state has to be rebuilt from
// scratch; main wires it to a container restart.
func NewContainer(cfg *config.Config, logger *slog.Logger, reloader port.Reloader) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	container.Credentials = rediscache.NewCredentialStore(cfg, logger)

	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)

	providerAdapter := kratos.NewClientAdapter(container.KratosClient, logger)
	identityGateway := gateway.NewIdentityGateway(providerAdapter, logger)
	container.IdentityGateway = identityGateway

	container.Watcher = kratos.NewSessionWatcher(providerAdapter, container.Credentials, cfg.WatchInterval, logger)

	container.Presenter = presentation.New(domain.Theme(cfg.DefaultTheme), nil)

	container.Sessions = usecase.NewSessionUseCase(usecase.Deps{
		Identity:      identityGateway,
		Profiles:      profileRepository,
		Stores:        []port.CredentialStore{container.Credentials},
		Events:        container.Watcher,
		Presenter:     container.Presenter,
		Reloader:      reloader,
		ResetRedirect: cfg.ResetRedirectURL(),
		Logger:        logger,
	})

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// Start launches background workers owned by the container
func (c *Container) Start(ctx context.Context) {
	c.Watcher.Start(ctx)
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:         c.Logger,
		Sessions:       c.Sessions,
		Presenter:      c.Presenter,
		AllowedOrigins: c.Config.AllowedOrigins,
		HealthChecks: map[string]handlers.HealthCheckFunc{
			"database": c.DB.HealthCheck,
			"kratos":   c.KratosClient.HealthCheck,
			"redis":    c.Credentials.HealthCheck,
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.Watcher != nil {
		c.Watcher.Stop()
	}

	if c.Credentials != nil {
		if err := c.Credentials.Close(); err != nil {
			c.Logger.Warn("failed to close credential store", "error", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
