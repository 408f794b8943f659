package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/portalteam/client-portal/internal/api/handler"
	"github.com/portalteam/client-portal/internal/api/middleware"
	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/service"
	mongodb "github.com/portalteam/client-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/portalteam/client-portal/internal/infrastructure/db/redis"
	"github.com/portalteam/client-portal/internal/notify"
	"github.com/portalteam/client-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	identityRepo := mongodb.NewIdentityRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	notifier := notify.NewSender(notify.Config{
		Host: cfg.Email.Host,
		Port: cfg.Email.Port,
		User: cfg.Email.User,
		Pass: cfg.Email.Pass,
	}, log)

	authService := service.NewAuthService(identityRepo, profileRepo, sessionStore, cfg.JWTSecret, 24*time.Hour, log)
	provisioningService := service.NewProvisioningService(authService, identityRepo, profileRepo, clientRepo, notifier, cfg.ProvisioningSecret, log)
	directoryService := service.NewDirectoryService(identityRepo, profileRepo, clientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(provisioningService, directoryService)
	clientHandler := handler.NewClientHandler(directoryService)
	emailHandler := handler.NewEmailHandler(notifier)

	authRequired := middleware.Auth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/refresh", authHandler.Refresh)
	e.POST("/send-email", emailHandler.Send)

	// Secret-or-bearer authorization is decided inside the
	// provisioning service, so no middleware guards this route.
	e.POST("/admin/create-user", adminHandler.CreateUser)

	// --- Admin routes ---
	e.PUT("/admin/update-user", adminHandler.UpdateUser, authRequired, adminOnly)
	e.POST("/admin/delete-user", adminHandler.DeleteUser, authRequired, adminOnly)

	// --- Authenticated routes ---
	e.GET("/clients", clientHandler.List, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
