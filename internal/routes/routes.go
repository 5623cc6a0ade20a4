package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mandala-pay/mandala_pay/internal/auth"
	"github.com/mandala-pay/mandala_pay/internal/balance"
	"github.com/mandala-pay/mandala_pay/internal/config"
	"github.com/mandala-pay/mandala_pay/internal/identity"
	"github.com/mandala-pay/mandala_pay/internal/middleware"
	"github.com/mandala-pay/mandala_pay/internal/network"
	"github.com/mandala-pay/mandala_pay/internal/notification"
	"github.com/mandala-pay/mandala_pay/internal/ppob"
	"github.com/mandala-pay/mandala_pay/internal/rbac"
	"github.com/mandala-pay/mandala_pay/internal/security"
	"github.com/mandala-pay/mandala_pay/internal/settings"
	"github.com/mandala-pay/mandala_pay/internal/training"
	"github.com/mandala-pay/mandala_pay/internal/transactions"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !isDev(d.Cfg.AppEnv) {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories: Postgres in deployments, in-memory in dev mode.
	var (
		identityRepo     identity.Repository
		balanceRepo      balance.Repository
		networkRepo      network.Repository
		ppobRepo         ppob.Repository
		txRepo           transactions.Repository
		trainingRepo     training.Repository
		securityRepo     security.Repository
		notificationRepo notification.Repository
		settingsRepo     settings.Repository
	)
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		balanceRepo = balance.NewPostgresRepository(d.DB)
		networkRepo = network.NewPostgresRepository(d.DB)
		ppobRepo = ppob.NewPostgresRepository(d.DB)
		txRepo = transactions.NewPostgresRepository(d.DB)
		trainingRepo = training.NewPostgresRepository(d.DB)
		securityRepo = security.NewPostgresRepository(d.DB)
		notificationRepo = notification.NewPostgresRepository(d.DB)
		settingsRepo = settings.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
		balanceRepo = balance.NewMemoryRepository()
		networkRepo = network.NewMemoryRepository()
		ppobRepo = ppob.NewMemoryRepository()
		txRepo = transactions.NewMemoryRepository()
		trainingRepo = training.NewMemoryRepository()
		securityRepo = security.NewMemoryRepository()
		notificationRepo = notification.NewMemoryRepository()
		settingsRepo = settings.NewMemoryRepository()
	}

	// Services
	identitySvc := identity.NewService(identityRepo)
	authSvc := auth.NewService(d.Cfg, identityRepo)
	balanceSvc := balance.NewService(balanceRepo)
	txSvc := transactions.NewService(txRepo)
	securitySvc := security.NewService(securityRepo)
	notifier := notification.NewLoggerNotifier(d.Logger)
	notificationSvc := notification.NewService(notificationRepo, notifier)
	networkSvc := network.NewService(networkRepo, notificationSvc)
	ppobSvc := ppob.NewService(ppobRepo, securitySvc, txSvc, notificationSvc)
	trainingSvc := training.NewService(trainingRepo)
	settingsSvc := settings.NewService(settingsRepo)

	// Handlers
	identityHandler := identity.NewHandler(identitySvc)
	authHandler := auth.NewHandler(identitySvc, authSvc, identityRepo)
	balanceHandler := balance.NewHandler(balanceSvc)
	networkHandler := network.NewHandler(networkSvc)
	txHandler := transactions.NewHandler(txSvc)
	securityHandler := security.NewHandler(securitySvc)
	notificationHandler := notification.NewHandler(notificationSvc)
	ppobHandler := ppob.NewHandler(ppobSvc)
	trainingHandler := training.NewHandler(trainingSvc)
	settingsHandler := settings.NewHandler(settingsSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	RegisterIdentityRoutes(api, identityHandler)
	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginPerMinute)
	RegisterAuthRoutes(api, authHandler, rateLimiter)

	// Protected routes. Every guarded view defaults to "any authenticated
	// identity"; admin surfaces narrow the allow-list.
	jwtmw := middleware.JWTAuth(d.Cfg, identityRepo)
	protected := api.Group("", jwtmw, middleware.RequireRoles())
	RegisterLogoutRoute(protected, authHandler)
	RegisterMeRoute(protected, identityRepo)
	RegisterBalanceRoutes(protected, balanceHandler)
	RegisterTransactionRoutes(protected, txHandler)
	RegisterTrainingRoutes(protected, trainingHandler)
	RegisterSecurityRoutes(protected, securityHandler)
	RegisterNotificationRoutes(protected, notificationHandler)
	RegisterSettingsRoutes(protected, settingsHandler)

	var idem fiber.Handler
	if d.Cache != nil {
		idem = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}
	RegisterPPOBRoutes(protected, ppobHandler, idem)
	RegisterNetworkRoutes(protected, networkHandler)

	// Admin surfaces
	admin := api.Group("/admin", jwtmw, middleware.RequireRoles(rbac.RoleAdmin))
	RegisterAdminRoutes(admin, identityHandler)

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
