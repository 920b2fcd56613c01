package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/karigar-app/admin-api/internal/ads"
	"github.com/karigar-app/admin-api/internal/classify"
	"github.com/karigar-app/admin-api/internal/config"
	"github.com/karigar-app/admin-api/internal/customer"
	"github.com/karigar-app/admin-api/internal/dashboard"
	"github.com/karigar-app/admin-api/internal/dbhealth"
	"github.com/karigar-app/admin-api/internal/mailer"
	"github.com/karigar-app/admin-api/internal/middleware"
	"github.com/karigar-app/admin-api/internal/notification"
	"github.com/karigar-app/admin-api/internal/order"
	"github.com/karigar-app/admin-api/internal/provider"
	"github.com/karigar-app/admin-api/internal/push"
	"github.com/karigar-app/admin-api/internal/review"
	"github.com/karigar-app/admin-api/internal/settings"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *mongo.Database
	Cache  *redis.Client
	Logger *slog.Logger
	Push   push.Sender
	Mail   mailer.Mailer
}

// Setup configures middlewares and all application routes. A nil DB
// falls back to in-memory repositories, which keeps local development
// free of a running database.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log in desired format: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	table := classify.Default()
	if d.Cfg.CategoryTableFile != "" {
		loaded, err := classify.LoadFile(d.Cfg.CategoryTableFile)
		if err != nil {
			return err
		}
		table = loaded
	}

	// Repositories
	var customerRepo customer.Repository
	var providerRepo provider.Repository
	var adsRepo ads.Repository
	var orderRepo order.Repository
	var settingsRepo settings.Repository
	if d.DB != nil {
		customerRepo = customer.NewMongoRepository(d.DB)
		providerRepo = provider.NewMongoRepository(d.DB)
		adsRepo = ads.NewMongoRepository(d.DB)
		orderRepo = order.NewMongoRepository(d.DB)
		settingsRepo = settings.NewMongoRepository(d.DB)
	} else {
		customerRepo = customer.NewMemoryRepository()
		providerRepo = provider.NewMemoryRepository()
		adsRepo = ads.NewMemoryRepository()
		orderRepo = order.NewMemoryRepository()
		settingsRepo = settings.NewMemoryRepository()
	}

	// Collaborators
	sender := d.Push
	if sender == nil {
		sender = push.NewLogSender(d.Logger)
	}
	mail := d.Mail
	if mail == nil {
		mail = mailer.NewLogMailer(d.Logger)
	}
	dispatcher := notification.NewDispatcher(customerRepo, providerRepo, sender, d.Logger)

	// Services and handlers
	customerSvc := customer.NewService(customerRepo)
	providerSvc := provider.NewService(providerRepo, table, mail, d.Logger)
	adsSvc := ads.NewService(adsRepo)
	orderSvc := order.NewService(orderRepo, d.Logger)
	reviewSvc := review.NewService(orderRepo, customerRepo, providerRepo, d.Logger)
	dashboardSvc := dashboard.NewService(customerRepo, providerRepo, table, d.Cache, d.Cfg.StatsCacheTTL, d.Logger)
	settingsSvc := settings.NewService(settingsRepo, d.Logger)

	// Health
	RegisterHealthRoutes(app, d)

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

	RegisterCustomerRoutes(api, customer.NewHandler(customerSvc))
	RegisterProviderRoutes(api, provider.NewHandler(providerSvc), providerSvc, dispatcher, d.Logger)
	RegisterAdRoutes(api, ads.NewHandler(adsSvc))
	RegisterReviewRoutes(api, review.NewHandler(reviewSvc))
	RegisterOrderRoutes(api, order.NewHandler(orderSvc))
	RegisterDashboardRoutes(api, dashboard.NewHandler(dashboardSvc))
	RegisterSettingsRoutes(api, settings.NewHandler(settingsSvc))

	if d.DB != nil && d.Cache != nil {
		healthSvc := dbhealth.NewService(
			dbhealth.NewMongoStore(d.DB),
			dbhealth.NewRedisCache(d.Cache),
			[]string{
				customer.CollectionName,
				provider.CollectionName,
				ads.CollectionName,
				order.OrdersCollection,
				order.CompletedCollection,
				settings.CollectionName,
			},
			d.Logger,
		)
		RegisterDBHealthRoutes(api, dbhealth.NewHandler(healthSvc))
	}

	return nil
}
