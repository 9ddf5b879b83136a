package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"packtrack/cmd"
	"packtrack/internal/adapters/out/postgres/clientrepo"
	"packtrack/internal/adapters/out/postgres/orderrepo"
	"packtrack/internal/adapters/out/postgres/statusrepo"
	"packtrack/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	db := mustOpenDB(configs, logger)
	mustMigrate(db, logger)

	notifier := mustConnectNotifier(configs, logger)

	app := cmd.NewCompositionRoot(configs, db, notifier, logger)

	if err := app.SeedAdminClient(context.Background()); err != nil {
		logger.Error("admin client seeding failed", "error", err)
		os.Exit(1)
	}

	jobManager := app.NewJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOr("DB_SSLMODE", "disable"),
		AmqpURL:        os.Getenv("AMQP_URL"),
		AuthSecret:     os.Getenv("AUTH_SECRET"),
		AuthTokenTTL:   envDuration("AUTH_TOKEN_TTL"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		OrderRetention: envDuration("ORDER_RETENTION"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}

func mustOpenDB(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the repositories rely on for collision and conflict handling.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	return db
}

func mustMigrate(db *gorm.DB, logger *slog.Logger) {
	err := db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&orderrepo.OrderDTO{},
		&statusrepo.StatusDTO{},
	)
	if err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	if err = statusrepo.Seed(context.Background(), db); err != nil {
		logger.Error("status registry seeding failed", "error", err)
		os.Exit(1)
	}
}

func mustConnectNotifier(configs cmd.Config, logger *slog.Logger) *rabbitmq.OrderConfirmationPublisher {
	conn, err := amqp091.Dial(configs.AmqpURL)
	if err != nil {
		logger.Error("failed to connect to message broker", "error", err)
		os.Exit(1)
	}

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open broker channel", "error", err)
		os.Exit(1)
	}

	publisher, err := rabbitmq.NewOrderConfirmationPublisher(ch)
	if err != nil {
		logger.Error("failed to declare confirmation exchange", "error", err)
		os.Exit(1)
	}

	return publisher
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true

	app.NewHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
