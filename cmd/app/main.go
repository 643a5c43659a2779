package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"foodrun/cmd"
	"foodrun/internal/adapters/out/gormstore"
	"foodrun/internal/adapters/out/jsonstore"
	"foodrun/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	uowFactory := createStorage(configs, logger)

	app := cmd.NewCompositionRoot(configs, uowFactory, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A .env file is optional; explicit environment variables win either way.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		StorageDriver: envOrDefault("STORAGE_DRIVER", "json"),
		DataDir:       envOrDefault("DATA_DIR", "data"),
		SQLitePath:    envOrDefault("SQLITE_PATH", "data/foodrun.db"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        envOrDefault("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     envOrDefault("DB_SSLMODE", "disable"),
		SummaryCron:   envOrDefault("SUMMARY_CRON", "@every 1m"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func createStorage(configs cmd.Config, logger *slog.Logger) ports.UnitOfWorkFactory {
	switch configs.StorageDriver {
	case "json":
		if err := os.MkdirAll(configs.DataDir, 0o755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		store, err := jsonstore.NewStore(configs.DataDir, logger)
		if err != nil {
			log.Fatalf("Failed to open JSON store: %v", err)
		}
		return jsonstore.NewUnitOfWorkFactory(store)

	case "sqlite":
		db, err := gormstore.OpenSQLite(configs.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite database: %v", err)
		}
		return gormstore.NewGormUnitOfWorkFactory(db)

	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			configs.DBHost, configs.DBPort, configs.DBUser,
			configs.DBPassword, configs.DBName, configs.DBSslMode)
		db, err := gormstore.OpenPostgres(dsn)
		if err != nil {
			log.Fatalf("Failed to open Postgres database: %v", err)
		}
		return gormstore.NewGormUnitOfWorkFactory(db)

	default:
		log.Fatalf("Unknown storage driver %q", configs.StorageDriver)
		return nil
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger(), middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
