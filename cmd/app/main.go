package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"logistics/cmd"
	httpserver "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/routerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectToDB(configs)
	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddress})

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		redisClient,
		logger,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()
	defer app.ConfirmationManager().CloseAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		LogisticsAPIBaseURL:   goDotEnvVariable("LOGISTICS_API_BASE_URL"),
		LogisticsProbeAddress: goDotEnvVariable("LOGISTICS_PROBE_ADDRESS"),
		RedisAddress:          goDotEnvVariable("REDIS_ADDRESS"),
		SessionSecret:         goDotEnvVariable("SESSION_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectToDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(&routerepo.RouteDTO{}, &parcelrepo.ParcelDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.SessionProvider(),
		app.CreateReserveRouteCommandHandler(),
		app.CreateReleaseRouteCommandHandler(),
		app.CreateStartRouteCommandHandler(),
		app.CreateGetCourierRoutesQueryHandler(),
		app.CreateGetRoutesByStatusQueryHandler(),
		app.CreateGetRouteQueryHandler(),
		app.CreateGetRouteParcelQueryHandler(),
		app.ConfirmationManager(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
