package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	handlers "github.com/wimtiaz/user_registration_service/internal/adapter/handler/http"
	"github.com/wimtiaz/user_registration_service/internal/adapter/hasher"
	"github.com/wimtiaz/user_registration_service/internal/adapter/logger"
	"github.com/wimtiaz/user_registration_service/internal/adapter/postgres/repository"
	"github.com/wimtiaz/user_registration_service/internal/adapter/prometheus"
	redis "github.com/wimtiaz/user_registration_service/internal/adapter/redis"
	"github.com/wimtiaz/user_registration_service/internal/config"
	"github.com/wimtiaz/user_registration_service/internal/core/services"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	redisClient "github.com/redis/go-redis/v9"
)

// @title User Registration API
// @version 1.0
// @description Registers users and returns registered records by id

// @host localhost:8080
// @BasePath /
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Set redis
	redisConn := redisClient.NewClient(&redisClient.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := redisConn.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	// Migrate DB
	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Cache
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Core
	userRepo := repository.NewUserRepository(db)
	passwordHasher := hasher.NewBcryptHasher()
	userService := services.NewUserService(userRepo, passwordHasher, loggerAdapter, cacheAdapter)
	submissionValidator := services.NewSubmissionValidator()
	mapper := services.NewMapper(cfg.Format.DateInput)

	userHandler := handlers.NewUserHandler(
		userService,
		submissionValidator,
		mapper,
		loggerAdapter,
		metrics,
		cfg.Format.TimestampOutput,
	)

	// Init router
	router, err := handlers.NewRouter(
		cfg.HTTP,
		cfg.Format,
		loggerAdapter,
		userHandler,
	)
	if err != nil {
		log.Fatal("Error initializing router:", err)
	}

	go func() {
		listenAddr := fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port)
		loggerAdapter.Info("Starting the HTTP server", map[string]interface{}{
			"addr": listenAddr,
		})

		if err := router.Serve(listenAddr); err != nil {
			log.Fatal("Error starting the HTTP server:", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", nil)

	<-stop

	loggerAdapter.Info("Application stopped", nil)
}
