package config

import (
	"os"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App    *App
		DB     *DB
		HTTP   *HTTP
		Redis  *Redis
		Format *Format
	}

	App struct {
		Name string
		Env  string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
	}

	// Format carries the injected date layouts: DateInput parses submitted
	// dates of birth, TimestampOutput renders envelope timestamps.
	Format struct {
		DateInput       string
		TimestampOutput string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	db := &DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	format := &Format{
		DateInput:       getEnv("DATE_INPUT_FORMAT", "02-01-2006"),
		TimestampOutput: getEnv("TIMESTAMP_FORMAT", "2006-01-02 15:04:05"),
	}

	return &Container{
		App:    app,
		DB:     db,
		HTTP:   http,
		Redis:  redis,
		Format: format,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
