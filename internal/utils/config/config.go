package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/himanshu-suthar-simform/skillswap/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Redis       RedisConfig
	Auth        AuthConfig
	Notifier    NotifierConfig
	Cleanup     CleanupConfig
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

type RedisConfig struct {
	Addr string
	Pass string
}

type AuthConfig struct {
	JWTSecret string
}

type NotifierConfig struct {
	WebhookURL string
}

type CleanupConfig struct {
	// Cron expression for the inactive catalog cleanup job.
	Schedule string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			Port:           envVarOrDefault("API_PORT", "8080"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Addr: os.Getenv("REDIS_ADDR"),
			Pass: os.Getenv("REDIS_PASS"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Notifier: NotifierConfig{
			WebhookURL: os.Getenv("NOTIFICATION_WEBHOOK_URL"),
		},
		Cleanup: CleanupConfig{
			Schedule: envVarOrDefault("CLEANUP_SCHEDULE", "@daily"),
		},
	}
}

func envVarOrDefault(envName, fallback string) string {
	if value := os.Getenv(envName); value != "" {
		return value
	}
	return fallback
}
