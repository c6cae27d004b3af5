package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const ServiceName = "maverik_backend"

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Rag       RagConfig
	Mail      MailConfig
	Auth      AuthConfig
	Keepalive KeepaliveConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port                  string
	Environment           string
	Version               string
	Storage               string // "postgres" or "memory"
	LogDir                string
	CorsAllowedOrigins    string
	NatsURL               string
	FrontendURL           string
	DebugEndpointsEnabled bool
}

type DatabaseConfig struct {
	Connection string // full DSN, takes precedence over the discrete fields
	Host       string
	Port       int
	Name       string
	Schema     string
	Username   string
	Password   string
	SSLMode    string
}

type RagConfig struct {
	BaseURL                  string
	PortfolioOptimizationURL string
	Timeout                  time.Duration
}

type MailConfig struct {
	Transport     string // "api" or "smtp"
	APIURL        string
	APIKey        string
	SenderName    string
	SenderAddress string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	WelcomeTopic  string
}

type AuthConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

type KeepaliveConfig struct {
	URLs     []string
	Schedule string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production" || c.App.Environment == "prod"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	env := getEnv("APP_ENV", getEnv("GO_ENV", "development"))
	isProd := env == "production" || env == "prod"

	return &Config{
		App: AppConfig{
			Port:                  getEnv("APP_PORT", "8000"),
			Environment:           env,
			Version:               getEnv("APP_VERSION", "1.0.0"),
			Storage:               getEnv("APP_STORAGE", "postgres"),
			LogDir:                getEnv("LOG_DIR", "logs"),
			CorsAllowedOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:               getEnv("NATS_URL", ""),
			FrontendURL:           getEnv("FRONTEND_URL", ""),
			DebugEndpointsEnabled: getEnvAsBool("DEBUG_ENDPOINTS_ENABLED", !isProd),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvAsInt("DB_PORT", 5432),
			Name:       getEnv("DB_NAME", "maverik"),
			Schema:     getEnv("DB_SCHEMA", "public"),
			Username:   getEnv("DB_USERNAME", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
		},
		Rag: RagConfig{
			BaseURL:                  strings.TrimRight(getEnv("RAG_SERVICE_URL", ""), "/"),
			PortfolioOptimizationURL: getEnv("PORTFOLIO_OPTIMIZATION_URL", ""),
			Timeout:                  time.Duration(getEnvAsInt("EXTERNAL_SERVICE_TIMEOUT", 60)) * time.Second,
		},
		Mail: MailConfig{
			Transport:     getEnv("MAIL_TRANSPORT", "api"),
			APIURL:        getEnv("SMTP_API_URL", ""),
			APIKey:        getEnv("SMTP_API_KEY", ""),
			SenderName:    getEnv("MAIL_SENDER_NAME", "Maverik"),
			SenderAddress: getEnv("MAIL_SENDER_ADDRESS", ""),
			SMTPHost:      getEnv("SMTP_HOST", ""),
			SMTPPort:      getEnvAsInt("SMTP_PORT", 587),
			SMTPUsername:  getEnv("SMTP_USERNAME", ""),
			SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
			WelcomeTopic:  getEnv("WELCOME_EMAIL_TOPIC", "WELCOME_EMAIL"),
		},
		Auth: AuthConfig{
			SecretKey: getEnv("SECRET_KEY", "change_this_in_production"),
			TokenTTL:  time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		},
		Keepalive: KeepaliveConfig{
			URLs:     getEnvAsList("KEEPALIVE_URLS"),
			Schedule: getEnv("KEEPALIVE_SCHEDULE", "@every 8m"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
