package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         string
	DBType       string
	DBConn       string
	LogLevel     string
	JWTSecret    string
	HMACSecret   string
	OpenAIKey    string
	OpenAIURL    string
	BackupDir    string
	BackupSpec   string
	SummarySpec  string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig loads configuration from environment variables,
// after merging in an optional .env file.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBType:       getEnv("DB_TYPE", "sqlite"),
		DBConn:       getEnv("DB_CONN", "data/gym.db"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		HMACSecret:   getEnv("HMAC_SECRET", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),
		OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIURL:    getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		BackupDir:    getEnv("BACKUP_DIR", "backups"),
		BackupSpec:   getEnv("BACKUP_CRON", "0 3 * * *"),
		SummarySpec:  getEnv("SUMMARY_CRON", "0 9 * * 1"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "noreply@gym-service.local"),
	}

	if cfg.DBType != "sqlite" && cfg.DBType != "postgres" {
		return nil, fmt.Errorf("unsupported DB_TYPE: %s", cfg.DBType)
	}
	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.HMACSecret == "" {
		return nil, fmt.Errorf("HMAC_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
