package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
// All settings are loaded from the .env file, falling back to process
// environment variables.
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	OpenAI  OpenAIConfig
	Sleeper SleeperConfig
	ESPN    ESPNConfig
	Yahoo   YahooConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	Password   string
	SessionTTL time.Duration
}

type OpenAIConfig struct {
	APIKey       string
	OrgID        string
	ProjectID    string
	DefaultModel string
	MaxTokens    int
}

type SleeperConfig struct {
	BaseURL string
}

type ESPNConfig struct {
	BaseURL string
	SWID    string
	EspnS2  string
	Year    int
}

type YahooConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	BaseURL      string
}

type LoggingConfig struct {
	Level         string
	Format        string
	FileEnabled   bool
	FilePath      string
	RotationSize  int // MB
	RetentionDays int
}

// Load loads configuration from the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Keep going without a .env file; env vars may still be set.
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8087"),
			Mode:        getEnv("GIN_MODE", "debug"),
			ReadTimeout: 30 * time.Second,
			// Recap streams can run for minutes on slow models.
			WriteTimeout: 5 * time.Minute,
		},
		Auth: AuthConfig{
			Password:   getEnv("APP_PASSWORD", ""),
			SessionTTL: 24 * time.Hour,
		},
		OpenAI: OpenAIConfig{
			APIKey:       getEnv("OPENAI_COMMISH_API_KEY", ""),
			OrgID:        getEnv("OPENAI_ORG_ID", ""),
			ProjectID:    getEnv("OPENAI_API_PROJECT_ID", ""),
			DefaultModel: getEnv("OPENAI_DEFAULT_MODEL", "gpt-4o-mini"),
			MaxTokens:    getEnvInt("OPENAI_MAX_TOKENS", 15000),
		},
		Sleeper: SleeperConfig{
			BaseURL: getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1"),
		},
		ESPN: ESPNConfig{
			BaseURL: getEnv("ESPN_BASE_URL", "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"),
			SWID:    getEnv("ESPN_SWID", ""),
			EspnS2:  getEnv("ESPN_S2", ""),
			Year:    getEnvInt("SEASON_YEAR", 2025),
		},
		Yahoo: YahooConfig{
			ClientID:     getEnv("YAHOO_CLIENT_ID", ""),
			ClientSecret: getEnv("YAHOO_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("YAHOO_REDIRECT_URL", "oob"),
			BaseURL:      getEnv("YAHOO_BASE_URL", "https://fantasysports.yahooapis.com/fantasy/v2"),
		},
		Logging: LoggingConfig{
			Level:         getEnv("LOG_LEVEL", "debug"),
			Format:        getEnv("LOG_FORMAT", "console"),
			FileEnabled:   getEnvBool("LOG_FILE_ENABLED", false),
			FilePath:      getEnv("LOG_FILE_PATH", "logs"),
			RotationSize:  getEnvInt("LOG_ROTATION_SIZE_MB", 50),
			RetentionDays: getEnvInt("LOG_RETENTION_DAYS", 14),
		},
	}

	return cfg, nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
