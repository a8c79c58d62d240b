package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	DBDriver string
	DBURL    string
	Location *time.Location

	AIProvider           string
	GeminiApiKey         string
	GeminiBaseURL        string
	GeminiChatModel      string
	GeminiTranslateModel string
	GeminiImageModel     string
	OllamaBaseURL        string
	OllamaModel          string

	AdminPIN        string
	AdminSessionTTL time.Duration

	DayWatchInterval    time.Duration
	FirebaseCredentials string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "release"),
		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBURL:    getEnv("DATABASE_URL", "household.db"),
		Location: getLocation("TIMEZONE"),

		AIProvider:           strings.ToLower(getEnv("AI_PROVIDER", "auto")),
		GeminiApiKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:        getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiChatModel:      getEnv("GEMINI_CHAT_MODEL", "gemini-2.5-pro"),
		GeminiTranslateModel: getEnv("GEMINI_TRANSLATE_MODEL", "gemini-2.5-flash"),
		GeminiImageModel:     getEnv("GEMINI_IMAGE_MODEL", "gemini-3-pro-image-preview"),
		OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:          getEnv("OLLAMA_MODEL", "llama3"),

		AdminPIN:        getEnv("ADMIN_PIN", "012295"),
		AdminSessionTTL: getDuration("ADMIN_SESSION_TTL", 12*time.Hour),

		DayWatchInterval:    getDuration("DAY_WATCH_INTERVAL", time.Minute),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
	}
}

// Validate reports settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.AIProvider {
	case "gemini", "ollama", "auto":
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AIProvider)
	}
	if len(c.AdminPIN) != 6 {
		return fmt.Errorf("ADMIN_PIN must be 6 digits")
	}
	for _, r := range c.AdminPIN {
		if r < '0' || r > '9' {
			return fmt.Errorf("ADMIN_PIN must be 6 digits")
		}
	}
	if c.DayWatchInterval <= 0 {
		return fmt.Errorf("DAY_WATCH_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getLocation(key string) *time.Location {
	name := os.Getenv(key)
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
