package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	logrus "github.com/sirupsen/logrus"
)

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ConsoleConfig is the configuration of the admin console.
type ConsoleConfig struct {
	Addr       string
	APIBaseURL string

	// Console login. An empty AdminPasswordHash disables authentication.
	AdminUser         string
	AdminPasswordHash string
	JWTSecret         string
	SessionTTL        time.Duration

	Log LogConfig
}

// AuthEnabled reports whether the console requires a login.
func (c ConsoleConfig) AuthEnabled() bool {
	return c.AdminPasswordHash != ""
}

// APIConfig is the configuration of the reference backend.
type APIConfig struct {
	Addr             string
	SalaryRate       float64
	ContributionRate float64
	PlatePrefix      string
	CORSOrigins      []string

	DB  DatabaseConfig
	Log LogConfig
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

// loadDotEnv loads .env (if present) without overriding variables already set.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found – relying on env vars")
	}
}

func loadLog(defaultFile string) LogConfig {
	return LogConfig{
		File:       getEnv("LOG_FILE", defaultFile),
		Level:      getEnv("LOG_LEVEL", "debug"),
		MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 7),
		MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
	}
}

// LoadConsole reads the console configuration from the environment.
func LoadConsole() ConsoleConfig {
	loadDotEnv()
	return ConsoleConfig{
		Addr:              getEnv("CONSOLE_ADDR", ":4200"),
		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:8000"),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", "supersecret"),
		SessionTTL:        getEnvDuration("SESSION_TTL", 12*time.Hour),
		Log:               loadLog("./logs/console.log"),
	}
}

// LoadAPI reads the reference backend configuration from the environment.
func LoadAPI() APIConfig {
	loadDotEnv()
	return APIConfig{
		Addr:             getEnv("API_ADDR", ":8000"),
		SalaryRate:       getEnvFloat("SALARY_RATE", 0.29),
		ContributionRate: getEnvFloat("CONTRIBUTION_RATE", 0.15),
		PlatePrefix:      getEnv("PLATE_PREFIX", "STX"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "")),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "flota"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},
		Log: loadLog("./logs/fleetapi.log"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logrus.WithError(err).Warnf("invalid %s, using %d", key, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		logrus.WithError(err).Warnf("invalid %s, using %v", key, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		logrus.WithError(err).Warnf("invalid %s, using %s", key, defaultValue)
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
