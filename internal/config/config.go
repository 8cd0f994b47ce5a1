// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Minio struct {
		Endpoint  string `json:"endpoint"`
		AccessKey string `json:"access_key"`
		SecretKey string `json:"secret_key"`
		Bucket    string `json:"bucket"`
		Region    string `json:"region"`
		Secure    bool   `json:"secure"`
	} `json:"minio"`
	Redis struct {
		Addr         string        `json:"addr"`
		Password     string        `json:"password"`
		DB           int           `json:"db"`
		DashboardTTL time.Duration `json:"dashboard_ttl"`
	} `json:"redis"`
	Upload struct {
		MaxBytes        int64 `json:"max_bytes"`
		MaxExtractRunes int   `json:"max_extract_runes"`
	} `json:"upload"`
	CORSOrigins []string `json:"cors_origins"`
	Debug       bool     `json:"debug"`
}

// Load reads the configuration from the environment. Values in a .env file
// in the working directory are applied first without overriding variables
// that are already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "orgadmin")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = getDuration("JWT_EXPIRY", time.Hour*24)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = getDuration("SERVER_READ_TIMEOUT", time.Second*15)
	cfg.Server.WriteTimeout = getDuration("SERVER_WRITE_TIMEOUT", time.Second*60)

	// Object storage
	cfg.Minio.Endpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	cfg.Minio.AccessKey = getEnv("MINIO_ACCESS_KEY", "")
	cfg.Minio.SecretKey = getEnv("MINIO_SECRET_KEY", "")
	cfg.Minio.Bucket = getEnv("MINIO_BUCKET", "national-documents")
	cfg.Minio.Region = getEnv("MINIO_REGION", "")
	cfg.Minio.Secure = getBool("MINIO_SECURE", false)

	// Dashboard cache; an empty address disables it
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)
	cfg.Redis.DashboardTTL = getDuration("REDIS_DASHBOARD_TTL", time.Minute*5)

	// Uploads
	cfg.Upload.MaxBytes = int64(getInt("UPLOAD_MAX_BYTES", 20<<20))
	cfg.Upload.MaxExtractRunes = getInt("UPLOAD_MAX_EXTRACT_RUNES", 1<<20)

	cfg.CORSOrigins = getList("CORS_ORIGINS", nil)
	cfg.Debug = getBool("APP_DEBUG", false)

	return cfg
}

// DSN is the Postgres connection string for the database section.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
