package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL settings for the generation audit log.
// The audit log is disabled when Host is empty.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database was configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig holds object storage settings for templates kept in MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// TemplateConfig selects where form templates are read from.
type TemplateConfig struct {
	// Source is "local" or "minio".
	Source string
	Dir    string
}

// HTTPConfig holds the cross-cutting HTTP settings.
type HTTPConfig struct {
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
	BodyLimit       int
}

// FormConfig holds the values stamped on every form.
type FormConfig struct {
	PlaceName string
	Timezone  string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	Environment string
	APIURL      string
	LogLevel    string
	HTTP        HTTPConfig
	Form        FormConfig
	Templates   TemplateConfig
	Database    DatabaseConfig
	MinIO       MinIOConfig
}

// IsDevelopment reports whether the service runs in development mode.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// Location resolves the form time zone. When it cannot be loaded the result is
// UTC together with the load error, so callers can report the fallback.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Form.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("load time zone %q: %w", c.Form.Timezone, err)
	}
	return loc, nil
}

var defaultOrigins = []string{
	"https://www.regpropiedadpvm.gob.ec",
	"https://regpropiedadpvm.gob.ec",
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	env := getEnv("APP_ENV", getEnv("NODE_ENV", "production"))
	apiURL := getEnv("REACT_APP_API_URL", "")

	origins := getEnvList("CORS_ALLOWED_ORIGINS", defaultOrigins)
	if apiURL != "" {
		origins = append(origins, apiURL)
	}
	if env == "development" {
		origins = append(origins, "http://localhost:3000")
	}

	return &AppConfig{
		Port:        getEnv("PORT", "10000"),
		Environment: env,
		APIURL:      apiURL,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			AllowedOrigins:  origins,
			RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
			RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SEC", 900)) * time.Second,
			BodyLimit:       getEnvInt("BODY_LIMIT_BYTES", 5*1024*1024),
		},
		Form: FormConfig{
			PlaceName: getEnv("FORM_PLACE_NAME", "Pedro Vicente Maldonado"),
			Timezone:  getEnv("APP_TIMEZONE", "America/Guayaquil"),
		},
		Templates: TemplateConfig{
			Source: getEnv("TEMPLATE_SOURCE", "local"),
			Dir:    getEnv("TEMPLATE_DIR", "pdfs"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			Prefix:    getEnv("MINIO_PREFIX", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping blank entries.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return append([]string(nil), def...)
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
