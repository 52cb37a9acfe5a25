package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("APP_ENV", "development")
	t.Setenv("REACT_APP_API_URL", "https://api.example.ec")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("RATE_LIMIT_WINDOW_SEC", "60")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, time.Minute, cfg.HTTP.RateLimitWindow)
	assert.Equal(t, 100, cfg.HTTP.RateLimitMax)
	assert.Equal(t, 5*1024*1024, cfg.HTTP.BodyLimit)
	assert.Equal(t, []string{
		"https://www.regpropiedadpvm.gob.ec",
		"https://regpropiedadpvm.gob.ec",
		"https://api.example.ec",
		"http://localhost:3000",
	}, cfg.HTTP.AllowedOrigins)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "NODE_ENV", "DB_HOST", "TEMPLATE_SOURCE", "TEMPLATE_DIR", "APP_TIMEZONE", "FORM_PLACE_NAME", "REACT_APP_API_URL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, "local", cfg.Templates.Source)
	assert.Equal(t, "pdfs", cfg.Templates.Dir)
	assert.Equal(t, "Pedro Vicente Maldonado", cfg.Form.PlaceName)
	assert.Len(t, cfg.HTTP.AllowedOrigins, 2)
}

func TestLocation(t *testing.T) {
	t.Run("unknown zone falls back to UTC with an error", func(t *testing.T) {
		cfg := &AppConfig{Form: FormConfig{Timezone: "Not/AZone"}}
		loc, err := cfg.Location()
		assert.Equal(t, time.UTC, loc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Not/AZone")
	})

	t.Run("default zone loads", func(t *testing.T) {
		cfg := &AppConfig{Form: FormConfig{Timezone: "America/Guayaquil"}}
		loc, err := cfg.Location()
		require.NoError(t, err)
		assert.Equal(t, "America/Guayaquil", loc.String())
	})
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_LIST_VAR"
	t.Setenv(key, " a, ,b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvList(key, nil))

	t.Setenv(key, "")
	assert.Equal(t, []string{"x"}, getEnvList(key, []string{"x"}))
}
