package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, 10*time.Second, cfg.ServerShutdownTimeout)
				assert.Equal(t, "postgres", cfg.DBDriver)
				assert.Equal(t, 25, cfg.DBMaxOpenConnections)
				assert.Equal(t, 5, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.True(t, cfg.EncryptionEnabled)
				assert.Empty(t, cfg.APIKeyHash)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 10.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 20, cfg.RateLimitBurst)
				assert.False(t, cfg.CORSEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "creditcards", cfg.MetricsNamespace)
				assert.Equal(t, 8081, cfg.MetricsPort)
				assert.True(t, cfg.OutboxEnabled)
				assert.Equal(t, 5*time.Second, cfg.OutboxInterval)
				assert.Equal(t, 100, cfg.OutboxBatchSize)
				assert.Equal(t, 3, cfg.OutboxMaxRetries)
				assert.Equal(t, time.Minute, cfg.OutboxRetryInterval)
			},
		},
		{
			name: "load custom database configuration",
			envVars: map[string]string{
				"DB_DRIVER":               "mysql",
				"DB_CONNECTION_STRING":    "user:password@tcp(localhost:3306)/testdb?parseTime=true",
				"DB_MAX_OPEN_CONNECTIONS": "50",
				"DB_MAX_IDLE_CONNECTIONS": "10",
				"DB_CONN_MAX_LIFETIME":    "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.DBDriver)
				assert.Equal(t, "user:password@tcp(localhost:3306)/testdb?parseTime=true", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10, cfg.DBMaxIdleConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
			},
		},
		{
			name: "load encryption configuration",
			envVars: map[string]string{
				"ENCRYPTION_ENABLED":  "false",
				"ENCRYPTION_KEY":      "enc-secret",
				"ENCRYPTION_HMAC_KEY": "hmac-secret",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.EncryptionEnabled)
				assert.Equal(t, "enc-secret", cfg.EncryptionKey)
				assert.Equal(t, "hmac-secret", cfg.EncryptionHMACKey)
			},
		},
		{
			name: "load outbox configuration",
			envVars: map[string]string{
				"OUTBOX_ENABLED":                "false",
				"OUTBOX_INTERVAL_SECONDS":       "30",
				"OUTBOX_BATCH_SIZE":             "5",
				"OUTBOX_MAX_RETRIES":            "7",
				"OUTBOX_RETRY_INTERVAL_SECONDS": "2",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.OutboxEnabled)
				assert.Equal(t, 30*time.Second, cfg.OutboxInterval)
				assert.Equal(t, 5, cfg.OutboxBatchSize)
				assert.Equal(t, 7, cfg.OutboxMaxRetries)
				assert.Equal(t, 2*time.Second, cfg.OutboxRetryInterval)
			},
		},
		{
			name: "load api key and rate limit configuration",
			envVars: map[string]string{
				"API_KEY_HASH":                "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
				"RATE_LIMIT_ENABLED":          "false",
				"RATE_LIMIT_REQUESTS_PER_SEC": "2.5",
				"RATE_LIMIT_BURST":            "3",
				"CORS_ENABLED":                "true",
				"CORS_ALLOW_ORIGINS":          "https://example.com",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA", cfg.APIKeyHash)
				assert.False(t, cfg.RateLimitEnabled)
				assert.Equal(t, 2.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 3, cfg.RateLimitBurst)
				assert.True(t, cfg.CORSEnabled)
				assert.Equal(t, "https://example.com", cfg.CORSAllowOrigins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.DBDriver = "sqlite" }, wantErr: "DBDriver"},
		{name: "invalid port", mutate: func(c *Config) { c.ServerPort = 70000 }, wantErr: "ServerPort"},
		{name: "invalid log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: "LogLevel"},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimitBurst = 0 }, wantErr: "RateLimitBurst"},
		{
			name:   "zero burst ignored when rate limit disabled",
			mutate: func(c *Config) { c.RateLimitEnabled = false; c.RateLimitBurst = 0 },
		},
		{name: "zero batch size", mutate: func(c *Config) { c.OutboxBatchSize = 0 }, wantErr: "OutboxBatchSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_GetGinMode(t *testing.T) {
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "info"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: ""}).GetGinMode())
}
