package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Upload    UploadConfig
	Webhook   WebhookConfig
	Embedding EmbeddingConfig
	Admin     AdminConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
}

type StorageConfig struct {
	SupabaseURL string
	ServiceKey  string
	Bucket      string
}

type UploadConfig struct {
	MaxBytes          int
	AllowedExtensions []string
}

type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

func (w WebhookConfig) Enabled() bool { return w.URL != "" }

type EmbeddingConfig struct {
	GeminiAPIKey string
	Model        string
}

func (e EmbeddingConfig) Enabled() bool { return e.GeminiAPIKey != "" }

type AdminConfig struct {
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Enabled reports whether the admin endpoints require authentication.
// Both the password hash and the signing secret must be configured.
func (a AdminConfig) Enabled() bool { return a.PasswordHash != "" && a.JWTSecret != "" }

const defaultMaxUploadBytes = 8 << 20 // 8 MiB

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	sslMode := opt("DB_SSL_MODE")
	if sslMode == "" {
		// Supabase rejects plaintext connections.
		sslMode = "require"
	}
	cfg.Database = DatabaseConfig{
		DBHost:              req("DB_HOST"),
		DBPort:              req("DB_PORT"),
		DBName:              req("DB_NAME"),
		DBUser:              req("DB_USER"),
		DBPassword:          req("DB_PASSWORD"),
		DBSSLMode:           sslMode,
		ConnectTimeout:      durationSeconds(opt("DB_CONNECT_TIMEOUT_SECONDS"), 10*time.Second),
		PoolMaxConns:        int32(intOrDefault(opt("DB_POOL_MAX_CONNS"), 10)),
		PoolMinConns:        int32(intOrDefault(opt("DB_POOL_MIN_CONNS"), 2)),
		PoolMaxConnLifetime: durationSeconds(opt("DB_POOL_MAX_CONN_LIFETIME_SECONDS"), time.Hour),
	}

	cfg.Storage = StorageConfig{
		SupabaseURL: strings.TrimRight(req("SUPABASE_URL"), "/"),
		ServiceKey:  req("SUPABASE_SERVICE_KEY"),
		Bucket:      req("SUPABASE_BUCKET"),
	}

	cfg.Upload = UploadConfig{
		MaxBytes:          intOrDefault(opt("MAX_UPLOAD_BYTES"), defaultMaxUploadBytes),
		AllowedExtensions: splitExtensions(opt("ALLOWED_RESUME_EXTENSIONS")),
	}

	cfg.Webhook = WebhookConfig{
		URL:     opt("N8N_WEBHOOK_URL"),
		Timeout: durationSeconds(opt("N8N_TIMEOUT_SECONDS"), 10*time.Second),
	}

	model := opt("GEMINI_EMBEDDING_MODEL")
	if model == "" {
		model = "text-embedding-004"
	}
	cfg.Embedding = EmbeddingConfig{
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		Model:        model,
	}

	cfg.Admin = AdminConfig{
		PasswordHash: opt("ADMIN_PASSWORD_HASH"),
		JWTSecret:    opt("ADMIN_JWT_SECRET"),
		TokenTTL:     durationMinutes(opt("ADMIN_TOKEN_TTL_MINUTES"), time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func intOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func durationSeconds(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func durationMinutes(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Minute
}

func splitExtensions(raw string) []string {
	if raw == "" {
		return []string{"pdf", "doc", "docx"}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(p, ".")))
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"pdf", "doc", "docx"}
	}
	return out
}
