package config

import (
	"errors"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "job-khojo")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "jobkhojo")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co/")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	t.Setenv("SUPABASE_BUCKET", "resumes")
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SUPABASE_BUCKET", "")
	t.Setenv("DB_HOST", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected missing-env error, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Storage.SupabaseURL != "https://example.supabase.co" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Storage.SupabaseURL)
	}
	if cfg.Database.DBSSLMode != "require" {
		t.Fatalf("expected sslmode require, got %q", cfg.Database.DBSSLMode)
	}
	if cfg.Upload.MaxBytes != 8<<20 {
		t.Fatalf("expected 8 MiB default, got %d", cfg.Upload.MaxBytes)
	}
	if got := cfg.Upload.AllowedExtensions; len(got) != 3 || got[0] != "pdf" || got[1] != "doc" || got[2] != "docx" {
		t.Fatalf("unexpected default extensions: %v", got)
	}
	if cfg.Webhook.Enabled() {
		t.Fatalf("webhook should be disabled without N8N_WEBHOOK_URL")
	}
	if cfg.Webhook.Timeout != 10*time.Second {
		t.Fatalf("expected 10s webhook timeout, got %s", cfg.Webhook.Timeout)
	}
	if cfg.Embedding.Enabled() {
		t.Fatalf("embedding should be disabled without GEMINI_API_KEY")
	}
	if cfg.Admin.Enabled() {
		t.Fatalf("admin auth should be disabled without hash+secret")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_RESUME_EXTENSIONS", ".PDF, docx")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.example/webhook/jobsearch")
	t.Setenv("N8N_TIMEOUT_SECONDS", "3")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("ADMIN_JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got := cfg.Upload.AllowedExtensions; len(got) != 2 || got[0] != "pdf" || got[1] != "docx" {
		t.Fatalf("unexpected extensions: %v", got)
	}
	if cfg.Upload.MaxBytes != 1<<20 {
		t.Fatalf("expected 1 MiB, got %d", cfg.Upload.MaxBytes)
	}
	if !cfg.Webhook.Enabled() || cfg.Webhook.Timeout != 3*time.Second {
		t.Fatalf("unexpected webhook config: %+v", cfg.Webhook)
	}
	if !cfg.Admin.Enabled() {
		t.Fatalf("admin auth should be enabled")
	}
	if cfg.Admin.TokenTTL != time.Hour {
		t.Fatalf("expected default token ttl, got %s", cfg.Admin.TokenTTL)
	}
}
