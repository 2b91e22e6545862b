package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEmailEnv blanks credential variables so host environment leakage
// cannot flip the expectations below.
func clearEmailEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"EMAIL_SENDER", "EMAIL_PASSWORD", "EMAIL_RECIPIENT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEmailEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Email.SMTPHost != "smtp.gmail.com" {
		t.Errorf("expected default smtp host, got %q", cfg.Email.SMTPHost)
	}
	if cfg.Email.SMTPPort != 465 {
		t.Errorf("expected default smtp port 465, got %d", cfg.Email.SMTPPort)
	}
	if cfg.Report.OutputPath != "market_report.pdf" {
		t.Errorf("expected default output path, got %q", cfg.Report.OutputPath)
	}
	if cfg.HasCredentials() {
		t.Error("expected no credentials by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EMAIL_SENDER", "bot@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-password")
	t.Setenv("EMAIL_RECIPIENT", "me@example.com")
	t.Setenv("SQLITE_PATH", "data/runs.db")
	t.Setenv("CRON_SCHEDULE", "0 0 23 * * *")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.HasCredentials() {
		t.Error("expected credentials from environment")
	}
	if cfg.Email.Recipient != "me@example.com" {
		t.Errorf("unexpected recipient %q", cfg.Email.Recipient)
	}
	if cfg.Database.SQLitePath != "data/runs.db" {
		t.Errorf("unexpected sqlite path %q", cfg.Database.SQLitePath)
	}
	if cfg.Schedule.Cron != "0 0 23 * * *" {
		t.Errorf("unexpected cron %q", cfg.Schedule.Cron)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
email:
  sender: file@example.com
  recipient: file-recipient@example.com
  smtp_port: 587
report:
  output_path: out/report.pdf
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	clearEmailEnv(t)
	t.Setenv("EMAIL_SENDER", "env@example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Email.Sender != "env@example.com" {
		t.Errorf("env must override file, got %q", cfg.Email.Sender)
	}
	if cfg.Email.Recipient != "file-recipient@example.com" {
		t.Errorf("file value lost, got %q", cfg.Email.Recipient)
	}
	if cfg.Email.SMTPPort != 587 {
		t.Errorf("file smtp port lost, got %d", cfg.Email.SMTPPort)
	}
	if cfg.Report.OutputPath != "out/report.pdf" {
		t.Errorf("file output path lost, got %q", cfg.Report.OutputPath)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Email.SMTPHost = "smtp.gmail.com"
	cfg.Email.SMTPPort = 465
	cfg.Report.OutputPath = "report.pdf"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	cfg.Email.SMTPPort = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero smtp port")
	}

	cfg.Email.SMTPPort = 465
	cfg.Report.OutputPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty output path")
	}
}
