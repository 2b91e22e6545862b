package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Email struct {
		Sender    string `yaml:"sender"`
		Password  string `yaml:"password"`
		Recipient string `yaml:"recipient"`
		SMTPHost  string `yaml:"smtp_host"`
		SMTPPort  int    `yaml:"smtp_port"`
	} `yaml:"email"`
	Report struct {
		OutputPath string `yaml:"output_path"`
	} `yaml:"report"`
	Schedule struct {
		Cron string `yaml:"cron"` // empty = one-shot run
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty = noop recorder
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; env vars and defaults suffice.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("EMAIL_SENDER"); v != "" {
		cfg.Email.Sender = v
	}
	if v := os.Getenv("EMAIL_PASSWORD"); v != "" {
		cfg.Email.Password = v
	}
	if v := os.Getenv("EMAIL_RECIPIENT"); v != "" {
		cfg.Email.Recipient = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults
	if cfg.Email.SMTPHost == "" {
		cfg.Email.SMTPHost = "smtp.gmail.com"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 465
	}
	if cfg.Report.OutputPath == "" {
		cfg.Report.OutputPath = "market_report.pdf"
	}

	return cfg, nil
}

// Validate checks that all required fields are set. Email credentials are
// deliberately not required: their absence only skips the dispatch step.
func (c *Config) Validate() error {
	if c.Report.OutputPath == "" {
		return fmt.Errorf("report.output_path is required")
	}
	if c.Email.SMTPHost == "" {
		return fmt.Errorf("email.smtp_host is required")
	}
	if c.Email.SMTPPort <= 0 {
		return fmt.Errorf("email.smtp_port must be positive")
	}
	return nil
}

// HasCredentials reports whether all three email settings are present.
func (c *Config) HasCredentials() bool {
	return c.Email.Sender != "" && c.Email.Password != "" && c.Email.Recipient != ""
}
