package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testYAML = `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
database:
  driver: "postgres"
  sqlite:
    path: "data/test.db"
  postgres:
    host: "db.example.com"
    port: 5433
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "require"
  pool:
    max_idle_conns: 5
    max_open_conns: 50
    conn_max_lifetime: "30m"
log:
  level: "info"
  format: "json"
codes:
  subscriber_prefix: "INS"
  staff_prefix: "FCC"
report:
  enabled: true
  schedule: "0 6 * * *"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_FullYAML(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "release")
	}

	// Database
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "postgres")
	}
	if cfg.Database.Postgres.Host != "db.example.com" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "db.example.com")
	}
	if cfg.Database.Postgres.SSLMode != "require" {
		t.Errorf("Postgres.SSLMode = %q, want %q", cfg.Database.Postgres.SSLMode, "require")
	}

	// Pool
	if cfg.Database.Pool.MaxIdleConns != 5 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 5)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "30m" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q", cfg.Database.Pool.ConnMaxLifetime, "30m")
	}

	// Log
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}

	// Codes
	if cfg.Codes.SubscriberPrefix != "INS" {
		t.Errorf("Codes.SubscriberPrefix = %q, want %q", cfg.Codes.SubscriberPrefix, "INS")
	}
	if cfg.Codes.StaffPrefix != "FCC" {
		t.Errorf("Codes.StaffPrefix = %q, want %q", cfg.Codes.StaffPrefix, "FCC")
	}

	// Report
	if !cfg.Report.Enabled {
		t.Error("Report.Enabled = false, want true")
	}
	if cfg.Report.Schedule != "0 6 * * *" {
		t.Errorf("Report.Schedule = %q, want %q", cfg.Report.Schedule, "0 6 * * *")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__LOG__LEVEL", "error")
	// Fields with single underscores keep them intact.
	t.Setenv("APP__CODES__SUBSCRIBER_PREFIX", "mem")
	t.Setenv("APP__DATABASE__POOL__MAX_IDLE_CONNS", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Codes.SubscriberPrefix != "MEM" {
		t.Errorf("Codes.SubscriberPrefix = %q, want MEM (upper-cased)", cfg.Codes.SubscriberPrefix)
	}
	if cfg.Database.Pool.MaxIdleConns != 7 {
		t.Errorf("Pool.MaxIdleConns = %d, want 7", cfg.Database.Pool.MaxIdleConns)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080, Mode: "debug"},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{Path: "data/test.db"},
		},
		Log:    LogConfig{Level: "info", Format: "text"},
		Codes:  CodesConfig{SubscriberPrefix: "INS", StaffPrefix: "FCC"},
		Report: ReportConfig{Enabled: false},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad mode", func(c *Config) { c.Server.Mode = "production" }, "server.mode"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"empty host", func(c *Config) { c.Server.Host = "  " }, "server.host"},
		{"bad driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"sqlite without path", func(c *Config) { c.Database.SQLite.Path = "" }, "database.sqlite.path"},
		{"bad timeout", func(c *Config) { c.Server.Timeout = "soon" }, "server.timeout"},
		{"negative timeout", func(c *Config) { c.Server.Timeout = "-5s" }, "server.timeout"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"prefix too short", func(c *Config) { c.Codes.SubscriberPrefix = "IN" }, "codes.subscriber_prefix"},
		{"prefix with digit", func(c *Config) { c.Codes.StaffPrefix = "F1C" }, "codes.staff_prefix"},
		{"identical prefixes", func(c *Config) { c.Codes.StaffPrefix = "INS" }, "must differ"},
		{"report enabled without schedule", func(c *Config) { c.Report = ReportConfig{Enabled: true} }, "report.schedule"},
		{"report with bad schedule", func(c *Config) {
			c.Report = ReportConfig{Enabled: true, Schedule: "every day"}
		}, "report.schedule"},
		{"report disabled ignores schedule", func(c *Config) {
			c.Report = ReportConfig{Enabled: false, Schedule: "garbage"}
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NormalizesPrefixes(t *testing.T) {
	cfg := validConfig()
	cfg.Codes.SubscriberPrefix = " ins "
	cfg.Codes.StaffPrefix = "fcc"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Codes.SubscriberPrefix != "INS" || cfg.Codes.StaffPrefix != "FCC" {
		t.Errorf("prefixes not normalized: %+v", cfg.Codes)
	}
}

func TestValidate_PostgresRequirements(t *testing.T) {
	pgConfig := func() *Config {
		cfg := validConfig()
		cfg.Database.Driver = "postgres"
		cfg.Database.Postgres = PostgresConfig{
			Host: "db", Port: 5432, User: "app", DBName: "app", SSLMode: "disable",
		}
		return cfg
	}

	if err := pgConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	t.Run("missing host", func(t *testing.T) {
		cfg := pgConfig()
		cfg.Database.Postgres.Host = ""
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing postgres host")
		}
	})

	t.Run("release mode requires ssl", func(t *testing.T) {
		cfg := pgConfig()
		cfg.Server.Mode = "release"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for sslmode=disable in release mode")
		}
		cfg = pgConfig()
		cfg.Server.Mode = "release"
		cfg.Database.Postgres.SSLMode = "require"
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})
}
