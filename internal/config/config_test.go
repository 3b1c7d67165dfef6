package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.DB.Host != "localhost" {
		t.Errorf("DB.Host = %q, want localhost", cfg.DB.Host)
	}
	if cfg.DB.Name != "campus_events" {
		t.Errorf("DB.Name = %q, want campus_events", cfg.DB.Name)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.DB.Host != "db.internal" {
		t.Errorf("DB.Host = %q, want db.internal", cfg.DB.Host)
	}
	if cfg.DB.Password != "hunter2" {
		t.Errorf("DB.Password = %q, want hunter2", cfg.DB.Password)
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := Database{
		Host: "localhost", Port: "5432", User: "postgres",
		Password: "postgres", Name: "campus_events", SSLMode: "disable",
	}
	want := "host=localhost port=5432 user=postgres password=postgres dbname=campus_events sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
