package config_test

import (
	"os"
	"testing"

	"inkwell/internal/config"
)

func TestLoad_WithEnvVars(t *testing.T) {
	os.Setenv("SERVER_ADDR", ":9999")
	os.Setenv("DATABASE_PATH", "./tmp/db.sqlite")
	os.Setenv("DATA_DIR", "./tmp/data")
	os.Setenv("ADMIN_USERNAME", "editor")
	defer func() {
		os.Unsetenv("SERVER_ADDR")
		os.Unsetenv("DATABASE_PATH")
		os.Unsetenv("DATA_DIR")
		os.Unsetenv("ADMIN_USERNAME")
	}()

	cfg := config.Load()
	if cfg.ServerAddr != ":9999" {
		t.Fatalf("expected SERVER_ADDR :9999, got %s", cfg.ServerAddr)
	}
	if cfg.DatabasePath != "./tmp/db.sqlite" {
		t.Fatalf("expected DATABASE_PATH ./tmp/db.sqlite, got %s", cfg.DatabasePath)
	}
	if cfg.DataDir != "./tmp/data" {
		t.Fatalf("expected DATA_DIR ./tmp/data, got %s", cfg.DataDir)
	}
	if cfg.AdminUsername != "editor" {
		t.Fatalf("expected ADMIN_USERNAME editor, got %s", cfg.AdminUsername)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_ADDR")
	os.Unsetenv("DATABASE_PATH")
	os.Unsetenv("DATA_DIR")
	os.Unsetenv("ADMIN_USERNAME")
	os.Unsetenv("ADMIN_PASSWORD")

	cfg := config.Load()
	if cfg.ServerAddr == "" {
		t.Fatalf("expected default SERVER_ADDR, got empty")
	}
	if cfg.AdminUsername != "admin" {
		t.Fatalf("expected default admin username, got %s", cfg.AdminUsername)
	}
	if cfg.AdminPassword != "" {
		t.Fatalf("expected empty default admin password, got %s", cfg.AdminPassword)
	}
}
