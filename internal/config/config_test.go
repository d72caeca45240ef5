package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "DB_PORT", "SQLITE_PATH", "HTTP_ADDR", "CORS_ORIGINS", "CONFIG_FILE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("default driver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.SQLitePath != "tasks.db" {
		t.Errorf("default sqlite path = %q", cfg.SQLitePath)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("default addr = %q", cfg.HTTPAddr)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("default origins = %v", cfg.CORSOrigins)
	}
	if cfg.DSN() != "tasks.db" {
		t.Errorf("sqlite DSN = %q", cfg.DSN())
	}
}

func TestLoadPostgresEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tracker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "host=db.internal port=5433 user=app password=secret dbname=tracker sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestLoadCORSOriginsSplit(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "http://a.example" || cfg.CORSOrigins[1] != "http://b.example" {
		t.Errorf("origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("db_driver: postgres\ndb_host: filehost\nhttp_addr: \":9090\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("driver = %q, want file value postgres", cfg.DBDriver)
	}
	if cfg.DBHost != "filehost" {
		t.Errorf("host = %q, want file value filehost", cfg.DBHost)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("addr = %q, want file value :9090", cfg.HTTPAddr)
	}
	// fields absent from the file keep their env values
	if cfg.DBPort != 5432 {
		t.Errorf("port = %d, want env value 5432", cfg.DBPort)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
