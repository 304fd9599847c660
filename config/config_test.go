package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp switches to a fresh temp dir for the test and restores the
// previous working directory on cleanup (stand-in for t.Chdir, Go 1.24+).
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected default listen addr %q", cfg.ListenAddr)
	}
	if cfg.Backend != BackendMemory {
		t.Fatalf("unexpected default backend %q", cfg.Backend)
	}
	if cfg.RateEnabled {
		t.Fatalf("expected rate limit disabled by default")
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "todo-server.toml")
	body := "listen_addr = \":9090\"\nmax_todos = 5\nrate_enabled = true\nrate_rps = 2.5\nrate_burst = 3\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatalf("setup error: %v", err)
	}

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("expected file value, got %q", cfg.ListenAddr)
	}
	if cfg.MaxTodos != 5 {
		t.Fatalf("expected max_todos=5, got %d", cfg.MaxTodos)
	}
	if !cfg.RateEnabled || cfg.RateRPS != 2.5 || cfg.RateBurst != 3 {
		t.Fatalf("unexpected rate config: %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "todo-server.toml")
	if err := os.WriteFile(file, []byte("listen_addr = \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("setup error: %v", err)
	}
	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":7070" {
		t.Fatalf("expected env to win, got %q", cfg.ListenAddr)
	}
	if cfg.Backend != BackendRedis {
		t.Fatalf("expected redis backend, got %q", cfg.Backend)
	}
}

func TestLoad_ExplicitMissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}
}

func TestLoad_RedisBackendRequiresAddr(t *testing.T) {
	chdirTemp(t)
	t.Setenv("BACKEND", "redis")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error when redis backend has no addr")
	}
}

func TestLoad_UnknownBackendIsError(t *testing.T) {
	chdirTemp(t)
	t.Setenv("BACKEND", "postgres")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoad_RateEnabledValidatesValues(t *testing.T) {
	chdirTemp(t)
	t.Setenv("RATE_ENABLED", "true")
	t.Setenv("RATE_RPS", "0")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for rate_rps=0 with rate limit enabled")
	}
}
