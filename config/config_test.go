package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/iterkit/errors"
	"github.com/kbukum/iterkit/itertools"
	"github.com/kbukum/iterkit/logger"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("got %q, want %q", cfg.Environment, "development")
		}
		if cfg.Logging.ServiceName != "svc" {
			t.Errorf("got logging service %q, want %q", cfg.Logging.ServiceName, "svc")
		}
	})

	t.Run("debug raises log level", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Debug: true}
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "debug" {
			t.Errorf("got %q, want %q", cfg.Logging.Level, "debug")
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr string
	}{
		{"valid development", ServiceConfig{Name: "svc", Environment: "development"}, ""},
		{"valid production", ServiceConfig{Name: "svc", Environment: "production"}, ""},
		{"missing name", ServiceConfig{Environment: "production"}, "name: is required"},
		{"invalid environment", ServiceConfig{Name: "svc", Environment: "qa"}, "environment: must be one of"},
		{"invalid log level", ServiceConfig{Name: "svc", Environment: "staging", Logging: loggingLevel("loud")}, "config.logging"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.cfg.Logging.Level == "" {
				tc.cfg.Logging.ApplyDefaults()
			}
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("got %q, want it to contain %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{ServiceConfig: ServiceConfig{Name: "iterctl", Version: "2.1.0", Environment: "staging"}}
	cfg.ApplyDefaults()

	if cfg.Itertools.TeeBlockSize != itertools.DefaultTeeBlockSize {
		t.Errorf("got block size %d, want %d", cfg.Itertools.TeeBlockSize, itertools.DefaultTeeBlockSize)
	}
	if cfg.Metrics.ServiceName != "iterctl" {
		t.Errorf("got metrics service %q, want %q", cfg.Metrics.ServiceName, "iterctl")
	}
	if cfg.Metrics.ServiceVersion != "2.1.0" {
		t.Errorf("got metrics version %q, want %q", cfg.Metrics.ServiceVersion, "2.1.0")
	}
	if cfg.Metrics.Environment != "staging" {
		t.Errorf("got metrics environment %q, want %q", cfg.Metrics.Environment, "staging")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigValidateTeeBlockSize(t *testing.T) {
	cfg := &Config{ServiceConfig: ServiceConfig{Name: "iterctl"}}
	cfg.ApplyDefaults()
	cfg.Itertools.TeeBlockSize = -4

	err := cfg.Validate()
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Fatalf("got %v, want a validation error", err)
	}
	if !strings.Contains(err.Error(), "config.itertools") {
		t.Errorf("got %q, want the itertools section named", err.Error())
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yaml := `
name: cfgtest
environment: production
version: "1.4.0"
logging:
  level: warn
  format: json
itertools:
  tee_block_size: 32
metrics:
  enabled: true
  endpoint: "collector:4318"
  interval: 30s
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("cfgtest", WithConfigFile(path), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := struct {
		Name, Env, Level, Endpoint string
		BlockSize                  int
		Enabled                    bool
		Interval                   time.Duration
	}{cfg.Name, cfg.Environment, cfg.Logging.Level, cfg.Metrics.Endpoint, cfg.Itertools.TeeBlockSize, cfg.Metrics.Enabled, cfg.Metrics.Interval}
	want := struct {
		Name, Env, Level, Endpoint string
		BlockSize                  int
		Enabled                    bool
		Interval                   time.Duration
	}{"cfgtest", "production", "warn", "collector:4318", 32, true, 30 * time.Second}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("itertools:\n  tee_block_size: 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENVTEST_ITERTOOLS_TEE_BLOCK_SIZE", "256")
	t.Setenv("ENVTEST_ENVIRONMENT", "staging")

	cfg, err := Load("envtest", WithConfigFile(path), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Itertools.TeeBlockSize != 256 {
		t.Errorf("got block size %d, want 256", cfg.Itertools.TeeBlockSize)
	}
	if cfg.Environment != "staging" {
		t.Errorf("got environment %q, want %q", cfg.Environment, "staging")
	}
	if cfg.Name != "envtest" {
		t.Errorf("got name %q, want %q", cfg.Name, "envtest")
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("DOTENVTEST_LOGGING_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("DOTENVTEST_LOGGING_LEVEL") })

	cfg, err := Load("dotenvtest", WithConfigFile(filepath.Join(dir, "missing.yml")), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("got level %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("name: bad\nenvironment: qa\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load("bad", WithConfigFile(path), WithEnvFile(filepath.Join(dir, "missing.env"))); err == nil {
		t.Fatal("expected error for invalid environment")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("name: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load("broken", WithConfigFile(path), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Fatalf("got %v, want a read error", err)
	}
}

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/iterctl/config.yml": true,
		"./config.yml":             true,
		"./.env":                   true,
	}}
	r := &Resolver{FileSystem: fs}

	got := r.ResolveFiles("iterctl", LoaderConfig{})
	want := ResolvedFiles{ConfigFile: "./cmd/iterctl/config.yml", EnvFile: "./.env"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolved files mismatch (-want +got):\n%s", diff)
	}

	got = r.ResolveFiles("iterctl", LoaderConfig{ConfigFile: "/etc/iterctl.yml"})
	if got.ConfigFile != "/etc/iterctl.yml" {
		t.Errorf("got %q, want explicit path", got.ConfigFile)
	}
}

func TestLoadConfigUsesFileSystem(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./.env.fstest": true}}
	var cfg Config
	if err := LoadConfig("fstest", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"./.env.fstest"}, fs.loaded); diff != "" {
		t.Errorf("env files loaded mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderOptions(t *testing.T) {
	fs := &mockFS{}
	var lc LoaderConfig
	for _, opt := range []LoaderOption{WithFileSystem(fs), WithConfigFile("/a.yml"), WithEnvFile("/b.env")} {
		opt(&lc)
	}
	if lc.FileSystem != fs {
		t.Error("expected custom filesystem")
	}
	if lc.ConfigFile != "/a.yml" || lc.EnvFile != "/b.env" {
		t.Errorf("got %q and %q", lc.ConfigFile, lc.EnvFile)
	}
}

func TestStructKeys(t *testing.T) {
	got := structKeys(reflect.TypeOf(&Config{}), "")
	for _, key := range []string{"name", "environment", "logging.level", "itertools.tee_block_size", "metrics.endpoint"} {
		found := false
		for _, k := range got {
			if k == key {
				found = true
			}
		}
		if !found {
			t.Errorf("missing key %q in %v", key, got)
		}
	}
}

func TestEnvPrefix(t *testing.T) {
	if got := envPrefix("iter-ctl.dev"); got != "ITER_CTL_DEV" {
		t.Errorf("got %q, want %q", got, "ITER_CTL_DEV")
	}
}

func loggingLevel(level string) logger.Config {
	return logger.Config{Level: level, Format: "console", Output: "stdout"}
}
