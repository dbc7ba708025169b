package config

import (
	"os"
	"path/filepath"
	"testing"
)

type fakeFileSystem struct {
	files map[string]bool
}

func (f *fakeFileSystem) Exists(path string) bool { return f.files[path] }
func (f *fakeFileSystem) LoadEnv(path string) error {
	return nil
}

func TestResolveFilesExplicitPathsWin(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{
		"./config.yml": true,
		"./.env":       true,
	}}
	lc := LoaderConfig{
		FileSystem: fs,
		ConfigFile: "/etc/convodyn/config.yml",
		EnvFile:    "/etc/convodyn/.env",
	}
	files := resolveFiles("convodyn", lc)
	if files.ConfigFile != "/etc/convodyn/config.yml" {
		t.Errorf("config file = %q", files.ConfigFile)
	}
	if files.EnvFile != "/etc/convodyn/.env" {
		t.Errorf("env file = %q", files.EnvFile)
	}
}

func TestResolveFilesSearch(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{
		"./cmd/convodyn/config.yml": true,
		"./.env":                    true,
	}}
	files := resolveFiles("convodyn", LoaderConfig{FileSystem: fs})
	if files.ConfigFile != "./cmd/convodyn/config.yml" {
		t.Errorf("config file = %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("env file = %q", files.EnvFile)
	}
}

func TestResolveFilesNothingFound(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{}}
	files := resolveFiles("convodyn", LoaderConfig{FileSystem: fs})
	if files.ConfigFile != "" || files.EnvFile != "" {
		t.Errorf("expected empty resolution, got %+v", files)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("SERVER_PORT")
	want := map[string]bool{"server_port": true, "server.port": true}
	for _, v := range variants {
		delete(want, v)
	}
	if len(want) != 0 {
		t.Errorf("missing variants %v in %v", want, variants)
	}

	single := envKeyVariants("DEBUG")
	if len(single) != 1 || single[0] != "debug" {
		t.Errorf("single-part key variants = %v", single)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := []byte(`
name: convodyn
environment: production
analyzer:
  merge_gap_tolerance: 0.5
  workers: 4
server:
  port: 9090
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg AppConfig
	if err := Load("convodyn", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "convodyn" {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Environment != "production" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if cfg.Analyzer.MergeGapTolerance != 0.5 {
		t.Errorf("merge gap tolerance = %g", cfg.Analyzer.MergeGapTolerance)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
}

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	cfg.ApplyDefaults()

	if cfg.Name != "convodyn" {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("development should enable debug")
	}
	if cfg.Analyzer.Workers < 1 {
		t.Errorf("workers = %d", cfg.Analyzer.Workers)
	}
	if len(cfg.Analyzer.Metrics) == 0 {
		t.Error("default metrics should be set")
	}
	if cfg.Observability.SampleRate != 1.0 {
		t.Errorf("sample rate = %g", cfg.Observability.SampleRate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaulted config should validate: %v", err)
	}
}

func TestAppConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"bad environment", func(c *AppConfig) { c.Environment = "prod" }},
		{"negative tolerance", func(c *AppConfig) { c.Analyzer.MergeGapTolerance = -1 }},
		{"bad log level", func(c *AppConfig) { c.Logging.Level = "loud" }},
		{"bad sample rate", func(c *AppConfig) { c.Observability.SampleRate = 2 }},
		{"bad port", func(c *AppConfig) { c.Server.Port = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg AppConfig
			cfg.ApplyDefaults()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
