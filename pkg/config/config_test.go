package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

var envKeys = []string{
	"RAYTRACER_WIDTH", "RAYTRACER_HEIGHT", "RAYTRACER_WORKERS", "RAYTRACER_OUTPUT_DIR",
	"RAYTRACER_SCENES_DIR", "RAYTRACER_FORMAT", "RAYTRACER_SCALE", "RAYTRACER_PORT",
	"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_PREFIX", "CDN_URL",
}

// clearEnv unsets every variable Load reads and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.S3.Enabled() {
		t.Error("Expected publishing to be disabled by default")
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("RAYTRACER_WIDTH", "640")
	t.Setenv("RAYTRACER_HEIGHT", "480")
	t.Setenv("RAYTRACER_WORKERS", "3")
	t.Setenv("RAYTRACER_FORMAT", "ppm")
	t.Setenv("RAYTRACER_SCALE", "2")
	t.Setenv("RAYTRACER_OUTPUT_DIR", "renders")
	t.Setenv("S3_BUCKET", "images")
	t.Setenv("S3_PREFIX", "phong")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Width != 640 || cfg.Height != 480 || cfg.Workers != 3 || cfg.Scale != 2 {
		t.Errorf("Unexpected numeric settings: %+v", cfg)
	}
	if cfg.Format != canvas.FormatPPM {
		t.Errorf("Expected ppm format, got %q", cfg.Format)
	}
	if cfg.OutputDir != "renders" {
		t.Errorf("Expected output dir renders, got %q", cfg.OutputDir)
	}
	if !cfg.S3.Enabled() || cfg.S3.Bucket != "images" || cfg.S3.Prefix != "phong" || cfg.S3.Region != "us-east-1" {
		t.Errorf("Unexpected S3 settings: %+v", cfg.S3)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "RAYTRACER_WIDTH=800\nRAYTRACER_HEIGHT=600\nS3_REGION=eu-west-1\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	// real environment variables win over the file
	t.Setenv("RAYTRACER_HEIGHT", "100")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Width != 800 {
		t.Errorf("Expected width from .env, got %d", cfg.Width)
	}
	if cfg.Height != 100 {
		t.Errorf("Expected height from environment, got %d", cfg.Height)
	}
	if cfg.S3.Region != "eu-west-1" {
		t.Errorf("Expected region from .env, got %q", cfg.S3.Region)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric width", "RAYTRACER_WIDTH", "wide"},
		{"zero height", "RAYTRACER_HEIGHT", "0"},
		{"huge width", "RAYTRACER_WIDTH", "100000"},
		{"negative workers", "RAYTRACER_WORKERS", "-1"},
		{"unknown format", "RAYTRACER_FORMAT", "gif"},
		{"zero scale", "RAYTRACER_SCALE", "0"},
		{"bad port", "RAYTRACER_PORT", "70000"},
		{"empty output dir", "RAYTRACER_OUTPUT_DIR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(t.TempDir()); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_S3Credentials(t *testing.T) {
	cfg := Default()
	cfg.S3.Bucket = "images"
	cfg.S3.AccessKey = "key"

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for access key without secret, got %v", err)
	}

	cfg.S3.SecretKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}
