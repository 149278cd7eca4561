package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		sceneFile   string
		expectError bool
	}{
		{"default scene", "default", "", false},
		{"squashed scene", "squashed", "", false},
		{"pair scene", "pair", "", false},
		{"bundled file by id", "file:snowman", "", false},
		{"direct file path", "", "scenes/tilted-ellipsoid.json", false},
		{"file wins over name", "nonexistent", "scenes/snowman.json", false},

		{"unknown scene", "nonexistent", "", true},
		{"unknown file id", "file:nonexistent", "", true},
		{"missing file path", "", "scenes/nonexistent.json", true},
		{"empty scene name", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneName, tt.sceneFile, "scenes")

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene %q, but got none", tt.sceneName)
				}
				if s != nil {
					t.Errorf("Expected nil scene, got %+v", s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene %q: %v", tt.sceneName, err)
			}
			if len(s.Spheres) == 0 {
				t.Errorf("Expected scene to contain spheres")
			}
		})
	}
}

func TestCreateScene_UnknownIsSentinel(t *testing.T) {
	_, err := createScene("nonexistent", "", "scenes")
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	cfg := config.Default()

	opts, err := parseFlags([]string{"-scene", "pair", "-width", "64", "-height", "32", "-format", "ppm", "-out", "renders"}, cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if opts.sceneName != "pair" || opts.width != 64 || opts.height != 32 || opts.outputDir != "renders" {
		t.Errorf("Unexpected options %+v", opts)
	}
	if opts.format != canvas.FormatPPM {
		t.Errorf("Expected ppm, got %q", opts.format)
	}

	defaults, err := parseFlags(nil, cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if defaults.width != cfg.Width || defaults.format != cfg.Format || defaults.scale != cfg.Scale {
		t.Errorf("Expected configuration defaults, got %+v", defaults)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"-format", "gif"}},
		{"zero width", []string{"-width", "0"}},
		{"negative workers", []string{"-workers", "-2"}},
		{"unknown flag", []string{"-samples", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, config.Default(), &bytes.Buffer{}); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	opts, err := parseFlags([]string{"-help"}, config.Default(), &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !opts.help {
		t.Error("Expected help to be set")
	}
	for _, want := range []string{"Phong Raytracer", "-scene", "squashed"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected help output to mention %q", want)
		}
	}
}

func TestOutputFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := outputFilename("output", "default", "0123456789abcdef", canvas.FormatPNG, now)
	expected := filepath.Join("output", "default", "render_20240309_140507_01234567.png")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRun_WritesPPM(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RAYTRACER_ROOT_DIR", dir)

	var out bytes.Buffer
	err := run(context.Background(), []string{"-scene", "default", "-width", "16", "-height", "16", "-format", "ppm", "-out", dir}, &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, out.String())
	}

	files, err := filepath.Glob(filepath.Join(dir, "default", "render_*.ppm"))
	if err != nil || len(files) != 1 {
		t.Fatalf("Expected one PPM file, got %v (err %v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n16 16\n255\n") {
		t.Errorf("Unexpected PPM header: %q", string(data[:min(len(data), 20)]))
	}
}

func TestRun_PublishWithoutBucket(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RAYTRACER_ROOT_DIR", dir)
	t.Setenv("S3_BUCKET", "")

	err := run(context.Background(), []string{"-width", "8", "-height", "8", "-out", dir, "-publish"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error when publishing without a bucket")
	}
}
