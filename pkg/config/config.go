package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// ErrInvalidConfig is returned when a setting is missing or out of range
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxDimension is the largest width or height accepted for a render
const MaxDimension = 4096

// Config holds settings shared by the CLI and the web server
type Config struct {
	Width     int           // Image width in pixels
	Height    int           // Image height in pixels
	Workers   int           // Parallel tile workers (0 = CPU count)
	OutputDir string        // Directory for rendered files
	ScenesDir string        // Directory scanned for JSON scene files
	Format    canvas.Format // Output encoding
	Scale     int           // Integer upscale factor for PNG/JPEG output
	Port      int           // Web server port

	S3 S3Config
}

// S3Config holds the optional object storage settings used to publish renders
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string // Key prefix for uploaded objects
	CDNURL    string // Public base URL of the bucket, used to build links
}

// Enabled reports whether publishing is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Width:     400,
		Height:    400,
		Workers:   0,
		OutputDir: "output",
		ScenesDir: "scenes",
		Format:    canvas.FormatPNG,
		Scale:     1,
		Port:      8080,
		S3: S3Config{
			Region: "us-east-1",
			Prefix: "renders",
		},
	}
}

// Load reads <rootDir>/.env if present, then overlays environment
// variables on the defaults. Variables already set in the environment take
// precedence over the .env file.
func Load(rootDir string) (Config, error) {
	envPath := filepath.Join(rootDir, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	cfg := Default()
	var err error
	if cfg.Width, err = intEnv("RAYTRACER_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intEnv("RAYTRACER_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = intEnv("RAYTRACER_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.Scale, err = intEnv("RAYTRACER_SCALE", cfg.Scale); err != nil {
		return Config{}, err
	}
	if cfg.Port, err = intEnv("RAYTRACER_PORT", cfg.Port); err != nil {
		return Config{}, err
	}
	if format, ok := os.LookupEnv("RAYTRACER_FORMAT"); ok {
		if cfg.Format, err = canvas.ParseFormat(format); err != nil {
			return Config{}, fmt.Errorf("%w: RAYTRACER_FORMAT: %v", ErrInvalidConfig, err)
		}
	}
	cfg.OutputDir = getEnv("RAYTRACER_OUTPUT_DIR", cfg.OutputDir)
	cfg.ScenesDir = getEnv("RAYTRACER_SCENES_DIR", cfg.ScenesDir)

	cfg.S3 = S3Config{
		Bucket:    os.Getenv("S3_BUCKET"),
		Region:    getEnv("S3_REGION", cfg.S3.Region),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Prefix:    getEnv("S3_PREFIX", cfg.S3.Prefix),
		CDNURL:    os.Getenv("CDN_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	if c.Width <= 0 || c.Width > MaxDimension {
		return fmt.Errorf("%w: width must be in 1..%d, got %d", ErrInvalidConfig, MaxDimension, c.Width)
	}
	if c.Height <= 0 || c.Height > MaxDimension {
		return fmt.Errorf("%w: height must be in 1..%d, got %d", ErrInvalidConfig, MaxDimension, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Scale < 1 || c.Scale > 16 {
		return fmt.Errorf("%w: scale must be in 1..16, got %d", ErrInvalidConfig, c.Scale)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port must be in 1..65535, got %d", ErrInvalidConfig, c.Port)
	}
	if _, err := canvas.ParseFormat(string(c.Format)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory must be set", ErrInvalidConfig)
	}
	if c.S3.Enabled() && (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
		return fmt.Errorf("%w: S3_ACCESS_KEY and S3_SECRET_KEY must be set together", ErrInvalidConfig)
	}
	return nil
}

// getEnv returns the value of key, or fallback when it is unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return n, nil
}
