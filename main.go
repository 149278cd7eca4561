package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/publish"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// options are the command line settings after merging with the configuration
type options struct {
	sceneName string
	sceneFile string
	width     int
	height    int
	workers   int
	format    canvas.Format
	scale     int
	outputDir string
	publish   bool
	help      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads command line flags, using cfg for every default
func parseFlags(args []string, cfg config.Config, output io.Writer) (options, error) {
	var opts options
	var format string

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.sceneName, "scene", "default", "Scene name: a built-in scene or file:<name> from the scenes directory")
	fs.StringVar(&opts.sceneFile, "scene-file", "", "Path to a JSON scene file (overrides -scene)")
	fs.IntVar(&opts.width, "width", cfg.Width, "Image width in pixels")
	fs.IntVar(&opts.height, "height", cfg.Height, "Image height in pixels")
	fs.IntVar(&opts.workers, "workers", cfg.Workers, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.StringVar(&format, "format", string(cfg.Format), "Output format: ppm, png or jpeg")
	fs.IntVar(&opts.scale, "scale", cfg.Scale, "Integer upscale factor for png/jpeg output")
	fs.StringVar(&opts.outputDir, "out", cfg.OutputDir, "Output directory")
	fs.BoolVar(&opts.publish, "publish", false, "Upload the render to the configured S3 bucket")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.help {
		showHelp(fs, cfg, output)
		return opts, nil
	}

	parsed, err := canvas.ParseFormat(format)
	if err != nil {
		return opts, err
	}
	opts.format = parsed

	merged := cfg
	merged.Width, merged.Height, merged.Workers = opts.width, opts.height, opts.workers
	merged.Format, merged.Scale, merged.OutputDir = opts.format, opts.scale, opts.outputDir
	if err := merged.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func showHelp(fs *flag.FlagSet, cfg config.Config, output io.Writer) {
	fmt.Fprintln(output, "Phong Raytracer")
	fmt.Fprintln(output, "Usage: raytracer [options]")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Available scenes:")
	if scenes, err := scene.ListAllScenes(cfg.ScenesDir); err == nil {
		for _, group := range scenes.Groups {
			for _, info := range group.Scenes {
				fmt.Fprintf(output, "  %-24s %s\n", info.ID, info.Description)
			}
		}
	}
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Output will be saved to <out>/<scene>/render_<timestamp>_<id>.<ext>")
}

// createScene loads the scene file if one is given, otherwise resolves a scene by name
func createScene(name, file, scenesDir string) (*scene.Scene, error) {
	if file != "" {
		return scene.Load(file)
	}
	return scene.Resolve(name, scenesDir)
}

// outputFilename builds the timestamped output path for a render
func outputFilename(outputDir, sceneName, jobID string, format canvas.Format, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	name := fmt.Sprintf("render_%s_%s%s", timestamp, jobID[:8], format.Extension())
	return filepath.Join(outputDir, sceneName, name)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load(getEnv("RAYTRACER_ROOT_DIR", "."))
	if err != nil {
		return err
	}

	opts, err := parseFlags(args, cfg, stdout)
	if err != nil || opts.help {
		return err
	}

	selected, err := createScene(opts.sceneName, opts.sceneFile, cfg.ScenesDir)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	fmt.Fprintf(stdout, "Using scene %q (%d spheres)...\n", selected.Name, len(selected.Spheres))

	logger := renderer.NewDefaultLogger()
	r, err := renderer.NewRenderer(selected, renderer.Config{
		Width:      opts.width,
		Height:     opts.height,
		TileSize:   renderer.DefaultConfig().TileSize,
		NumWorkers: opts.workers,
	}, logger)
	if err != nil {
		return err
	}

	img, stats, err := r.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprintf(stdout, "Render completed in %v\n", stats.Duration)
	fmt.Fprintf(stdout, "Pixels: %d, hits: %d (%.1f%%)\n", stats.TotalPixels, stats.Hits, 100*stats.Coverage())

	jobID := uuid.NewString()
	filename := outputFilename(opts.outputDir, selected.Name, jobID, opts.format, time.Now())
	if err := img.Save(filename, opts.scale); err != nil {
		return fmt.Errorf("failed to save render: %w", err)
	}
	fmt.Fprintf(stdout, "Render saved as %s\n", filename)

	if opts.publish {
		url, err := publishRender(ctx, cfg.S3, img, selected.Name, jobID, opts, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Render published to %s\n", url)
	}
	return nil
}

// publishRender encodes the canvas and uploads it to S3
func publishRender(ctx context.Context, s3cfg config.S3Config, img *canvas.Canvas, sceneName, jobID string, opts options, logger core.Logger) (string, error) {
	publisher, err := publish.New(s3cfg, logger)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, opts.format, opts.scale); err != nil {
		return "", fmt.Errorf("failed to encode render: %w", err)
	}
	key := publisher.Key(sceneName, jobID, opts.format.Extension())
	return publisher.Upload(ctx, key, buf.Bytes(), opts.format.ContentType())
}

// getEnv returns the value of key, or fallback when it is unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
