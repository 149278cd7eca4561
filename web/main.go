package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/publish"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	rootDir := os.Getenv("RAYTRACER_ROOT_DIR")
	if rootDir == "" {
		rootDir = "."
	}
	cfg, err := config.Load(rootDir)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}

	// Parse command line flags
	port := flag.Int("port", cfg.Port, "Port to serve on")
	flag.Parse()
	cfg.Port = *port

	var publisher *publish.Publisher
	if cfg.S3.Enabled() {
		if publisher, err = publish.New(cfg.S3, renderer.NewDefaultLogger()); err != nil {
			log.Printf("Error configuring S3 publishing: %v", err)
			os.Exit(1)
		}
		log.Printf("Publishing renders to bucket %s", cfg.S3.Bucket)
	}

	webServer := server.NewServer(cfg, publisher)

	log.Printf("Phong Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/render?scene=default to render", cfg.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
