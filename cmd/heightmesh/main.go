package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/VoidMesh/heightmesh/internal/config"
	"github.com/VoidMesh/heightmesh/internal/logging"
	"github.com/VoidMesh/heightmesh/services/render"
	"github.com/VoidMesh/heightmesh/services/terrain"
)

func main() {
	cfg := config.Load()

	logging.InitLoggerWithLevel(logging.ParseLevel(cfg.Logging.Level))
	logger := logging.GetLogger()
	logger.Debug("Configuration loaded", "mesh_size", cfg.Mesh.Size, "noise_kind", cfg.Mesh.NoiseKind,
		"output", cfg.Output.Format, "log_level", cfg.Logging.Level)

	renderer, err := newRenderer(cfg.Output.Format, os.Stdout)
	if err != nil {
		log.Fatal("Failed to select renderer", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := terrain.NewService(terrain.NewLoggerWrapper(logger), renderer,
		terrain.WithTrace(logging.TraceEnabled()))

	res, err := svc.Generate(ctx, cfg.Mesh)
	if err != nil {
		stop()
		logger.Fatal("Terrain generation failed", "error", err)
	}

	logger.Debug("Done", "generation_id", res.ID, "duration", res.Duration)
}

func newRenderer(format string, w io.Writer) (render.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "obj":
		return render.NewOBJWriter(w), nil
	case "summary":
		return render.NewSummaryRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
