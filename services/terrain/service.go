package terrain

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/VoidMesh/heightmesh/internal/config"
	"github.com/VoidMesh/heightmesh/internal/logging"
	"github.com/VoidMesh/heightmesh/services/curve"
	"github.com/VoidMesh/heightmesh/services/heightfield"
	"github.com/VoidMesh/heightmesh/services/mesh"
	"github.com/VoidMesh/heightmesh/services/noise"
	"github.com/VoidMesh/heightmesh/services/render"
)

// LoggerInterface abstracts logging operations for dependency injection.
type LoggerInterface interface {
	logging.Interface
	With(keyvals ...interface{}) LoggerInterface
}

// DefaultLoggerWrapper adapts a charmbracelet logger to LoggerInterface.
type DefaultLoggerWrapper struct {
	*log.Logger
}

// NewDefaultLoggerWrapper wraps the global logger.
func NewDefaultLoggerWrapper() LoggerInterface {
	return &DefaultLoggerWrapper{Logger: logging.GetLogger()}
}

// NewLoggerWrapper wraps an explicit logger.
func NewLoggerWrapper(l *log.Logger) LoggerInterface {
	return &DefaultLoggerWrapper{Logger: l}
}

func (l *DefaultLoggerWrapper) With(keyvals ...interface{}) LoggerInterface {
	return &DefaultLoggerWrapper{Logger: l.Logger.With(keyvals...)}
}

// NoiseFactory builds the noise backend for a run.
type NoiseFactory func(kind noise.Kind, seed int64) (noise.Source, error)

// Result is the outcome of one generation run.
type Result struct {
	ID       uuid.UUID
	Mesh     *mesh.Data
	Duration time.Duration
}

// Service builds terrain meshes and hands them to a renderer.
type Service struct {
	logger   LoggerInterface
	renderer render.Renderer
	newNoise NoiseFactory
	trace    bool
}

// Option customizes a Service.
type Option func(*Service)

// WithNoiseFactory replaces the default noise.NewSource backend selection.
func WithNoiseFactory(f NoiseFactory) Option {
	return func(s *Service) { s.newNoise = f }
}

// WithTrace enables per-sample debug logging.
func WithTrace(enabled bool) Option {
	return func(s *Service) { s.trace = enabled }
}

// NewService creates a new terrain service with dependency injection.
func NewService(logger LoggerInterface, renderer render.Renderer, opts ...Option) *Service {
	componentLogger := logger.With("component", "terrain-service")
	componentLogger.Debug("Creating new terrain service")

	s := &Service{
		logger:   componentLogger,
		renderer: renderer,
		newNoise: noise.NewSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewServiceWithDefaultLogger creates a service with the default logger (convenience constructor for production use).
func NewServiceWithDefaultLogger(renderer render.Renderer, opts ...Option) *Service {
	return NewService(NewDefaultLoggerWrapper(), renderer, opts...)
}

// Generate builds a fresh mesh from cfg and hands it to the renderer.
func (s *Service) Generate(ctx context.Context, cfg config.Mesh) (*Result, error) {
	id := uuid.New()
	logger := s.logger.With("generation_id", id.String())
	start := time.Now()

	logger.Debug("Starting terrain generation",
		"mesh_size", cfg.Size, "seed", cfg.Seed, "noise_kind", cfg.NoiseKind,
		"layers", len(cfg.LayerScales), "curve", cfg.HeightCurve)

	src, err := s.newNoise(noise.Kind(cfg.NoiseKind), int64(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("create noise source: %w", err)
	}

	c, err := curve.Parse(cfg.HeightCurve)
	if err != nil {
		return nil, fmt.Errorf("parse height curve: %w", err)
	}

	sampler, err := heightfield.New(heightfield.Params{
		LayerScales:      cfg.LayerScales,
		LayerAmplitudes:  cfg.LayerAmplitudes,
		Seed:             cfg.Seed,
		Offset:           heightfield.Offset{X: cfg.OffsetX, Y: cfg.OffsetY},
		Position:         heightfield.Position{X: cfg.PositionX, Y: cfg.PositionY, Z: cfg.PositionZ},
		HeightMultiplier: cfg.HeightMultiplier,
		Invert:           cfg.Invert,
		Trace:            s.trace,
	}, src, c, logger)
	if err != nil {
		return nil, fmt.Errorf("create height sampler: %w", err)
	}

	data, err := mesh.Build(cfg.Size, sampler)
	if err != nil {
		return nil, fmt.Errorf("build mesh: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	lo, hi := data.HeightRange()
	logger.Debug("Mesh built", "vertices", data.VertexCount(), "triangles", data.TriangleCount(),
		"min_height", lo, "max_height", hi)

	if err := render.Handoff(ctx, s.renderer, data, materialFor(cfg), logger); err != nil {
		return nil, err
	}

	duration := time.Since(start)
	logger.Info("Terrain generation completed", "duration", duration,
		"vertices", data.VertexCount(), "triangles", data.TriangleCount())

	return &Result{ID: id, Mesh: data, Duration: duration}, nil
}

func materialFor(cfg config.Mesh) *render.Material {
	if cfg.Material == "" {
		return nil
	}
	return &render.Material{Name: cfg.Material, Texture: cfg.MaterialTexture}
}
