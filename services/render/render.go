// Package render hands built meshes to a rendering backend.
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/VoidMesh/heightmesh/internal/logging"
	"github.com/VoidMesh/heightmesh/services/mesh"
)

//go:generate mockgen -source=render.go -destination=../../internal/testmocks/mockrender/mock_renderer.go -package=mockrender

var (
	ErrNilRenderer = errors.New("renderer is nil")
	ErrNilMesh     = errors.New("mesh is nil")
)

// Material references the surface a renderer should apply to the mesh.
type Material struct {
	Name    string
	Texture string
}

// DefaultMaterial is applied when no material was assigned.
var DefaultMaterial = Material{Name: "default"}

// Renderer takes ownership of a built mesh and displays it.
type Renderer interface {
	Render(ctx context.Context, data *mesh.Data, material *Material) error
}

// Handoff passes data to r. A nil material is a warning, not an error: the
// mesh is still rendered with DefaultMaterial.
func Handoff(ctx context.Context, r Renderer, data *mesh.Data, material *Material, logger logging.Interface) error {
	if r == nil {
		return ErrNilRenderer
	}
	if data == nil {
		return ErrNilMesh
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	if material == nil {
		logger.Warn("Ground material not assigned, using default", "material", DefaultMaterial.Name)
		m := DefaultMaterial
		material = &m
	}

	if err := r.Render(ctx, data, material); err != nil {
		return fmt.Errorf("render mesh: %w", err)
	}
	return nil
}
