package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/heightmesh/services/mesh"
)

var (
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#04B575")
	Gray           = lipgloss.Color("#8B8B8B")

	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(0, 1)
)

// SummaryRenderer prints a short description of the mesh instead of geometry.
type SummaryRenderer struct {
	w io.Writer
}

func NewSummaryRenderer(w io.Writer) *SummaryRenderer {
	return &SummaryRenderer{w: w}
}

func (s *SummaryRenderer) Render(ctx context.Context, data *mesh.Data, material *Material) error {
	if data == nil {
		return ErrNilMesh
	}

	lo, hi := data.HeightRange()
	name := DefaultMaterial.Name
	if material != nil {
		name = material.Name
	}

	rows := [][2]string{
		{"grid", fmt.Sprintf("%dx%d", data.Size, data.Size)},
		{"vertices", fmt.Sprint(data.VertexCount())},
		{"triangles", fmt.Sprint(data.TriangleCount())},
		{"height", fmt.Sprintf("%.3f .. %.3f", lo, hi)},
		{"material", name},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Terrain mesh"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(r[0]), ValueStyle.Render(r[1])))
	}

	_, err := fmt.Fprintln(s.w, BorderStyle.Render(b.String()))
	return err
}
