package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/VoidMesh/heightmesh/services/mesh"
)

// OBJWriter renders a mesh as Wavefront OBJ text. Vertices, texture
// coordinates and normals share one index space, so faces read "f i/i/i".
type OBJWriter struct {
	w io.Writer
}

func NewOBJWriter(w io.Writer) *OBJWriter {
	return &OBJWriter{w: w}
}

func (o *OBJWriter) Render(ctx context.Context, data *mesh.Data, material *Material) error {
	if data == nil {
		return ErrNilMesh
	}

	bw := bufio.NewWriter(o.w)
	normals := Normals(data)

	fmt.Fprintf(bw, "# heightmesh grid %dx%d\n", data.Size, data.Size)
	if material != nil {
		if material.Texture != "" {
			fmt.Fprintf(bw, "# texture %s\n", material.Texture)
		}
		fmt.Fprintf(bw, "usemtl %s\n", material.Name)
	}
	bw.WriteString("o terrain\n")

	for _, v := range data.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", ff(v.X), ff(v.Y), ff(v.Z))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, uv := range data.UVs {
		fmt.Fprintf(bw, "vt %s %s\n", ff(uv.X), ff(uv.Y))
	}
	for _, n := range normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", ff(n.X), ff(n.Y), ff(n.Z))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for i := 0; i+2 < len(data.Triangles); i += 3 {
		a, b, c := data.Triangles[i]+1, data.Triangles[i+1]+1, data.Triangles[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

func ff(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
