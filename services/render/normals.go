package render

import (
	"math"

	"github.com/VoidMesh/heightmesh/services/mesh"
)

// Normals returns one smooth normal per vertex, the area weighted sum of the
// face normals around it. Faces are front facing when wound as the builder emits them.
func Normals(data *mesh.Data) []mesh.Vec3 {
	acc := make([][3]float64, len(data.Vertices))

	for i := 0; i+2 < len(data.Triangles); i += 3 {
		ia, ib, ic := data.Triangles[i], data.Triangles[i+1], data.Triangles[i+2]
		a, b, c := data.Vertices[ia], data.Vertices[ib], data.Vertices[ic]

		e1 := [3]float64{float64(b.X - a.X), float64(b.Y - a.Y), float64(b.Z - a.Z)}
		e2 := [3]float64{float64(c.X - a.X), float64(c.Y - a.Y), float64(c.Z - a.Z)}
		n := [3]float64{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}

		for _, idx := range [3]uint32{ia, ib, ic} {
			acc[idx][0] += n[0]
			acc[idx][1] += n[1]
			acc[idx][2] += n[2]
		}
	}

	out := make([]mesh.Vec3, len(acc))
	for i, n := range acc {
		l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		if l == 0 {
			out[i] = mesh.Vec3{Y: 1}
			continue
		}
		out[i] = mesh.Vec3{X: float32(n[0] / l), Y: float32(n[1] / l), Z: float32(n[2] / l)}
	}
	return out
}
