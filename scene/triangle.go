package scene

import (
	"fmt"

	"github.com/achilleasa/whitted/types"
)

const defaultTriangleMirror = 0.5

// Selects how a triangle computes its shading normal.
type NormalMode uint8

const (
	// Cross product of the first two vertex positions (a×b), not normalized.
	// This reproduces the reference renders.
	VertexCrossNormal NormalMode = iota

	// Normalized cross product of the two edges leaving vertex a.
	EdgeCrossNormal
)

func (m NormalMode) String() string {
	if m == EdgeCrossNormal {
		return "edge"
	}
	return "vertex"
}

// Parse a normal mode name ("vertex" or "edge").
func ParseNormalMode(name string) (NormalMode, error) {
	switch name {
	case "", "vertex":
		return VertexCrossNormal, nil
	case "edge":
		return EdgeCrossNormal, nil
	}
	return VertexCrossNormal, fmt.Errorf("scene: unknown triangle normal mode %q", name)
}

type Triangle struct {
	A, B, C types.Vec3
	Diffuse types.Vec3

	Reflectance float64
	NormalMode  NormalMode
}

// Create new triangle primitive with the default mirror reflectance.
func NewTriangle(a, b, c, diffuse types.Vec3) *Triangle {
	return &Triangle{
		A:           a,
		B:           b,
		C:           c,
		Diffuse:     diffuse,
		Reflectance: defaultTriangleMirror,
	}
}

func (tri *Triangle) Type() PrimitiveType {
	return TrianglePrimitive
}

// Intersect using the barycentric parametrization O + tD = a + r(b-a) + s(c-a).
// A lane hits when t > 0, r and s lie in [0, 1] and r + s <= 1. Rays parallel
// to the triangle plane never hit.
func (tri *Triangle) Intersect(origin, dir types.Vec3Batch) types.Scalars {
	u := tri.B.Sub(tri.A)
	v := tri.C.Sub(tri.A)
	w := origin.SubVec(tri.A)

	dv := dir.CrossVec(v)
	wu := w.CrossVec(u)
	det := dv.DotVec(u)
	tNum := wu.DotVec(v)
	rNum := dv.Dot(w)
	sNum := wu.Dot(dir)

	dist := make(types.Scalars, len(det))
	for i := range det {
		dist[i] = tNum[i] / det[i]
	}
	return selectHits(dist, func(i int) bool {
		if det[i] == 0 {
			return false
		}
		r := rNum[i] / det[i]
		s := sNum[i] / det[i]
		// Unlike a plain barycentric range test, negative t is rejected so a
		// triangle behind the ray origin never wins the nearest hit.
		return dist[i] > 0 && r >= 0 && r <= 1 && s >= 0 && s <= 1 && r+s <= 1
	})
}

func (tri *Triangle) Normal(hit types.Vec3Batch) types.Vec3Batch {
	var n types.Vec3
	switch tri.NormalMode {
	case EdgeCrossNormal:
		n = tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A)).Normalize()
	default:
		n = tri.A.Cross(tri.B)
	}
	return types.Broadcast(hit.Len(), n)
}

func (tri *Triangle) DiffuseColor(hit types.Vec3Batch) types.Vec3Batch {
	return types.Broadcast(hit.Len(), tri.Diffuse)
}

func (tri *Triangle) Mirror() float64 {
	return tri.Reflectance
}

func (tri *Triangle) Rotate(angle float64) {
	rot := types.RotateY(angle)
	tri.A = rot.Mul3x1(tri.A)
	tri.B = rot.Mul3x1(tri.B)
	tri.C = rot.Mul3x1(tri.C)
}

func (tri *Triangle) String() string {
	return fmt.Sprintf("vertices %s %s %s, normal %s", fmtVec(tri.A), fmtVec(tri.B), fmtVec(tri.C), tri.NormalMode)
}
