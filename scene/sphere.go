package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/whitted/types"
)

const defaultSphereMirror = 0.5

type Sphere struct {
	Center  types.Vec3
	Radius  float64
	Diffuse types.Vec3

	Reflectance float64
}

// Create new sphere primitive with the default mirror reflectance.
func NewSphere(center types.Vec3, radius float64, diffuse types.Vec3) *Sphere {
	return &Sphere{
		Center:      center,
		Radius:      radius,
		Diffuse:     diffuse,
		Reflectance: defaultSphereMirror,
	}
}

func (s *Sphere) Type() PrimitiveType {
	return SpherePrimitive
}

// Solve |O + tD - C|^2 = r^2 for t. The smaller root is used when it is
// positive; otherwise the larger one. Negative discriminants are clamped to
// zero before the square root and then rejected.
func (s *Sphere) Intersect(origin, dir types.Vec3Batch) types.Scalars {
	n := origin.Len()
	ccDot := s.Center.Dot(s.Center)
	oc := origin.SubVec(s.Center)
	b := dir.Dot(oc)
	oo := origin.NormSquared()
	co := origin.DotVec(s.Center)
	rr := s.Radius * s.Radius

	dist := make(types.Scalars, n)
	for i := 0; i < n; i++ {
		bi := 2 * b[i]
		c := ccDot + oo[i] - 2*co[i] - rr
		disc := bi*bi - 4*c
		sq := math.Sqrt(math.Max(0, disc))
		h0 := (-bi - sq) / 2
		h1 := (-bi + sq) / 2
		h := h1
		if h0 > 0 && h0 < h1 {
			h = h0
		}

		if disc > 0 && h > 0 {
			dist[i] = h
		} else {
			dist[i] = NoHit
		}
	}
	return dist
}

func (s *Sphere) Normal(hit types.Vec3Batch) types.Vec3Batch {
	return hit.SubVec(s.Center).Mul(1.0 / s.Radius)
}

func (s *Sphere) DiffuseColor(hit types.Vec3Batch) types.Vec3Batch {
	return types.Broadcast(hit.Len(), s.Diffuse)
}

func (s *Sphere) Mirror() float64 {
	return s.Reflectance
}

func (s *Sphere) Rotate(angle float64) {
	s.Center = types.RotateY(angle).Mul3x1(s.Center)
}

func (s *Sphere) String() string {
	return fmt.Sprintf("center %s, radius %.3f", fmtVec(s.Center), s.Radius)
}

func fmtVec(v types.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v[0], v[1], v[2])
}
