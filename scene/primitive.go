package scene

import (
	"math"

	"github.com/achilleasa/whitted/types"
)

type PrimitiveType uint32

const (
	PlanePrimitive PrimitiveType = iota
	SpherePrimitive
	TrianglePrimitive
)

func (t PrimitiveType) String() string {
	switch t {
	case PlanePrimitive:
		return "plane"
	case SpherePrimitive:
		return "sphere"
	case TrianglePrimitive:
		return "triangle"
	}
	return "unknown"
}

// The distance reported for lanes whose ray misses a primitive.
var NoHit = math.Inf(1)

// Rotation applied by a single rotate step (18 degrees about the Y axis).
const RotationStep = math.Pi / 10

// The Primitive interface is implemented by all scene objects. All methods
// operate on batches; lane i of every argument belongs to the same ray.
type Primitive interface {
	// The primitive type.
	Type() PrimitiveType

	// Return the distance along each ray to the primitive or NoHit.
	Intersect(origin, dir types.Vec3Batch) types.Scalars

	// Return the surface normal at each intersection point.
	Normal(hit types.Vec3Batch) types.Vec3Batch

	// Return the diffuse color at each intersection point.
	DiffuseColor(hit types.Vec3Batch) types.Vec3Batch

	// The fraction of reflected light that is mirrored.
	Mirror() float64

	// Rotate primitive geometry by angle radians about the Y axis.
	Rotate(angle float64)
}

// Replace lanes that fail pred with NoHit.
func selectHits(dist types.Scalars, pred func(i int) bool) types.Scalars {
	out := make(types.Scalars, len(dist))
	for i, d := range dist {
		if pred(i) {
			out[i] = d
		} else {
			out[i] = NoHit
		}
	}
	return out
}
