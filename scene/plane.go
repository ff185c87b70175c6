package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/whitted/types"
)

const defaultPlaneMirror = 0.05

// An infinite plane painted with a 0.5 unit checkerboard on the XZ axes.
type CheckeredPlane struct {
	Center      types.Vec3
	PlaneNormal types.Vec3
	Diffuse     types.Vec3

	Reflectance float64
}

// Create new checkered plane primitive with the default mirror reflectance.
func NewCheckeredPlane(center, normal, diffuse types.Vec3) *CheckeredPlane {
	return &CheckeredPlane{
		Center:      center,
		PlaneNormal: normal,
		Diffuse:     diffuse,
		Reflectance: defaultPlaneMirror,
	}
}

func (p *CheckeredPlane) Type() PrimitiveType {
	return PlanePrimitive
}

// Rays parallel to the plane (N·D == 0) and lanes producing a non-finite
// distance never hit.
func (p *CheckeredPlane) Intersect(origin, dir types.Vec3Batch) types.Scalars {
	num := origin.SubVec(p.Center).DotVec(p.PlaneNormal)
	denom := dir.DotVec(p.PlaneNormal)

	dist := make(types.Scalars, len(num))
	for i := range num {
		dist[i] = -num[i] / denom[i]
	}
	return selectHits(dist, func(i int) bool {
		t := dist[i]
		return denom[i] != 0 && !math.IsInf(t, 0) && t > 0
	})
}

func (p *CheckeredPlane) Normal(hit types.Vec3Batch) types.Vec3Batch {
	return types.Broadcast(hit.Len(), p.PlaneNormal)
}

// Tiles where floor(2x) and floor(2z) share parity get the base color; the
// rest are black.
func (p *CheckeredPlane) DiffuseColor(hit types.Vec3Batch) types.Vec3Batch {
	checker := make(types.Mask, hit.Len())
	for i := range checker {
		checker[i] = parity(hit.X[i]) == parity(hit.Z[i])
	}
	return types.Broadcast(hit.Len(), p.Diffuse).Scale(checker.Scalars())
}

func parity(v float64) float64 {
	k := math.Mod(math.Floor(v*2), 2)
	if k < 0 {
		k += 2
	}
	return k
}

func (p *CheckeredPlane) Mirror() float64 {
	return p.Reflectance
}

// Planes are not rotated.
func (p *CheckeredPlane) Rotate(float64) {}

func (p *CheckeredPlane) String() string {
	return fmt.Sprintf("center %s, normal %s", fmtVec(p.Center), fmtVec(p.PlaneNormal))
}
