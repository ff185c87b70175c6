package scene

import "github.com/achilleasa/whitted/types"

var (
	DefaultLight   = types.XYZ(5, 5, -10)
	DefaultEye     = types.XYZ(0, 0.35, -1)
	DefaultAmbient = types.XYZ(0.05, 0.05, 0.05)
)

// Build the reference scene: red, green and blue spheres, a checkered floor
// at y = -1 and a yellow triangle connecting the sphere centers.
func Default(triangleNormal NormalMode) *Scene {
	sc := NewScene()
	sc.SetCamera(NewCamera(DefaultEye))
	sc.Light = DefaultLight
	sc.Ambient = DefaultAmbient

	red := types.XYZ(0.75, 0.1, 2.25)
	green := types.XYZ(-0.75, 0.1, 2.25)
	blue := types.XYZ(0, 1.25, 2.25)

	tri := NewTriangle(green, red, blue, types.XYZ(1, 1, 0))
	tri.NormalMode = triangleNormal

	for _, prim := range []Primitive{
		NewSphere(red, 0.6, types.XYZ(1, 0, 0)),
		NewSphere(green, 0.6, types.XYZ(0, 1, 0)),
		NewSphere(blue, 0.6, types.XYZ(0, 0, 1)),
		NewCheckeredPlane(types.XYZ(0, -1, 0), types.XYZ(0, 1, 0), types.XYZ(1, 1, 1)),
		tri,
	} {
		// Primitives are freshly allocated so this never fails.
		_, _ = sc.AddPrimitive(prim)
	}

	return sc
}
