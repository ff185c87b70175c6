package tracer

import (
	"testing"

	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A scene with a white, non-reflective sphere in front of the origin and a
// light straight behind the camera.
func makeSphereScene(t *testing.T, extra ...scene.Primitive) *scene.Scene {
	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(types.XYZ(0, 0, -1)))
	sc.Light = types.XYZ(0, 0, -10)
	sc.Ambient = types.XYZ(0.05, 0.05, 0.05)

	sphere := scene.NewSphere(types.XYZ(0, 0, 5), 1, types.XYZ(1, 1, 1))
	sphere.Reflectance = 0
	_, err := sc.AddPrimitive(sphere)
	require.NoError(t, err)

	for _, prim := range extra {
		_, err = sc.AddPrimitive(prim)
		require.NoError(t, err)
	}
	return sc
}

func singleRay(origin, dir types.Vec3) (types.Vec3Batch, types.Vec3Batch) {
	return types.Broadcast(1, origin), types.Broadcast(1, dir.Normalize())
}

func TestNewWhittedErrors(t *testing.T) {
	_, err := NewWhitted("tr-0", nil)
	assert.Equal(t, ErrSceneNotDefined, err)

	_, err = NewWhitted("tr-0", scene.NewScene())
	assert.Equal(t, ErrCameraNotDefined, err)
}

func TestLitSphere(t *testing.T) {
	tr, err := NewWhitted("tr-0", makeSphereScene(t))
	require.NoError(t, err)

	o, d := singleRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	color := tr.Raytrace(o, d, 0).Lane(0)

	// ambient + lambert (1) + specular (1)
	assert.True(t, color.ApproxEqual(types.XYZ(2.05, 2.05, 2.05), 1e-6), "got %v", color)
}

func TestOccludedSphere(t *testing.T) {
	blocker := scene.NewSphere(types.XYZ(0, 0, -5), 1, types.XYZ(1, 0, 0))
	blocker.Reflectance = 0
	tr, err := NewWhitted("tr-0", makeSphereScene(t, blocker))
	require.NoError(t, err)

	o, d := singleRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	color := tr.Raytrace(o, d, 0).Lane(0)

	assert.True(t, color.ApproxEqual(types.XYZ(0.05, 0.05, 0.05), 1e-9), "got %v", color)
}

func TestNoSelfShadowOnLitSide(t *testing.T) {
	sc := scene.Default(scene.VertexCrossNormal)
	tr, err := NewWhitted("tr-0", sc)
	require.NoError(t, err)

	// Aim at points on the red sphere facing the light
	red := sc.Primitives[0].(*scene.Sphere)
	var dirs []types.Vec3
	for _, off := range []types.Vec3{
		types.XYZ(0.1, 0.2, -0.55),
		types.XYZ(0.3, 0.3, -0.4),
		types.XYZ(0.2, 0, -0.55),
	} {
		dirs = append(dirs, red.Center.Add(off).Sub(sc.Camera.Eye))
	}

	o := types.Broadcast(len(dirs), sc.Camera.Eye)
	d := types.NewVec3Batch(len(dirs))
	for i, v := range dirs {
		v = v.Normalize()
		d.X[i], d.Y[i], d.Z[i] = v[0], v[1], v[2]
	}

	dist := red.Intersect(o, d)
	hitPoint := o.Add(d.Scale(dist))
	normal := red.Normal(hitPoint)
	toLight := types.Broadcast(len(dirs), sc.Light).Sub(hitPoint).Normalize()
	lambert := normal.Dot(toLight)

	color := tr.Raytrace(o, d, 0)
	for i := range dirs {
		require.NotEqual(t, scene.NoHit, dist[i])
		require.Greater(t, lambert[i], 0.1)
		// A shadowed point would only receive ambient and mirrored light
		// in the red channel; a lit one also gets the lambert term.
		assert.GreaterOrEqual(t, color.X[i], 0.05+lambert[i]-1e-9, "lane %d", i)
	}
}

func TestRecursionDepthIsBounded(t *testing.T) {
	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(types.XYZ(0, 0, -1)))
	sc.Light = types.XYZ(0, 10, 0)
	for _, z := range []float64{5, -5} {
		mirror := scene.NewSphere(types.XYZ(0, 0, z), 1, types.XYZ(1, 1, 1))
		mirror.Reflectance = 1
		_, err := sc.AddPrimitive(mirror)
		require.NoError(t, err)
	}
	plane := scene.NewCheckeredPlane(types.XYZ(0, -2, 0), types.XYZ(0, 1, 0), types.XYZ(1, 1, 1))
	plane.Reflectance = 1
	_, err := sc.AddPrimitive(plane)
	require.NoError(t, err)

	tr, err := NewWhitted("tr-0", sc)
	require.NoError(t, err)

	o, d := singleRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	tr.Raytrace(o, d, 0)

	assert.Equal(t, MaxBounces, tr.Stats().MaxDepth)
	assert.Equal(t, uint64(1), tr.Stats().PrimaryRays)
	assert.Equal(t, uint64(MaxBounces), tr.Stats().ReflectionRays)
}

func TestRaysMissingEverythingAreBlack(t *testing.T) {
	tr, err := NewWhitted("tr-0", scene.Default(scene.VertexCrossNormal))
	require.NoError(t, err)

	o := types.Broadcast(3, scene.DefaultEye)
	d := types.Vec3Batch{
		X: types.Scalars{0, 0.5, -0.5},
		Y: types.Scalars{1, 1, 1},
		Z: types.Scalars{-1, -1, -1},
	}.Normalize()

	color := tr.Raytrace(o, d, 0)
	for i := 0; i < color.Len(); i++ {
		assert.Equal(t, types.XYZ(0, 0, 0), color.Lane(i))
	}
}

func TestEmptySceneIsBlack(t *testing.T) {
	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(scene.DefaultEye))
	tr, err := NewWhitted("tr-0", sc)
	require.NoError(t, err)

	accum := make([]float64, 4*2*3)
	require.NoError(t, tr.Setup(4, 2, accum))
	require.NoError(t, tr.Trace(BlockRequest{FrameW: 4, FrameH: 2, BlockY: 0, BlockH: 2}))
	for _, v := range accum {
		assert.Zero(t, v)
	}
}

func TestTraceBlocks(t *testing.T) {
	sc := scene.Default(scene.VertexCrossNormal)
	const frameW, frameH = 16, 12

	whole, err := NewWhitted("whole", sc)
	require.NoError(t, err)
	wholeAccum := make([]float64, frameW*frameH*3)
	require.NoError(t, whole.Setup(frameW, frameH, wholeAccum))
	require.NoError(t, whole.Trace(BlockRequest{FrameW: frameW, FrameH: frameH, BlockY: 0, BlockH: frameH}))
	assert.Equal(t, uint64(frameW*frameH), whole.Stats().PrimaryRays)

	blocked, err := NewWhitted("blocked", sc)
	require.NoError(t, err)
	blockAccum := make([]float64, frameW*frameH*3)
	require.NoError(t, blocked.Setup(frameW, frameH, blockAccum))
	for _, req := range NewFixedScheduler(5).Schedule(frameW, frameH) {
		require.NoError(t, blocked.Trace(req))
		assert.Equal(t, req.BlockH, blocked.Stats().BlockH)
	}

	assert.Equal(t, wholeAccum, blockAccum)
}

func TestTraceErrors(t *testing.T) {
	tr, err := NewWhitted("tr-0", scene.Default(scene.VertexCrossNormal))
	require.NoError(t, err)

	assert.Equal(t, ErrNotSetup, tr.Trace(BlockRequest{FrameW: 2, FrameH: 2, BlockH: 2}))
	assert.Error(t, tr.Setup(2, 2, make([]float64, 5)))
	assert.Error(t, tr.Setup(0, 2, nil))

	require.NoError(t, tr.Setup(2, 2, make([]float64, 12)))
	assert.Error(t, tr.Trace(BlockRequest{FrameW: 3, FrameH: 2, BlockH: 2}))
	assert.Error(t, tr.Trace(BlockRequest{FrameW: 2, FrameH: 2, BlockY: 1, BlockH: 2}))

	tr.Close()
	assert.Equal(t, ErrNotSetup, tr.Trace(BlockRequest{FrameW: 2, FrameH: 2, BlockH: 2}))
}
