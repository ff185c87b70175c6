package tracer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
)

const (
	// Number of mirror bounces after the primary ray. Depth 0 is the
	// camera ray so the deepest traced ray has depth MaxBounces.
	MaxBounces = 2

	// Offset along the surface normal applied to secondary ray origins.
	ShadowNudge = 1e-4

	// Blinn-Phong exponent.
	SpecularExponent = 50
)

var (
	ErrSceneNotDefined  = errors.New("tracer: no scene defined")
	ErrCameraNotDefined = errors.New("tracer: no camera defined")
	ErrNotSetup         = errors.New("tracer: accumulation buffer not attached")
)

var white = types.XYZ(1, 1, 1)

// A recursive Whitted-style tracer. Rays are processed in batches: every
// lane of a batch is an independent ray and all shading math is evaluated
// lane-wise.
type Whitted struct {
	logger log.Logger

	id    string
	scene *scene.Scene

	frameW int
	frameH int
	accum  []float64

	stats *Stats
}

// Create a new tracer for the given scene.
func NewWhitted(id string, sc *scene.Scene) (*Whitted, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}

	return &Whitted{
		logger: log.New(fmt.Sprintf("tracer (%s)", id)),
		id:     id,
		scene:  sc,
		stats:  &Stats{},
	}, nil
}

// Get tracer id.
func (tr *Whitted) Id() string {
	return tr.id
}

// Detach the accumulation buffer.
func (tr *Whitted) Close() {
	tr.accum = nil
}

// Attach the accumulation buffer.
func (tr *Whitted) Setup(frameW, frameH int, accumBuffer []float64) error {
	if frameW <= 0 || frameH <= 0 {
		return fmt.Errorf("tracer: invalid frame dimensions %dx%d", frameW, frameH)
	}
	if len(accumBuffer) != frameW*frameH*3 {
		return fmt.Errorf("tracer: accumulation buffer holds %d values; expected %d", len(accumBuffer), frameW*frameH*3)
	}

	tr.frameW, tr.frameH = frameW, frameH
	tr.accum = accumBuffer
	return nil
}

// Retrieve statistics for the last traced block.
func (tr *Whitted) Stats() *Stats {
	return tr.stats
}

// Trace the primary rays for a block of rows and store the resulting colors
// in the accumulation buffer.
func (tr *Whitted) Trace(blockReq BlockRequest) error {
	if tr.accum == nil {
		return ErrNotSetup
	}
	if blockReq.FrameW != tr.frameW || blockReq.FrameH != tr.frameH {
		return fmt.Errorf("tracer: block request for a %dx%d frame; tracer setup for %dx%d", blockReq.FrameW, blockReq.FrameH, tr.frameW, tr.frameH)
	}

	start := time.Now()
	*tr.stats = Stats{BlockY: blockReq.BlockY, BlockH: blockReq.BlockH}

	origin, dir, err := tr.scene.Camera.PrimaryRays(tr.frameW, tr.frameH, blockReq.BlockY, blockReq.BlockH)
	if err != nil {
		return err
	}

	color := tr.Raytrace(origin, dir, 0)

	offset := blockReq.BlockY * tr.frameW * 3
	for lane := 0; lane < color.Len(); lane++ {
		tr.accum[offset+lane*3] = color.X[lane]
		tr.accum[offset+lane*3+1] = color.Y[lane]
		tr.accum[offset+lane*3+2] = color.Z[lane]
	}

	tr.stats.BlockTime = time.Since(start)
	tr.logger.Debugf("traced rows [%d, %d) in %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, tr.stats.BlockTime)
	return nil
}

// Trace a batch of rays at the given bounce depth and return the color seen
// by each ray. Each lane is shaded by the primitive with the nearest hit;
// lanes that hit nothing stay black.
func (tr *Whitted) Raytrace(origin, dir types.Vec3Batch, depth int) types.Vec3Batch {
	tr.countRays(depth, origin.Len())

	color := types.NewVec3Batch(origin.Len())
	distances := tr.scene.Distances(origin, dir)
	nearest := scene.Nearest(distances)

	for id, dist := range distances {
		hit := make(types.Mask, len(dist))
		for lane := range dist {
			hit[lane] = nearest[lane] != scene.NoHit && dist[lane] == nearest[lane]
		}
		if !hit.Any() {
			continue
		}

		shaded := tr.shade(id, origin.Extract(hit), dir.Extract(hit), dist.Extract(hit), depth)
		color = color.Add(shaded.Place(hit))
	}

	return color
}

// Compute ambient, diffuse, mirror and specular terms for rays that hit
// primitive id at the given distances.
func (tr *Whitted) shade(id int, origin, dir types.Vec3Batch, dist types.Scalars, depth int) types.Vec3Batch {
	sc := tr.scene
	prim := sc.Primitives[id]
	n := origin.Len()

	hitPoint := origin.Add(dir.Scale(dist))
	normal := prim.Normal(hitPoint)
	toLight := types.Broadcast(n, sc.Light).Sub(hitPoint).Normalize()
	toEye := types.Broadcast(n, sc.Camera.Eye).Sub(hitPoint).Normalize()
	nudged := hitPoint.Add(normal.Mul(ShadowNudge))

	// The point is lit when nothing, including another part of the same
	// primitive, is closer along the ray towards the light.
	tr.stats.ShadowRays += uint64(n)
	lightDistances := sc.Distances(nudged, toLight)
	seeLight := lightDistances[id].Equal(scene.Nearest(lightDistances)).Scalars()

	color := types.Broadcast(n, sc.Ambient)

	lambert := normal.Dot(toLight).Clip(0, math.Inf(1))
	color = color.Add(prim.DiffuseColor(hitPoint).Scale(lambert.Mul(seeLight)))

	if depth < MaxBounces {
		reflDir := dir.Sub(normal.Mul(2).Scale(dir.Dot(normal))).Normalize()
		color = color.Add(tr.Raytrace(nudged, reflDir, depth+1).Mul(prim.Mirror()))
	}

	phong := normal.Dot(toLight.Add(toEye).Normalize())
	specular := phong.Clip(0, 1).Pow(SpecularExponent).Mul(seeLight)
	color = color.Add(types.Broadcast(n, white).Scale(specular))

	return color
}

func (tr *Whitted) countRays(depth, n int) {
	if depth == 0 {
		tr.stats.PrimaryRays += uint64(n)
	} else {
		tr.stats.ReflectionRays += uint64(n)
	}
	if depth > tr.stats.MaxDepth {
		tr.stats.MaxDepth = depth
	}
}
