package renderer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/tracer"
	"github.com/anthonynsimon/bild/transform"
)

// The direction of the rotate step applied to the scene before rendering.
type Rotation uint8

const (
	NoRotation Rotation = iota
	RotateCW
	RotateCCW
)

// Map the pair of rotation flags to a Rotation. Setting both flags is an error.
func RotationFromFlags(cw, ccw bool) (Rotation, error) {
	switch {
	case cw && ccw:
		return NoRotation, ErrConflictingRotation
	case cw:
		return RotateCW, nil
	case ccw:
		return RotateCCW, nil
	}
	return NoRotation, nil
}

// The scene rotation angle for this rotation.
func (r Rotation) Angle() float64 {
	switch r {
	case RotateCW:
		return scene.RotationStep
	case RotateCCW:
		return -scene.RotationStep
	}
	return 0
}

type Renderer interface {
	// Apply the rotation to the scene and render a frame.
	Render(Rotation) (*image.RGBA, error)

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics for the last frame.
	Stats() FrameStats
}

type defaultRenderer struct {
	logger log.Logger

	scene     *scene.Scene
	scheduler tracer.BlockScheduler
	tracer    tracer.Tracer
	options   Options

	// Traced frame dimensions (frame dimensions times the supersample factor).
	traceW int
	traceH int

	accumBuffer []float64
	stats       FrameStats
}

// Create a new renderer that traces the scene on the CPU in blocks emitted by
// the supplied scheduler. If scheduler is nil, a fixed scheduler using
// opts.BlockH is used.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if len(sc.Primitives) == 0 {
		return nil, ErrSceneNotDefined
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if scheduler == nil {
		scheduler = tracer.NewFixedScheduler(opts.BlockH * opts.Supersample)
	}

	tr, err := tracer.NewWhitted("cpu-0", sc)
	if err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		scene:     sc,
		scheduler: scheduler,
		tracer:    tr,
		options:   opts,
		traceW:    opts.FrameW * opts.Supersample,
		traceH:    opts.FrameH * opts.Supersample,
	}
	r.accumBuffer = make([]float64, r.traceW*r.traceH*3)

	err = tr.Setup(r.traceW, r.traceH, r.accumBuffer)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Render a single frame with the default block scheduler. The rotation flags
// are mutually exclusive; when one is set the scene is rotated in place
// before rendering.
func RenderFrame(sc *scene.Scene, width, height int, rotateCW, rotateCCW bool) (*image.RGBA, error) {
	rot, err := RotationFromFlags(rotateCW, rotateCCW)
	if err != nil {
		return nil, err
	}

	r, err := NewDefault(sc, nil, Options{FrameW: width, FrameH: height})
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Render(rot)
}

// Shutdown the renderer.
func (r *defaultRenderer) Close() {
	if r.tracer != nil {
		r.tracer.Close()
		r.tracer = nil
	}
	r.accumBuffer = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

func (r *defaultRenderer) Render(rot Rotation) (*image.RGBA, error) {
	if r.tracer == nil {
		return nil, tracer.ErrNotSetup
	}

	if rot != NoRotation {
		r.scene.Rotate(rot.Angle())
		r.logger.Infof("rotated scene by %.1f degrees", rot.Angle()*180/math.Pi)
	}

	start := time.Now()
	r.stats = FrameStats{Tracer: r.tracer.Id()}

	frameArea := float32(r.traceW * r.traceH)
	for _, blockReq := range r.scheduler.Schedule(r.traceW, r.traceH) {
		err := r.tracer.Trace(blockReq)
		if err != nil {
			return nil, err
		}

		ts := r.tracer.Stats()
		r.stats.Blocks = append(r.stats.Blocks, BlockStat{
			BlockY:       ts.BlockY,
			BlockH:       ts.BlockH,
			FramePercent: 100.0 * float32(ts.BlockH*r.traceW) / frameArea,
			Rays:         ts.PrimaryRays + ts.ReflectionRays + ts.ShadowRays,
			RenderTime:   ts.BlockTime,
		})
		r.stats.PrimaryRays += ts.PrimaryRays
		r.stats.ReflectionRays += ts.ReflectionRays
		r.stats.ShadowRays += ts.ShadowRays
		if ts.MaxDepth > r.stats.MaxDepth {
			r.stats.MaxDepth = ts.MaxDepth
		}
	}

	frame := assembleFrame(r.accumBuffer, r.traceW, r.traceH)
	if r.options.Supersample > 1 {
		frame = transform.Resize(frame, r.options.FrameW, r.options.FrameH, transform.Linear)
	}

	r.stats.RenderTime = time.Since(start)
	r.logger.Infof("rendered %dx%d frame in %s", r.options.FrameW, r.options.FrameH, r.stats.RenderTime)
	return frame, nil
}

// Convert an accumulation buffer with 3 values per pixel into an 8-bit image.
// Channels are clipped to [0, 1] and scaled to [0, 255] with truncation.
func assembleFrame(accum []float64, frameW, frameH int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frameW, frameH))
	for y := 0; y < frameH; y++ {
		for x := 0; x < frameW; x++ {
			offset := (y*frameW + x) * 3
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(accum[offset]),
				G: toByte(accum[offset+1]),
				B: toByte(accum[offset+2]),
				A: 255,
			})
		}
	}
	return img
}

func toByte(v float64) uint8 {
	return uint8(255 * math.Min(math.Max(v, 0), 1))
}
