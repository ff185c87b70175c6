package tracer

import "time"

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Frame dimensions.
	FrameW int
	FrameH int

	// Block start row and height.
	BlockY int
	BlockH int
}

// Tracer statistics.
type Stats struct {
	// The rendered block position and height.
	BlockY int
	BlockH int

	// The time for rendering this block.
	BlockTime time.Duration

	// Ray counters.
	PrimaryRays    uint64
	ReflectionRays uint64
	ShadowRays     uint64

	// The deepest bounce reached while rendering the block.
	MaxDepth int
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Attach the accumulation buffer that receives traced colors. The
	// buffer holds 3 values (r, g, b) per pixel in row-major order.
	Setup(frameW, frameH int, accumBuffer []float64) error

	// Trace a block of rows into the accumulation buffer. The call blocks
	// until the block is complete.
	Trace(BlockRequest) error

	// Retrieve statistics for the last traced block.
	Stats() *Stats
}
