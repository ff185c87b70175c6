package renderer

import "time"

type BlockStat struct {
	// The block start row and height (in traced, possibly supersampled, rows).
	BlockY int
	BlockH int

	// The percentage of the frame area this block represents.
	FramePercent float32

	// Number of rays traced for the block, including secondary rays.
	Rays uint64

	// Render time for the block.
	RenderTime time.Duration
}

type FrameStats struct {
	// The tracer that rendered the frame.
	Tracer string

	// Individual block stats.
	Blocks []BlockStat

	// Ray counters for the entire frame.
	PrimaryRays    uint64
	ReflectionRays uint64
	ShadowRays     uint64

	// The deepest bounce reached.
	MaxDepth int

	// Total render time for entire frame.
	RenderTime time.Duration
}

// Total number of traced rays.
func (fs FrameStats) TotalRays() uint64 {
	return fs.PrimaryRays + fs.ReflectionRays + fs.ShadowRays
}
