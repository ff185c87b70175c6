package renderer

type Options struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Max number of rows traced as a single batch. A non-positive value
	// traces the whole frame at once.
	BlockH int

	// Render at Supersample times the frame resolution and downscale the
	// result. Values <= 1 disable supersampling.
	Supersample int
}

// Validate the options and fill in defaults.
func (opts *Options) validate() error {
	if opts.FrameW <= 0 || opts.FrameH <= 0 {
		return ErrInvalidFrameSize
	}
	if opts.Supersample < 0 {
		return ErrInvalidSupersample
	}
	if opts.Supersample == 0 {
		opts.Supersample = 1
	}
	return nil
}
