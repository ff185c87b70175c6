package renderer

import "errors"

var (
	ErrSceneNotDefined     = errors.New("renderer: no scene defined")
	ErrCameraNotDefined    = errors.New("renderer: no camera defined")
	ErrInvalidFrameSize    = errors.New("renderer: frame dimensions must be positive")
	ErrInvalidSupersample  = errors.New("renderer: supersample factor must be positive")
	ErrConflictingRotation = errors.New("renderer: clockwise and counter-clockwise rotation are mutually exclusive")
)
