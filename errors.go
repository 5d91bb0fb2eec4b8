package glyphkit

import "errors"

// Sentinel errors for glyphkit package.
var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("glyphkit: invalid config")

	// ErrNameCollision is returned when variant names alias under case folding.
	ErrNameCollision = errors.New("glyphkit: variant names collide under case folding")
)
