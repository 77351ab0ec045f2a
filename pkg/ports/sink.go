package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate rendering results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveBaseFrame saves the base rendered frame.
	SaveBaseFrame(img image.Image) error

	// SaveMotionFrame saves a synthesized motion frame.
	SaveMotionFrame(index int, img image.Image) error

	// SaveOutput saves the final encoded payload.
	SaveOutput(data []byte, ext string) error
}
