// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/emojigen/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveBaseFrame does nothing.
func (s *Sink) SaveBaseFrame(img image.Image) error {
	return nil
}

// SaveMotionFrame does nothing.
func (s *Sink) SaveMotionFrame(index int, img image.Image) error {
	return nil
}

// SaveOutput does nothing.
func (s *Sink) SaveOutput(data []byte, ext string) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
