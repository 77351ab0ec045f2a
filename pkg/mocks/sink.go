package mocks

import (
	"image"

	"github.com/user/emojigen/pkg/ports"
)

// DebugSink is a recording mock implementation of ports.DebugSink.
type DebugSink struct {
	EnabledValue bool

	BaseFrames   []image.Image
	MotionFrames []image.Image
	Outputs      [][]byte
}

func (m *DebugSink) Enabled() bool {
	return m.EnabledValue
}

func (m *DebugSink) SaveBaseFrame(img image.Image) error {
	m.BaseFrames = append(m.BaseFrames, img)
	return nil
}

func (m *DebugSink) SaveMotionFrame(index int, img image.Image) error {
	m.MotionFrames = append(m.MotionFrames, img)
	return nil
}

func (m *DebugSink) SaveOutput(data []byte, ext string) error {
	m.Outputs = append(m.Outputs, data)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
