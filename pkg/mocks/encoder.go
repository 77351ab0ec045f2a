package mocks

import (
	"image"

	"github.com/user/emojigen/pkg/ports"
)

// StillEncoder is a mock implementation of ports.StillEncoder.
type StillEncoder struct {
	EncodeStillFunc func(img image.Image) ([]byte, error)

	Calls int
}

func (m *StillEncoder) EncodeStill(img image.Image) ([]byte, error) {
	m.Calls++
	if m.EncodeStillFunc != nil {
		return m.EncodeStillFunc(img)
	}
	return []byte("still"), nil
}

var _ ports.StillEncoder = (*StillEncoder)(nil)

// AnimationEncoder is a mock implementation of ports.AnimationEncoder.
type AnimationEncoder struct {
	EncodeAnimationFunc func(frames []image.Image, delayMs int) ([]byte, error)

	Calls []AnimationCall
}

// AnimationCall records one EncodeAnimation invocation.
type AnimationCall struct {
	FrameCount int
	DelayMs    int
}

func (m *AnimationEncoder) EncodeAnimation(frames []image.Image, delayMs int) ([]byte, error) {
	m.Calls = append(m.Calls, AnimationCall{FrameCount: len(frames), DelayMs: delayMs})
	if m.EncodeAnimationFunc != nil {
		return m.EncodeAnimationFunc(frames, delayMs)
	}
	return []byte("animated"), nil
}

var _ ports.AnimationEncoder = (*AnimationEncoder)(nil)
