package ports

import (
	"image"
)

// StillEncoder abstracts single-frame still image encoding.
type StillEncoder interface {
	// EncodeStill encodes one frame as a compressed still image payload.
	EncodeStill(img image.Image) ([]byte, error)
}

// AnimationEncoder abstracts multi-frame animation container encoding.
type AnimationEncoder interface {
	// EncodeAnimation encodes an ordered frame sequence as a looping
	// animation. Every frame is displayed for delayMs milliseconds and the
	// loop count is infinite. A single frame still produces a valid
	// (non-animated) container.
	EncodeAnimation(frames []image.Image, delayMs int) ([]byte, error)
}
