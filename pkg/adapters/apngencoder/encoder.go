// Package apngencoder provides an animation encoder producing APNG
// payloads.
package apngencoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/kettek/apng"

	"github.com/user/emojigen/pkg/ports"
)

// Encoder implements ports.AnimationEncoder using the APNG container.
type Encoder struct{}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// EncodeAnimation encodes the frame sequence as an APNG with the given
// per-frame delay in milliseconds and an infinite loop count. A single
// frame yields a valid non-animated PNG-compatible container.
func (e *Encoder) EncodeAnimation(frames []image.Image, delayMs int) ([]byte, error) {
	if len(frames) == 0 {
		return nil, errors.New("apngencoder: no frames")
	}

	a := apng.APNG{
		Frames:    make([]apng.Frame, len(frames)),
		LoopCount: 0, // infinite
	}
	for i, frame := range frames {
		a.Frames[i] = apng.Frame{
			Image:            frame,
			DelayNumerator:   uint16(delayMs),
			DelayDenominator: 1000,
		}
	}

	var buf bytes.Buffer
	if err := apng.Encode(&buf, a); err != nil {
		return nil, fmt.Errorf("encode apng: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Encoder implements ports.AnimationEncoder
var _ ports.AnimationEncoder = (*Encoder)(nil)
