// Package webpencoder provides a still image encoder producing lossy
// WebP payloads.
package webpencoder

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gen2brain/webp"

	"github.com/user/emojigen/pkg/ports"
)

// DefaultQuality is the fixed lossy quality level for still output.
const DefaultQuality = 90

// Encoder implements ports.StillEncoder using lossy WebP.
type Encoder struct {
	quality int
}

// New creates a new Encoder with the given quality (1-100).
// A non-positive quality falls back to DefaultQuality.
func New(quality int) *Encoder {
	if quality <= 0 {
		quality = DefaultQuality
	}
	return &Encoder{quality: quality}
}

// EncodeStill encodes one frame as lossy WebP.
func (e *Encoder) EncodeStill(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, webp.Options{Quality: e.quality, Lossless: false}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Encoder implements ports.StillEncoder
var _ ports.StillEncoder = (*Encoder)(nil)
