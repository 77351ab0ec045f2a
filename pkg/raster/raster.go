// Package raster provides small helpers for working with straight-alpha
// RGBA frames. Frames are never mutated in place: every transform
// allocates a new image.
package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// ToNRGBA converts an image to straight-alpha NRGBA. The input image is
// always copied, even when it is already an *image.NRGBA.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Clone returns a copy of the frame.
func Clone(img *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)
	return dst
}

// Offset pastes the frame onto a fresh transparent canvas of the same
// size at (dx, dy). Pixels pushed outside the canvas are clipped.
func Offset(img *image.NRGBA, dx, dy int) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds.Add(image.Pt(dx, dy)), img, bounds.Min, draw.Over)
	return dst
}

// Composite alpha-composites the layers bottom-up onto a fresh
// transparent canvas sized like the first layer.
func Composite(layers ...*image.NRGBA) *image.NRGBA {
	if len(layers) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	dst := image.NewNRGBA(layers[0].Bounds())
	for _, layer := range layers {
		draw.Draw(dst, dst.Bounds(), layer, layer.Bounds().Min, draw.Over)
	}
	return dst
}
