package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestOffset_Clips(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	shifted := Offset(src, 2, 1)

	if got := shifted.NRGBAAt(2, 1); got.R != 255 || got.A != 255 {
		t.Errorf("expected pixel at (2,1), got %+v", got)
	}
	if got := shifted.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("expected transparent origin, got %+v", got)
	}

	// Shifting fully off-canvas leaves an empty frame.
	gone := Offset(src, 10, 10)
	for i := 3; i < len(gone.Pix); i += 4 {
		if gone.Pix[i] != 0 {
			t.Fatal("expected fully transparent frame")
		}
	}
}

func TestOffset_DoesNotMutateSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, color.NRGBA{G: 200, A: 255})

	_ = Offset(src, 1, 0)

	if got := src.NRGBAAt(1, 1); got.G != 200 {
		t.Errorf("source mutated: %+v", got)
	}
}

func TestToNRGBA_Copies(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{B: 9, A: 255})

	dst := ToNRGBA(src)
	dst.SetNRGBA(0, 0, color.NRGBA{})

	if got := src.NRGBAAt(0, 0); got.B != 9 {
		t.Errorf("ToNRGBA aliased the source: %+v", got)
	}
}

func TestComposite_Order(t *testing.T) {
	bottom := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	bottom.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	top := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	top.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})

	out := Composite(bottom, top)
	if got := out.NRGBAAt(0, 0); got.G != 255 || got.R != 0 {
		t.Errorf("expected top layer to win, got %+v", got)
	}
}
