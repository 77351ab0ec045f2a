package motion

import (
	"context"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/user/emojigen/pkg/adapters/logger"
	"github.com/user/emojigen/pkg/colorspace"
	"github.com/user/emojigen/pkg/pipeline"
)

// testBase returns a 64x64 frame with an opaque red square in the middle
// and transparent borders, so displacement is observable.
func testBase() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 24; y < 40; y++ {
		for x := 24; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestFrameCount(t *testing.T) {
	stage := NewStage(logger.NewNoop())

	tests := []struct {
		speed float64
		want  int
	}{
		{1.0, 20},
		{2.0, 10},
		{0.5, 40},
		{5.0, 4},
	}

	for _, tt := range tests {
		if got := stage.FrameCount(tt.speed); got != tt.want {
			t.Errorf("FrameCount(%v) = %d, want %d", tt.speed, got, tt.want)
		}
	}
}

func TestFrameCountNeverZero(t *testing.T) {
	stage := NewStage(logger.NewNoop(), WithTiming(1, 0.1))

	if got := stage.FrameCount(5.0); got < 1 {
		t.Errorf("FrameCount(5.0) = %d, want at least 1", got)
	}
}

func TestExecuteNone(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	base := testBase()

	result, err := stage.Execute(context.Background(), pipeline.MotionInput{
		Base:   base,
		Motion: pipeline.MotionConfig{Type: pipeline.MotionNone, Speed: 1.0},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result.Frames) != 1 {
		t.Fatalf("Execute() returned %d frames, want 1", len(result.Frames))
	}
	if result.Frames[0] != base {
		t.Error("none motion should pass the base frame through unchanged")
	}
}

func TestExecuteShakeReproducible(t *testing.T) {
	newStage := func() *Stage {
		return NewStage(logger.NewNoop(), WithRandSource(func() rand.Source {
			return rand.NewSource(7)
		}))
	}
	input := pipeline.MotionInput{
		Base:   testBase(),
		Motion: pipeline.MotionConfig{Type: pipeline.MotionShake, Intensity: pipeline.IntensityMedium, Speed: 1.0},
	}

	first, err := newStage().Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	second, err := newStage().Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() second run error = %v", err)
	}

	if len(first.Frames) != 20 {
		t.Fatalf("Execute() returned %d frames, want 20", len(first.Frames))
	}
	for i := range first.Frames {
		a := first.Frames[i]
		b := second.Frames[i]
		for p := range a.Pix {
			if a.Pix[p] != b.Pix[p] {
				t.Fatalf("frame %d differs between identically seeded runs", i)
			}
		}
	}
}

func TestExecuteShakeDisplacementBounded(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	base := testBase()

	result, err := stage.Execute(context.Background(), pipeline.MotionInput{
		Base:   base,
		Motion: pipeline.MotionConfig{Type: pipeline.MotionShake, Intensity: pipeline.IntensityHigh, Speed: 1.0},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// High intensity doubles the 5px base amplitude; the square starts at
	// (24,24) so it can shift at most to (14,14)..(34,34).
	for i, frame := range result.Frames {
		minX, minY := opaqueOrigin(frame)
		if minX < 14 || minX > 34 || minY < 14 || minY > 34 {
			t.Errorf("frame %d displaced to (%d,%d), outside amplitude 10", i, minX, minY)
		}
	}
}

func TestExecuteSpinFirstFrameUnrotated(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	base := testBase()

	result, err := stage.Execute(context.Background(), pipeline.MotionInput{
		Base:   base,
		Motion: pipeline.MotionConfig{Type: pipeline.MotionSpin, Speed: 1.0},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result.Frames) != 20 {
		t.Fatalf("Execute() returned %d frames, want 20", len(result.Frames))
	}

	first := result.Frames[0]
	if first == base {
		t.Error("spin frame 0 should be a copy, not the base frame itself")
	}
	for p := range base.Pix {
		if first.Pix[p] != base.Pix[p] {
			t.Fatal("spin frame 0 should be pixel-identical to the base frame")
		}
	}

	// Canvas size must stay fixed across the rotation.
	for i, frame := range result.Frames {
		if frame.Bounds() != base.Bounds() {
			t.Errorf("frame %d bounds = %v, want %v", i, frame.Bounds(), base.Bounds())
		}
	}
}

func TestExecuteBounceOffsets(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	base := testBase()

	result, err := stage.Execute(context.Background(), pipeline.MotionInput{
		Base:   base,
		Motion: pipeline.MotionConfig{Type: pipeline.MotionBounce, Intensity: pipeline.IntensityMedium, Speed: 1.0},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	count := len(result.Frames)
	if count != 20 {
		t.Fatalf("Execute() returned %d frames, want 20", count)
	}

	for i, frame := range result.Frames {
		wantDy := int(math.Round(math.Sin(2*math.Pi*float64(i)/float64(count)) * 10))
		_, minY := opaqueOrigin(frame)
		if gotDy := minY - 24; gotDy != wantDy {
			t.Errorf("frame %d vertical offset = %d, want %d", i, gotDy, wantDy)
		}
	}
}

func TestExecuteGamingFallbackPreservesAlpha(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	base := testBase()

	result, err := stage.Execute(context.Background(), pipeline.MotionInput{
		Base:      base,
		Motion:    pipeline.MotionConfig{Type: pipeline.MotionGaming, Speed: 1.0},
		TextColor: colorspace.RGB{R: 255},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for i, frame := range result.Frames {
		for p := 3; p < len(frame.Pix); p += 4 {
			if frame.Pix[p] != base.Pix[p] {
				t.Fatalf("frame %d changed alpha at pixel %d", i, p/4)
			}
		}
	}

	// A quarter of the way through the cycle the red square should no
	// longer be red.
	quarter := result.Frames[5]
	c := quarter.NRGBAAt(30, 30)
	if c.R == 255 && c.G == 0 && c.B == 0 {
		t.Error("gaming frame 5 still has the original fill color")
	}
}

func TestExecuteGamingPrefersRecolor(t *testing.T) {
	stage := NewStage(logger.NewNoop())
	base := testBase()

	var fills []colorspace.RGB
	recolor := func(ctx context.Context, fill colorspace.RGB) (*image.NRGBA, error) {
		fills = append(fills, fill)
		return testBase(), nil
	}

	result, err := stage.Execute(context.Background(), pipeline.MotionInput{
		Base:      base,
		Motion:    pipeline.MotionConfig{Type: pipeline.MotionGaming, Speed: 1.0},
		TextColor: colorspace.RGB{R: 255},
		Recolor:   recolor,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(fills) != len(result.Frames) {
		t.Fatalf("recolor called %d times for %d frames", len(fills), len(result.Frames))
	}
	if fills[0] != (colorspace.RGB{R: 255}) {
		t.Errorf("frame 0 fill = %v, want original color", fills[0])
	}
	// Half a rotation from red lands on cyan.
	if fills[10] != (colorspace.RGB{G: 255, B: 255}) {
		t.Errorf("frame 10 fill = %v, want cyan", fills[10])
	}
}

// opaqueOrigin returns the top-left coordinate of the opaque region.
func opaqueOrigin(img *image.NRGBA) (int, int) {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.NRGBAAt(x, y).A == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
		}
	}
	return minX, minY
}
