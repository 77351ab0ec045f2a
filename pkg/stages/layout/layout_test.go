package layout

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/emojigen/pkg/adapters/logger"
	"github.com/user/emojigen/pkg/colorspace"
	"github.com/user/emojigen/pkg/mocks"
	"github.com/user/emojigen/pkg/pipeline"
)

func newTestStage() *Stage {
	return NewStage(&mocks.FontProvider{}, DefaultConfig(), logger.NewNoop())
}

func squareInput(text string) pipeline.LayoutInput {
	return pipeline.LayoutInput{
		Text: text,
		Style: pipeline.TextStyle{
			FontID:    "mock",
			TextColor: "#FF0000",
		},
		Layout: pipeline.LayoutConfig{Mode: pipeline.ModeSquare, Alignment: pipeline.AlignCenter},
	}
}

func TestExecuteSquareCanvas(t *testing.T) {
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), squareInput("AB"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := image.Rect(0, 0, 256, 256)
	if result.Frame.Bounds() != want {
		t.Errorf("square frame bounds = %v, want %v", result.Frame.Bounds(), want)
	}
	// The mock face has constant metrics, so the fitting search runs to
	// its upper bound.
	if result.FontSize != 200 {
		t.Errorf("FontSize = %d, want 200", result.FontSize)
	}
}

func TestExecuteBannerCanvas(t *testing.T) {
	stage := newTestStage()

	input := squareInput("AB")
	input.Layout.Mode = pipeline.ModeBanner

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// basicfont glyphs are 7px wide with 13px line height; the canvas
	// wraps the text block plus 10px padding on every edge.
	want := image.Rect(0, 0, 14+20, 13+20)
	if result.Frame.Bounds() != want {
		t.Errorf("banner frame bounds = %v, want %v", result.Frame.Bounds(), want)
	}
	if result.FontSize != 64 {
		t.Errorf("FontSize = %d, want 64", result.FontSize)
	}
}

func TestExecuteBannerMultiline(t *testing.T) {
	stage := newTestStage()

	input := squareInput("A\nBB")
	input.Layout.Mode = pipeline.ModeBanner

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Two lines stack vertically; the widest line sets the block width.
	want := image.Rect(0, 0, 14+20, 26+20)
	if result.Frame.Bounds() != want {
		t.Errorf("multiline banner bounds = %v, want %v", result.Frame.Bounds(), want)
	}
}

func TestExecuteAlignmentOrdering(t *testing.T) {
	stage := newTestStage()

	origins := map[pipeline.Alignment]int{}
	for _, align := range []pipeline.Alignment{pipeline.AlignLeft, pipeline.AlignCenter, pipeline.AlignRight} {
		input := squareInput("AB")
		input.Layout.Alignment = align

		result, err := stage.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("Execute(%s) error = %v", align, err)
		}
		origins[align] = opaqueMinX(result.Frame)
	}

	if !(origins[pipeline.AlignLeft] < origins[pipeline.AlignCenter]) {
		t.Errorf("left origin %d not left of center origin %d",
			origins[pipeline.AlignLeft], origins[pipeline.AlignCenter])
	}
	if !(origins[pipeline.AlignCenter] < origins[pipeline.AlignRight]) {
		t.Errorf("center origin %d not left of right origin %d",
			origins[pipeline.AlignCenter], origins[pipeline.AlignRight])
	}
}

func TestExecuteTransparentBackground(t *testing.T) {
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), squareInput("AB"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, pt := range []image.Point{{0, 0}, {255, 0}, {0, 255}, {255, 255}} {
		if a := result.Frame.NRGBAAt(pt.X, pt.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", pt, a)
		}
	}
}

func TestExecuteFillColor(t *testing.T) {
	stage := newTestStage()

	result, err := stage.Execute(context.Background(), squareInput("AB"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	found := false
	for i := 0; i < len(result.Frame.Pix); i += 4 {
		if result.Frame.Pix[i+3] == 255 {
			found = true
			if result.Frame.Pix[i] != 255 || result.Frame.Pix[i+1] != 0 || result.Frame.Pix[i+2] != 0 {
				t.Fatalf("opaque pixel = #%02X%02X%02X, want #FF0000",
					result.Frame.Pix[i], result.Frame.Pix[i+1], result.Frame.Pix[i+2])
			}
		}
	}
	if !found {
		t.Fatal("no opaque pixels rendered")
	}
}

func TestExecuteFillOverride(t *testing.T) {
	stage := newTestStage()

	input := squareInput("AB")
	input.FillOverride = &colorspace.RGB{G: 255}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	found := false
	for i := 0; i < len(result.Frame.Pix); i += 4 {
		if result.Frame.Pix[i+3] == 255 && result.Frame.Pix[i+1] == 255 {
			found = true
			break
		}
	}
	if !found {
		t.Error("fill override color not present in the frame")
	}
}

func TestExecuteOutlineExpandsCoverage(t *testing.T) {
	stage := newTestStage()

	plain, err := stage.Execute(context.Background(), squareInput("AB"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	input := squareInput("AB")
	input.Style.OutlineColor = "#0000FF"
	input.Style.OutlineWidth = 3
	outlined, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() with outline error = %v", err)
	}

	if opaqueCount(outlined.Frame) <= opaqueCount(plain.Frame) {
		t.Error("outline did not expand pixel coverage")
	}
}

func TestExecuteShadowAddsCoverage(t *testing.T) {
	stage := newTestStage()

	plain, err := stage.Execute(context.Background(), squareInput("AB"))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	input := squareInput("AB")
	input.Style.Shadow = true
	shadowed, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() with shadow error = %v", err)
	}

	if coveredCount(shadowed.Frame) <= coveredCount(plain.Frame) {
		t.Error("shadow did not add pixel coverage")
	}
}

func TestExecuteInvalidColor(t *testing.T) {
	stage := newTestStage()

	input := squareInput("AB")
	input.Style.TextColor = "not-a-color"

	_, err := stage.Execute(context.Background(), input)
	if err == nil {
		t.Fatal("Execute() with invalid color expected error, got nil")
	}
	if !errors.Is(err, colorspace.ErrInvalidColor) {
		t.Errorf("Execute() error = %v, want ErrInvalidColor", err)
	}
}

func TestFitSquareReducedByOutline(t *testing.T) {
	fonts := &mocks.FontProvider{}
	stage := NewStage(fonts, DefaultConfig(), logger.NewNoop())

	size, err := stage.FitSquare("AB", "mock", 0)
	if err != nil {
		t.Fatalf("FitSquare() error = %v", err)
	}
	if size != 200 {
		t.Errorf("FitSquare() = %d, want 200 with constant-metric face", size)
	}

	// Every probe size is requested through the provider.
	if len(fonts.FaceCalls) == 0 {
		t.Error("FitSquare() never requested a face")
	}
	for _, call := range fonts.FaceCalls {
		if call.Size < 10 || call.Size > 200 {
			t.Errorf("FitSquare() probed size %d, outside [10, 200]", call.Size)
		}
	}
}

func opaqueMinX(img *image.NRGBA) int {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			if img.NRGBAAt(x, y).A == 255 {
				return x
			}
		}
	}
	return bounds.Max.X
}

func opaqueCount(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			n++
		}
	}
	return n
}

func coveredCount(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}
