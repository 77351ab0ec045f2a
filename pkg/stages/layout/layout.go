// Package layout implements the text layout stage: canvas sizing,
// auto-fit font sizing, alignment and the actual draw.
package layout

import (
	"context"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/user/emojigen/pkg/colorspace"
	"github.com/user/emojigen/pkg/pipeline"
	"github.com/user/emojigen/pkg/ports"
	"github.com/user/emojigen/pkg/raster"
)

// Config contains the layout constants.
type Config struct {
	SquareSize     int     // Fixed square canvas edge (default: 256)
	MinFontSize    int     // Lower bound of the fitting search (default: 10)
	MaxFontSize    int     // Upper bound of the fitting search (default: 200)
	BannerFontSize int     // Fixed font size in banner mode (default: 64)
	Padding        int     // Padding on every edge (default: 10)
	ShadowOffset   int     // Shadow displacement on both axes (default: 4)
	ShadowBlur     float64 // Gaussian blur parameter for the shadow (default: 5)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		SquareSize:     256,
		MinFontSize:    10,
		MaxFontSize:    200,
		BannerFontSize: 64,
		Padding:        10,
		ShadowOffset:   4,
		ShadowBlur:     5,
	}
}

// Stage renders text into exactly one base frame.
type Stage struct {
	fonts  ports.FontProvider
	cfg    Config
	logger ports.Logger
}

// NewStage creates a new layout stage.
func NewStage(fonts ports.FontProvider, cfg Config, logger ports.Logger) *Stage {
	return &Stage{
		fonts:  fonts,
		cfg:    cfg,
		logger: logger.WithComponent("layout"),
	}
}

// blockMetrics describes a measured multi-line text block.
type blockMetrics struct {
	width      int
	height     int
	lineWidths []int
	lineHeight int
	ascent     int
}

// Execute renders the text with the given style and layout into a frame.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	result := pipeline.LayoutResult{}
	lines := strings.Split(input.Text, "\n")

	var fontSize, canvasW, canvasH int
	switch input.Layout.Mode {
	case pipeline.ModeBanner:
		fontSize = s.cfg.BannerFontSize
		face, err := s.fonts.Face(input.Style.FontID, fontSize)
		if err != nil {
			return result, err
		}
		m := measureBlock(face, lines)
		canvasW = m.width + s.cfg.Padding*2 + input.Style.OutlineWidth*2
		canvasH = m.height + s.cfg.Padding*2 + input.Style.OutlineWidth*2
	default:
		size, err := s.FitSquare(input.Text, input.Style.FontID, input.Style.OutlineWidth)
		if err != nil {
			return result, err
		}
		fontSize = size
		canvasW = s.cfg.SquareSize
		canvasH = s.cfg.SquareSize
	}

	face, err := s.fonts.Face(input.Style.FontID, fontSize)
	if err != nil {
		return result, err
	}
	m := measureBlock(face, lines)

	// Horizontal block position by alignment; vertical is always centered.
	var blockX int
	switch input.Layout.Alignment {
	case pipeline.AlignLeft:
		blockX = s.cfg.Padding + input.Style.OutlineWidth
	case pipeline.AlignRight:
		blockX = canvasW - m.width - s.cfg.Padding - input.Style.OutlineWidth
	default:
		blockX = (canvasW - m.width) / 2
	}
	blockY := (canvasH - m.height) / 2

	fill, err := s.fillColor(input)
	if err != nil {
		return result, err
	}

	var outline *color.NRGBA
	if input.Style.OutlineWidth > 0 {
		rgb, err := colorspace.ParseHex(input.Style.OutlineColor)
		if err != nil {
			return result, err
		}
		c := rgb.NRGBA(255)
		outline = &c
	}

	text := s.drawBlock(canvasW, canvasH, lines, face, m, blockX, blockY,
		input.Layout.Alignment, fill, outline, input.Style.OutlineWidth)

	frame := text
	if input.Style.Shadow {
		shadowColor := color.NRGBA{A: 128}
		shadow := s.drawBlock(canvasW, canvasH, lines, face, m,
			blockX+s.cfg.ShadowOffset, blockY+s.cfg.ShadowOffset,
			input.Layout.Alignment, shadowColor, &shadowColor, input.Style.OutlineWidth)
		blurred := imaging.Blur(shadow, s.cfg.ShadowBlur)
		frame = raster.Composite(blurred, text)
	}

	s.logger.Debug("Rendered base frame: %dx%d at font size %d", canvasW, canvasH, fontSize)

	result.Frame = frame
	result.FontSize = fontSize
	return result, nil
}

// FitSquare finds the largest font size whose multi-line bounding box
// fits the square canvas minus padding and outline, by binary search.
// Assumes the bounding box is monotonically non-decreasing in font size.
func (s *Stage) FitSquare(text, fontID string, outlineWidth int) (int, error) {
	available := s.cfg.SquareSize - s.cfg.Padding*2 - outlineWidth*2
	lines := strings.Split(text, "\n")

	low := s.cfg.MinFontSize
	high := s.cfg.MaxFontSize
	best := s.cfg.MinFontSize

	for low <= high {
		mid := (low + high) / 2
		face, err := s.fonts.Face(fontID, mid)
		if err != nil {
			return 0, err
		}

		m := measureBlock(face, lines)
		if m.width <= available && m.height <= available {
			best = mid
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	return best, nil
}

func (s *Stage) fillColor(input pipeline.LayoutInput) (color.NRGBA, error) {
	if input.FillOverride != nil {
		return input.FillOverride.NRGBA(255), nil
	}
	rgb, err := colorspace.ParseHex(input.Style.TextColor)
	if err != nil {
		return color.NRGBA{}, err
	}
	return rgb.NRGBA(255), nil
}

// drawBlock draws the text block onto a fresh transparent canvas.
// Lines are aligned individually inside the block. When outline is set,
// understrokes are stamped on a disc of radius outlineWidth beneath the
// fill, approximating a stroked outline.
func (s *Stage) drawBlock(
	w, h int,
	lines []string,
	face font.Face,
	m blockMetrics,
	blockX, blockY int,
	align pipeline.Alignment,
	fill color.NRGBA,
	outline *color.NRGBA,
	outlineWidth int,
) *image.NRGBA {
	dc := gg.NewContext(w, h)
	dc.SetFontFace(face)

	for i, line := range lines {
		var lineX int
		switch align {
		case pipeline.AlignLeft:
			lineX = blockX
		case pipeline.AlignRight:
			lineX = blockX + m.width - m.lineWidths[i]
		default:
			lineX = blockX + (m.width-m.lineWidths[i])/2
		}
		baseline := blockY + m.ascent + i*m.lineHeight

		if outline != nil && outlineWidth > 0 {
			dc.SetColor(*outline)
			for dy := -outlineWidth; dy <= outlineWidth; dy++ {
				for dx := -outlineWidth; dx <= outlineWidth; dx++ {
					if dx*dx+dy*dy > outlineWidth*outlineWidth {
						continue
					}
					dc.DrawString(line, float64(lineX+dx), float64(baseline+dy))
				}
			}
		}

		dc.SetColor(fill)
		dc.DrawString(line, float64(lineX), float64(baseline))
	}

	return raster.ToNRGBA(dc.Image())
}

// measureBlock measures a multi-line text block with the given face.
func measureBlock(face font.Face, lines []string) blockMetrics {
	metrics := face.Metrics()
	m := blockMetrics{
		lineHeight: metrics.Height.Ceil(),
		ascent:     metrics.Ascent.Ceil(),
		lineWidths: make([]int, len(lines)),
	}

	for i, line := range lines {
		w := font.MeasureString(face, line).Ceil()
		m.lineWidths[i] = w
		if w > m.width {
			m.width = w
		}
	}
	m.height = m.lineHeight * len(lines)

	if m.width < 1 {
		m.width = 1
	}
	if m.height < 1 {
		m.height = 1
	}
	return m
}

var _ pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult] = (*Stage)(nil)
