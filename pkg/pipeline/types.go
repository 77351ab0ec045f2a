package pipeline

import (
	"context"
	"fmt"
	"image"

	"github.com/user/emojigen/pkg/colorspace"
)

// =============================================================================
// Common Types
// =============================================================================

// OutputFormat tags the kind of payload a render produced.
type OutputFormat string

const (
	// OutputStill is a single-frame compressed still image (WebP).
	OutputStill OutputFormat = "still"
	// OutputAnimated is a looping animated container (APNG).
	OutputAnimated OutputFormat = "animated"
)

// TextStyle describes how text is filled and decorated.
type TextStyle struct {
	FontID       string // Font identifier (see ports.FontProvider)
	TextColor    string // Fill color as a hex string (e.g., "#FF0000")
	OutlineColor string // Outline color as a hex string (default: "#FFFFFF")
	OutlineWidth int    // Outline width in pixels (0-20)
	Shadow       bool   // Draw a blurred drop shadow beneath the text
}

// LayoutMode selects the canvas sizing strategy.
type LayoutMode int

const (
	// ModeSquare renders onto a fixed 256x256 canvas with auto-fit sizing.
	ModeSquare LayoutMode = iota
	// ModeBanner renders at a fixed font size onto a dynamically sized canvas.
	ModeBanner
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case ModeSquare:
		return "square"
	case ModeBanner:
		return "banner"
	default:
		return "unknown"
	}
}

// ParseLayoutMode parses a string into a LayoutMode.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch s {
	case "square":
		return ModeSquare, nil
	case "banner":
		return ModeBanner, nil
	default:
		return ModeSquare, fmt.Errorf("unknown layout mode: %q", s)
	}
}

// Alignment selects horizontal text placement.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseAlignment parses a string into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignCenter, fmt.Errorf("unknown alignment: %q", s)
	}
}

// LayoutConfig selects canvas mode and alignment.
type LayoutConfig struct {
	Mode      LayoutMode
	Alignment Alignment
}

// MotionType is the closed set of animation motions.
type MotionType int

const (
	MotionNone MotionType = iota
	MotionShake
	MotionSpin
	MotionBounce
	MotionGaming
)

// String returns the string representation of the motion type.
func (m MotionType) String() string {
	switch m {
	case MotionNone:
		return "none"
	case MotionShake:
		return "shake"
	case MotionSpin:
		return "spin"
	case MotionBounce:
		return "bounce"
	case MotionGaming:
		return "gaming"
	default:
		return "unknown"
	}
}

// ParseMotionType parses a string into a MotionType.
func ParseMotionType(s string) (MotionType, error) {
	switch s {
	case "none":
		return MotionNone, nil
	case "shake":
		return MotionShake, nil
	case "spin":
		return MotionSpin, nil
	case "bounce":
		return MotionBounce, nil
	case "gaming":
		return MotionGaming, nil
	default:
		return MotionNone, fmt.Errorf("unknown motion type: %q", s)
	}
}

// Intensity is an animation intensity level.
type Intensity int

const (
	IntensityLow Intensity = iota
	IntensityMedium
	IntensityHigh
)

// Multiplier returns the amplitude multiplier for the intensity level.
func (i Intensity) Multiplier() float64 {
	switch i {
	case IntensityLow:
		return 0.5
	case IntensityHigh:
		return 2.0
	default:
		return 1.0
	}
}

// String returns the string representation of the intensity.
func (i Intensity) String() string {
	switch i {
	case IntensityLow:
		return "low"
	case IntensityMedium:
		return "medium"
	case IntensityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseIntensity parses a string into an Intensity.
func ParseIntensity(s string) (Intensity, error) {
	switch s {
	case "low":
		return IntensityLow, nil
	case "medium":
		return IntensityMedium, nil
	case "high":
		return IntensityHigh, nil
	default:
		return IntensityMedium, fmt.Errorf("unknown intensity: %q", s)
	}
}

// MotionConfig describes the requested animation.
type MotionConfig struct {
	Type      MotionType
	Intensity Intensity
	Speed     float64 // Cycle rate multiplier (0.1-5.0)
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains parameters for rendering the base frame.
type LayoutInput struct {
	Text   string
	Style  TextStyle
	Layout LayoutConfig

	// FillOverride substitutes the fill color without touching outline or
	// shadow styling. Used by the gaming motion's re-render path.
	FillOverride *colorspace.RGB
}

// LayoutResult contains the rendered base frame.
type LayoutResult struct {
	Frame    *image.NRGBA // Straight-alpha raster, never mutated after creation
	FontSize int          // Font size actually used
}

// =============================================================================
// Motion Stage Types
// =============================================================================

// RecolorFunc re-renders the base frame with a substituted fill color.
// It is the re-render capability the gaming motion prefers over its
// pixel-transform fallback.
type RecolorFunc func(ctx context.Context, fill colorspace.RGB) (*image.NRGBA, error)

// MotionInput contains parameters for frame synthesis.
type MotionInput struct {
	Base      *image.NRGBA
	Motion    MotionConfig
	TextColor colorspace.RGB // Original fill color (gaming hue rotation base)
	Recolor   RecolorFunc    // Optional re-render capability (gaming)
}

// MotionResult contains the synthesized frame sequence.
type MotionResult struct {
	Frames []*image.NRGBA
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the frames to serialize.
type EncodeInput struct {
	Frames []*image.NRGBA
	Format OutputFormat // Still vs animated container selection
	FPS    int          // Frame rate for animated containers
}

// EncodeResult contains the encoded payload.
type EncodeResult struct {
	Data   []byte
	Format OutputFormat
}
