// Package colorspace provides color conversions between hexadecimal
// strings, RGB triples and HSL triples, plus hue rotation.
package colorspace

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// ErrInvalidColor is returned when a hex color string is malformed.
var ErrInvalidColor = errors.New("colorspace: invalid hex color")

// RGB is an 8-bit-per-channel RGB color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a hex color string such as "#FF0000" or "#F00".
// The leading "#" is optional. A 3-digit form expands each digit
// (e.g. "F00" becomes "FF0000").
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	if len(s) == 3 {
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = s[i]
			expanded[2*i+1] = s[i]
		}
		s = string(expanded)
	}

	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex returns the color as an uppercase hex string with a leading "#".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA returns the color as a color.NRGBA with the given alpha.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// HSL converts the color to HSL. Hue is in degrees [0,360); saturation
// and lightness are in [0,1]. Achromatic colors yield h=0, s=0.
func (c RGB) HSL() (h, s, l float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	l = (maxC + minC) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	s = delta / (1 - math.Abs(2*l-1))

	switch maxC {
	case r:
		h = 60 * positiveMod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}

	return h, s, l
}

// FromHSL converts an HSL triple to RGB. Hue is in degrees; saturation
// and lightness are in [0,1]. Channels are rounded to the nearest
// integer and clamped to [0,255].
func FromHSL(h, s, l float64) RGB {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(positiveMod(h/60.0, 2)-1))
	m := l - c/2.0

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: clampChannel((r + m) * 255),
		G: clampChannel((g + m) * 255),
		B: clampChannel((b + m) * 255),
	}
}

// RotateHue rotates the hue of a color by the given number of degrees.
// Negative degrees rotate backwards; the hue is reduced modulo 360.
func RotateHue(c RGB, degrees float64) RGB {
	h, s, l := c.HSL()
	h = positiveMod(h+degrees, 360)
	return FromHSL(h, s, l)
}

func positiveMod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
