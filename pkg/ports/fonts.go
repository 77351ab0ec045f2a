package ports

import (
	"errors"

	"golang.org/x/image/font"
)

// ErrFontNotFound is returned when a font identifier is not registered.
var ErrFontNotFound = errors.New("fonts: font not found")

// FontInfo describes a registered font.
type FontInfo struct {
	ID         string   // Stable identifier derived from the file name (e.g., "noto_sans_jp_bold")
	Name       string   // Human-readable display name (e.g., "Noto Sans Jp Bold")
	Categories []string // Category tags (e.g., "sans-serif", "handwritten")
}

// FontProvider abstracts font lookup and face creation.
// Implementations own a size-indexed face cache so repeated lookups
// avoid re-building faces.
type FontProvider interface {
	// Exists reports whether the font identifier is registered.
	Exists(id string) bool

	// Face returns a renderable/measurable face for the font at the given
	// pixel size. It fails with ErrFontNotFound for unknown identifiers.
	Face(id string, size int) (font.Face, error)

	// List returns metadata for all registered fonts.
	List() []FontInfo
}
