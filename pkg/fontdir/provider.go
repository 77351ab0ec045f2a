// Package fontdir provides a directory-backed font registry implementing
// ports.FontProvider. Fonts are loaded once during a scan; render faces
// are derived lazily per (id, size) and cached without eviction.
package fontdir

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/emojigen/pkg/ports"
)

// BuiltinFontID identifies the embedded Go Regular fallback font.
const BuiltinFontID = "go_regular"

type record struct {
	info ports.FontInfo
	font *truetype.Font
}

type faceKey struct {
	id   string
	size int
}

// Provider is a font registry backed by parsed TrueType/OpenType fonts.
// The face cache is guarded so concurrent first-time population under
// parallel renders is safe.
type Provider struct {
	mu    sync.RWMutex
	fonts map[string]*record
	order []string
	faces map[faceKey]font.Face
}

// NewProvider creates an empty font registry.
func NewProvider() *Provider {
	return &Provider{
		fonts: make(map[string]*record),
		faces: make(map[faceKey]font.Face),
	}
}

// ScanDirectory registers every .ttf/.otf file found in dir. Files that
// fail to parse are skipped with a warning. A missing directory is not
// an error; it is created so fonts can be dropped in later.
func (p *Provider) ScanDirectory(dir string, fs ports.FileSystem, logger ports.Logger) error {
	exists, err := fs.Exists(dir)
	if err != nil {
		return fmt.Errorf("check font directory: %w", err)
	}
	if !exists {
		logger.Warn("Font directory does not exist: %s", dir)
		return fs.MkdirAll(dir)
	}

	names, err := fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read font directory: %w", err)
	}

	for _, name := range names {
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}

		data, err := fs.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("Failed to read font file %s: %s", name, err)
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		id := FontID(stem)
		if err := p.RegisterBytes(id, FontName(stem), DetectCategories(stem), data); err != nil {
			logger.Warn("Failed to parse font file %s: %s", name, err)
			continue
		}
		logger.Info("Loaded font: %s from %s", id, name)
	}

	logger.Info("Total fonts loaded: %d", len(p.order))
	return nil
}

// RegisterBuiltin registers the embedded Go Regular font under
// BuiltinFontID. It is used as a fallback when no font files are found.
func (p *Provider) RegisterBuiltin() error {
	return p.RegisterBytes(BuiltinFontID, "Go Regular", []string{"sans-serif"}, goregular.TTF)
}

// RegisterBytes parses raw TrueType data and registers it under the
// given identifier. Registering an existing identifier replaces it.
func (p *Provider) RegisterBytes(id, name string, categories []string, data []byte) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", id, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, replaced := p.fonts[id]; !replaced {
		p.order = append(p.order, id)
	}
	p.fonts[id] = &record{
		info: ports.FontInfo{ID: id, Name: name, Categories: categories},
		font: f,
	}
	return nil
}

// Exists reports whether the font identifier is registered.
func (p *Provider) Exists(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.fonts[id]
	return ok
}

// Face returns a render face for the font at the given pixel size.
// Faces are cached per (id, size) for the process lifetime.
func (p *Provider) Face(id string, size int) (font.Face, error) {
	key := faceKey{id: id, size: size}

	p.mu.RLock()
	face, ok := p.faces[key]
	p.mu.RUnlock()
	if ok {
		return face, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if face, ok := p.faces[key]; ok {
		return face, nil
	}

	rec, ok := p.fonts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrFontNotFound, id)
	}

	face = truetype.NewFace(rec.font, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	p.faces[key] = face
	return face, nil
}

// List returns metadata for all registered fonts in registration order.
func (p *Provider) List() []ports.FontInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()

	infos := make([]ports.FontInfo, 0, len(p.order))
	for _, id := range p.order {
		infos = append(infos, p.fonts[id].info)
	}
	return infos
}

// FontID derives a stable snake_case identifier from a font file stem.
func FontID(stem string) string {
	id := strings.ToLower(stem)
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "-", "_")
	for strings.Contains(id, "__") {
		id = strings.ReplaceAll(id, "__", "_")
	}
	return id
}

// FontName derives a human-readable display name from a font file stem.
func FontName(stem string) string {
	name := strings.ReplaceAll(stem, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// DetectCategories guesses category tags from a font file stem.
// Defaults to sans-serif when nothing matches.
func DetectCategories(stem string) []string {
	lower := strings.ToLower(stem)
	var categories []string

	if strings.Contains(lower, "serif") && !strings.Contains(lower, "sans") {
		categories = append(categories, "serif")
	}
	if strings.Contains(lower, "sans") {
		categories = append(categories, "sans-serif")
	}
	for _, word := range []string{"hand", "script", "cursive"} {
		if strings.Contains(lower, word) {
			categories = append(categories, "handwritten")
			break
		}
	}
	for _, word := range []string{"display", "decorative", "fancy"} {
		if strings.Contains(lower, word) {
			categories = append(categories, "display")
			break
		}
	}

	if len(categories) == 0 {
		categories = append(categories, "sans-serif")
	}
	return categories
}

// Ensure Provider implements ports.FontProvider
var _ ports.FontProvider = (*Provider)(nil)
