package mocks

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/user/emojigen/pkg/ports"
)

// FontProvider is a mock implementation of ports.FontProvider.
// By default every identifier exists and resolves to the fixed-size
// basicfont face, whose constant metrics make layout tests predictable.
type FontProvider struct {
	ExistsFunc func(id string) bool
	FaceFunc   func(id string, size int) (font.Face, error)
	ListFunc   func() []ports.FontInfo

	FaceCalls []FaceCall
}

// FaceCall records one Face invocation.
type FaceCall struct {
	ID   string
	Size int
}

func (m *FontProvider) Exists(id string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(id)
	}
	return true
}

func (m *FontProvider) Face(id string, size int) (font.Face, error) {
	m.FaceCalls = append(m.FaceCalls, FaceCall{ID: id, Size: size})
	if m.FaceFunc != nil {
		return m.FaceFunc(id, size)
	}
	if !m.Exists(id) {
		return nil, fmt.Errorf("%w: %s", ports.ErrFontNotFound, id)
	}
	return basicfont.Face7x13, nil
}

func (m *FontProvider) List() []ports.FontInfo {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []ports.FontInfo{{ID: "mock", Name: "Mock", Categories: []string{"sans-serif"}}}
}

var _ ports.FontProvider = (*FontProvider)(nil)
