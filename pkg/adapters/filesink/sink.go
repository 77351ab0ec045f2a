// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/user/emojigen/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink writing below baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveBaseFrame saves the base rendered frame as PNG.
func (s *Sink) SaveBaseFrame(img image.Image) error {
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode base frame: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "base.png"), data)
}

// SaveMotionFrame saves a synthesized motion frame as PNG.
func (s *Sink) SaveMotionFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode motion frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// SaveOutput saves the final encoded payload.
func (s *Sink) SaveOutput(data []byte, ext string) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "output."+ext), data)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
