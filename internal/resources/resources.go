// Package resources holds the static sports data bundled with the binary.
//
// The data is three parallel sequences (titles, info, images) indexed
// positionally, plus a glyph table used to draw each image in a terminal.
package resources

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/sports/internal/model"
)

//go:embed sports.yaml
var bundled []byte

// ErrMismatchedResources is returned when the parallel sequences differ in length.
var ErrMismatchedResources = errors.New("resource sequences have different lengths")

// fallbackGlyph is drawn for images missing from the glyph table.
const fallbackGlyph = "▣"

// Data is the decoded resource file.
type Data struct {
	Titles []string                  `yaml:"titles"`
	Info   []string                  `yaml:"info"`
	Images []model.ImageRef          `yaml:"images"`
	Glyphs map[model.ImageRef]string `yaml:"glyphs"`
}

// Parse decodes and validates a resource document.
func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(d.Titles) != len(d.Info) || len(d.Titles) != len(d.Images) {
		return nil, fmt.Errorf("%w: titles=%d info=%d images=%d",
			ErrMismatchedResources, len(d.Titles), len(d.Info), len(d.Images))
	}
	return &d, nil
}

// Bundled returns the data compiled into the binary.
func Bundled() (*Data, error) {
	return Parse(bundled)
}

// Open reads a resource file from path, or the bundled data when path is empty.
func Open(path string) (*Data, error) {
	if path == "" {
		return Bundled()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resources: %w", err)
	}
	return Parse(b)
}

// Items zips the parallel sequences into items, preserving order.
func (d *Data) Items() []model.Item {
	out := make([]model.Item, 0, len(d.Titles))
	for i := range d.Titles {
		out = append(out, model.New(d.Titles[i], d.Info[i], d.Images[i]))
	}
	return out
}

// Glyph resolves an image reference to something a terminal can draw.
func (d *Data) Glyph(ref model.ImageRef) string {
	if g, ok := d.Glyphs[ref]; ok && g != "" {
		return g
	}
	return fallbackGlyph
}
