// Package fonts locates and validates the TrueType font used for the FPS
// label.
package fonts

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Source is a loaded font file. Path is empty if the data did not come from
// the filesystem.
type Source struct {
	Path string
	Data []byte
}

// ErrEmptyFont is returned for zero length font files.
var ErrEmptyFont = errors.New("font file is empty")

// only TTF files are supported (not TTC font collections)
var candidates = []string{
	// Windows
	"C:\\Windows\\Fonts\\arial.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
	// macOS
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
}

// Load returns the font at path. A missing or malformed file is an error.
//
// If path is empty the well-known system font locations are tried in turn and
// if none of them holds a usable font the embedded Go Regular font is used.
func Load(path string) (Source, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if src, err := loadFile(p); err == nil {
			return src, nil
		}
	}

	return Embedded(), nil
}

// Embedded returns the Go Regular font compiled into the binary.
func Embedded() Source {
	return Source{Data: goregular.TTF}
}

func loadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("font %s: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return Source{}, fmt.Errorf("font %s: %w", path, err)
	}
	return Source{Path: path, Data: data}, nil
}

// Validate checks that data parses as an OpenType or TrueType font.
func Validate(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFont
	}
	if _, err := opentype.Parse(data); err != nil {
		return err
	}
	return nil
}
