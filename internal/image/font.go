package imagepkg

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	DefaultFontFamily = "Arial"
	DefaultFontSize   = 24.0

	// Point sizes map 1:1 to pixels at this resolution.
	fontDPI = 72
)

// FontLoader resolves the face used to draw captions.
type FontLoader interface {
	LoadFace() (font.Face, error)
}

// SystemFontLoader loads a font installed on the host. File, when set, is
// used directly instead of searching the font directories for Family.
type SystemFontLoader struct {
	Family string
	File   string
	Size   float64
}

func (l SystemFontLoader) LoadFace() (font.Face, error) {
	path := l.File
	if path == "" {
		family := l.Family
		if family == "" {
			family = DefaultFontFamily
		}
		p, err := findfont.Find(family + ".ttf")
		if err != nil {
			return nil, &OpError{Op: "find font", Kind: KindFont, Path: family, Err: err}
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{Op: "read font", Kind: KindFont, Path: path, Err: err}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &OpError{Op: "parse font", Kind: KindFont, Path: path, Err: err}
	}

	size := l.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &OpError{Op: "create font face", Kind: KindFont, Path: path, Err: fmt.Errorf("size %v: %w", size, err)}
	}
	return face, nil
}
