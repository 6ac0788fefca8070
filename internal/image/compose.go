package imagepkg

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	// cataas serves WebP for some cats; imaging only registers the stdlib
	// formats plus BMP and TIFF.
	_ "golang.org/x/image/webp"
)

// Composer decodes a downloaded image, draws the optional caption and saves
// the result in the format implied by the output path.
type Composer struct {
	fonts FontLoader
	log   *zap.Logger
}

func NewComposer(fonts FontLoader, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{fonts: fonts, log: log}
}

// ComposeAndSave writes data to outputPath, with text drawn on it when text
// is non-empty. The decoded buffer never outlives this call.
func (c *Composer) ComposeAndSave(data []byte, text, outputPath string) error {
	img, err := Decode(data)
	if err != nil {
		return err
	}

	if text != "" {
		face, err := c.fonts.LoadFace()
		if err != nil {
			return err
		}
		defer face.Close()

		anchor := image.Pt(img.Bounds().Dx()/2, img.Bounds().Dy()/2)
		DrawText(img, face, text, anchor, color.White)
		c.log.Debug("caption drawn",
			zap.String("text", text),
			zap.Int("x", anchor.X),
			zap.Int("y", anchor.Y))
	}

	if err := imaging.Save(img, outputPath); err != nil {
		return &OpError{Op: "save image", Kind: KindEncode, Path: outputPath, Err: err}
	}
	return nil
}

// Decode reads any registered image format into a non-premultiplied RGBA
// buffer with a zero origin.
func Decode(data []byte) (*image.NRGBA, error) {
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &OpError{Op: "decode image", Kind: KindDecode, Err: err}
	}
	return imaging.Clone(src), nil
}

// DrawText renders text with the top-left corner of its line box at anchor.
// Nothing is measured or centred, so long captions run off the right edge.
func DrawText(dst *image.NRGBA, face font.Face, text string, anchor image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(anchor.X),
			Y: fixed.I(anchor.Y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
}
