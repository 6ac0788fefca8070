package imagepkg

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/catimage/internal/cataastest"
)

func testFontLoader(t *testing.T) FontLoader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	return SystemFontLoader{File: path, Size: DefaultFontSize}
}

func loadImage(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	img, err := imaging.Open(path)
	require.NoError(t, err)
	return imaging.Clone(img)
}

func TestComposeWithoutTextKeepsPixels(t *testing.T) {
	src := cataastest.QRPNG(t, "https://cataas.com/cat", 128)
	out := filepath.Join(t.TempDir(), "cat.png")

	c := NewComposer(testFontLoader(t), nil)
	require.NoError(t, c.ComposeAndSave(src, "", out))

	want, err := Decode(src)
	require.NoError(t, err)
	got := loadImage(t, out)
	require.Equal(t, want.Bounds(), got.Bounds())
	require.Equal(t, want.Pix, got.Pix)
}

func TestComposeDrawsTextFromCenter(t *testing.T) {
	const w, h = 200, 120
	bg := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	src := cataastest.SolidPNG(t, w, h, bg)
	out := filepath.Join(t.TempDir(), "cat.png")

	c := NewComposer(testFontLoader(t), nil)
	require.NoError(t, c.ComposeAndSave(src, "Hello", out))

	got := loadImage(t, out)
	changed := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got.NRGBAAt(x, y) == bg {
				continue
			}
			require.GreaterOrEqual(t, x, w/2-2, "pixel (%d,%d) left of anchor", x, y)
			require.GreaterOrEqual(t, y, h/2-2, "pixel (%d,%d) above anchor", x, y)
			changed++
		}
	}
	require.NotZero(t, changed)
}

func TestComposeTextOverflowIsNotAnError(t *testing.T) {
	src := cataastest.SolidPNG(t, 20, 20, color.Black)
	out := filepath.Join(t.TempDir(), "cat.png")

	c := NewComposer(testFontLoader(t), nil)
	require.NoError(t, c.ComposeAndSave(src, "a caption far wider than the image", out))
}

func TestComposeJPEGOutput(t *testing.T) {
	src := cataastest.SolidPNG(t, 32, 16, color.White)
	out := filepath.Join(t.TempDir(), "cat.JPG")

	c := NewComposer(testFontLoader(t), nil)
	require.NoError(t, c.ComposeAndSave(src, "", out))

	got := loadImage(t, out)
	require.Equal(t, image.Rect(0, 0, 32, 16), got.Bounds())
}

func TestComposeUnsupportedExtension(t *testing.T) {
	src := cataastest.SolidPNG(t, 8, 8, color.White)

	for _, name := range []string{"cat.xyz", "cat"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), name)
			err := NewComposer(testFontLoader(t), nil).ComposeAndSave(src, "", out)
			require.True(t, IsKind(err, KindEncode))
			require.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
			require.NoFileExists(t, out)
		})
	}
}

func TestComposeUnwritablePath(t *testing.T) {
	src := cataastest.SolidPNG(t, 8, 8, color.White)
	out := filepath.Join(t.TempDir(), "missing", "cat.png")

	err := NewComposer(testFontLoader(t), nil).ComposeAndSave(src, "", out)
	require.True(t, IsKind(err, KindEncode))
}

func TestComposeMalformedData(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cat.png")

	err := NewComposer(testFontLoader(t), nil).ComposeAndSave([]byte("<html>not a cat</html>"), "", out)
	require.True(t, IsKind(err, KindDecode))
	require.NoFileExists(t, out)
}

func TestComposeMissingFont(t *testing.T) {
	src := cataastest.SolidPNG(t, 8, 8, color.White)
	out := filepath.Join(t.TempDir(), "cat.png")
	fonts := SystemFontLoader{File: filepath.Join(t.TempDir(), "nope.ttf")}

	err := NewComposer(fonts, nil).ComposeAndSave(src, "meow", out)
	require.True(t, IsKind(err, KindFont))
	require.NoFileExists(t, out)
}

func TestComposeFontNotNeededWithoutText(t *testing.T) {
	src := cataastest.SolidPNG(t, 8, 8, color.White)
	out := filepath.Join(t.TempDir(), "cat.png")
	fonts := SystemFontLoader{File: filepath.Join(t.TempDir(), "nope.ttf")}

	require.NoError(t, NewComposer(fonts, nil).ComposeAndSave(src, "", out))
	require.FileExists(t, out)
}

func TestSystemFontLoaderUnknownFamily(t *testing.T) {
	_, err := SystemFontLoader{Family: "NoSuchFamilyCatimage"}.LoadFace()
	require.True(t, IsKind(err, KindFont))
}

func TestSystemFontLoaderBadFontData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	_, err := SystemFontLoader{File: path}.LoadFace()
	require.True(t, IsKind(err, KindFont))
}
