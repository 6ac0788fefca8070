package cataastest

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// SolidPNG returns PNG bytes of a w x h image filled with c.
func SolidPNG(t testing.TB, w, h int, c color.Color) []byte {
	t.Helper()
	img := imaging.New(w, h, c)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode solid png: %v", err)
	}
	return buf.Bytes()
}

// QRPNG returns PNG bytes of a QR code for text. The modules give the
// image plenty of detail for pixel-by-pixel comparisons.
func QRPNG(t testing.TB, text string, size int) []byte {
	t.Helper()
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		t.Fatalf("encode qr png: %v", err)
	}
	return b
}
