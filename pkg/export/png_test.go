package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/prive-edr/dashmock/pkg/errors"
)

var (
	bgColor = color.RGBA{R: 0x0a, G: 0x0e, B: 0x1a, A: 0xff}
	fgColor = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
)

// testImage returns a w×h background image with a content block at r.
func testImage(w, h int, r image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgColor), image.Point{}, draw.Src)
	draw.Draw(img, r, image.NewUniform(fgColor), image.Point{}, draw.Src)
	return img
}

func readPNG(t *testing.T, path string) (image.Image, []byte) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img, data
}

func TestPNGWritesSizeAndDPI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := testImage(300, 200, image.Rect(100, 50, 150, 100))

	if err := PNG(img, path, WithDPI(150)); err != nil {
		t.Fatalf("PNG: %v", err)
	}

	got, data := readPNG(t, path)
	if b := got.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Errorf("size = %dx%d, want 300x200", b.Dx(), b.Dy())
	}
	dpi, ok := ReadDPI(data)
	if !ok {
		t.Fatal("no pHYs chunk")
	}
	if math.Abs(dpi-150) > 0.05 {
		t.Errorf("dpi = %v, want 150", dpi)
	}
}

func TestPNGTrim(t *testing.T) {
	tests := []struct {
		name    string
		content image.Rectangle
		pad     float64
		dpi     float64
		want    image.Rectangle
	}{
		{"padded", image.Rect(100, 50, 150, 100), 0.1, 100, image.Rect(0, 0, 70, 70)},
		{"no pad", image.Rect(100, 50, 150, 100), 0, 100, image.Rect(0, 0, 50, 50)},
		{"clamped at edge", image.Rect(0, 0, 20, 20), 0.1, 100, image.Rect(0, 0, 30, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trim.png")
			img := testImage(300, 200, tt.content)
			if err := PNG(img, path, WithDPI(tt.dpi), WithBackground(bgColor), WithTrim(tt.pad)); err != nil {
				t.Fatal(err)
			}
			got, _ := readPNG(t, path)
			if b := got.Bounds(); b.Dx() != tt.want.Dx() || b.Dy() != tt.want.Dy() {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.want.Dx(), tt.want.Dy())
			}
		})
	}
}

func TestContentBounds(t *testing.T) {
	img := testImage(50, 40, image.Rect(10, 5, 20, 15))
	if got, want := ContentBounds(img, bgColor, 0), image.Rect(10, 5, 20, 15); got != want {
		t.Errorf("ContentBounds = %v, want %v", got, want)
	}
	if got, want := ContentBounds(img, bgColor, 100), img.Bounds(); got != want {
		t.Errorf("ContentBounds(pad) = %v, want %v", got, want)
	}

	blank := testImage(50, 40, image.Rectangle{})
	if got := ContentBounds(blank, bgColor, 2); got != blank.Bounds() {
		t.Errorf("blank ContentBounds = %v, want full bounds", got)
	}

	// Non-RGBA images take the generic path.
	gray := image.NewGray(image.Rect(0, 0, 10, 10))
	gray.SetGray(3, 4, color.Gray{Y: 200})
	if got, want := ContentBounds(gray, color.Gray{}, 0), image.Rect(3, 4, 4, 5); got != want {
		t.Errorf("gray ContentBounds = %v, want %v", got, want)
	}
}

func TestPNGOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := PNG(testImage(100, 100, image.Rectangle{}), path); err != nil {
		t.Fatal(err)
	}
	if err := PNG(testImage(64, 32, image.Rectangle{}), path); err != nil {
		t.Fatal(err)
	}
	got, _ := readPNG(t, path)
	if b := got.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("size after overwrite = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
}

func TestPNGOutputPathErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing directory", filepath.Join(dir, "missing", "out.png")},
		{"parent is a file", filepath.Join(file, "out.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PNG(testImage(10, 10, image.Rectangle{}), tt.path)
			if !errors.Is(err, errors.ErrCodeOutputPath) {
				t.Fatalf("err = %v, want %s", err, errors.ErrCodeOutputPath)
			}
			if _, statErr := os.Stat(tt.path); statErr == nil {
				t.Error("file should not exist")
			}
		})
	}
}

func TestEncodeRejectsEmptyImage(t *testing.T) {
	if _, err := Encode(image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestReadDPIWithoutChunk(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(4, 4, image.Rectangle{})); err != nil {
		t.Fatal(err)
	}
	if _, ok := ReadDPI(buf.Bytes()); ok {
		t.Error("plain PNG should have no pHYs")
	}
	if _, ok := ReadDPI([]byte("not a png")); ok {
		t.Error("garbage should not parse")
	}
}
