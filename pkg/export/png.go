package export

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/prive-edr/dashmock/pkg/errors"
)

// Option configures PNG export.
type Option func(*options)

type options struct {
	dpi        float64
	background color.Color
	trim       bool
	padInches  float64
}

// WithDPI sets the resolution recorded in the file (default 150).
func WithDPI(dpi float64) Option {
	return func(o *options) { o.dpi = dpi }
}

// WithBackground sets the color treated as empty when trimming.
// Defaults to the color of the top-left pixel.
func WithBackground(c color.Color) Option {
	return func(o *options) { o.background = c }
}

// WithTrim crops the image to the bounding box of non-background pixels,
// grown by padInches on every side.
func WithTrim(padInches float64) Option {
	return func(o *options) {
		o.trim = true
		o.padInches = padInches
	}
}

const metersPerInch = 0.0254

// PNG encodes img and writes it to path, replacing any existing file.
func PNG(img image.Image, path string, opts ...Option) error {
	dir := filepath.Dir(path)
	fi, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOutputPath, err, "output directory %s", dir)
	}
	if !fi.IsDir() {
		return errors.New(errors.ErrCodeOutputPath, "output directory %s is not a directory", dir)
	}

	data, err := Encode(img, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutputPath, err, "write %s", path)
	}
	return nil
}

// Encode returns the PNG bytes PNG would write.
func Encode(img image.Image, opts ...Option) ([]byte, error) {
	o := options{dpi: 150}
	for _, opt := range opts {
		opt(&o)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty image")
	}
	if o.trim {
		bg := o.background
		if bg == nil {
			b := img.Bounds()
			bg = img.At(b.Min.X, b.Min.Y)
		}
		pad := int(math.Round(o.padInches * o.dpi))
		img = imaging.Crop(img, ContentBounds(img, bg, pad))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return withPHYs(buf.Bytes(), o.dpi), nil
}

// ContentBounds returns the smallest rectangle holding every pixel that
// differs from bg, grown by pad pixels and clamped to the image. An image
// with no content keeps its full bounds.
func ContentBounds(img image.Image, bg color.Color, pad int) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1

	differs := func(x, y int) bool {
		return !sameColor(img.At(x, y), bg)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		want := color.RGBAModel.Convert(bg).(color.RGBA)
		differs = func(x, y int) bool {
			i := rgba.PixOffset(x, y)
			p := rgba.Pix[i : i+4 : i+4]
			return p[0] != want.R || p[1] != want.G || p[2] != want.B || p[3] != want.A
		}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if differs(x, y) {
				minX, maxX = min(minX, x), max(maxX, x)
				minY, maxY = min(minY, y), max(maxY, y)
			}
		}
	}
	if maxX < minX {
		return b
	}
	r := image.Rect(minX-pad, minY-pad, maxX+1+pad, maxY+1+pad)
	return r.Intersect(b)
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// withPHYs inserts a pHYs chunk after IHDR. The encoder always writes IHDR
// first, so the chunk goes at a fixed offset.
func withPHYs(data []byte, dpi float64) []byte {
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if dpi <= 0 || len(data) < ihdrEnd {
		return data
	}
	ppm := uint32(math.Round(dpi / metersPerInch))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: meter
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	return append(out, data[ihdrEnd:]...)
}

// ReadDPI returns the resolution recorded in a PNG's pHYs chunk.
func ReadDPI(data []byte) (float64, bool) {
	if len(data) < 8 || !bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")) {
		return 0, false
	}
	for p := 8; p+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[p : p+4]))
		typ := string(data[p+4 : p+8])
		body := p + 8
		if body+n+4 > len(data) {
			return 0, false
		}
		switch typ {
		case "pHYs":
			if n != 9 || data[body+8] != 1 {
				return 0, false
			}
			ppm := binary.BigEndian.Uint32(data[body : body+4])
			return float64(ppm) * metersPerInch, true
		case "IDAT", "IEND":
			return 0, false
		}
		p = body + n + 4
	}
	return 0, false
}
