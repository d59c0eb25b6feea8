// Package fonts provides embedded font faces for raster rendering.
//
// The Go font family ships inside golang.org/x/image, so the binary renders
// identical text on every machine without looking up system fonts.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight selects a face within the family.
type Weight int

const (
	Regular Weight = iota
	Bold
	Italic
	Mono
)

func (w Weight) String() string {
	switch w {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Mono:
		return "mono"
	default:
		return "regular"
	}
}

// Family is the display name of the embedded family.
const Family = "Go"

var (
	parsed    map[Weight]*truetype.Font
	parseErr  error
	parseOnce sync.Once
)

func load() (map[Weight]*truetype.Font, error) {
	parseOnce.Do(func() {
		sources := map[Weight][]byte{
			Regular: goregular.TTF,
			Bold:    gobold.TTF,
			Italic:  goitalic.TTF,
			Mono:    gomono.TTF,
		}
		parsed = make(map[Weight]*truetype.Font, len(sources))
		for w, data := range sources {
			f, err := truetype.Parse(data)
			if err != nil {
				parseErr = fmt.Errorf("parse %s font: %w", w, err)
				return
			}
			parsed[w] = f
		}
	})
	return parsed, parseErr
}

type faceKey struct {
	weight Weight
	size   float64
	dpi    float64
}

// Cache hands out font faces keyed by weight, point size and DPI.
// A Cache belongs to one canvas and is not safe for concurrent use.
type Cache struct {
	dpi   float64
	faces map[faceKey]font.Face
}

// NewCache creates a face cache for the given output resolution.
func NewCache(dpi float64) *Cache {
	return &Cache{dpi: dpi, faces: make(map[faceKey]font.Face)}
}

// Face returns a face for weight at size points.
func (c *Cache) Face(w Weight, size float64) (font.Face, error) {
	key := faceKey{weight: w, size: size, dpi: c.dpi}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	fonts, err := load()
	if err != nil {
		return nil, err
	}
	f, ok := fonts[w]
	if !ok {
		f = fonts[Regular]
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     c.dpi,
		Hinting: font.HintingFull,
	})
	c.faces[key] = face
	return face, nil
}

// Close releases all cached faces.
func (c *Cache) Close() error {
	for k, f := range c.faces {
		_ = f.Close()
		delete(c.faces, k)
	}
	return nil
}
