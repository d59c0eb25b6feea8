// Package config loads generation settings from an optional TOML file.
//
// Every field has a default that reproduces the stock images, so an empty
// or absent file is valid:
//
//	output_dir = "docs/images"
//	dpi = 150
//	width_in = 16
//	height_in = 10
//	trim = true
//	pad_in = 0.1
//	seed = 0            # 0 picks a time-based seed
//
//	[outputs]           # per-dashboard file names, relative to output_dir
//	soc = "dashboard-soc.png"
//
//	[palette]           # theme color overrides
//	accent = "#10b981"
package config

import (
	"fmt"
	"math"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/prive-edr/dashmock/pkg/dashboard"
	"github.com/prive-edr/dashmock/pkg/errors"
	"github.com/prive-edr/dashmock/pkg/theme"
)

// maxPixels bounds either canvas side.
const maxPixels = 20000

// Config holds everything that shapes a generation run.
type Config struct {
	OutputDir string            `toml:"output_dir" validate:"required"`
	DPI       float64           `toml:"dpi" validate:"gte=36,lte=1200"`
	WidthIn   float64           `toml:"width_in" validate:"gt=0"`
	HeightIn  float64           `toml:"height_in" validate:"gt=0"`
	Trim      bool              `toml:"trim"`
	PadIn     float64           `toml:"pad_in" validate:"gte=0,lte=2"`
	Seed      uint64            `toml:"seed"`
	Outputs   map[string]string `toml:"outputs" validate:"dive,keys,dashboard,endkeys,required,endswith=.png"`
	Palette   map[string]string `toml:"palette" validate:"dive,keys,color_name,endkeys,hexcolor"`
}

// Default returns the settings of the stock images: 16×10 inches at 150 DPI
// into docs/images, trimmed with a 0.1 inch margin.
func Default() Config {
	return Config{
		OutputDir: filepath.Join("docs", "images"),
		DPI:       150,
		WidthIn:   16,
		HeightIn:  10,
		Trim:      true,
		PadIn:     0.1,
	}
}

// Load reads path over the defaults and validates the result. Keys the
// file sets but Config does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("dashboard", func(fl validator.FieldLevel) bool {
			_, err := dashboard.ParseKind(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			return slices.Contains(theme.Default().Names(), theme.Name(fl.Field().String()))
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks field ranges, output names and palette colors.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}
	w, h := c.PixelSize()
	if w > maxPixels || h > maxPixels {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas %dx%d px exceeds %d px", w, h, maxPixels)
	}
	if _, err := c.Theme(); err != nil {
		return err
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config")
	}
	fe := ves[0]
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, fe.Tag(), fe.Param())
	}
	return errors.New(errors.ErrCodeInvalidConfig, "%s (got %v)", msg, fe.Value())
}

// PixelSize returns the canvas size in pixels.
func (c Config) PixelSize() (w, h int) {
	return int(math.Round(c.WidthIn * c.DPI)), int(math.Round(c.HeightIn * c.DPI))
}

// OutputPath returns where the image for kind is written.
func (c Config) OutputPath(kind dashboard.Kind) string {
	name := c.Outputs[string(kind)]
	if name == "" {
		name = "dashboard-" + string(kind) + ".png"
	}
	return filepath.Join(c.OutputDir, name)
}

// Theme returns the default theme with the palette overrides applied.
func (c Config) Theme() (*theme.Theme, error) {
	th, err := theme.Default().WithOverrides(c.Palette)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette")
	}
	return th, nil
}
