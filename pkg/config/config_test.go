package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prive-edr/dashmock/pkg/dashboard"
	"github.com/prive-edr/dashmock/pkg/errors"
	"github.com/prive-edr/dashmock/pkg/theme"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashmock.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if w, h := cfg.PixelSize(); w != 2400 || h != 1500 {
		t.Errorf("PixelSize = %dx%d, want 2400x1500", w, h)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output_dir = "out"
dpi = 100
trim = false
seed = 7

[outputs]
soc = "soc.png"

[palette]
accent = "#00ff00"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.DPI != 100 || cfg.Trim || cfg.Seed != 7 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.WidthIn != 16 || cfg.HeightIn != 10 || cfg.PadIn != 0.1 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if got := cfg.OutputPath(dashboard.SOC); got != filepath.Join("out", "soc.png") {
		t.Errorf("OutputPath(soc) = %q", got)
	}
	if got := cfg.OutputPath(dashboard.DLP); got != filepath.Join("out", "dashboard-dlp.png") {
		t.Errorf("OutputPath(dlp) = %q", got)
	}

	th, err := cfg.Theme()
	if err != nil {
		t.Fatal(err)
	}
	if c := th.Color(theme.Accent); c.G != 0xff || c.R != 0 {
		t.Errorf("accent override not applied: %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `dpi = = 3`},
		{"unknown key", `colour = "red"`},
		{"dpi too low", `dpi = 10`},
		{"negative width", `width_in = -1`},
		{"empty output dir", `output_dir = ""`},
		{"huge canvas", "dpi = 1200\nwidth_in = 50"},
		{"pad too large", `pad_in = 5`},
		{"unknown dashboard", "[outputs]\nsiem = \"x.png\""},
		{"not png", "[outputs]\nsoc = \"soc.jpg\""},
		{"bad color", "[palette]\naccent = \"green\""},
		{"unknown color", "[palette]\nneon = \"#00ff00\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestValidateReportsTomlFieldName(t *testing.T) {
	cfg := Default()
	cfg.DPI = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "dpi") {
		t.Errorf("message %q should name the dpi field", msg)
	}
}
