package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Notify holds notification settings.
type Notify struct {
	Save    bool
	Copy    bool
	Capture bool
	Export  bool
}

// PaletteColor is one named entry of a [palette.NAME] section.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

// Config holds the application configuration.
type Config struct {
	Color       string
	Opacity     float64
	StrokeWidth float64
	EraserWidth float64
	CanvasSize  int
	SaveDir     string
	Notify      Notify
	Palettes    map[string][]PaletteColor
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Color:       "black",
		Opacity:     1.0,
		StrokeWidth: 4,
		EraserWidth: 16,
		CanvasSize:  800,
		Notify: Notify{
			Save:    false,
			Copy:    false,
			Capture: false,
			Export:  false,
		},
		Palettes: make(map[string][]PaletteColor),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	fmt.Fprintf(&sb, "color = %s\n", c.Color)
	fmt.Fprintf(&sb, "opacity = %g\n", c.Opacity)
	fmt.Fprintf(&sb, "stroke_width = %g\n", c.StrokeWidth)
	fmt.Fprintf(&sb, "eraser_width = %g\n", c.EraserWidth)
	fmt.Fprintf(&sb, "canvas_size = %d\n", c.CanvasSize)
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "capture = %v\n", c.Notify.Capture)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	sb.WriteString("\n")

	// Palette sections
	// Sort keys for deterministic output
	var paletteNames []string
	for name := range c.Palettes {
		paletteNames = append(paletteNames, name)
	}
	sort.Strings(paletteNames)

	for _, name := range paletteNames {
		fmt.Fprintf(&sb, "[palette.%s]\n", name)
		for _, entry := range c.Palettes[name] {
			fmt.Fprintf(&sb, "%s: %s\n", entry.Name, FormatColor(entry.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatColor renders a color as #RRGGBB, or #RRGGBBAA when not fully opaque.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
