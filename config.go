package hexsketch

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 400
	DefaultHeight = DefaultWidth

	// The smallest canvas side that still gives digit '1' a non-zero stride.
	minCanvasSide = 10
)

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (c Canvas) HomeX() int {
	return c.Width / 2
}

func (c Canvas) HomeY() int {
	return c.Height / 2
}

func (c Canvas) Home() Point {
	return Point{X: c.HomeX(), Y: c.HomeY()}
}

// Stride is the distance covered by digit '1'.
func (c Canvas) Stride() int {
	return c.Height / 10
}

func (c Canvas) Contains(p Point) bool {
	return p.X >= 0 && p.X <= c.Width && p.Y >= 0 && p.Y <= c.Height
}

type Style struct {
	Background    string  `yaml:"background"`
	Stroke        string  `yaml:"stroke"`
	StrokeWidth   int     `yaml:"stroke_width"`
	StrokeOpacity float64 `yaml:"stroke_opacity"`
	Border        string  `yaml:"border"`
}

func (s Style) BorderWidth() int {
	return 3 * s.StrokeWidth
}

// Config is handed to the renderer by value; nothing downstream mutates it.
type Config struct {
	Canvas Canvas `yaml:"canvas"`
	Style  Style  `yaml:"style"`
}

func DefaultConfig() Config {
	return Config{
		Canvas: Canvas{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Style: Style{
			Background:    "#ffffff",
			Stroke:        "#2f2f2f",
			StrokeWidth:   5,
			StrokeOpacity: 0.9,
			Border:        "#cccccc",
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, so a file only needs
// to name the fields it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width < minCanvasSide || c.Canvas.Height < minCanvasSide {
		errs = append(errs, fmt.Errorf("canvas %dx%d smaller than %dx%d",
			c.Canvas.Width, c.Canvas.Height, minCanvasSide, minCanvasSide))
	}
	if c.Canvas.Width != c.Canvas.Height {
		errs = append(errs, fmt.Errorf("canvas %dx%d is not square", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Style.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke_width must be positive, got %d", c.Style.StrokeWidth))
	}
	if c.Style.StrokeOpacity < 0 || c.Style.StrokeOpacity > 1 {
		errs = append(errs, fmt.Errorf("stroke_opacity %v outside [0,1]", c.Style.StrokeOpacity))
	}
	colors := []struct{ name, value string }{
		{"background", c.Style.Background},
		{"stroke", c.Style.Stroke},
		{"border", c.Style.Border},
	}
	for _, color := range colors {
		if color.value == "" {
			errs = append(errs, fmt.Errorf("%s color is empty", color.name))
		}
	}
	return errors.Join(errs...)
}
