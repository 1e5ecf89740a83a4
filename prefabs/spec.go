package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const MascotPrefab = "mascot.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SheetSpec describes how frames are cut from the sprite sheet.
type SheetSpec struct {
	FrameW int     `yaml:"frame_w"`
	FrameH int     `yaml:"frame_h"`
	FPS    float64 `yaml:"fps"`
}

// WindowSpec describes how the overlay window presents a frame.
type WindowSpec struct {
	Scale           float64   `yaml:"scale"`
	Mirror          bool      `yaml:"mirror"`
	TransparencyKey YAMLColor `yaml:"transparency_key"`
}

// MascotSpec is the mascot prefab: the sheet geometry plus window presentation.
type MascotSpec struct {
	Name   string     `yaml:"name"`
	Sheet  SheetSpec  `yaml:"sheet"`
	Window WindowSpec `yaml:"window"`
}

// LoadMascotSpec returns the mascot prefab compiled into the binary.
func LoadMascotSpec() (MascotSpec, error) {
	spec, err := LoadSpec[MascotSpec](MascotPrefab)
	if err != nil {
		return MascotSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return MascotSpec{}, fmt.Errorf("prefabs: %s: %w", MascotPrefab, err)
	}
	return spec, nil
}

func (s MascotSpec) Validate() error {
	switch {
	case s.Sheet.FrameW <= 0 || s.Sheet.FrameH <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidSpec, s.Sheet.FrameW, s.Sheet.FrameH)
	case s.Sheet.FPS <= 0:
		return fmt.Errorf("%w: fps %v", ErrInvalidSpec, s.Sheet.FPS)
	case s.Window.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidSpec, s.Window.Scale)
	case s.Window.TransparencyKey.Color == nil:
		return fmt.Errorf("%w: missing transparency key", ErrInvalidSpec)
	}
	return nil
}

// WindowSize is the scaled frame size, truncated like the frame rectangle.
func (s MascotSpec) WindowSize() (int, int) {
	return int(float64(s.Sheet.FrameW) * s.Window.Scale), int(float64(s.Sheet.FrameH) * s.Window.Scale)
}

// YAMLColor is a color written in YAML as a hex string such as "#ff00ff".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %q", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse blue component: %w", err)
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse alpha component: %w", err)
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
