package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

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

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if !strings.HasPrefix(value.Value, "#") {
		named, ok := colornames.Map[strings.ToLower(value.Value)]
		if !ok {
			return fmt.Errorf("unknown color name: %s", value.Value)
		}
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Radians is an angle in radians. In YAML it may be a plain number or a
// multiple of pi such as "pi/3", "-pi/2" or "2*pi/3".
type Radians float64

func (r *Radians) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("angle must be a scalar")
	}
	v, err := ParseRadians(value.Value)
	if err != nil {
		return err
	}
	*r = Radians(v)
	return nil
}

// ParseRadians parses a number or a rational multiple of pi.
func ParseRadians(s string) (float64, error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	before, after, ok := strings.Cut(s, "pi")
	if !ok {
		return 0, fmt.Errorf("invalid angle: %q", s)
	}

	coef := 1.0
	switch before = strings.TrimSuffix(before, "*"); before {
	case "", "+":
	case "-":
		coef = -1
	default:
		v, err := strconv.ParseFloat(before, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid angle coefficient: %q", s)
		}
		coef = v
	}

	div := 1.0
	if after != "" {
		d, ok := strings.CutPrefix(after, "/")
		if !ok {
			return 0, fmt.Errorf("invalid angle: %q", s)
		}
		v, err := strconv.ParseFloat(d, 64)
		if err != nil || v == 0 {
			return 0, fmt.Errorf("invalid angle divisor: %q", s)
		}
		div = v
	}

	return coef * math.Pi / div, nil
}
