package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette maps shape names to fill colors.
type Palette struct {
	Background color.Color
	Collider   color.Color
	Debug      color.Color
	Shapes     map[string]color.Color
	// Fallback is used for shapes with no entry.
	Fallback color.Color
}

// DefaultPalette is the orange backdrop with black and white limbs.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0xeb, G: 0xad, B: 0x00, A: 0xff},
		Collider:   color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
		Debug:      colornames.Crimson,
		Fallback:   colornames.Black,
		Shapes: map[string]color.Color{
			"head":    colornames.White,
			"tors":    colornames.Black,
			"stomach": colornames.Black,
			"leg1":    colornames.Black,
			"leg2":    colornames.Black,
			"foot":    colornames.White,
			"arm1":    colornames.Black,
			"arm2":    colornames.White,
		},
	}
}

// With overrides entries from a prefab palette. The keys "background",
// "collider" and "debug" set the matching fields; others name shapes.
func (p Palette) With(colors map[string]color.Color) Palette {
	shapes := make(map[string]color.Color, len(p.Shapes)+len(colors))
	for k, v := range p.Shapes {
		shapes[k] = v
	}
	for k, v := range colors {
		switch k {
		case "background":
			p.Background = v
		case "collider":
			p.Collider = v
		case "debug":
			p.Debug = v
		default:
			shapes[k] = v
		}
	}
	p.Shapes = shapes
	return p
}

// Shape returns the color for a shape name.
func (p Palette) Shape(name string) color.Color {
	if c, ok := p.Shapes[name]; ok {
		return c
	}
	return p.Fallback
}
