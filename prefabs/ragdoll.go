package prefabs

import (
	"fmt"
	"image/color"

	"github.com/milk9111/ragdoll/verlet"
)

// DefaultRagdoll is the prefab loaded when no template is named.
const DefaultRagdoll = "human.yaml"

type PointSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Mass float64 `yaml:"mass"`
}

type ShapeSpec struct {
	Name   string  `yaml:"name"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Offset float64 `yaml:"offset"`
}

type ConstraintSpec struct {
	P0    int        `yaml:"p0"`
	P1    int        `yaml:"p1"`
	Force float64    `yaml:"force"`
	Shape *ShapeSpec `yaml:"shape"`
}

type AngleSpec struct {
	P0    int     `yaml:"p0"`
	P1    int     `yaml:"p1"`
	P2    int     `yaml:"p2"`
	Angle Radians `yaml:"angle"`
	Range Radians `yaml:"range"`
	Force float64 `yaml:"force"`
}

// RagdollSpec is the YAML form of a verlet.Template plus its colors.
type RagdollSpec struct {
	Name        string               `yaml:"name"`
	Attach      int                  `yaml:"attach"`
	Points      []PointSpec          `yaml:"points"`
	Constraints []ConstraintSpec     `yaml:"constraints"`
	Angles      []AngleSpec          `yaml:"angles"`
	Palette     map[string]YAMLColor `yaml:"palette"`
}

func LoadRagdollSpec(name string) (*RagdollSpec, error) {
	if name == "" {
		name = DefaultRagdoll
	}
	spec, err := LoadSpec[RagdollSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Template converts the spec and validates it.
func (s *RagdollSpec) Template() (verlet.Template, error) {
	t := verlet.Template{
		Points:      make([]verlet.PointDef, 0, len(s.Points)),
		Constraints: make([]verlet.ConstraintDef, 0, len(s.Constraints)),
		Angles:      make([]verlet.AngleDef, 0, len(s.Angles)),
		Attach:      s.Attach,
	}
	for _, p := range s.Points {
		t.Points = append(t.Points, verlet.PointDef{X: p.X, Y: p.Y, Mass: p.Mass})
	}
	for _, c := range s.Constraints {
		def := verlet.ConstraintDef{P0: c.P0, P1: c.P1, Force: c.Force}
		if c.Shape != nil {
			def.Shape = &verlet.ShapeDef{Name: c.Shape.Name, W: c.Shape.W, H: c.Shape.H, Offset: c.Shape.Offset}
		}
		t.Constraints = append(t.Constraints, def)
	}
	for _, a := range s.Angles {
		t.Angles = append(t.Angles, verlet.AngleDef{
			P0:    a.P0,
			P1:    a.P1,
			P2:    a.P2,
			Angle: float64(a.Angle),
			Range: float64(a.Range),
			Force: a.Force,
		})
	}
	if err := t.Validate(); err != nil {
		return verlet.Template{}, fmt.Errorf("prefabs: ragdoll %q: %w", s.Name, err)
	}
	return t, nil
}

// Colors flattens the palette for the renderer.
func (s *RagdollSpec) Colors() map[string]color.Color {
	out := make(map[string]color.Color, len(s.Palette))
	for name, c := range s.Palette {
		if c.Color != nil {
			out[name] = c.Color
		}
	}
	return out
}
