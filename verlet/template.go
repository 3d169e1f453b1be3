package verlet

import (
	"fmt"
	"math"
)

// PointDef is a point offset in body units, scaled by BodyOptions.Size.
type PointDef struct {
	X, Y float64
	// Mass defaults to 1 when zero.
	Mass float64
}

// ShapeDef binds a visual segment to a distance constraint.
type ShapeDef struct {
	Name   string
	W, H   float64
	Offset float64
}

type ConstraintDef struct {
	P0, P1 int
	Force  float64
	Shape  *ShapeDef
}

type AngleDef struct {
	P0, P1, P2 int
	Angle      float64
	Range      float64
	Force      float64
}

// Template describes a body's topology. It is immutable once built.
type Template struct {
	Points      []PointDef
	Constraints []ConstraintDef
	Angles      []AngleDef
	// Attach is the point pinned to the body's hook.
	Attach int
}

// Validate rejects templates whose constraints cannot be built.
func (t Template) Validate() error {
	n := len(t.Points)
	if n == 0 {
		return ErrNoPoints
	}
	for i, p := range t.Points {
		if p.Mass < 0 || math.IsNaN(p.Mass) {
			return fmt.Errorf("%w: point %d has mass %v", ErrInvalidTemplate, i, p.Mass)
		}
	}
	for i, c := range t.Constraints {
		if err := checkIndices(n, c.P0, c.P1); err != nil {
			return fmt.Errorf("%w: constraint %d: %v", ErrInvalidTemplate, i, err)
		}
		if c.Force < 0 {
			return fmt.Errorf("%w: constraint %d has negative force", ErrInvalidTemplate, i)
		}
		if c.Shape != nil && (c.Shape.W < 0 || c.Shape.H < 0) {
			return fmt.Errorf("%w: constraint %d shape %q has negative size", ErrInvalidTemplate, i, c.Shape.Name)
		}
	}
	for i, a := range t.Angles {
		if err := checkIndices(n, a.P0, a.P1, a.P2); err != nil {
			return fmt.Errorf("%w: angle %d: %v", ErrInvalidTemplate, i, err)
		}
		if a.Range < 0 || a.Force < 0 {
			return fmt.Errorf("%w: angle %d has negative range or force", ErrInvalidTemplate, i)
		}
	}
	if t.Attach < 0 || t.Attach >= n {
		return fmt.Errorf("%w: attach index %d out of range [0, %d)", ErrInvalidTemplate, t.Attach, n)
	}
	return nil
}

func checkIndices(n int, idx ...int) error {
	seen := make(map[int]bool, len(idx))
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("point index %d out of range [0, %d)", i, n)
		}
		if seen[i] {
			return fmt.Errorf("point index %d repeated", i)
		}
		seen[i] = true
	}
	return nil
}

// HumanTemplate returns the built-in ragdoll: torso, head, two arms and two
// legs with feet. Point 16 (right hand) is the attachment point.
func HumanTemplate() Template {
	return Template{
		Points: []PointDef{
			{X: 0, Y: 0},
			{X: 0, Y: -2.8},
			{X: 0, Y: -4},
			{X: -1.1, Y: -2.2},
			{X: 1.1, Y: -2.2},
			{X: -0.5, Y: 1.2},
			{X: 0.5, Y: 1.2},
			{X: 0, Y: 1.5},
			{X: -0.5, Y: 3.5},
			{X: 0.5, Y: 3.5},
			{X: -0.5, Y: 6.5},
			{X: 0.5, Y: 6.5},
			{X: -0.5, Y: 7},
			{X: 0.5, Y: 7},
			{X: 3, Y: -2.2},
			{X: -3, Y: -2.2},
			{X: 4.7, Y: -2.2},
			{X: -4.7, Y: -2.2},
		},
		Constraints: []ConstraintDef{
			{P0: 1, P1: 4},
			{P0: 0, P1: 1, Shape: &ShapeDef{Name: "tors", H: 3, W: 3.2, Offset: 0.35}},
			{P0: 1, P1: 3},
			{P0: 0, P1: 3},
			{P0: 0, P1: 4},
			{P0: 3, P1: 4},
			{P0: 0, P1: 6},
			{P0: 7, P1: 0, Shape: &ShapeDef{Name: "stomach", H: 2, W: 2.8, Offset: 0.1}},
			{P0: 0, P1: 5},
			{P0: 5, P1: 6},
			{P0: 5, P1: 7},
			{P0: 6, P1: 7},
			{P0: 5, P1: 8, Shape: &ShapeDef{Name: "leg1", H: 3, W: 1.3, Offset: 0.15}},
			{P0: 6, P1: 9, Shape: &ShapeDef{Name: "leg1", H: 3, W: 1.3, Offset: 0.15}},
			{P0: 8, P1: 10, Shape: &ShapeDef{Name: "leg2", H: 4, W: 1.2, Offset: 0.15}},
			{P0: 9, P1: 11, Shape: &ShapeDef{Name: "leg2", H: 4, W: 1.2, Offset: 0.15}},
			{P0: 4, P1: 14, Shape: &ShapeDef{Name: "arm1", H: 2.4, W: 1, Offset: 0.15}},
			{P0: 3, P1: 15, Shape: &ShapeDef{Name: "arm1", H: 2.4, W: 1, Offset: 0.15}},
			{P0: 14, P1: 16, Shape: &ShapeDef{Name: "arm2", H: 2.5, W: 0.8, Offset: 0.1}},
			{P0: 15, P1: 17, Shape: &ShapeDef{Name: "arm2", H: 2.5, W: 0.8, Offset: 0.1}},
			{P0: 10, P1: 12, Shape: &ShapeDef{Name: "foot", H: 0.5, W: 2.5, Offset: 0.3}},
			{P0: 11, P1: 13, Shape: &ShapeDef{Name: "foot", H: 0.5, W: 2.5, Offset: 0.3}},
			{P0: 1, P1: 2, Shape: &ShapeDef{Name: "head", H: 2, W: 1.8, Offset: 0.15}},
		},
		Angles: []AngleDef{
			{P0: 2, P1: 1, P2: 0, Angle: 0, Range: 1},
			{P0: 3, P1: 15, P2: 17, Angle: -math.Pi / 2, Range: math.Pi / 3},
			{P0: 4, P1: 14, P2: 16, Angle: -math.Pi / 2, Range: math.Pi / 3},
			{P0: 1, P1: 0, P2: 7, Angle: 0, Range: 0.3},
			{P0: 0, P1: 5, P2: 8, Angle: 0, Range: math.Pi / 3},
			{P0: 0, P1: 6, P2: 9, Angle: 0, Range: math.Pi / 3},
			{P0: 5, P1: 8, P2: 10, Angle: math.Pi / 3, Range: math.Pi / 4},
			{P0: 6, P1: 9, P2: 11, Angle: math.Pi / 3, Range: math.Pi / 4},
			{P0: 8, P1: 10, P2: 12, Angle: 0, Range: 0.5},
			{P0: 9, P1: 11, P2: 13, Angle: 0, Range: 0.5},
		},
		Attach: 16,
	}
}
