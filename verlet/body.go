package verlet

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Iterations is the number of relaxation passes per Anim call. More passes
// converge closer to rigid constraints at proportional cost.
const Iterations = 5

// BodyOptions places and scales a template.
type BodyOptions struct {
	// Origin is where the template's (0, 0) lands, in pixels.
	Origin cp.Vector
	// Anchor is the normalized hook position, multiplied by the viewport size.
	Anchor cp.Vector
	// Size multiplies every template offset and shape dimension.
	Size    float64
	Gravity float64
}

// Shape is a renderable segment bound to two points of a body.
type Shape struct {
	Name          string
	P0, P1        *Point
	Width, Height float64
	Offset        float64
}

// Body is an articulated figure built from a Template. Its topology never
// changes after construction; only point positions move.
type Body struct {
	Anchor cp.Vector

	Points      []*Point
	Constraints []*Constraint
	Angles      []*Angle
	Shapes      []*Shape

	attach int
}

// NewBody validates t and builds a body from it.
func NewBody(t Template, opts BodyOptions) (*Body, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	size := opts.Size
	if size == 0 {
		size = 1
	}

	b := &Body{
		Anchor:      opts.Anchor,
		Points:      make([]*Point, 0, len(t.Points)),
		Constraints: make([]*Constraint, 0, len(t.Constraints)),
		Angles:      make([]*Angle, 0, len(t.Angles)),
		attach:      t.Attach,
	}
	for i, pd := range t.Points {
		pos := opts.Origin.Add(cp.Vector{X: pd.X, Y: pd.Y}.Mult(size))
		b.Points = append(b.Points, NewPoint(i, pos, pd.Mass, opts.Gravity))
	}
	for _, cd := range t.Constraints {
		p0, p1 := b.Points[cd.P0], b.Points[cd.P1]
		b.Constraints = append(b.Constraints, NewConstraint(p0, p1, cd.Force))
		if cd.Shape != nil {
			b.Shapes = append(b.Shapes, &Shape{
				Name:   cd.Shape.Name,
				P0:     p0,
				P1:     p1,
				Width:  cd.Shape.W * size,
				Height: cd.Shape.H * size,
				Offset: cd.Shape.Offset,
			})
		}
	}
	for _, ad := range t.Angles {
		b.Angles = append(b.Angles, NewAngle(b.Points[ad.P0], b.Points[ad.P1], b.Points[ad.P2], ad.Angle, ad.Range, ad.Force))
	}
	return b, nil
}

// Attachment returns the point pinned to the hook.
func (b *Body) Attachment() *Point {
	return b.Points[b.attach]
}

// Anim advances the body one step against collider c.
func (b *Body) Anim(c Collider) {
	for _, p := range b.Points {
		p.Integrate()
	}
	for i := 0; i < Iterations; i++ {
		b.Relax()
	}
	b.Collide(c)
}

// Relax runs a single relaxation pass: every angle, then every constraint.
func (b *Body) Relax() {
	for _, a := range b.Angles {
		a.Update()
	}
	for _, c := range b.Constraints {
		c.Update()
	}
}

// Collide resolves every point against c. Bodies entirely outside the
// circle are skipped.
func (b *Body) Collide(c Collider) {
	if c.Radius <= 0 {
		return
	}
	min, max := b.Bounds()
	if !c.Overlaps(min, max) {
		return
	}
	for _, p := range b.Points {
		p.Collide(c)
	}
}

// Bounds returns the axis-aligned box enclosing every point.
func (b *Body) Bounds() (min, max cp.Vector) {
	min = cp.Vector{X: math.Inf(1), Y: math.Inf(1)}
	max = cp.Vector{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range b.Points {
		min.X = math.Min(min.X, p.Pos.X)
		min.Y = math.Min(min.Y, p.Pos.Y)
		max.X = math.Max(max.X, p.Pos.X)
		max.Y = math.Max(max.Y, p.Pos.Y)
	}
	return min, max
}

// Pin pulls the attachment point onto hook, treated as a point of mass
// hookMass that is not written back.
func (b *Body) Pin(hook cp.Vector, hookMass float64) {
	b.Attachment().Join(NewPoint(-1, hook, hookMass, 0), 0, 1)
}

// Swing pulls the attachment point onto the collider's circumference.
func (b *Body) Swing(c Collider) {
	b.Attachment().Join(c.Phantom(), c.Radius, 1)
}

// Point returns the point at index i.
func (b *Body) Point(i int) (*Point, error) {
	if i < 0 || i >= len(b.Points) {
		return nil, fmt.Errorf("verlet: point %d out of range [0, %d)", i, len(b.Points))
	}
	return b.Points[i], nil
}
