package verlet

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Epsilon is the smallest separation the solver will divide by. Join and
// Collide leave both points untouched when the distance falls below it.
const Epsilon = 1e-9

// Point is a mass particle integrated with position verlet.
type Point struct {
	Index int

	Pos  cp.Vector
	Prev cp.Vector
	// Vel is the displacement applied by the last Integrate call. It is
	// informational only; the next step derives velocity from Pos - Prev.
	Vel cp.Vector

	Mass    float64
	Gravity float64
}

// NewPoint creates a point at rest at pos.
func NewPoint(index int, pos cp.Vector, mass, gravity float64) *Point {
	if mass <= 0 {
		mass = 1.0
	}
	return &Point{
		Index:   index,
		Pos:     pos,
		Prev:    pos,
		Mass:    mass,
		Gravity: gravity,
	}
}

// Integrate advances the point one step.
func (p *Point) Integrate() {
	p.Vel = p.Pos.Sub(p.Prev)
	p.Prev = p.Pos
	p.Pos = p.Pos.Add(p.Vel).Add(cp.Vector{X: 0, Y: p.Gravity})
}

// Dist returns the distance between p and other.
func (p *Point) Dist(other *Point) float64 {
	return p.Pos.Distance(other.Pos)
}

// Join runs one relaxation pass moving p and other toward distance apart.
// Each point moves by the other point's share of the combined mass.
func (p *Point) Join(other *Point, distance, force float64) {
	delta := other.Pos.Sub(p.Pos)
	dist := delta.Length()
	if dist < Epsilon {
		return
	}
	total := p.Mass + other.Mass
	r0 := p.Mass / total
	r1 := other.Mass / total
	s := delta.Mult((distance - dist) * force / dist)
	other.Pos = other.Pos.Add(s.Mult(r0))
	p.Pos = p.Pos.Sub(s.Mult(r1))
}

// Collide pushes p halfway out of the collider when it lies inside it.
func (p *Point) Collide(c Collider) {
	delta := p.Pos.Sub(c.Pos)
	sd := delta.LengthSq()
	if sd >= c.Radius*c.Radius {
		return
	}
	d := math.Sqrt(sd)
	if d < Epsilon {
		return
	}
	dz := (c.Radius - d) * CollisionSoftness
	p.Pos = p.Pos.Add(delta.Mult(dz / d))
}
