package verlet

import (
	"math"

	"github.com/jakecoffman/cp"
)

// DefaultAngleForce is used when an angular constraint has no force.
const DefaultAngleForce = 0.1

// Angle keeps the bend at P1, between segments P0-P1 and P1-P2, within
// Range of Target. Outside the band it rotates both segments back by a
// fraction (Force) of the overshoot.
type Angle struct {
	P0, P1, P2 *Point

	Len1, Len2 float64
	Target     float64
	Range      float64
	Force      float64

	// mass ratios for the pairs (P0, P1) and (P1, P2)
	m1, m2 float64
	m3, m4 float64
}

func NewAngle(p0, p1, p2 *Point, target, rng, force float64) *Angle {
	if force == 0 {
		force = DefaultAngleForce
	}
	a := &Angle{
		P0:     p0,
		P1:     p1,
		P2:     p2,
		Len1:   p0.Dist(p1),
		Len2:   p1.Dist(p2),
		Target: target,
		Range:  rng,
		Force:  force,
	}
	m := p0.Mass + p1.Mass
	a.m1 = p0.Mass / m
	a.m2 = p1.Mass / m
	m = p1.Mass + p2.Mass
	a.m3 = p1.Mass / m
	a.m4 = p2.Mass / m
	return a
}

// MassRatios returns the blending weights for (P0, P1) and (P1, P2).
func (a *Angle) MassRatios() (m1, m2, m3, m4 float64) {
	return a.m1, a.m2, a.m3, a.m4
}

// Normalize wraps an angle into (-π, π] by adding or subtracting 2π once.
func Normalize(d float64) float64 {
	if d > math.Pi {
		return d - 2*math.Pi
	}
	if d <= -math.Pi {
		return d + 2*math.Pi
	}
	return d
}

// Joint returns the current bend at P1.
func (a *Angle) Joint() float64 {
	return bearing(a.P1.Pos, a.P2.Pos) - bearing(a.P0.Pos, a.P1.Pos)
}

// Deviation returns Target minus the current bend, wrapped into (-π, π].
func (a *Angle) Deviation() float64 {
	return Normalize(a.Target - a.Joint())
}

// Correction returns the rotation applied for a deviation d: zero inside
// the tolerance band, otherwise the overshoot past the band scaled by Force.
func (a *Angle) Correction(d float64) float64 {
	if math.Abs(d) <= a.Range {
		return 0
	}
	return (d - math.Copysign(a.Range, d)) * a.Force
}

// Update runs one relaxation pass over both segments.
func (a *Angle) Update() {
	e := a.a12()
	a.a23(e)
}

func (a *Angle) a12() float64 {
	p0, p1 := a.P0, a.P1
	e := a.Correction(a.Deviation())
	dir := cp.ForAngle(bearing(p0.Pos, p1.Pos) - e)
	pivot := p0.Pos.Add(p1.Pos.Sub(p0.Pos).Mult(a.m2))
	p0.Pos = pivot.Sub(dir.Mult(a.Len1 * a.m2))
	p1.Pos = pivot.Add(dir.Mult(a.Len1 * a.m1))
	return e
}

func (a *Angle) a23(e float64) {
	p1, p2 := a.P1, a.P2
	dir := cp.ForAngle(bearing(p2.Pos, p1.Pos) + e)
	pivot := p2.Pos.Add(p1.Pos.Sub(p2.Pos).Mult(a.m3))
	p2.Pos = pivot.Sub(dir.Mult(a.Len2 * a.m3))
	p1.Pos = pivot.Add(dir.Mult(a.Len2 * a.m4))
}

// bearing is the direction of the segment from -> to.
func bearing(from, to cp.Vector) float64 {
	return to.Sub(from).ToAngle()
}
