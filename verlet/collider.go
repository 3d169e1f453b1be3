package verlet

import "github.com/jakecoffman/cp"

// CollisionSoftness scales the outward push applied by Point.Collide.
const CollisionSoftness = 0.5

// Collider is the circular obstacle every point collides with. It is passed
// by value into each step so a frame always sees one consistent position.
type Collider struct {
	Pos    cp.Vector
	Radius float64
	Mass   float64
}

// Phantom returns a throwaway point standing in for the collider in a Join.
func (c Collider) Phantom() *Point {
	return NewPoint(-1, c.Pos, c.Mass, 0)
}

// Overlaps reports whether the circle touches the box [min, max].
func (c Collider) Overlaps(min, max cp.Vector) bool {
	nearest := cp.Vector{
		X: cp.Clamp(c.Pos.X, min.X, max.X),
		Y: cp.Clamp(c.Pos.Y, min.Y, max.Y),
	}
	return nearest.DistanceSq(c.Pos) < c.Radius*c.Radius
}
