package verlet

// DefaultConstraintForce is used when a distance constraint has no force.
const DefaultConstraintForce = 1.0

// Constraint keeps two points at the distance they had when it was built.
// It references points owned by a Body.
type Constraint struct {
	P0, P1   *Point
	Distance float64
	Force    float64
}

// NewConstraint records the current distance between p0 and p1 as the rest
// distance.
func NewConstraint(p0, p1 *Point, force float64) *Constraint {
	if force == 0 {
		force = DefaultConstraintForce
	}
	return &Constraint{
		P0:       p0,
		P1:       p1,
		Distance: p0.Dist(p1),
		Force:    force,
	}
}

// Update applies one relaxation pass.
func (c *Constraint) Update() {
	c.P0.Join(c.P1, c.Distance, c.Force)
}
