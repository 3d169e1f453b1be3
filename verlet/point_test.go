package verlet

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPointIntegrate(t *testing.T) {
	cases := []struct {
		name    string
		pos     cp.Vector
		prev    cp.Vector
		gravity float64
	}{
		{"at_rest_no_gravity", cp.Vector{X: 3, Y: 4}, cp.Vector{X: 3, Y: 4}, 0},
		{"at_rest_with_gravity", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: 0}, 0.2},
		{"moving", cp.Vector{X: 10, Y: 5}, cp.Vector{X: 8, Y: 6}, 0.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPoint(0, c.pos, 1, c.gravity)
			p.Prev = c.prev
			p.Integrate()

			if p.Prev != c.pos {
				t.Fatalf("prev = %v, want %v", p.Prev, c.pos)
			}
			wantVel := c.pos.Sub(c.prev)
			if p.Vel != wantVel {
				t.Fatalf("vel = %v, want %v", p.Vel, wantVel)
			}
			implied := p.Pos.Sub(p.Prev)
			if !near(implied.X, wantVel.X, 1e-12) || !near(implied.Y, wantVel.Y+c.gravity, 1e-12) {
				t.Fatalf("implied velocity = %v, want (%v, %v)", implied, wantVel.X, wantVel.Y+c.gravity)
			}
		})
	}
}

func TestNewPointDefaultsMass(t *testing.T) {
	p := NewPoint(2, cp.Vector{}, 0, 0)
	if p.Mass != 1 {
		t.Fatalf("mass = %v, want 1", p.Mass)
	}
	if p.Index != 2 {
		t.Fatalf("index = %d, want 2", p.Index)
	}
}

func TestPointJoinConvergesMonotonically(t *testing.T) {
	p0 := NewPoint(0, cp.Vector{X: 0, Y: 0}, 1, 0)
	p1 := NewPoint(1, cp.Vector{X: 30, Y: 40}, 1, 0)
	target := 10.0

	prevErr := math.Abs(p0.Dist(p1) - target)
	for i := 0; i < 20; i++ {
		p0.Join(p1, target, 0.5)
		err := math.Abs(p0.Dist(p1) - target)
		if err > prevErr {
			t.Fatalf("iteration %d: error grew from %v to %v", i, prevErr, err)
		}
		prevErr = err
	}
	if prevErr > 1e-4 {
		t.Fatalf("did not converge, remaining error %v", prevErr)
	}
}

func TestPointJoinFullForceReachesTarget(t *testing.T) {
	p0 := NewPoint(0, cp.Vector{X: 0, Y: 0}, 1, 0)
	p1 := NewPoint(1, cp.Vector{X: 4, Y: 0}, 1, 0)
	p0.Join(p1, 10, 1)
	if d := p0.Dist(p1); !near(d, 10, 1e-12) {
		t.Fatalf("distance = %v, want 10", d)
	}
}

func TestPointJoinAtTargetIsNoop(t *testing.T) {
	p0 := NewPoint(0, cp.Vector{X: 1, Y: 2}, 1, 0)
	p1 := NewPoint(1, cp.Vector{X: 4, Y: 6}, 3, 0)
	p0.Join(p1, 5, 1)
	if p0.Pos != (cp.Vector{X: 1, Y: 2}) || p1.Pos != (cp.Vector{X: 4, Y: 6}) {
		t.Fatalf("points moved: %v %v", p0.Pos, p1.Pos)
	}
}

func TestPointJoinMassRatio(t *testing.T) {
	cases := []struct {
		name   string
		m0, m1 float64
	}{
		{"equal", 1, 1},
		{"second_heavier", 1, 3},
		{"first_heavier", 5, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p0 := NewPoint(0, cp.Vector{X: 0, Y: 0}, c.m0, 0)
			p1 := NewPoint(1, cp.Vector{X: 10, Y: 0}, c.m1, 0)
			p0.Join(p1, 20, 1)

			total := 10.0
			want0 := total * c.m1 / (c.m0 + c.m1)
			want1 := total * c.m0 / (c.m0 + c.m1)
			if got := -p0.Pos.X; !near(got, want0, 1e-12) {
				t.Fatalf("p0 moved %v, want %v", got, want0)
			}
			if got := p1.Pos.X - 10; !near(got, want1, 1e-12) {
				t.Fatalf("p1 moved %v, want %v", got, want1)
			}
		})
	}
}

func TestPointJoinCoincidentIsSkipped(t *testing.T) {
	p0 := NewPoint(0, cp.Vector{X: 5, Y: 5}, 1, 0)
	p1 := NewPoint(1, cp.Vector{X: 5, Y: 5}, 1, 0)
	p0.Join(p1, 10, 1)
	if p0.Pos != p1.Pos || math.IsNaN(p0.Pos.X) || math.IsNaN(p1.Pos.X) {
		t.Fatalf("coincident join moved points: %v %v", p0.Pos, p1.Pos)
	}
}

func TestPointCollide(t *testing.T) {
	c := Collider{Radius: 100, Mass: 1000}

	t.Run("inside_pushed_halfway", func(t *testing.T) {
		p := NewPoint(0, cp.Vector{X: 50, Y: 0}, 1, 0)
		p.Collide(c)
		d := p.Pos.Length()
		if d < 50 || d >= 100 {
			t.Fatalf("distance after collide = %v, want in [50, 100)", d)
		}
		if !near(d, 75, 1e-12) {
			t.Fatalf("distance after collide = %v, want 75", d)
		}
		if !near(p.Pos.Y, 0, 1e-12) {
			t.Fatalf("point left its ray: %v", p.Pos)
		}
	})

	t.Run("outside_untouched", func(t *testing.T) {
		p := NewPoint(0, cp.Vector{X: 150, Y: 0}, 1, 0)
		p.Collide(c)
		if p.Pos != (cp.Vector{X: 150, Y: 0}) {
			t.Fatalf("outside point moved to %v", p.Pos)
		}
	})

	t.Run("center_skipped", func(t *testing.T) {
		p := NewPoint(0, cp.Vector{}, 1, 0)
		p.Collide(c)
		if p.Pos != (cp.Vector{}) {
			t.Fatalf("center point moved to %v", p.Pos)
		}
	})
}
