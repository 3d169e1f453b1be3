package verlet

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside", 1, 1},
		{"pi_kept", math.Pi, math.Pi},
		{"minus_pi_wrapped", -math.Pi, math.Pi},
		{"just_above_pi", math.Pi + 0.1, -math.Pi + 0.1},
		{"just_below_minus_pi", -math.Pi - 0.1, math.Pi - 0.1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Normalize(c.in); !near(got, c.want, 1e-12) {
				t.Fatalf("Normalize(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

// bent builds a constraint whose joint angle at p1 is joint.
func bent(joint, target, rng float64) *Angle {
	p0 := NewPoint(0, cp.Vector{X: -10, Y: 0}, 1, 0)
	p1 := NewPoint(1, cp.Vector{X: 0, Y: 0}, 1, 0)
	p2 := NewPoint(2, cp.ForAngle(joint).Mult(10), 1, 0)
	return NewAngle(p0, p1, p2, target, rng, 0.1)
}

func TestAngleWrapAroundContinuity(t *testing.T) {
	const eps = 1e-3
	above := bent(math.Pi-eps, 0, 0.5)
	below := bent(-math.Pi+eps, 0, 0.5)

	da, db := above.Deviation(), below.Deviation()
	if !near(math.Abs(da), math.Abs(db), 1e-9) {
		t.Fatalf("deviation magnitudes differ: %v vs %v", da, db)
	}
	ea, eb := above.Correction(da), below.Correction(db)
	if !near(math.Abs(ea), math.Abs(eb), 1e-9) {
		t.Fatalf("correction magnitudes differ: %v vs %v", ea, eb)
	}
	if math.Abs(ea) == 0 {
		t.Fatalf("expected a correction outside the band")
	}
}

func TestAngleWrapAroundAcrossBoundary(t *testing.T) {
	const eps = 1e-3
	// Target sits just past -π; the joint just before π is only 2*eps away.
	a := bent(math.Pi-eps, -math.Pi+eps, 0.1)
	if d := a.Deviation(); !near(d, 2*eps, 1e-9) {
		t.Fatalf("deviation = %v, want %v", d, 2*eps)
	}
	if e := a.Correction(a.Deviation()); e != 0 {
		t.Fatalf("correction inside band = %v, want 0", e)
	}
}

func TestAngleCorrection(t *testing.T) {
	a := &Angle{Range: 0.5, Force: 0.1}
	cases := []struct {
		name string
		d    float64
		want float64
	}{
		{"inside", 0.3, 0},
		{"on_edge", -0.5, 0},
		{"above", 1.5, 0.1},
		{"below", -1.5, -0.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := a.Correction(c.d); !near(got, c.want, 1e-12) {
				t.Fatalf("Correction(%v) = %v, want %v", c.d, got, c.want)
			}
		})
	}
}

func TestAngleMassRatios(t *testing.T) {
	p0 := NewPoint(0, cp.Vector{X: 0, Y: 0}, 1, 0)
	p1 := NewPoint(1, cp.Vector{X: 10, Y: 0}, 3, 0)
	p2 := NewPoint(2, cp.Vector{X: 10, Y: 10}, 2, 0)
	a := NewAngle(p0, p1, p2, 0, 1, 0)

	m1, m2, m3, m4 := a.MassRatios()
	if !near(m1+m2, 1, 1e-12) || !near(m3+m4, 1, 1e-12) {
		t.Fatalf("ratios do not sum to 1: %v %v %v %v", m1, m2, m3, m4)
	}
	if !near(m1, 0.25, 1e-12) || !near(m4, 0.4, 1e-12) {
		t.Fatalf("m1=%v m4=%v, want 0.25 and 0.4", m1, m4)
	}
	if a.Force != DefaultAngleForce {
		t.Fatalf("force = %v, want default %v", a.Force, DefaultAngleForce)
	}
	if a.Len1 != 10 || a.Len2 != 10 {
		t.Fatalf("lengths = %v, %v, want 10, 10", a.Len1, a.Len2)
	}
}

func TestAngleUpdateReducesDeviation(t *testing.T) {
	p0 := NewPoint(0, cp.Vector{X: 0, Y: 0}, 1, 0)
	p1 := NewPoint(1, cp.Vector{X: 10, Y: 0}, 1, 0)
	p2 := NewPoint(2, cp.Vector{X: 10, Y: 10}, 1, 0)
	a := NewAngle(p0, p1, p2, -math.Pi/2, math.Pi/3, 0.1)

	before := math.Abs(a.Deviation())
	if before <= a.Range {
		t.Fatalf("setup deviation %v is inside the band", before)
	}
	a.Update()
	after := math.Abs(a.Deviation())
	if after >= before {
		t.Fatalf("deviation did not shrink: before=%v after=%v", before, after)
	}
	if d := p1.Dist(p2); !near(d, a.Len2, 1e-9) {
		t.Fatalf("segment 2 length = %v, want %v", d, a.Len2)
	}
}

func TestAngleUpdateInsideBandKeepsShape(t *testing.T) {
	p0 := NewPoint(0, cp.Vector{X: 0, Y: 0}, 1, 0)
	p1 := NewPoint(1, cp.Vector{X: 10, Y: 0}, 1, 0)
	p2 := NewPoint(2, cp.Vector{X: 20, Y: 1}, 1, 0)
	a := NewAngle(p0, p1, p2, 0, 0.5, 0.1)

	joint := a.Joint()
	a.Update()
	if !near(a.Joint(), joint, 1e-9) {
		t.Fatalf("joint changed inside band: %v -> %v", joint, a.Joint())
	}
}
