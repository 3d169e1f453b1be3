package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ragdoll/verlet"
	"golang.org/x/image/colornames"
)

func TestSegmentEnds(t *testing.T) {
	cases := []struct {
		name  string
		seg   verlet.SegmentState
		wantA cp.Vector
		wantB cp.Vector
	}{
		{
			name:  "horizontal",
			seg:   verlet.SegmentState{A: cp.Vector{X: 10, Y: 5}, Angle: 0, Start: -2, Length: 12},
			wantA: cp.Vector{X: 8, Y: 5},
			wantB: cp.Vector{X: 20, Y: 5},
		},
		{
			name:  "pointing_down",
			seg:   verlet.SegmentState{A: cp.Vector{X: 0, Y: 0}, Angle: math.Pi / 2, Start: 1, Length: 3},
			wantA: cp.Vector{X: 0, Y: 1},
			wantB: cp.Vector{X: 0, Y: 4},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, b := SegmentEnds(c.seg)
			if a.Distance(c.wantA) > 1e-9 || b.Distance(c.wantB) > 1e-9 {
				t.Fatalf("ends = %v %v, want %v %v", a, b, c.wantA, c.wantB)
			}
		})
	}
}

func TestPaletteWith(t *testing.T) {
	base := DefaultPalette()
	red := color.NRGBA{R: 0xff, A: 0xff}
	p := base.With(map[string]color.Color{
		"background": red,
		"tail":       colornames.Green,
	})

	if p.Background != red {
		t.Fatalf("background = %v, want %v", p.Background, red)
	}
	if p.Shape("tail") != colornames.Green {
		t.Fatalf("tail = %v", p.Shape("tail"))
	}
	if p.Shape("head") != colornames.White {
		t.Fatalf("head lost its default color")
	}
	if p.Shape("wing") != p.Fallback {
		t.Fatalf("unknown shape did not use fallback")
	}
	if _, ok := base.Shapes["tail"]; ok {
		t.Fatalf("With mutated the base palette")
	}
}
