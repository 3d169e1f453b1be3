package sim

import (
	"math"
	"strings"
	"testing"
)

func TestScriptPointer(t *testing.T) {
	src := []byte(`
pointer := func(frame, width, height) {
	return { x: width / 2 + frame, y: height / 4, drag: frame > 2 }
}
`)
	sp, err := NewScriptPointer("inline", src)
	if err != nil {
		t.Fatalf("NewScriptPointer: %v", err)
	}

	cases := []struct {
		frame int
		want  PointerState
	}{
		{0, PointerState{X: 500, Y: 200}},
		{3, PointerState{X: 503, Y: 200, Dragging: true}},
	}
	for _, c := range cases {
		got, err := sp.Read(View{Frame: c.frame, Width: 1000, Height: 800})
		if err != nil {
			t.Fatalf("Read(%d): %v", c.frame, err)
		}
		if got != c.want {
			t.Fatalf("Read(%d) = %+v, want %+v", c.frame, got, c.want)
		}
	}
}

func TestScriptPointerErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		compile bool
	}{
		{"syntax", "pointer := func(", false},
		{"no_pointer_func", "x := 1", false},
		{"not_a_map", "pointer := func(f, w, h) { return 3 }", true},
		{"missing_y", "pointer := func(f, w, h) { return { x: 1 } }", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sp, err := NewScriptPointer(c.name, []byte(c.src))
			if !c.compile {
				if err == nil {
					t.Fatalf("expected compile error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewScriptPointer: %v", err)
			}
			if _, err := sp.Read(View{Width: 10, Height: 10}); err == nil {
				t.Fatalf("expected read error")
			}
		})
	}
}

func TestBundledScripts(t *testing.T) {
	for _, name := range []string{"orbit", "sweep"} {
		t.Run(name, func(t *testing.T) {
			sp, err := LoadScriptPointer(name)
			if err != nil {
				t.Fatalf("LoadScriptPointer: %v", err)
			}
			if !strings.Contains(sp.Name(), name) {
				t.Fatalf("name = %q", sp.Name())
			}
			for frame := 0; frame < 300; frame += 37 {
				s, err := sp.Read(View{Frame: frame, Width: 1280, Height: 720})
				if err != nil {
					t.Fatalf("frame %d: %v", frame, err)
				}
				if math.IsNaN(s.X) || s.X < 0 || s.X > 1280 || s.Y < 0 || s.Y > 720 {
					t.Fatalf("frame %d: pointer %+v off screen", frame, s)
				}
			}
		})
	}
}
