package sim

import "github.com/jakecoffman/cp"

// View is what an input source may know about the frame being read.
type View struct {
	Frame  int
	Width  float64
	Height float64
}

// PointerState is one reading of the pointer.
type PointerState struct {
	X, Y     float64
	Dragging bool
}

// Input supplies the pointer. It is read exactly once per frame.
type Input interface {
	Read(v View) (PointerState, error)
}

// InputFunc adapts a function to Input.
type InputFunc func(v View) (PointerState, error)

func (f InputFunc) Read(v View) (PointerState, error) { return f(v) }

// Fixed is an Input that never moves.
type Fixed PointerState

func (f Fixed) Read(View) (PointerState, error) { return PointerState(f), nil }

// Pointer smooths the raw pointer: every frame the eased position closes
// Ease of the remaining gap.
type Pointer struct {
	Raw      cp.Vector
	Eased    cp.Vector
	Dragging bool
	Ease     float64
}

// Set records a raw reading.
func (p *Pointer) Set(s PointerState) {
	p.Raw = cp.Vector{X: s.X, Y: s.Y}
	p.Dragging = s.Dragging
}

// Step moves the eased position toward the raw one.
func (p *Pointer) Step() {
	p.Eased = p.Eased.Lerp(p.Raw, p.Ease)
}
