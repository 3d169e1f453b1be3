package sim

import (
	"log"

	"github.com/milk9111/ragdoll/verlet"
)

// InputSystem reads the input source once and eases the pointer.
type InputSystem struct {
	failing bool
}

func (s *InputSystem) Update(w *World) {
	if w.input != nil {
		state, err := w.input.Read(View{Frame: w.frame, Width: w.Width, Height: w.Height})
		switch {
		case err != nil && !s.failing:
			log.Printf("sim: input: %v", err)
			s.failing = true
		case err == nil:
			s.failing = false
			w.Pointer.Set(state)
		}
	}
	w.Pointer.Step()
}

// ColliderSystem moves the collider onto the eased pointer. It runs before
// physics so every point collides with this frame's position.
type ColliderSystem struct{}

func (ColliderSystem) Update(w *World) {
	w.Collider.Pos = w.Pointer.Eased
}

// PhysicsSystem steps every body, then re-attaches it to its hook, or to the
// collider while dragging.
type PhysicsSystem struct{}

func (PhysicsSystem) Update(w *World) {
	c := w.Collider
	for _, b := range w.Bodies {
		b.Anim(c)
		b.Pin(w.hook(b.Anchor), w.conf.HookMass)
		if w.Pointer.Dragging {
			b.Swing(c)
		}
	}
}

// SnapshotSystem copies the finished frame.
type SnapshotSystem struct{}

func (SnapshotSystem) Update(w *World) {
	f := Frame{
		Index:    w.frame,
		Visible:  w.frame > w.conf.WarmupFrames,
		Dragging: w.Pointer.Dragging,
		Collider: w.Collider,
		Bodies:   make([]verlet.BodyState, len(w.Bodies)),
	}
	for i, b := range w.Bodies {
		f.Bodies[i] = b.Snapshot()
	}
	w.last = f
}
