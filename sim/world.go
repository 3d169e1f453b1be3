package sim

import (
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ragdoll/config"
	"github.com/milk9111/ragdoll/verlet"
)

// Frame is an immutable copy of one simulated frame, handed to renderers
// and writers after every body has finished its step.
type Frame struct {
	Index    int                `yaml:"frame"`
	Visible  bool               `yaml:"visible"`
	Dragging bool               `yaml:"dragging"`
	Collider verlet.Collider    `yaml:"collider"`
	Bodies   []verlet.BodyState `yaml:"bodies"`
}

// World owns the bodies and the collider they share.
type World struct {
	Bodies   []*verlet.Body
	Collider verlet.Collider
	Pointer  Pointer

	Width, Height float64

	conf      *config.Config
	template  verlet.Template
	input     Input
	scheduler *Scheduler
	frame     int
	last      Frame
}

// NewWorld builds a world of figures from t, read by input.
func NewWorld(conf *config.Config, t verlet.Template, input Input) (*World, error) {
	if conf == nil {
		conf = config.Default()
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	w := &World{
		conf:     conf,
		template: t,
		input:    input,
		Width:    conf.Width,
		Height:   conf.Height,
		Collider: verlet.Collider{Mass: conf.BallMass},
		Pointer:  Pointer{Ease: conf.PointerEase},
	}
	w.scheduler = NewScheduler(
		&InputSystem{},
		&ColliderSystem{},
		&PhysicsSystem{},
		&SnapshotSystem{},
	)
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset rebuilds every body from the current template and parks the
// collider below the viewport.
func (w *World) Reset() error {
	size := w.conf.SizeFactor * w.Height
	n := w.conf.HumanSpread * w.Width / size

	bodies := make([]*verlet.Body, 0, int(math.Ceil(n)))
	for i := 0; float64(i) < n; i++ {
		anchor := cp.Vector{X: float64(i) / n, Y: 0}
		b, err := verlet.NewBody(w.template, verlet.BodyOptions{
			Origin:  w.hook(anchor),
			Anchor:  anchor,
			Size:    size,
			Gravity: w.conf.Gravity,
		})
		if err != nil {
			return fmt.Errorf("sim: build body %d: %w", i, err)
		}
		bodies = append(bodies, b)
	}
	w.Bodies = bodies

	w.Pointer.Raw = cp.Vector{X: w.Width * 0.5, Y: w.Height * 0.75}
	w.Pointer.Eased = cp.Vector{X: w.Pointer.Raw.X, Y: w.Height * 2}
	w.Pointer.Dragging = false
	w.Resize(w.Width, w.Height)
	w.Collider.Pos = w.Pointer.Eased
	w.frame = 0
	w.last = Frame{}
	log.Printf("sim: reset %d bodies (size %.1f)", len(bodies), size)
	return nil
}

// SetTemplate swaps the template and rebuilds the bodies. The old bodies are
// kept when the new template is rejected.
func (w *World) SetTemplate(t verlet.Template) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	old := w.template
	w.template = t
	if err := w.Reset(); err != nil {
		w.template = old
		return err
	}
	return nil
}

// SetInput replaces the pointer source.
func (w *World) SetInput(in Input) {
	w.input = in
}

// Resize updates the viewport and the collider radius.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.Width, w.Height = width, height
	w.Collider.Radius = w.conf.BallFactor * math.Min(width, height)
}

// Step runs one frame and returns its snapshot.
func (w *World) Step() Frame {
	w.scheduler.Update(w)
	w.frame++
	return w.last
}

// Last returns the snapshot of the most recent frame.
func (w *World) Last() Frame {
	return w.last
}

// Frame returns the number of frames stepped since the last reset.
func (w *World) Frame() int {
	return w.frame
}

func (w *World) hook(anchor cp.Vector) cp.Vector {
	return cp.Vector{X: anchor.X * w.Width, Y: anchor.Y * w.Height}
}
