package verlet

import "github.com/jakecoffman/cp"

// SegmentState is a shape resolved for drawing: a quad of the given
// Thickness laid along Angle, starting Start pixels from A and running
// Length pixels.
type SegmentState struct {
	Name      string    `yaml:"name"`
	A         cp.Vector `yaml:"a"`
	B         cp.Vector `yaml:"b"`
	Angle     float64   `yaml:"angle"`
	Start     float64   `yaml:"start"`
	Length    float64   `yaml:"length"`
	Thickness float64   `yaml:"thickness"`
}

// BodyState is a copy of a body's geometry, safe to keep after the body
// moves on.
type BodyState struct {
	Points   []cp.Vector    `yaml:"points"`
	Segments []SegmentState `yaml:"segments"`
}

// Snapshot copies the current geometry of b.
func (b *Body) Snapshot() BodyState {
	s := BodyState{
		Points:   make([]cp.Vector, len(b.Points)),
		Segments: make([]SegmentState, len(b.Shapes)),
	}
	for i, p := range b.Points {
		s.Points[i] = p.Pos
	}
	for i, sh := range b.Shapes {
		s.Segments[i] = sh.State()
	}
	return s
}

// State resolves the shape against its points' current positions.
func (sh *Shape) State() SegmentState {
	return SegmentState{
		Name:      sh.Name,
		A:         sh.P0.Pos,
		B:         sh.P1.Pos,
		Angle:     bearing(sh.P0.Pos, sh.P1.Pos),
		Start:     -sh.Height * sh.Offset,
		Length:    sh.Height + sh.Width*sh.Offset,
		Thickness: sh.Width,
	}
}
