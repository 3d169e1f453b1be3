package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ragdoll/sim"
	"github.com/milk9111/ragdoll/verlet"
	"golang.org/x/image/font/gofont/goregular"
)

const debugDotSize = 4

// Renderer draws frame snapshots. It never touches live bodies.
type Renderer struct {
	Palette Palette
	Debug   bool

	face text.Face
}

func NewRenderer(p Palette) (*Renderer, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Renderer{
		Palette: p,
		face:    &text.GoTextFace{Source: s, Size: 14},
	}, nil
}

// Draw paints f onto screen. Frames still warming up only get the backdrop.
func (r *Renderer) Draw(screen *ebiten.Image, f sim.Frame) {
	screen.Fill(r.Palette.Background)
	if !f.Visible {
		return
	}

	c := f.Collider
	vector.FillCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Radius*0.99), r.Palette.Collider, true)

	for _, b := range f.Bodies {
		for _, seg := range b.Segments {
			r.drawSegment(screen, seg)
		}
		if r.Debug {
			for _, p := range b.Points {
				vector.FillRect(screen, float32(p.X-debugDotSize/2), float32(p.Y-debugDotSize/2), debugDotSize, debugDotSize, r.Palette.Debug, false)
			}
		}
	}
}

// DrawHUD prints a status line in the top-left corner.
func (r *Renderer) DrawHUD(screen *ebiten.Image, lines ...string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = r.face.Metrics().HAscent + r.face.Metrics().HDescent + 4
	var buf bytes.Buffer
	for i, l := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(l)
	}
	text.Draw(screen, buf.String(), r.face, op)
}

func (r *Renderer) drawSegment(screen *ebiten.Image, seg verlet.SegmentState) {
	a, b := SegmentEnds(seg)
	col := r.Palette.Shape(seg.Name)
	w := float32(seg.Thickness)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, col, true)
	vector.FillCircle(screen, float32(a.X), float32(a.Y), w/2, col, true)
	vector.FillCircle(screen, float32(b.X), float32(b.Y), w/2, col, true)
}

// SegmentEnds returns the centerline of the quad drawn for seg.
func SegmentEnds(seg verlet.SegmentState) (cp.Vector, cp.Vector) {
	dir := cp.ForAngle(seg.Angle)
	start := seg.A.Add(dir.Mult(seg.Start))
	return start, start.Add(dir.Mult(seg.Length))
}
