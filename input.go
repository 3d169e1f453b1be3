package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ragdoll/sim"
)

// MouseInput reads the cursor, or the first touch when one is active.
// Holding the left button or touching drags the figures.
type MouseInput struct {
	touches []ebiten.TouchID
}

func (m *MouseInput) Read(sim.View) (sim.PointerState, error) {
	m.touches = ebiten.AppendTouchIDs(m.touches[:0])
	if len(m.touches) > 0 {
		x, y := ebiten.TouchPosition(m.touches[0])
		return sim.PointerState{X: float64(x), Y: float64(y), Dragging: true}, nil
	}

	x, y := ebiten.CursorPosition()
	return sim.PointerState{
		X:        float64(x),
		Y:        float64(y),
		Dragging: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}, nil
}
