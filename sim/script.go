package sim

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ragdoll/prefabs"
)

// pointerDispatchScript is appended to every pointer script. Scripts define
// pointer(frame, width, height) returning {x, y, drag}.
const pointerDispatchScript = `
__result := pointer(__frame, __width, __height)
`

// ScriptPointer is an Input driven by a tengo script.
type ScriptPointer struct {
	name     string
	compiled *tengo.Compiled
}

// LoadScriptPointer compiles a script from prefabs/scripts.
func LoadScriptPointer(name string) (*ScriptPointer, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("sim: load script %s: %w", name, err)
	}
	return NewScriptPointer(name, src)
}

func NewScriptPointer(name string, src []byte) (*ScriptPointer, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + pointerDispatchScript))
	_ = script.Add("__frame", 0)
	_ = script.Add("__width", 0.0)
	_ = script.Add("__height", 0.0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("sim: compile script %s: %w", name, err)
	}
	return &ScriptPointer{name: name, compiled: compiled}, nil
}

func (s *ScriptPointer) Name() string {
	return s.name
}

func (s *ScriptPointer) Read(v View) (PointerState, error) {
	if err := s.compiled.Set("__frame", v.Frame); err != nil {
		return PointerState{}, err
	}
	if err := s.compiled.Set("__width", v.Width); err != nil {
		return PointerState{}, err
	}
	if err := s.compiled.Set("__height", v.Height); err != nil {
		return PointerState{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return PointerState{}, fmt.Errorf("sim: run script %s: %w", s.name, err)
	}

	result := s.compiled.Get("__result").Map()
	if result == nil {
		return PointerState{}, fmt.Errorf("sim: script %s: pointer() must return a map", s.name)
	}
	x, okX := number(result["x"])
	y, okY := number(result["y"])
	if !okX || !okY {
		return PointerState{}, fmt.Errorf("sim: script %s: pointer() must return numeric x and y", s.name)
	}
	drag, _ := result["drag"].(bool)
	return PointerState{X: x, Y: y, Dragging: drag}, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
