package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ragdoll/config"
	"github.com/milk9111/ragdoll/prefabs"
	"github.com/milk9111/ragdoll/render"
	"github.com/milk9111/ragdoll/sim"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

// statusFrames is how long a status message stays on screen.
const statusFrames = 120

type Options struct {
	Debug     bool
	Watch     bool
	Autopilot bool
}

type Game struct {
	conf *config.Config

	world    *sim.World
	renderer *render.Renderer
	frame    sim.Frame

	mouse     *MouseInput
	autopilot *sim.ScriptPointer
	auto      bool

	watcher   *prefabs.Watcher
	clipboard bool

	paused bool
	quit   bool
	ui     *ebitenui.UI
	debug  bool

	width, height float64
	status        string
	statusTimer   int
}

func NewGame(conf *config.Config, opts Options) (*Game, error) {
	spec, err := prefabs.LoadRagdollSpec(conf.Template)
	if err != nil {
		return nil, err
	}
	t, err := spec.Template()
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRenderer(render.DefaultPalette().With(spec.Colors()))
	if err != nil {
		return nil, err
	}
	renderer.Debug = opts.Debug

	g := &Game{
		conf:     conf,
		renderer: renderer,
		mouse:    &MouseInput{},
		debug:    opts.Debug,
		width:    conf.Width,
		height:   conf.Height,
	}

	g.world, err = sim.NewWorld(conf, t, g.mouse)
	if err != nil {
		return nil, err
	}

	if conf.Script != "" {
		sp, err := sim.LoadScriptPointer(conf.Script)
		if err != nil {
			log.Printf("game: autopilot disabled: %v", err)
		} else {
			g.autopilot = sp
		}
	}
	if opts.Autopilot {
		g.setAutopilot(true)
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("game: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	g.ui = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.statusTimer > 0 {
		g.statusTimer--
	}

	g.pollWatcher()

	if g.paused {
		g.ui.Update()
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.setAutopilot(!g.auto)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copyFrame()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.debug = !g.debug
		g.renderer.Debug = g.debug
	}

	if g.width != g.world.Width || g.height != g.world.Height {
		g.world.Resize(g.width, g.height)
	}

	g.frame = g.world.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.frame)

	var lines []string
	if g.debug {
		mode := "mouse"
		if g.auto {
			mode = "autopilot " + g.autopilot.Name()
		}
		lines = append(lines, fmt.Sprintf("Frame: %d    FPS: %.2f    Bodies: %d    Input: %s",
			g.frame.Index, ebiten.ActualFPS(), len(g.frame.Bodies), mode))
	}
	if g.statusTimer > 0 {
		lines = append(lines, g.status)
	}
	g.renderer.DrawHUD(screen, lines...)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) reset() {
	if err := g.world.Reset(); err != nil {
		g.setStatus("reset failed: %v", err)
		return
	}
	g.setStatus("reset")
}

func (g *Game) setAutopilot(on bool) {
	if on && g.autopilot == nil {
		g.setStatus("no autopilot script")
		return
	}
	g.auto = on
	if on {
		g.world.SetInput(g.autopilot)
		g.setStatus("autopilot: %s", g.autopilot.Name())
		return
	}
	g.world.SetInput(g.mouse)
	g.setStatus("autopilot off")
}

func (g *Game) copyFrame() {
	if !g.clipboard {
		g.setStatus("clipboard unavailable")
		return
	}
	data, err := yaml.Marshal(g.world.Last())
	if err != nil {
		g.setStatus("copy failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("copied frame %d", g.frame.Index)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		change, ok := g.watcher.Poll()
		if !ok {
			return
		}
		name := filepath.Base(change.Path)
		switch change.Kind {
		case prefabs.ChangeSpec:
			if name == filepath.Base(g.templateName()) {
				g.reloadTemplate()
			}
		case prefabs.ChangeScript:
			if g.autopilot != nil && name == scriptFile(g.autopilot.Name()) {
				g.reloadScript()
			}
		}
	}
}

func scriptFile(name string) string {
	name = filepath.Base(name)
	if filepath.Ext(name) != ".tengo" {
		name += ".tengo"
	}
	return name
}

func (g *Game) templateName() string {
	if g.conf.Template == "" {
		return prefabs.DefaultRagdoll
	}
	return g.conf.Template
}

func (g *Game) reloadTemplate() {
	spec, err := prefabs.LoadRagdollSpec(g.conf.Template)
	if err != nil {
		g.setStatus("reload %s: %v", g.templateName(), err)
		return
	}
	t, err := spec.Template()
	if err != nil {
		g.setStatus("reload %s: %v", g.templateName(), err)
		return
	}
	if err := g.world.SetTemplate(t); err != nil {
		g.setStatus("reload %s: %v", g.templateName(), err)
		return
	}
	g.renderer.Palette = render.DefaultPalette().With(spec.Colors())
	g.setStatus("reloaded %s", g.templateName())
}

func (g *Game) reloadScript() {
	sp, err := sim.LoadScriptPointer(g.autopilot.Name())
	if err != nil {
		g.setStatus("reload script: %v", err)
		return
	}
	g.autopilot = sp
	if g.auto {
		g.world.SetInput(sp)
	}
	g.setStatus("reloaded script %s", sp.Name())
}

func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusTimer = statusFrames
	log.Printf("game: %s", g.status)
}
