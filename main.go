package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ragdoll/config"
)

func main() {
	configPath := flag.String("config", "", "config file (.yaml or .toml)")
	templateName := flag.String("template", "", "ragdoll prefab in prefabs/ (default human.yaml)")
	script := flag.String("script", "", "pointer script in prefabs/scripts/ used by autopilot")
	debug := flag.Bool("debug", false, "draw point markers and the status line")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	autopilot := flag.Bool("auto", false, "start with the scripted pointer instead of the mouse")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *templateName != "" {
		conf.Template = *templateName
	}
	if *script != "" {
		conf.Script = *script
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(conf.Width), int(conf.Height))
	ebiten.SetWindowTitle("ragdoll")

	game, err := NewGame(conf, Options{Debug: *debug, Watch: *watch, Autopilot: *autopilot})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
