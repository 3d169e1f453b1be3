package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/ragdoll/config"
	"github.com/milk9111/ragdoll/prefabs"
	"github.com/milk9111/ragdoll/sim"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "", "config file (.yaml or .toml)")
	templateName := flag.String("template", "", "ragdoll prefab in prefabs/ (default human.yaml)")
	script := flag.String("script", "", "pointer script in prefabs/scripts/")
	frames := flag.Int("frames", 0, "frames to simulate (overrides config)")
	output := flag.String("o", "", "output file, stdout when empty")
	all := flag.Bool("all", false, "also write warm-up frames")
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
	if *frames > 0 {
		conf.Frames = *frames
	}
	if *output != "" {
		conf.Output = *output
	}

	out := io.Writer(os.Stdout)
	if conf.Output != "" {
		f, err := os.Create(conf.Output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	n, err := run(conf, out, *all)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("headless: wrote %d frames", n)
}

// run steps the world conf.Frames times and writes each visible frame as
// one YAML document.
func run(conf *config.Config, out io.Writer, all bool) (int, error) {
	spec, err := prefabs.LoadRagdollSpec(conf.Template)
	if err != nil {
		return 0, err
	}
	t, err := spec.Template()
	if err != nil {
		return 0, err
	}

	var input sim.Input = sim.Fixed{X: conf.Width * 0.5, Y: conf.Height * 0.75}
	if conf.Script != "" {
		sp, err := sim.LoadScriptPointer(conf.Script)
		if err != nil {
			return 0, err
		}
		input = sp
	}

	world, err := sim.NewWorld(conf, t, input)
	if err != nil {
		return 0, err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	written := 0
	for i := 0; i < conf.Frames; i++ {
		frame := world.Step()
		if !frame.Visible && !all {
			continue
		}
		if err := enc.Encode(frame); err != nil {
			return written, fmt.Errorf("headless: encode frame %d: %w", frame.Index, err)
		}
		written++
	}
	if err := enc.Close(); err != nil {
		return written, fmt.Errorf("headless: %w", err)
	}
	return written, nil
}
