package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/calc"
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"

	"github.com/spf13/afero"
)

func main() {
	var hcfg hal.HeadlessConfig
	var wcfg hal.WindowConfig
	var cfg app.Config
	var angle string
	var version bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&wcfg.Scale, "scale", 2, "Window zoom factor.")
	flag.StringVar(&angle, "angle", "rad", "Initial angle mode for trig functions (rad or deg).")
	flag.StringVar(&cfg.Script, "script", "", "Replay button presses from a file.")
	flag.BoolVar(&cfg.Debug, "debug", false, "Dump calculator state after every press.")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	mode, err := calc.ParseAngleMode(angle)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Angle = mode
	cfg.Fs = afero.NewOsFs()

	newApp := func(h hal.HAL) func() error {
		step, err := app.New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return step
	}

	if hcfg.Enabled {
		cfg.Trace = true
		cfg.ExitOnScriptEnd = cfg.Script != ""

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, app.ErrScriptDone) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, wcfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
