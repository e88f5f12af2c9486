package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"orbwalker/config"
	"orbwalker/game"
	"orbwalker/orbwalk"
	"orbwalker/process"
	"orbwalker/screen"
	"orbwalker/settings"
	"orbwalker/targeting"
)

func main() {
	settingsFile := flag.String("settings", config.Info.SettingsFile, "settings file")
	strategyFlag := flag.String("strategy", "", "override focus strategy: health, damage or distance")
	drawings := flag.Bool("drawings", false, "gate targets on the screen instead of attack range")
	exe := flag.String("exe", config.Info.GameExecutable, "game executable name")
	flag.Parse()

	runtime.GOMAXPROCS(runtime.NumCPU())
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	s, err := settings.Load(*settingsFile)
	if err != nil {
		log.Fatalf("[Settings] %v", err)
	}
	if *strategyFlag != "" {
		s.SetStrategy(*strategyFlag)
	}
	if *drawings {
		s.SetDrawingsMode(true)
	}

	strategy, err := s.ParsedStrategy()
	if err != nil {
		log.Fatalf("[Settings] %v", err)
	}
	offsets, err := s.Offsets()
	if err != nil {
		log.Fatalf("[Offsets] %v", err)
	}
	radius, err := s.Radius()
	if err != nil {
		log.Printf("[Radius] %v, using fallback radius", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var poller *orbwalk.Poller
	att, err := process.Attach(process.Target{Executable: *exe})
	if err != nil {
		log.Printf("[Attach] %v", err)
		if process.Running(config.Info.ClientExecutable) {
			log.Printf("[Attach] %s is running, start a match and relaunch", config.Info.ClientExecutable)
		}
	} else {
		defer att.Close()
		log.Printf("[Attach] pid=%d base=0x%X table=%s", att.PID, att.ModuleBase, offsets.Version)

		sel := targeting.NewSelector(targeting.Conditions{
			Mode:   s.Mode(),
			Range:  s.RangeModel(),
			Radius: radius,
		})
		poller = orbwalk.NewPoller(att.Reader, offsets, att.ModuleBase, sel, orbwalk.Options{
			Strategy: strategy,
			LastHit:  s.LastHit,
			Viewport: screen.Viewport{Width: float32(config.SCREEN_WIDTH), Height: float32(config.SCREEN_HEIGHT)},
		})
	}

	ebiten.SetWindowSize(config.SCREEN_WIDTH, config.SCREEN_HEIGHT)
	ebiten.SetWindowTitle("orbwalker " + config.Info.ScriptVersion)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.PollTPS)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game.NewGame(ctx, poller)); err != nil {
		log.Printf("[Game] %v", err)
	}
}
