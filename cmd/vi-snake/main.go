package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	configFlag = flag.String("config", "vi-snake.toml", "Path to TOML config file")
	widthFlag  = flag.Int("width", 0, "Grid width in cells, walls included")
	heightFlag = flag.Int("height", 0, "Grid height in cells, walls included")
	seedFlag   = flag.Uint64("seed", 0, "Food placement seed, 0 picks one from the clock")
	fpsFlag    = flag.Int("fps", 0, "Frames per second")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/vi-snake.log")
)

// loadConfig layers defaults, config file, environment and explicitly set flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	game := engine.NewGame(cfg.Width, cfg.Height, seed)
	log.Printf("grid %dx%d, seed %d, fps %d", cfg.Width, cfg.Height, seed, cfg.FPS)

	a := newApp(screen, game, engine.NewMonotonicTimeProvider())
	run(a, cfg.FrameInterval())
	log.Printf("session %s ended", game.SessionID())
}

// run is the single update/render loop, it returns when the player quits or the screen closes
func run(a *app, interval time.Duration) {
	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	terminal.Go(func() {
		for {
			ev := a.screen.PollEvent()
			// Screen finalized
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	a.frame()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handleEvent(ev) {
				return
			}

		case <-frameTicker.C:
			a.frame()
		}
	}
}
