package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/neon-highway/audio"
	"github.com/lixenwraith/neon-highway/config"
	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/render"
	"github.com/lixenwraith/neon-highway/status"
	"github.com/lixenwraith/neon-highway/terminal"
)

type playCmd struct {
	Config  string `help:"YAML configuration file." type:"existingfile" short:"c"`
	Seed    uint64 `help:"Spawn seed; 0 picks one from the clock."`
	FPS     int    `help:"Frame rate override." name:"fps"`
	Color   string `help:"Color mode: auto, 256 or truecolor."`
	NoAudio bool   `help:"Disable sound."`
	Debug   bool   `help:"Debug logging and the metrics overlay."`
	LogFile string `help:"Log file path; overrides the config."`
	Profile string `help:"Write a cpu or mem profile to the working directory."`
}

// options loads the config file and applies flag overrides
func (c *playCmd) options() (config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return cfg, err
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.FPS != 0 {
		cfg.Display.FPS = c.FPS
	}
	if c.Color != "" {
		cfg.Display.ColorMode = c.Color
	}
	if c.NoAudio {
		cfg.Audio.Enabled = false
	}
	if c.Debug {
		cfg.Log.Debug = true
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// startProfile begins the requested profile; the returned func stops it
func startProfile(kind string) (func(), error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil, errors.Errorf("unknown profile %q, want cpu or mem", kind)
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook)
	return p.Stop, nil
}

// run plays until the user quits and returns the last score
func (c *playCmd) run() (int64, error) {
	cfg, err := c.options()
	if err != nil {
		return 0, err
	}

	stopProfile, err := startProfile(c.Profile)
	if err != nil {
		return 0, err
	}
	defer stopProfile()

	log, closeLog, err := setupLogging(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		return 0, err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Int("fps", cfg.Display.FPS).Msg("starting")

	mode, err := terminal.ParseColorMode(cfg.Display.ColorMode)
	if err != nil {
		return 0, err
	}

	reg := status.NewRegistry()
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	sim := engine.NewSimulation(cfg.Tuning, seed)
	loop := engine.NewFrameLoop(clock, cfg.FrameInterval(), parameter.CommandQueueSize)

	renderer := render.NewRenderer(reg)
	renderer.SetDebug(c.Debug)

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, errors.Wrap(err, "create screen")
	}
	display := terminal.NewDisplay(screen, renderer, mode, reg, log)
	if err := display.Init(); err != nil {
		return 0, err
	}
	// Normal exit terminal cleanup
	defer display.Fini()

	// Loop goroutine panics bypass main's recover
	loop.SetCrashHandler(func(r any) {
		display.Fini()
		log.Error().Interface("panic", r).Msg("loop crashed")
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGAME CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	runner := engine.NewRunner(sim, loop, clock, display, reg, log)

	player := audio.NewCuePlayer(cfg.Audio, clock, reg, log)
	if err := player.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer player.Cleanup()
	runner.AddListener(player)

	runner.Start()
	defer runner.Stop()
	runner.Resize(display.ViewSize())

	terminal.NewInput(display, runner, renderer, log).Run(context.Background())

	snap := runner.Snapshot()
	logSummary(log, reg, snap)
	return snap.Score, nil
}

func logSummary(log zerolog.Logger, reg *status.Registry, snap engine.Snapshot) {
	e := log.Info().Stringer("state", snap.State).Int64("score", snap.Score)
	for _, s := range reg.Samples() {
		e = e.Float64(s.Key, s.Value)
	}
	e.Msg("exit")
}
