package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/lixenwraith/embergaze/audio"
	"github.com/lixenwraith/embergaze/core"
	"github.com/lixenwraith/embergaze/engine"
	"github.com/lixenwraith/embergaze/network"
	"github.com/lixenwraith/embergaze/render"
)

const version = "0.2.0"

func main() {
	rootFlagSet := flag.NewFlagSet("embergaze", flag.ExitOnError)

	runFlagSet := flag.NewFlagSet("embergaze run", flag.ExitOnError)
	runFPS := runFlagSet.Int("fps", 30, "Frame rate")
	runMute := runFlagSet.Bool("mute", false, "Start muted")
	runStatusAddr := runFlagSet.String("status-addr", "", "TCP endpoint probed for the online indicator (empty = default)")
	runLogPath := runFlagSet.String("log", "", "Debug log file (default: disabled)")

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "embergaze run [flags]",
		ShortHelp:  "Run the screen toy",
		FlagSet:    runFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			return run(*runFPS, *runMute, *runStatusAddr, *runLogPath)
		},
	}

	versionCmd := &ffcli.Command{
		Name:       "version",
		ShortUsage: "embergaze version",
		ShortHelp:  "Print version",
		Exec: func(ctx context.Context, args []string) error {
			fmt.Println("embergaze", version)
			return nil
		},
	}

	rootCmd := &ffcli.Command{
		ShortUsage:  "embergaze [flags] <subcommand>",
		ShortHelp:   "Two watchful eyes and a cursor-driven flame",
		LongHelp:    "Controls:\n  Mouse           Move the flame\n  m               Toggle mute\n  ESC / q         Quit",
		FlagSet:     rootFlagSet,
		Subcommands: []*ffcli.Command{runCmd, versionCmd},
		Exec: func(ctx context.Context, args []string) error {
			return run(30, false, "", "")
		},
	}

	if err := rootCmd.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(fps int, mute bool, statusAddr, logPath string) error {
	if fps < 1 {
		fps = 1
	}

	logger, closeLog, err := newLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	// Audio is cosmetic: init failure logs and the toy runs silent
	player := audio.NewService(mute)
	if err := player.Init(); err != nil {
		logger.Printf("audio init failed, running silent: %v", err)
		player = nil
	}

	netCfg := network.DefaultConfig()
	if statusAddr != "" {
		netCfg.Address = statusAddr
	}
	status := network.NewService(netCfg, logger)
	if err := status.Start(); err != nil {
		logger.Printf("status probe failed to start: %v", err)
	}
	defer status.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()

	res := &engine.Resource{
		Time:    &engine.TimeResource{},
		Config:  &engine.ConfigResource{Width: width, Height: height, FPS: fps},
		Network: &engine.NetworkResource{Provider: status},
	}
	if player != nil {
		res.Audio = &engine.AudioResource{Player: player}
	}

	state := engine.NewState(res, nil)
	state.Load()
	defer state.Unload()

	buf := render.NewBuffer(width, height)
	source := core.Vec2{X: float64(width) / 2, Y: float64(height) * 0.75}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frameDelay := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()

	last := time.Now()
	var frame int64

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
					ev.Rune() == 'q', ev.Rune() == 'Q':
					return nil
				case ev.Rune() == 'm', ev.Rune() == 'M':
					if player != nil {
						player.ToggleMute()
					}
				}
			case *tcell.EventMouse:
				mx, my := ev.Position()
				source = core.Vec2{X: float64(mx), Y: float64(my)}
			case *tcell.EventResize:
				width, height = screen.Size()
				res.Config.Width, res.Config.Height = width, height
				screen.Sync()
			}

		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			dt := delta.Seconds()
			if dt < 0 {
				dt = 0
			}
			// Guard against stalls (suspend, slow terminal) blowing up the
			// integrators
			if dt > 0.1 {
				dt = 0.1
			}

			frame++
			res.Time.Update(now, delta, frame)

			state.Update(dt, width, height, source)

			buf.Resize(width, height)
			buf.Clear(render.Background)
			render.DrawEye(buf, state.Left, state.Source())
			render.DrawEye(buf, state.Right, state.Source())
			render.DrawFire(buf, state.Fire)
			render.DrawStatus(buf, state.Online())

			shake := state.Shake()
			render.Present(screen, buf, int(shake.X), int(shake.Y))
		}
	}
}

// newLogger returns a file-backed logger, or a silent one when no path is
// given. The terminal owns stdout/stderr while the screen is active.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
