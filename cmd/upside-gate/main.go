package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/upside-gate/audio"
	"github.com/lixenwraith/upside-gate/gate"
	"github.com/lixenwraith/upside-gate/lights"
	"github.com/lixenwraith/upside-gate/ui"
)

var version = "0.1.0"

// options collects the command line flags
type options struct {
	mute     bool
	volume   int
	seed     int64
	debounce bool
	debug    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "upside-gate",
		Short: "Open the gate to the upside down",
		Long: `upside-gate turns the terminal into a wall of lights.

Press Enter or click the button to open or close the gate. Type to make the
wall spell out your message, one light and one tone per letter.

Environment:
  UPSIDE_GATE_AUDIO_ENABLED   true/false
  UPSIDE_GATE_MASTER_VOLUME   0-100
  UPSIDE_GATE_SAMPLE_RATE     output sample rate in Hz`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "upside-gate: %v\n", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.mute, "mute", false, "Disable audio")
	flags.IntVar(&opts.volume, "volume", 100, "Master volume, 0-100")
	flags.Int64Var(&opts.seed, "seed", 0, "Seed for light colors (0 picks one from the clock)")
	flags.BoolVar(&opts.debounce, "debounce", false, "Keep a light on until 500ms after its last flash")
	flags.BoolVar(&opts.debug, "debug", false, "Write a debug log to logs/upside-gate.log")

	return cmd
}

// audioConfig layers the flags that were set over the environment
func audioConfig(cmd *cobra.Command, opts *options) *audio.AudioConfig {
	cfg := audio.LoadAudioConfig()
	if opts.mute {
		cfg.Enabled = false
	}
	if cmd.Flags().Changed("volume") {
		cfg.SetVolumePercent(opts.volume)
	}
	return cfg
}

func run(cmd *cobra.Command, opts *options) error {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initialize screen")
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mUPSIDE-GATE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	engine := audio.NewEngine(audioConfig(cmd, opts), nil)
	defer engine.Close()

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting: seed=%d debounce=%v", seed, opts.debounce)

	scheduler := ui.NewScheduler()
	wall := lights.NewWall(engine, scheduler, lights.Config{
		Debounce: opts.debounce,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	app := ui.NewApp(screen, gate.New(engine), wall, scheduler)

	app.Run()
	log.Printf("exiting")
	return nil
}
