package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_solo/core"
	"github.com/kuredoro/snake_solo/engine"
	"github.com/kuredoro/snake_solo/engine/console"
	"github.com/kuredoro/snake_solo/store"
)

type options struct {
	logPath   string
	verbose   bool
	storePath string
	noSave    bool
	noCover   bool
}

func parseFlags(args []string) (core.Config, options, error) {
	cfg := core.DefaultConfig()
	var opts options

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "grid width in cells")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid height in cells")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "terminal columns per cell")
	fs.Float64Var(&cfg.DefaultTicksPerMove, "ticks", cfg.DefaultTicksPerMove, "frames between moves at the start of a round")
	fs.Float64Var(&cfg.SpeedStep, "step", cfg.SpeedStep, "frames taken off per food eaten")
	fs.Float64Var(&cfg.SpeedFloor, "floor", cfg.SpeedFloor, "fewest frames between moves")
	fs.IntVar(&cfg.Origin.X, "origin-x", cfg.Origin.X, "start column of a new snake")
	fs.IntVar(&cfg.Origin.Y, "origin-y", cfg.Origin.Y, "start row of a new snake")
	fs.IntVar(&cfg.FrameRate, "fps", cfg.FrameRate, "display refreshes per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 for random")
	fs.IntVar(&cfg.SpawnAttempts, "spawn-attempts", cfg.SpawnAttempts, "random food draws before scanning for a free cell")

	fs.StringVar(&opts.logPath, "log", "snake.log", "log file, empty to disable logging")
	fs.BoolVar(&opts.verbose, "v", false, "log debug messages")
	fs.StringVar(&opts.storePath, "store", store.DefaultPath(), "top score file")
	fs.BoolVar(&opts.noSave, "no-save", false, "keep the top score in memory only")
	fs.BoolVar(&opts.noCover, "no-cover", false, "skip the start screen")

	if err := fs.Parse(args); err != nil {
		return cfg, opts, err
	}

	return cfg, opts, cfg.Validate()
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

// setupLogging points the global logger at a file since the terminal belongs
// to the game.
func setupLogging(path string, verbose bool) (io.Closer, error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if path == "" {
		log.Logger = zerolog.Nop()
		return closerFunc(func() error { return nil }), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %v", err)
	}

	log.Logger = zerolog.New(f).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()

	return f, nil
}

func logEvents(e core.Event) {
	switch e := e.(type) {
	case core.TopScoreChanged:
		log.Info().Int("score", e.Score).Msg("New top score")
	case core.RoundReset:
		if e.Cause == core.Saturated {
			log.Warn().Int("round", e.Round).Msg("Board filled up")
		}
	}
}

func play(ctx context.Context, cfg core.Config, opts options) error {
	var kv store.KV = store.NewMemory()
	if !opts.noSave {
		kv = store.NewFile(opts.storePath)
	}

	spawner := core.NewSpawner(core.NewPlacer(core.NewSource(cfg.Seed)), cfg.SpawnAttempts)
	state, err := core.NewGameState(cfg, spawner, store.NewTopScore(kv))
	if err != nil {
		return fmt.Errorf("new game: %v", err)
	}
	state.OnEvent(logEvents)

	if !opts.noCover {
		ok, err := console.ShowCover(nil, engine.TopScoreText(state))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %v", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %v", err)
	}
	defer s.Fini()
	s.DisableMouse()

	inbox := engine.NewInbox(8)
	d := engine.NewDriver(state, console.NewSurface(s), inbox, engine.DefaultPalette)

	log.Info().
		Int("cols", cfg.Cols).
		Int("rows", cfg.Rows).
		Int("fps", cfg.FrameRate).
		Msg("Game started")

	err = console.Run(ctx, s, d, inbox, cfg.FrameRate)

	top, _ := state.TopScore()
	log.Info().Int("rounds", state.Round()).Int("top_score", top).Msg("Game over")

	return err
}

func run() int {
	cfg, opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		printErr("invalid configuration:", err)
		return 2
	}

	logFile, err := setupLogging(opts.logPath, opts.verbose)
	if err != nil {
		printErr("setup logging:", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var merr *multierror.Error
	merr = multierror.Append(merr, play(ctx, cfg, opts))
	merr = multierror.Append(merr, logFile.Close())

	if err := merr.ErrorOrNil(); err != nil {
		printErr("snake:", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}

func printErr(m string, args ...interface{}) {
	if len(args) == 0 {
		panic("printErr: no arguments passed")
	}

	err := args[len(args)-1]

	header := m
	if len(args) > 1 {
		header = fmt.Sprintf(m, args[:len(args)-1]...)
	}

	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", header, err)
}
