// puzzleland is a turn-based ASCII puzzle game for the terminal. Find the
// bagel.
//
// Usage:
//
//	puzzleland [-config puzzleland.yaml]
//
// Every setting can also come from PUZZLELAND_* environment variables or a
// .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"puzzleland/internal/config"
	"puzzleland/internal/game"
	"puzzleland/internal/observability"
	"puzzleland/internal/render"
	"puzzleland/internal/text"
)

// terminal is a game display that has to be released before exit.
type terminal interface {
	game.Terminal
	Close() error
}

// opener acquires the terminal a run plays on.
type opener func(config.DisplayConfig) (terminal, error)

func main() {
	os.Exit(run(os.Args[1:], openTerminal, os.Stdout))
}

// run plays one game and returns the exit status. The terminal is closed
// before anything is written to stdout.
func run(args []string, open opener, stdout io.Writer) int {
	flags := flag.NewFlagSet("puzzleland", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to a YAML config file")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	ctx := context.Background()
	tracer := observability.NoopTracer()
	if cfg.Telemetry.Enabled {
		shutdown, err := observability.SetupTracing(ctx, cfg.Telemetry, runID)
		if err != nil {
			logger.Warn("telemetry setup failed, running without traces", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
			tracer = observability.Tracer("game")
		}
	}

	catalog := text.Default()
	if cfg.Game.Catalog != "" {
		if catalog, err = text.Load(cfg.Game.Catalog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}

	term, err := open(cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	g := game.New(term,
		game.WithLogger(logger),
		game.WithTracer(tracer),
		game.WithCatalog(catalog),
		game.WithIntro(cfg.Game.Intro),
		game.WithCheats(cfg.Game.AllowCheats),
	)
	out := g.Run(ctx)

	if err := term.Close(); err != nil {
		logger.Warn("terminal restore failed", zap.Error(err))
	}
	if out.ShowBoard() {
		if err := render.WriteBoard(stdout, out.Board, out.Gripping); err != nil {
			logger.Warn("final board not printed", zap.Error(err))
		}
	}
	fmt.Fprintln(stdout, out.Message)
	return out.Code()
}

func openTerminal(d config.DisplayConfig) (terminal, error) {
	if d.Mode == "plain" {
		p, err := render.OpenPlain(os.Stdin, os.Stdout, d.Color)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	s, err := render.OpenScreen(d.Color)
	if err != nil {
		return nil, err
	}
	return s, nil
}
