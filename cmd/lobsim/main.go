package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/angelorosu/Limit-Order-Book/internal/config"
	"github.com/angelorosu/Limit-Order-Book/internal/display"
	"github.com/angelorosu/Limit-Order-Book/internal/engine"
	"github.com/angelorosu/Limit-Order-Book/internal/sim"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load config")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// Setup the book and its two timer-driven collaborators. Both talk to
	// the engine only through the public API.
	book := engine.NewOrderBook()
	supervisor := sim.NewSupervisor(
		sim.NewGenerator(book, cfg),
		display.New(book, cfg, os.Stdout),
	)

	log.Info().
		Float64("tick_size", cfg.TickSize).
		Dur("order_interval", cfg.OrderInterval).
		Dur("refresh_interval", cfg.RefreshInterval).
		Msg("simulator running")

	if err := supervisor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("simulator failed")
	}

	log.Info().Int("transactions", len(book.Transactions())).Msg("simulator stopped")
}
