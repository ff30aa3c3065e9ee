package sim

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/angelorosu/Limit-Order-Book/internal/config"
	"github.com/angelorosu/Limit-Order-Book/internal/engine"
)

// Generator is a timer-driven synthetic caller: every interval it draws a
// random (side, price, size) in the configured band and submits it through
// the public API, exactly like a human at the input form would. It holds no
// reference into the book's internals.
type Generator struct {
	book *engine.OrderBook
	cfg  config.Config
	rng  *rand.Rand

	submitted uint64
	rejected  uint64
}

func NewGenerator(book *engine.OrderBook, cfg config.Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		book: book,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (g *Generator) Name() string { return "generator" }

func (g *Generator) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.cfg.OrderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().
				Uint64("submitted", g.submitted).
				Uint64("rejected", g.rejected).
				Msg("generator stopping")
			return nil
		case <-ticker.C:
			g.step()
		}
	}
}

// step submits exactly one random order.
func (g *Generator) step() {
	side := engine.Side(g.rng.Intn(2))
	price := g.nextPrice()
	size := uint64(g.rng.Int63n(int64(g.cfg.MaxSize))) + 1

	result, err := g.book.Submit(side, price, size)
	if err != nil {
		// Draws are constructed to be valid, so a rejection here is a bug
		// worth shouting about rather than tolerating.
		g.rejected++
		log.Error().
			Err(err).
			Stringer("side", side).
			Int64("price", price).
			Uint64("size", size).
			Msg("synthetic order rejected")
		return
	}
	g.submitted++

	evt := log.Debug().
		Stringer("side", side).
		Float64("price", engine.TicksToPrice(price, g.cfg.TickSize)).
		Uint64("size", size).
		Int("trades", len(result.Transactions))
	if result.Resting != nil {
		evt = evt.Uint64("rested", result.Resting.Remaining)
	}
	evt.Msg("synthetic order")
}

// nextPrice draws uniformly in [PriceLow, PriceHigh] and aligns to the tick
// grid.
func (g *Generator) nextPrice() int64 {
	price := g.cfg.PriceLow + g.rng.Float64()*(g.cfg.PriceHigh-g.cfg.PriceLow)
	ticks := engine.PriceToTicks(price, g.cfg.TickSize)
	if ticks <= 0 {
		ticks = 1
	}
	return ticks
}
