package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/angelorosu/Limit-Order-Book/internal/config"
	"github.com/angelorosu/Limit-Order-Book/internal/engine"
)

const barScale = 60 // widest volume bar, in characters

// Display periodically polls the book and renders a text view: stats line,
// depth tables with volume bars, and totals. It is a pure consumer of the
// snapshot API.
type Display struct {
	book *engine.OrderBook
	cfg  config.Config
	out  io.Writer
}

func New(book *engine.OrderBook, cfg config.Config, out io.Writer) *Display {
	return &Display{book: book, cfg: cfg, out: out}
}

func (d *Display) Name() string { return "display" }

func (d *Display) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("display stopping")
			return nil
		case <-ticker.C:
			if _, err := io.WriteString(d.out, d.Render()); err != nil {
				return fmt.Errorf("writing frame: %w", err)
			}
		}
	}
}

// Render produces one frame from a single consistent snapshot. All derived
// stats come from the same snapshot, so a frame can never show a crossed or
// half-updated book.
func (d *Display) Render() string {
	snap := d.book.Snapshot()

	var sb strings.Builder
	sb.WriteString("\n=== limit order book ===\n")
	sb.WriteString(d.statsLine(snap))

	fmt.Fprintf(&sb, "\nbids (%d orders, %d volume)\n", snap.BidOrders, snap.BidVolume)
	d.writeSide(&sb, snap.Bids)
	fmt.Fprintf(&sb, "asks (%d orders, %d volume)\n", snap.AskOrders, snap.AskVolume)
	d.writeSide(&sb, snap.Asks)

	fmt.Fprintf(&sb, "transactions: %d\n", snap.Transactions)
	return sb.String()
}

func (d *Display) statsLine(snap engine.BookSnapshot) string {
	bid, hasBid := topPrice(snap.Bids)
	ask, hasAsk := topPrice(snap.Asks)

	bidStr, askStr, spreadStr, midStr := "n/a", "n/a", "n/a", "n/a"
	if hasBid {
		bidStr = d.price(float64(bid))
	}
	if hasAsk {
		askStr = d.price(float64(ask))
	}
	if hasBid && hasAsk {
		spreadStr = d.price(float64(ask - bid))
		midStr = d.price(float64(bid+ask) / 2)
	}
	return fmt.Sprintf("bid: %s  ask: %s  spread: %s  mid: %s\n",
		bidStr, askStr, spreadStr, midStr)
}

// writeSide renders levels in priority order, one row per level with a bar
// proportional to the level's volume.
func (d *Display) writeSide(sb *strings.Builder, levels []engine.LevelView) {
	if len(levels) == 0 {
		sb.WriteString("  (empty)\n")
		return
	}

	rows := levels
	if d.cfg.MaxDepthRows > 0 && len(rows) > d.cfg.MaxDepthRows {
		rows = rows[:d.cfg.MaxDepthRows]
	}

	maxVolume := uint64(0)
	for _, level := range rows {
		if v := levelVolume(level); v > maxVolume {
			maxVolume = v
		}
	}

	for _, level := range rows {
		volume := levelVolume(level)
		width := int(volume * barScale / maxVolume)
		if width == 0 {
			width = 1
		}
		fmt.Fprintf(sb, "  %10s | %4d %s\n",
			d.price(float64(level.Price)), volume, strings.Repeat("#", width))
	}
	if len(levels) > len(rows) {
		fmt.Fprintf(sb, "  ... %d more levels\n", len(levels)-len(rows))
	}
}

func (d *Display) price(ticks float64) string {
	return fmt.Sprintf("%.2f", ticks*d.cfg.TickSize)
}

func topPrice(levels []engine.LevelView) (int64, bool) {
	if len(levels) == 0 {
		return 0, false
	}
	return levels[0].Price, true
}

func levelVolume(level engine.LevelView) uint64 {
	var total uint64
	for _, size := range level.Sizes {
		total += size
	}
	return total
}
