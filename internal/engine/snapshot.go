package engine

// LevelView is a flattened price level: the price and the individual
// remaining sizes of its queue, oldest first.
type LevelView struct {
	Price int64
	Sizes []uint64
}

// BookSnapshot is a consistent point-in-time view of the whole book taken
// under the submission lock. Bids are ordered best (highest) first, asks
// best (lowest) first.
type BookSnapshot struct {
	Bids []LevelView
	Asks []LevelView

	BidOrders    uint64
	AskOrders    uint64
	BidVolume    uint64
	AskVolume    uint64
	Transactions int
}

// Snapshot copies out the current book state. Polling consumers such as
// the display work only off this view and never touch live levels.
func (b *OrderBook) Snapshot() BookSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	return BookSnapshot{
		Bids:         flattenSide(b.bids),
		Asks:         flattenSide(b.asks),
		BidOrders:    b.bids.Orders(),
		AskOrders:    b.asks.Orders(),
		BidVolume:    b.bids.Volume(),
		AskVolume:    b.asks.Volume(),
		Transactions: b.ledger.Len(),
	}
}

// flattenSide walks the side's levels in priority order. The btree scan
// already ascends in the side's comparator order, so bids come out highest
// first and asks lowest first.
func flattenSide(side *BookSide) []LevelView {
	views := make([]LevelView, 0, side.levels.Len())
	side.levels.Scan(func(level *PriceLevel) bool {
		view := LevelView{
			Price: level.price,
			Sizes: make([]uint64, len(level.orders)),
		}
		for i, order := range level.orders {
			view.Sizes[i] = order.Remaining
		}
		views = append(views, view)
		return true
	})
	return views
}
