package engine

// Market-quality statistics derived from the two book sides. Every query
// returns a comma-ok pair: an empty side makes the value, and everything
// derived from it, unavailable.

// BestBid returns the highest resting buy price.
func (b *OrderBook) BestBid() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bids.BestPrice()
}

// BestAsk returns the lowest resting sell price.
func (b *OrderBook) BestAsk() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.asks.BestPrice()
}

// Spread returns bestAsk - bestBid, defined only when both sides are
// non-empty.
func (b *OrderBook) Spread() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bid, bidOk := b.bids.BestPrice()
	ask, askOk := b.asks.BestPrice()
	if !bidOk || !askOk {
		return 0, false
	}
	return ask - bid, true
}

// MidPrice returns (bestBid + bestAsk) / 2 in tick units, defined only
// when both sides are non-empty.
func (b *OrderBook) MidPrice() (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bid, bidOk := b.bids.BestPrice()
	ask, askOk := b.asks.BestPrice()
	if !bidOk || !askOk {
		return 0, false
	}
	return float64(bid+ask) / 2, true
}
