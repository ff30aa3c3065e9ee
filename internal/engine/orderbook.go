package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// OrderBook composes the two book sides, the transaction ledger and a
// shared sequence counter. A single mutex serializes submissions: the match
// loop mutates both sides and the ledger as one logical transaction, so
// readers must never observe it mid-mutation.
type OrderBook struct {
	mu     sync.Mutex
	bids   *BookSide
	asks   *BookSide
	ledger TransactionLog
	seq    uint64
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids: NewBookSide(Buy),
		asks: NewBookSide(Sell),
	}
}

// SubmitResult is what a submission produced: the trades executed while
// sweeping the opposite side, and a copy of the remainder that was left
// resting, if any.
type SubmitResult struct {
	Transactions []Transaction
	Resting      *Order
}

// Submit places a (side, price, size) intent. The incoming order consumes
// opposite-side levels in price-time priority while the crossing condition
// holds; each consumed resting order yields one transaction at the resting
// price. Any unfilled remainder rests on the submitting side.
//
// Invalid input is rejected before any state is touched.
func (b *OrderBook) Submit(side Side, price int64, size uint64) (SubmitResult, error) {
	if side != Buy && side != Sell {
		return SubmitResult{}, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	if price <= 0 {
		return SubmitResult{}, fmt.Errorf("%w: got %d", ErrInvalidPrice, price)
	}
	if size == 0 {
		return SubmitResult{}, ErrInvalidSize
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	own, opp := b.bids, b.asks
	if side == Sell {
		own, opp = b.asks, b.bids
	}

	var result SubmitResult
	remaining := size

	// Sweep the opposite side while the top of book crosses the incoming
	// price. Only the front order of the best level is ever touched, which
	// keeps strict price-time priority.
	for remaining > 0 {
		level, ok := opp.best()
		if !ok || !crosses(side, price, level.price) {
			break
		}

		resting := level.orders[0]
		matched := min(remaining, resting.Remaining)
		resting.Remaining -= matched
		remaining -= matched
		opp.volume -= matched

		b.seq++
		trade := Transaction{
			Price:    level.price,
			Size:     matched,
			Sequence: b.seq,
		}
		b.ledger.record(trade)
		result.Transactions = append(result.Transactions, trade)

		if resting.Remaining == 0 {
			opp.popFront(level)
		}
	}

	if remaining > 0 {
		b.seq++
		order := &Order{
			UUID:      uuid.New().String(),
			Side:      side,
			Price:     price,
			Remaining: remaining,
			Total:     size,
			Sequence:  b.seq,
		}
		own.push(order)

		// Hand back a copy so no caller can alias the resting order.
		rested := *order
		result.Resting = &rested
	}

	return result, nil
}

// crosses reports whether an incoming order at price can trade against a
// resting level at restingPrice.
func crosses(side Side, price, restingPrice int64) bool {
	if side == Buy {
		return restingPrice <= price
	}
	return restingPrice >= price
}

// Transactions returns the full trade history in execution order.
func (b *OrderBook) Transactions() []Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.All()
}
