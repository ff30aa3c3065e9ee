package engine

import (
	"github.com/tidwall/btree"
)

// PriceLevel holds the orders resting at a single price, sorted by time
// added as they will be push-back'd.
type PriceLevel struct {
	price  int64
	orders []*Order
}

type priceLevels = btree.BTreeG[*PriceLevel]

// BookSide is one direction of the book: a price-ordered collection of
// levels. The btree comparator is chosen so that Min() is always the best
// price for the side (highest bid, lowest ask).
type BookSide struct {
	side   Side
	levels *priceLevels

	// Some book keeping
	nOrders uint64 // Track the number of resting orders on this side.
	volume  uint64 // Track the resting liquidity on this side.
}

func NewBookSide(side Side) *BookSide {
	// Sorted least first.
	less := func(a, b *PriceLevel) bool {
		return a.price < b.price
	}
	if side == Buy {
		// Sorted greatest first.
		less = func(a, b *PriceLevel) bool {
			return a.price > b.price
		}
	}
	return &BookSide{
		side:   side,
		levels: btree.NewBTreeG(less),
	}
}

// best returns the top-of-book level for this side.
func (s *BookSide) best() (*PriceLevel, bool) {
	return s.levels.MinMut()
}

// BestPrice returns the best resting price, or false if the side is empty.
func (s *BookSide) BestPrice() (int64, bool) {
	level, ok := s.levels.Min()
	if !ok {
		return 0, false
	}
	return level.price, true
}

// push appends an order to the tail of its price level, creating the level
// if it does not exist yet.
func (s *BookSide) push(order *Order) {
	// Levels comparator only accounts for price, so a bare price is enough
	// for the search.
	level, ok := s.levels.GetMut(&PriceLevel{price: order.Price})
	if ok {
		level.orders = append(level.orders, order)
	} else {
		s.levels.Set(&PriceLevel{
			price:  order.Price,
			orders: []*Order{order},
		})
	}
	s.nOrders++
	s.volume += order.Remaining
}

// popFront removes the oldest order at a level and deletes the level if it
// became empty. The caller must have fully consumed the front order first.
func (s *BookSide) popFront(level *PriceLevel) {
	level.orders[0] = nil
	level.orders = level.orders[1:]
	if len(level.orders) == 0 {
		s.levels.Delete(level)
	}
	s.nOrders--
}

// Len returns the number of distinct price levels on this side.
func (s *BookSide) Len() int {
	return s.levels.Len()
}

// Orders returns the number of resting orders on this side.
func (s *BookSide) Orders() uint64 {
	return s.nOrders
}

// Volume returns the total resting quantity on this side.
func (s *BookSide) Volume() uint64 {
	return s.volume
}
