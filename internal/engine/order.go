package engine

import "fmt"

// Order is a resting unit of interest at a single price level. Orders are
// created only as the unfilled remainder of a submission and are owned by
// the price level queue they sit in; only the matching loop mutates
// Remaining, and only while holding the book lock.
type Order struct {
	UUID      string // Order tracked uuid
	Side      Side   // Order side
	Price     int64  // Limiting price, in ticks
	Remaining uint64 // Remaining quantity
	Total     uint64 // Total volume requested
	Sequence  uint64 // Book-assigned arrival sequence, replaces wall-clock time
}

func (o Order) String() string {
	return fmt.Sprintf("[%s %s %d/%d @ %d seq:%d]",
		o.UUID, o.Side, o.Remaining, o.Total, o.Price, o.Sequence)
}
