package engine

import "fmt"

// Transaction records a completed trade. Price is always the resting
// (passive) order's price, so any price improvement accrues to the
// aggressor. Transactions are immutable once recorded.
type Transaction struct {
	Price    int64
	Size     uint64
	Sequence uint64
}

func (t Transaction) String() string {
	return fmt.Sprintf("[trade %d @ %d seq:%d]", t.Size, t.Price, t.Sequence)
}

// TransactionLog is an append-only record of trades in execution order.
type TransactionLog struct {
	entries []Transaction
}

func (l *TransactionLog) record(t Transaction) {
	l.entries = append(l.entries, t)
}

// All returns a copy of the log in execution order.
func (l *TransactionLog) All() []Transaction {
	out := make([]Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *TransactionLog) Len() int {
	return len(l.entries)
}
