package engine

import "errors"

var (
	ErrInvalidSide  = errors.New("invalid order side")
	ErrInvalidPrice = errors.New("price must be positive")
	ErrInvalidSize  = errors.New("size must be positive")
)

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	}
	return "unknown"
}

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}
