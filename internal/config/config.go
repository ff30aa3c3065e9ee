package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidTickSize  = errors.New("tick size must be positive")
	ErrInvalidPriceBand = errors.New("price band low must be below high")
)

// Config drives the simulator. All fields come from the environment with
// sensible defaults: one synthetic order and one refresh every 200ms,
// prices drawn around 100.
type Config struct {
	TickSize  float64 `env:"LOB_TICK_SIZE" envDefault:"0.01"`
	PriceLow  float64 `env:"LOB_PRICE_LOW" envDefault:"90"`
	PriceHigh float64 `env:"LOB_PRICE_HIGH" envDefault:"110"`
	MaxSize   uint64  `env:"LOB_MAX_SIZE" envDefault:"10"`

	OrderInterval   time.Duration `env:"LOB_ORDER_INTERVAL" envDefault:"200ms"`
	RefreshInterval time.Duration `env:"LOB_REFRESH_INTERVAL" envDefault:"200ms"`

	// Seed 0 means derive one from the clock.
	Seed int64 `env:"LOB_SEED" envDefault:"0"`

	MaxDepthRows int `env:"LOB_MAX_DEPTH_ROWS" envDefault:"10"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	// Missing .env is fine, the environment wins anyway.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.TickSize <= 0 {
		return fmt.Errorf("%w: got %f", ErrInvalidTickSize, c.TickSize)
	}
	if c.PriceLow <= 0 || c.PriceLow >= c.PriceHigh {
		return fmt.Errorf("%w: [%f, %f]", ErrInvalidPriceBand, c.PriceLow, c.PriceHigh)
	}
	if c.MaxSize == 0 {
		return errors.New("max order size must be positive")
	}
	if c.OrderInterval <= 0 || c.RefreshInterval <= 0 {
		return errors.New("intervals must be positive")
	}
	return nil
}
