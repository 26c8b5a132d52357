package table

import "go.uber.org/zap"

// Option configures a Table at construction time.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	columnsHint int // default: 0
	rowsHint    int // default: 0
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.columnsHint < 0 {
		cfg.columnsHint = 0
	}
	if cfg.rowsHint < 0 {
		cfg.rowsHint = 0
	}
	return cfg
}

// WithLogger sets the logger used for structural mutations.
// A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithCapacity reserves room for the given number of columns and rows.
// Negative values are treated as zero.
func WithCapacity(columns, rows int) Option {
	return func(c *config) {
		c.columnsHint = columns
		c.rowsHint = rows
	}
}
