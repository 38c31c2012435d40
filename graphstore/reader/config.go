package reader

import "github.com/wlinknet/wlinknet/internal/options"

// Config holds a Reader's configuration, set via Option values.
type Config struct {
	blockCacheSize int
}

func defaultConfig() *Config {
	return &Config{}
}

// Option configures a Reader at construction time.
type Option = options.Option[*Config]

// WithBlockCache enables an in-memory LRU cache of the last n decoded
// adjacency blocks. Disabled (n=0) by default, matching the contract that
// no caching is mandated.
func WithBlockCache(n int) Option {
	return options.New(func(c *Config) error {
		c.blockCacheSize = n
		return nil
	})
}
