package writer

import (
	"github.com/wlinknet/wlinknet/internal/options"
	"github.com/wlinknet/wlinknet/section"
)

// Config holds a Writer's configuration, set via Option values.
type Config struct {
	version section.Version
}

func defaultConfig() *Config {
	return &Config{version: section.VersionDeflate}
}

// Option configures a Writer at construction time.
type Option = options.Option[*Config]

// WithVersion selects the block codec a store's blocks are compressed
// with. The default, and the only version the bit-exact baseline format
// mandates, is section.VersionDeflate.
func WithVersion(v section.Version) Option {
	return options.New(func(c *Config) error {
		c.version = v
		return nil
	})
}
