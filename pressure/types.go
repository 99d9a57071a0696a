package pressure

import (
	"github.com/katalvlaran/valvenet/compact"
	"github.com/katalvlaran/valvenet/explore"
	"github.com/katalvlaran/valvenet/network"
)

// Option configures SolveSingle and SolveDual via functional arguments.
type Option func(*Options)

// Options carries the hooks forwarded to each stage of a solve.
type Options struct {
	// Compact is passed to compact.Compact.
	Compact []compact.Option

	// Explore is passed to explore.Explore.
	Explore []explore.Option

	// OnCompacted is called once with the compacted network, before the search.
	OnCompacted func(*network.Network)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{OnCompacted: func(*network.Network) {}}
}

// WithCompact appends options for the compaction stage.
func WithCompact(opts ...compact.Option) Option {
	return func(o *Options) {
		o.Compact = append(o.Compact, opts...)
	}
}

// WithExplore appends options for the search stage.
func WithExplore(opts ...explore.Option) Option {
	return func(o *Options) {
		o.Explore = append(o.Explore, opts...)
	}
}

// WithOnCompacted registers a callback that sees the compacted network.
func WithOnCompacted(fn func(*network.Network)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompacted = fn
		}
	}
}
