package compact

import "errors"

// ErrNilNetwork is returned when Compact receives a nil network.
var ErrNilNetwork = errors.New("compact: network is nil")

// Option configures Compact via functional arguments.
type Option func(*Options)

// Options holds the hooks Compact calls while it works.
type Options struct {
	// OnEliminate is called after a valve is removed, with its label and the
	// number of neighbors it had at that moment.
	OnEliminate func(label string, degree int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{OnEliminate: func(string, int) {}}
}

// WithOnEliminate registers a callback for every eliminated valve.
func WithOnEliminate(fn func(label string, degree int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEliminate = fn
		}
	}
}
