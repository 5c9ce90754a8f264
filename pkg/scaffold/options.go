package scaffold

import "io/fs"

func defaultOptions() *options {
	return &options{
		source: structures,
		force:  false,
	}
}

type options struct {
	source fs.FS
	force  bool
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}

	return o
}

type Option func(o *options)

// WithSource replaces the embedded structures. The FS must contain a
// "structures/<name>" directory per structure.
func WithSource(fsys fs.FS) Option {
	return func(o *options) {
		o.source = fsys
	}
}

func WithForce(force bool) Option {
	return func(o *options) {
		o.force = force
	}
}
