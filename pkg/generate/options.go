package generate

import (
	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/deps"
	"github.com/olimci/frontkit/pkg/events"
	"github.com/olimci/frontkit/pkg/runner"
	"github.com/olimci/frontkit/pkg/vcs"
	"github.com/olimci/frontkit/pkg/version"
)

func defaultOptions() *options {
	cfg := config.DefaultConfig()
	return &options{
		runner:        runner.Exec{},
		vcs:           vcs.None{},
		handler:       events.Noop,
		workdir:       ".",
		manager:       deps.NPM,
		publisher:     config.DefaultPublisher(),
		devServer:     cfg.DevServer,
		commitMessage: cfg.Tooling.CommitMessage,
		version:       version.String(),
	}
}

type options struct {
	runner        runner.Runner
	vcs           vcs.VCS
	handler       events.Handler
	workdir       string
	manager       deps.Manager
	publisher     config.Publisher
	devServer     config.DevServer
	commitMessage string
	version       string
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}

	return o
}

type Option func(o *options)

// FromConfig applies the publisher, dev server, package manager and commit
// settings of a loaded tool config.
func FromConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.publisher = cfg.Publisher
		o.devServer = cfg.DevServer
		o.manager = cfg.Manager()
		o.commitMessage = cfg.Tooling.CommitMessage
	}
}

func WithRunner(r runner.Runner) Option {
	return func(o *options) {
		o.runner = r
	}
}

// WithVCS sets how the finished project is committed; vcs.None disables it.
func WithVCS(v vcs.VCS) Option {
	return func(o *options) {
		o.vcs = v
	}
}

func WithEventHandler(h events.Handler) Option {
	return func(o *options) {
		o.handler = h
	}
}

// WithWorkdir sets the directory the project directory is created in.
func WithWorkdir(dir string) Option {
	return func(o *options) {
		o.workdir = dir
	}
}

func WithManager(m deps.Manager) Option {
	return func(o *options) {
		o.manager = m
	}
}

func WithPublisher(p config.Publisher) Option {
	return func(o *options) {
		o.publisher = p
	}
}
