package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/deps"
	"github.com/olimci/frontkit/pkg/events"
	"github.com/olimci/frontkit/pkg/generate"
	"github.com/olimci/frontkit/pkg/runner"
	"github.com/olimci/frontkit/pkg/vcs"
	"github.com/urfave/cli/v3"
)

// session is the state shared by every command.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *logPrinter
	manager deps.Manager
	git     bool
	quiet   bool
}

func newSession(cmd *cli.Command) (*session, error) {
	path, err := config.Find(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	manager := cfg.Manager()
	if pm := strings.TrimSpace(cmd.String("package-manager")); pm != "" {
		if manager, err = deps.ParseManager(pm); err != nil {
			return nil, err
		}
	}

	level := cmd.String("log-level")
	if cmd.Bool("verbose") {
		level = "debug"
	}

	quiet := cmd.Bool("quiet")
	logger, err := newLogger(os.Stderr, level, quiet)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	return &session{
		cfg:     cfg,
		logger:  logger,
		printer: newLogPrinter(os.Stdout),
		manager: manager,
		git:     cfg.Git() && !cmd.Bool("no-git"),
		quiet:   quiet,
	}, nil
}

func newLogger(w io.Writer, level string, quiet bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	if quiet {
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "frontkit",
	}), nil
}

// eventLogger forwards engine events to the logger.
func eventLogger(logger *log.Logger) events.Handler {
	return events.NewHandlerFunc(func(e events.Event) {
		var kv []any
		if e.Step != "" {
			kv = append(kv, "step", e.Step)
		}
		if e.Error != nil {
			kv = append(kv, "err", e.Error)
		}

		switch e.Level {
		case events.Debug:
			logger.Debug(e.Message, kv...)
		case events.Info:
			logger.Info(e.Message, kv...)
		case events.Warning:
			logger.Warn(e.Message, kv...)
		default:
			logger.Error(e.Message, kv...)
		}
	})
}

// collector keeps every event for the summary. While a spinner owns the
// terminal, events are only collected.
func (s *session) collector(spinning bool) *events.Collector {
	if spinning {
		return events.NewCollector(events.Noop)
	}
	return events.NewCollector(eventLogger(s.logger))
}

// generator builds a Generator wired to the session. echo receives the
// output of external commands as they run; nil keeps it captured only.
func (s *session) generator(workdir string, echo io.Writer, handler events.Handler) *generate.Generator {
	var v vcs.VCS = vcs.None{}
	if s.git {
		v = vcs.Git{Name: s.cfg.Publisher.Name, Email: s.cfg.Publisher.Email}
	}

	return generate.New(
		generate.FromConfig(s.cfg),
		generate.WithManager(s.manager),
		generate.WithWorkdir(workdir),
		generate.WithRunner(runner.Exec{Echo: echo}),
		generate.WithVCS(v),
		generate.WithEventHandler(handler),
	)
}
