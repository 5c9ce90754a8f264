package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/project"
	"github.com/urfave/cli/v3"
)

var ErrTooManyArgs = errors.New("too many arguments")

// gatherAnswers collects explicit answers. Later sources win: the answers
// file, then --set pairs, then per-field flags, then the positional name.
func gatherAnswers(cmd *cli.Command) (project.Answers, error) {
	var answers project.Answers

	if path := strings.TrimSpace(cmd.String("answers")); path != "" {
		read, err := config.ReadAnswers(path)
		if err != nil {
			return project.Answers{}, err
		}
		answers = read
	}

	for _, pair := range cmd.StringSlice("set") {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return project.Answers{}, fmt.Errorf("invalid --set %q (expected key=value)", pair)
		}
		if err := answers.Set(key, strings.TrimSpace(val)); err != nil {
			return project.Answers{}, fmt.Errorf("--set %s: %w", key, err)
		}
	}

	for _, key := range project.Keys {
		if key == "name" || !cmd.IsSet(key) {
			continue
		}

		var val string
		if project.Options(key) == nil {
			val = strconv.FormatBool(cmd.Bool(key))
		} else {
			val = cmd.String(key)
		}
		if err := answers.Set(key, val); err != nil {
			return project.Answers{}, fmt.Errorf("--%s: %w", key, err)
		}
	}

	switch cmd.NArg() {
	case 0:
	case 1:
		answers.Name = strings.TrimSpace(cmd.Args().First())
	default:
		return project.Answers{}, ErrTooManyArgs
	}

	return answers, nil
}

// resolveAnswers fills answers that were not given from the configured
// defaults and resolves the result.
func resolveAnswers(answers project.Answers, cfg *config.Config) (project.Record, error) {
	merged, err := answers.WithDefaults(cfg.Defaults)
	if err != nil {
		return project.Record{}, err
	}

	return project.Resolve(merged)
}
