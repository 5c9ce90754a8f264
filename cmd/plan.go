package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

func runPlan(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	answers, err := gatherAnswers(cmd)
	if err != nil {
		return err
	}

	rec, err := resolveAnswers(answers, s.cfg)
	if err != nil {
		return err
	}

	g := s.generator(".", nil, s.collector(false))
	s.printer.PrintPlan(rec, g.Plan(rec), g.Steps(rec))
	return nil
}
