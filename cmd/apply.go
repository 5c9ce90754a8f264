package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/steps"
	"github.com/urfave/cli/v3"
)

func runApply(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	dir := "."
	switch cmd.NArg() {
	case 0:
	case 1:
		dir = cmd.Args().First()
	default:
		return ErrTooManyArgs
	}

	answers, err := storedAnswers(dir, cmd.String("answers"))
	if err != nil {
		return err
	}

	rec, err := resolveAnswers(answers, s.cfg)
	if err != nil {
		return err
	}

	collector := s.collector(false)
	report, err := s.generator(filepath.Dir(dir), nil, collector).Reapply(ctx, dir, rec)
	if report != nil && !s.quiet {
		s.printer.PrintReport(report.Steps)
	}
	return err
}

// storedAnswers reads the configuration of an existing project: from an
// answers file when one is given, else from its manifest metadata.
func storedAnswers(dir, answersFile string) (project.Answers, error) {
	if path := strings.TrimSpace(answersFile); path != "" {
		return config.ReadAnswers(path)
	}

	manifest := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(manifest)
	if err != nil {
		return project.Answers{}, fmt.Errorf("read %s: %w", manifest, err)
	}

	answers, err := steps.ReadConfiguration(data)
	if err != nil {
		return project.Answers{}, fmt.Errorf("%s: %w", manifest, err)
	}
	return answers, nil
}
