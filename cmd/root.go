package cmd

import (
	"context"

	"github.com/olimci/frontkit/pkg/version"
	"github.com/urfave/cli/v3"
)

var Version = version.String()

func Execute(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:  "frontkit",
		Usage: "Scaffold and configure React frontend projects",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file path (default: $XDG_CONFIG_HOME/frontkit/config.toml)"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "log level (debug, info, warn, error)"},
			&cli.BoolFlag{Name: "verbose", Usage: "shorthand for --log-level debug; also echoes tool output"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only print errors"},
			&cli.BoolFlag{Name: "no-git", Usage: "do not create an initial commit"},
			&cli.StringFlag{Name: "package-manager", Aliases: []string{"pm"}, Usage: "package manager (npm, pnpm, yarn, bun)"},
		},
		Commands: []*cli.Command{
			{
				Name:   "version",
				Usage:  "print version",
				Action: runVersion,
			},
			{
				Name:      "new",
				Usage:     "Create a new project",
				ArgsUsage: "[name]",
				Flags:     answerFlags(),
				Action:    runNew,
			},
			{
				Name:      "plan",
				Usage:     "Print what new would do without touching disk",
				ArgsUsage: "[name]",
				Flags:     answerFlags(),
				Action:    runPlan,
			},
			{
				Name:      "apply",
				Usage:     "Re-apply configuration to an existing project",
				ArgsUsage: "[directory]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "answers", Aliases: []string{"a"}, Usage: "answers file (.toml, .yaml, .yml, .json); default: package.json metadata"},
				},
				Action: runApply,
			},
			xCmd(),
		},
	}

	return app.Run(ctx, args)
}
