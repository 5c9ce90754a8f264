package cmd

import (
	"github.com/urfave/cli/v3"
)

// xCmd returns the non-interactive subcommand group
func xCmd() *cli.Command {
	return &cli.Command{
		Name:  "x",
		Usage: "Non-interactive commands (for scripts and CI)",
		Commands: []*cli.Command{
			xNewCmd(),
		},
	}
}

func xNewCmd() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Create a new project (non-interactive)",
		ArgsUsage: "[name]",
		Flags:     answerFlags(),
		Action:    runXNew,
	}
}

// answerFlags are shared by every command that resolves a configuration.
func answerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "answers", Aliases: []string{"a"}, Usage: "answers file (.toml, .yaml, .yml, .json)"},
		&cli.StringSliceFlag{Name: "set", Usage: "answer (key=value, repeatable)"},
		&cli.StringFlag{Name: "flavor", Usage: "single-page or server-rendered"},
		&cli.StringFlag{Name: "language", Usage: "typed or untyped"},
		&cli.StringFlag{Name: "ui", Usage: "none, utility-css or component-library"},
		&cli.BoolFlag{Name: "router", Usage: "add client-side routing (single-page only)"},
		&cli.StringFlag{Name: "icons", Usage: "none, react-icons or lucide"},
		&cli.StringFlag{Name: "notification", Usage: "none, toastify or sonner"},
		&cli.StringFlag{Name: "auth", Usage: "none, clerk, auth0, firebase or supabase"},
		&cli.BoolFlag{Name: "state", Usage: "add a state management library"},
		&cli.BoolFlag{Name: "http", Usage: "add an HTTP client"},
		&cli.StringFlag{Name: "structure", Usage: "classic or feature-sliced (single-page only)"},
	}
}
