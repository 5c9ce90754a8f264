package deps

import (
	"github.com/samber/lo"

	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/runner"
)

// Plan is the dependency side of a run: what the scaffold brings in through
// its flags, what is installed afterward and the commands that do it.
type Plan struct {
	Manager        Manager
	Scaffold       runner.Command
	Bootstrap      []Package
	BootstrapFlags []string
	Install        []Package
	Commands       []runner.Command
}

// NewPlan derives the dependency plan for rec. It is pure.
func NewPlan(rec project.Record, manager Manager) Plan {
	if manager == "" {
		manager = NPM
	}

	var bootstrap, install []Package
	for _, r := range catalog {
		sel := r.pick(rec)
		if sel.bootstrap {
			bootstrap = append(bootstrap, sel.packages...)
		} else {
			install = append(install, sel.packages...)
		}
	}

	byName := func(p Package) string { return p.Name }
	bootstrap = lo.UniqBy(bootstrap, byName)
	bootstrapNames := lo.Map(bootstrap, func(p Package, _ int) string { return p.Name })
	install = lo.Filter(lo.UniqBy(install, byName), func(p Package, _ int) bool {
		return !lo.Contains(bootstrapNames, p.Name)
	})

	plan := Plan{
		Manager:        manager,
		Bootstrap:      bootstrap,
		BootstrapFlags: scaffoldFlags(rec, manager),
		Install:        install,
	}
	plan.Scaffold = manager.Create(initializer(rec), rec.Name, plan.BootstrapFlags)

	// create-vite never installs, so single-page projects always need one
	// install run even when nothing was selected.
	if rec.SinglePage() || len(install) > 0 {
		cmd := manager.Install(install)
		cmd.Dir = rec.Name
		plan.Commands = append(plan.Commands, cmd)
	}

	return plan
}

func initializer(rec project.Record) string {
	if rec.SinglePage() {
		return "vite"
	}
	return "next-app"
}

func scaffoldFlags(rec project.Record, manager Manager) []string {
	if rec.SinglePage() {
		template := "react"
		if rec.Typed() {
			template = "react-ts"
		}
		return []string{"--template", template, "--no-interactive"}
	}

	flags := []string{}
	if rec.Typed() {
		flags = append(flags, "--ts")
	} else {
		flags = append(flags, "--js")
	}
	flags = append(flags, "--app", "--eslint", "--no-src-dir", "--import-alias", "@/*", "--use-"+string(manager))
	if rec.UI == project.UtilityCSS {
		flags = append(flags, "--tailwind")
	} else {
		flags = append(flags, "--no-tailwind")
	}
	return append(flags, "--yes")
}
