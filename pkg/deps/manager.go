package deps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olimci/frontkit/pkg/runner"
)

var ErrUnknownManager = errors.New("unknown package manager")

// Manager is the package manager used to scaffold and install.
type Manager string

const (
	NPM  Manager = "npm"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
	Bun  Manager = "bun"
)

var Managers = []Manager{NPM, PNPM, Yarn, Bun}

func ParseManager(s string) (Manager, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NPM, nil
	}
	for _, m := range Managers {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownManager, s)
}

// Install returns the single batched command that installs pkgs. With no
// packages it installs whatever the manifest already declares.
func (m Manager) Install(pkgs []Package) runner.Command {
	args := make([]string, 0, len(pkgs)+1)
	if len(pkgs) == 0 {
		args = append(args, "install")
	} else if m == NPM {
		args = append(args, "install")
	} else {
		args = append(args, "add")
	}
	for _, p := range pkgs {
		args = append(args, p.String())
	}
	return runner.Command{Name: string(m), Args: args}
}

// Create returns the command that runs a create-* initializer. npm needs a
// "--" separator before the initializer's own flags.
func (m Manager) Create(initializer, name string, flags []string) runner.Command {
	args := []string{"create"}
	if m == NPM {
		args = append(args, initializer+"@latest", name)
		if len(flags) > 0 {
			args = append(args, "--")
		}
	} else {
		args = append(args, initializer, name)
	}
	args = append(args, flags...)
	return runner.Command{Name: string(m), Args: args}
}

// Run returns the shell line that runs a manifest script.
func (m Manager) Run(script string) string {
	return string(m) + " run " + script
}
