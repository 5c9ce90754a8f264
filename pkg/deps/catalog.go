package deps

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/olimci/frontkit/pkg/project"
)

var ErrInvalidCatalog = errors.New("invalid dependency catalog")

// Latest is the version used when no constraint is pinned.
const Latest = "latest"

type Package struct {
	Name    string
	Version string
}

// String renders the package as an installer argument, e.g. axios@^1.
func (p Package) String() string {
	if p.Version == "" {
		return p.Name + "@" + Latest
	}
	return p.Name + "@" + p.Version
}

func pkg(name, version string) Package {
	return Package{Name: name, Version: version}
}

// selection is what one catalog rule contributes for a record. Bootstrap
// packages are brought in by the scaffold's own flags.
type selection struct {
	packages  []Package
	bootstrap bool
}

type rule struct {
	field string
	pick  func(rec project.Record) selection
}

func install(pkgs ...Package) selection {
	return selection{packages: pkgs}
}

var catalog = []rule{
	{field: "ui", pick: func(rec project.Record) selection {
		switch rec.UI {
		case project.UtilityCSS:
			if rec.SinglePage() {
				return install(pkg("tailwindcss", "^4"), pkg("@tailwindcss/vite", "^4"))
			}
			return selection{
				packages:  []Package{pkg("tailwindcss", "^4"), pkg("@tailwindcss/postcss", "^4")},
				bootstrap: true,
			}
		case project.ComponentLibrary:
			return install(pkg("@chakra-ui/react", "^3"), pkg("@emotion/react", "^11"))
		}
		return selection{}
	}},
	{field: "router", pick: func(rec project.Record) selection {
		if rec.UsesRouter() {
			return install(pkg("react-router-dom", "^7"))
		}
		return selection{}
	}},
	{field: "icons", pick: func(rec project.Record) selection {
		switch rec.Icons {
		case project.ReactIcons:
			return install(pkg("react-icons", "^5"))
		case project.Lucide:
			return install(pkg("lucide-react", Latest))
		}
		return selection{}
	}},
	{field: "notification", pick: func(rec project.Record) selection {
		n, _ := rec.Notification.Get()
		switch n {
		case project.Toastify:
			return install(pkg("react-toastify", "^11"))
		case project.Sonner:
			return install(pkg("sonner", "^2"))
		}
		return selection{}
	}},
	{field: "auth", pick: func(rec project.Record) selection {
		spa := rec.SinglePage()
		switch rec.Auth {
		case project.Clerk:
			if spa {
				return install(pkg("@clerk/clerk-react", "^5"))
			}
			return install(pkg("@clerk/nextjs", "^6"))
		case project.Auth0:
			if spa {
				return install(pkg("@auth0/auth0-react", "^2"))
			}
			return install(pkg("@auth0/nextjs-auth0", "^4"))
		case project.Firebase:
			return install(pkg("firebase", Latest))
		case project.Supabase:
			if spa {
				return install(pkg("@supabase/supabase-js", "^2"))
			}
			return install(pkg("@supabase/supabase-js", "^2"), pkg("@supabase/ssr", Latest))
		}
		return selection{}
	}},
	{field: "state", pick: func(rec project.Record) selection {
		if rec.State {
			return install(pkg("zustand", "^5"))
		}
		return selection{}
	}},
	{field: "http", pick: func(rec project.Record) selection {
		if rec.HTTP {
			return install(pkg("axios", "^1"))
		}
		return selection{}
	}},
}

// Validate checks every package the catalog can produce for the given
// records: each version must be "latest" or a valid semver constraint.
func Validate(records ...project.Record) error {
	var errs []error
	for _, rec := range records {
		for _, r := range catalog {
			for _, p := range r.pick(rec).packages {
				if err := validateVersion(p); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", r.field, err))
				}
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

func validateVersion(p Package) error {
	if p.Name == "" {
		return errors.New("package without a name")
	}
	if p.Version == Latest {
		return nil
	}
	if _, err := semver.NewConstraint(p.Version); err != nil {
		return fmt.Errorf("package %s: version %q: %w", p.Name, p.Version, err)
	}
	return nil
}
