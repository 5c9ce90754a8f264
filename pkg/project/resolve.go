package project

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	flavorAliases = map[string]Flavor{
		"single-page":     SinglePage,
		"spa":             SinglePage,
		"vite":            SinglePage,
		"server-rendered": ServerRendered,
		"ssr":             ServerRendered,
		"next":            ServerRendered,
		"nextjs":          ServerRendered,
	}

	languageAliases = map[string]Language{
		"typed":      Typed,
		"ts":         Typed,
		"tsx":        Typed,
		"typescript": Typed,
		"untyped":    Untyped,
		"js":         Untyped,
		"jsx":        Untyped,
		"javascript": Untyped,
	}

	uiAliases = map[string]UI{
		"none":              UINone,
		"utility-css":       UtilityCSS,
		"tailwind":          UtilityCSS,
		"tailwindcss":       UtilityCSS,
		"component-library": ComponentLibrary,
		"chakra":            ComponentLibrary,
		"chakra-ui":         ComponentLibrary,
	}

	iconsAliases = map[string]Icons{
		"none":         IconsNone,
		"react-icons":  ReactIcons,
		"lucide":       Lucide,
		"lucide-react": Lucide,
	}

	notificationAliases = map[string]Notification{
		"none":           NotificationNone,
		"toastify":       Toastify,
		"react-toastify": Toastify,
		"sonner":         Sonner,
	}

	authAliases = map[string]Auth{
		"none":     AuthNone,
		"clerk":    Clerk,
		"auth0":    Auth0,
		"firebase": Firebase,
		"supabase": Supabase,
	}

	structureAliases = map[string]Structure{
		"classic":        Classic,
		"feature-sliced": FeatureSliced,
		"fsd":            FeatureSliced,
		"zcs":            FeatureSliced,
	}
)

// Resolve validates raw answers, applies defaults and produces the canonical
// record. Fields that do not apply to the chosen flavor or UI library are
// left absent; setting one of them explicitly is an error.
func Resolve(raw Answers) (Record, error) {
	name, err := resolveName(raw.Name)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Name: name}

	if rec.Flavor, err = lookup("flavor", raw.Flavor, flavorAliases, SinglePage); err != nil {
		return Record{}, err
	}
	if rec.Language, err = lookup("language", raw.Language, languageAliases, Typed); err != nil {
		return Record{}, err
	}
	if rec.UI, err = lookup("ui", raw.UI, uiAliases, UINone); err != nil {
		return Record{}, err
	}
	if rec.Icons, err = lookup("icons", raw.Icons, iconsAliases, ReactIcons); err != nil {
		return Record{}, err
	}
	if rec.Auth, err = lookup("auth", raw.Auth, authAliases, AuthNone); err != nil {
		return Record{}, err
	}

	notification, err := lookup("notification", raw.Notification, notificationAliases, NotificationNone)
	if err != nil {
		return Record{}, err
	}
	structure, err := lookup("structure", raw.Structure, structureAliases, Classic)
	if err != nil {
		return Record{}, err
	}

	rec.State = lo.FromPtrOr(raw.State, false)
	rec.HTTP = lo.FromPtrOr(raw.HTTP, false)

	switch rec.Flavor {
	case SinglePage:
		rec.Router = Some(lo.FromPtrOr(raw.Router, true))
		rec.Structure = Some(structure)
	default:
		if raw.Router != nil {
			return Record{}, fmt.Errorf("%w: router only applies to single-page projects", ErrInvalidConfiguration)
		}
		if given(raw.Structure) {
			return Record{}, fmt.Errorf("%w: structure only applies to single-page projects", ErrInvalidConfiguration)
		}
	}

	if rec.UI == ComponentLibrary {
		if given(raw.Notification) {
			return Record{}, fmt.Errorf("%w: notification %q cannot be combined with the component library", ErrInvalidConfiguration, notification)
		}
	} else {
		rec.Notification = Some(notification)
	}

	return rec, nil
}

func resolveName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		return "", fmt.Errorf("%w: project name is empty", ErrInvalidConfiguration)
	case name == "." || name == "..":
		return "", fmt.Errorf("%w: project name %q is not a directory name", ErrInvalidConfiguration, name)
	case strings.ContainsAny(name, `/\`):
		return "", fmt.Errorf("%w: project name %q contains a path separator", ErrInvalidConfiguration, name)
	}
	return name, nil
}

func given(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

func lookup[T ~string](field, raw string, table map[string]T, def T) (T, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return def, nil
	}
	if v, ok := table[key]; ok {
		return v, nil
	}

	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q (expected one of %s)", ErrInvalidConfiguration, field, raw, strings.Join(Choices(table), ", "))
}

// Choices returns the canonical values of an alias table, sorted.
func Choices[T ~string](table map[string]T) []string {
	out := lo.Uniq(lo.Map(lo.Values(table), func(v T, _ int) string {
		return string(v)
	}))
	slices.Sort(out)
	return out
}

// Options returns the canonical values accepted for an enumerated answer, or
// nil for free-form and boolean answers.
func Options(key string) []string {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "flavor":
		return Choices(flavorAliases)
	case "language":
		return Choices(languageAliases)
	case "ui":
		return Choices(uiAliases)
	case "icons":
		return Choices(iconsAliases)
	case "notification":
		return Choices(notificationAliases)
	case "auth":
		return Choices(authAliases)
	case "structure":
		return Choices(structureAliases)
	default:
		return nil
	}
}
