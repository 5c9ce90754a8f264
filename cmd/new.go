package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/olimci/frontkit/pkg/generate"
	"github.com/olimci/frontkit/pkg/project"
	"github.com/urfave/cli/v3"
)

var ErrAborted = errors.New("aborted")

func runNew(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	answers, err := gatherAnswers(cmd)
	if err != nil {
		return err
	}

	interactive := isTerminal(os.Stdin) && isTerminal(os.Stdout)
	if interactive {
		answers, err = promptAnswers(ctx, answers, s)
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		if err != nil {
			return err
		}
	}

	return create(ctx, s, answers, interactive && !s.quiet)
}

func runXNew(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	answers, err := gatherAnswers(cmd)
	if err != nil {
		return err
	}

	return create(ctx, s, answers, false)
}

func create(ctx context.Context, s *session, answers project.Answers, spin bool) error {
	rec, err := resolveAnswers(answers, s.cfg)
	if err != nil {
		return err
	}

	workdir, err := os.Getwd()
	if err != nil {
		return err
	}

	var echo io.Writer
	if !spin && s.logger.GetLevel() <= log.DebugLevel {
		echo = os.Stderr
	}

	collector := s.collector(spin)
	g := s.generator(workdir, echo, collector)

	var report *generate.Report
	run := func(ctx context.Context) error {
		var err error
		report, err = g.Run(ctx, rec)
		return err
	}

	if spin {
		err = withSpinner(ctx, fmt.Sprintf("Creating %s...", rec.Name), run)
	} else {
		err = run(ctx)
	}

	if !s.quiet {
		s.printer.PrintSummary(collector.Summary())
	}

	if err != nil {
		var tool *generate.ExternalToolError
		if errors.As(err, &tool) && len(tool.Output) > 0 {
			os.Stderr.Write(tool.Output)
		}
		return err
	}

	if !s.quiet {
		s.printer.PrintSuccess(report, s.cfg.Publisher)
	}
	return nil
}

func withSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var actionErr error
	err := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() {
			actionErr = action(ctx)
		}).
		Run()
	if actionErr != nil {
		return actionErr
	}
	return err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// promptAnswers asks for every answer that was not given. Prompts start at
// the value the answer would otherwise resolve to.
func promptAnswers(ctx context.Context, given project.Answers, s *session) (project.Answers, error) {
	seed, err := given.WithDefaults(s.cfg.Defaults)
	if err != nil {
		return project.Answers{}, err
	}
	if seed.Name == "" {
		seed.Name = "app"
	}
	rec, err := project.Resolve(seed)
	if err != nil {
		return project.Answers{}, err
	}
	base := rec.Answers()

	f := newAnswerForm(given, base)
	if len(f.groups) == 0 {
		return given, nil
	}

	form := huh.NewForm(f.groups...).WithTheme(huh.ThemeCatppuccin())
	if err := form.RunWithContext(ctx); err != nil {
		return project.Answers{}, err
	}

	return f.answers()
}

// answerForm holds the prompt values for one run of the form.
type answerForm struct {
	given  project.Answers
	groups []*huh.Group

	strs  map[string]*string
	bools map[string]*bool

	flavor, ui string
}

func newAnswerForm(given, base project.Answers) *answerForm {
	f := &answerForm{
		given:  given,
		strs:   map[string]*string{},
		bools:  map[string]*bool{},
		flavor: base.Flavor,
		ui:     base.UI,
	}

	var first []huh.Field
	if strings.TrimSpace(given.Name) == "" {
		name := ""
		f.strs["name"] = &name
		first = append(first, huh.NewInput().
			Title("Project name").
			Value(&name).
			Validate(validateName))
	}
	if given.Flavor == "" {
		f.strs["flavor"] = &f.flavor
		first = append(first, f.selectField("Flavor", "flavor", &f.flavor))
	}
	first = append(first, f.stringFields(base, "language")...)
	if given.UI == "" {
		f.strs["ui"] = &f.ui
		first = append(first, f.selectField("UI", "ui", &f.ui))
	}
	f.add(first, nil)

	f.add(append(f.boolFields(base, "router"), f.stringFields(base, "structure")...), func() bool {
		return f.flavor != string(project.SinglePage)
	})
	f.add(f.stringFields(base, "notification"), func() bool {
		return f.ui == string(project.ComponentLibrary)
	})
	f.add(append(f.stringFields(base, "icons", "auth"), f.boolFields(base, "state", "http")...), nil)

	return f
}

func (f *answerForm) add(fields []huh.Field, hide func() bool) {
	if len(fields) == 0 {
		return
	}
	g := huh.NewGroup(fields...)
	if hide != nil {
		g = g.WithHideFunc(hide)
	}
	f.groups = append(f.groups, g)
}

func (f *answerForm) selectField(title, key string, value *string) huh.Field {
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(project.Options(key)...)...).
		Value(value)
}

func (f *answerForm) stringFields(base project.Answers, keys ...string) []huh.Field {
	current := map[string]string{
		"language":     base.Language,
		"icons":        base.Icons,
		"notification": base.Notification,
		"auth":         base.Auth,
		"structure":    base.Structure,
	}
	explicit := map[string]string{
		"language":     f.given.Language,
		"icons":        f.given.Icons,
		"notification": f.given.Notification,
		"auth":         f.given.Auth,
		"structure":    f.given.Structure,
	}

	var out []huh.Field
	for _, key := range keys {
		if explicit[key] != "" {
			continue
		}
		value := current[key]
		if value == "" {
			value = project.Options(key)[0]
		}
		f.strs[key] = &value
		out = append(out, f.selectField(titleFor(key), key, &value))
	}
	return out
}

func (f *answerForm) boolFields(base project.Answers, keys ...string) []huh.Field {
	current := map[string]*bool{"router": base.Router, "state": base.State, "http": base.HTTP}
	explicit := map[string]*bool{"router": f.given.Router, "state": f.given.State, "http": f.given.HTTP}

	var out []huh.Field
	for _, key := range keys {
		if explicit[key] != nil {
			continue
		}
		value := key == "router"
		if cur := current[key]; cur != nil {
			value = *cur
		}
		f.bools[key] = &value
		out = append(out, huh.NewConfirm().Title(titleFor(key)).Value(&value))
	}
	return out
}

// answers applies the prompted values over the given ones. Prompts hidden
// by an earlier choice are left unset.
func (f *answerForm) answers() (project.Answers, error) {
	out := f.given
	hidden := map[string]bool{
		"router":       f.flavor != string(project.SinglePage),
		"structure":    f.flavor != string(project.SinglePage),
		"notification": f.ui == string(project.ComponentLibrary),
	}

	for _, key := range project.Keys {
		if hidden[key] {
			continue
		}
		var err error
		if v, ok := f.strs[key]; ok {
			err = out.Set(key, *v)
		} else if v, ok := f.bools[key]; ok {
			err = out.Set(key, strconv.FormatBool(*v))
		}
		if err != nil {
			return project.Answers{}, err
		}
	}

	return out, nil
}

func titleFor(key string) string {
	switch key {
	case "language":
		return "Language"
	case "router":
		return "Add client-side routing?"
	case "structure":
		return "Folder structure"
	case "notification":
		return "Notifications"
	case "icons":
		return "Icons"
	case "auth":
		return "Authentication"
	case "state":
		return "Add a state store?"
	case "http":
		return "Add an HTTP client?"
	default:
		return key
	}
}

func validateName(raw string) error {
	if _, err := project.Resolve(project.Answers{Name: raw}); err != nil {
		return err
	}

	workdir, err := os.Getwd()
	if err != nil {
		return err
	}
	if generate.Exists(workdir, strings.TrimSpace(raw)) {
		return fmt.Errorf("%s already exists", strings.TrimSpace(raw))
	}
	return nil
}
