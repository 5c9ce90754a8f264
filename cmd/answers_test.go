package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli/v3"

	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/project"
)

func runGather(t *testing.T, args ...string) (project.Answers, error) {
	t.Helper()

	var (
		got project.Answers
		err error
	)
	cmd := &cli.Command{
		Name:  "test",
		Flags: answerFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			got, err = gatherAnswers(cmd)
			return nil
		},
	}
	if runErr := cmd.Run(context.Background(), append([]string{"test"}, args...)); runErr != nil {
		t.Fatalf("Run(%v): %v", args, runErr)
	}
	return got, err
}

func boolp(b bool) *bool { return &b }

func TestGatherAnswersPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "answers.yaml")
	content := "name: from-file\nui: chakra\nicons: lucide\nstate: false\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := runGather(t,
		"--answers", file,
		"--set", "ui=tailwind",
		"--set", "state=true",
		"--icons", "react-icons",
		"--http",
		"shop",
	)
	if err != nil {
		t.Fatalf("gatherAnswers: %v", err)
	}

	want := project.Answers{
		Name:  "shop",
		UI:    "tailwind",
		Icons: "react-icons",
		State: boolp(true),
		HTTP:  boolp(true),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestGatherAnswersErrors(t *testing.T) {
	if _, err := runGather(t, "--set", "ui"); err == nil {
		t.Error("expected error for --set without =")
	}
	if _, err := runGather(t, "--set", "colour=blue"); !errors.Is(err, project.ErrUnknownAnswer) {
		t.Errorf("--set colour error = %v, want ErrUnknownAnswer", err)
	}
	if _, err := runGather(t, "a", "b"); !errors.Is(err, ErrTooManyArgs) {
		t.Errorf("two names error = %v, want ErrTooManyArgs", err)
	}
}

func TestResolveAnswersUsesDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults = project.Answers{UI: "tailwind", Structure: "fsd"}

	rec, err := resolveAnswers(project.Answers{Name: "shop"}, cfg)
	if err != nil {
		t.Fatalf("resolveAnswers: %v", err)
	}
	if rec.UI != project.UtilityCSS {
		t.Errorf("UI = %q, want utility-css", rec.UI)
	}
	if s, _ := rec.Structure.Get(); s != project.FeatureSliced {
		t.Errorf("Structure = %q, want feature-sliced", s)
	}

	rec, err = resolveAnswers(project.Answers{Name: "site", Flavor: "ssr"}, cfg)
	if err != nil {
		t.Fatalf("resolveAnswers(ssr): %v", err)
	}
	if rec.Structure.IsSet() {
		t.Error("structure default applied to a server-rendered project")
	}
}

func TestAnswerFormSkipsHiddenPrompts(t *testing.T) {
	given := project.Answers{Name: "shop"}
	rec, err := project.Resolve(given)
	if err != nil {
		t.Fatal(err)
	}

	f := newAnswerForm(given, rec.Answers())
	if len(f.groups) == 0 {
		t.Fatal("expected prompts for unanswered keys")
	}
	if _, ok := f.strs["name"]; ok {
		t.Error("name prompted although given")
	}

	f.flavor = string(project.ServerRendered)
	f.ui = string(project.ComponentLibrary)

	got, err := f.answers()
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if got.Router != nil || got.Structure != "" || got.Notification != "" {
		t.Errorf("hidden answers set: %+v", got)
	}
	if _, err := project.Resolve(got); err != nil {
		t.Errorf("Resolve(form answers): %v", err)
	}
}
