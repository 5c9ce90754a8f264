package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/olimci/frontkit/pkg/deps"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Publisher.Name != DefaultPublisher().Name {
		t.Errorf("Publisher.Name = %q, want built-in default", cfg.Publisher.Name)
	}
	if cfg.DevServer.Host != "0.0.0.0" || cfg.DevServer.Port != 5173 {
		t.Errorf("unexpected dev server defaults: %+v", cfg.DevServer)
	}
	if cfg.Manager() != deps.NPM {
		t.Errorf("Manager() = %q, want npm", cfg.Manager())
	}
	if !cfg.Git() {
		t.Error("Git() = false, want true by default")
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.toml", `
[frontkit]
version = "0.1.0"

[publisher]
name = "Ada Lovelace"
nickname = "ada"
email = "ada@example.com"
url = "https://ada.example.com"

[publisher.links]
github = "https://github.com/ada"

[tooling]
package_manager = "pnpm"
git = false

[dev_server]
port = 3000

[defaults]
ui = "tailwind"
state = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Publisher.Creator() != "ada" {
		t.Errorf("Creator() = %q, want ada", cfg.Publisher.Creator())
	}
	if cfg.Manager() != deps.PNPM {
		t.Errorf("Manager() = %q, want pnpm", cfg.Manager())
	}
	if cfg.Git() {
		t.Error("Git() = true, want false")
	}
	if cfg.DevServer.Port != 3000 || cfg.DevServer.Host != "0.0.0.0" {
		t.Errorf("unexpected dev server: %+v", cfg.DevServer)
	}
	if cfg.Defaults.UI != "tailwind" || cfg.Defaults.State == nil || !*cfg.Defaults.State {
		t.Errorf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadPartialPublisherIsKept(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.toml", "[publisher]\ntwitter = \"@ada\"\nimage = \"https://ada.example.com/og.png\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Publisher{Twitter: "@ada", Image: "https://ada.example.com/og.png"}
	if cfg.Publisher.Twitter != want.Twitter || cfg.Publisher.Image != want.Image || cfg.Publisher.Name != "" {
		t.Errorf("Publisher = %+v, want %+v", cfg.Publisher, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"unknown key", "[publisher]\nname = \"x\"\nfavourite_colour = \"red\"\n", ErrUnknownKeys},
		{"newer version", "[frontkit]\nversion = \"99.0.0\"\n", ErrVersionMismatch},
		{"bad version", "[frontkit]\nversion = \"soon\"\n", ErrInvalidConfig},
		{"bad manager", "[tooling]\npackage_manager = \"pip\"\n", ErrInvalidConfig},
		{"bad url", "[publisher]\nurl = \"ftp://example.com\"\n", ErrInvalidConfig},
		{"bad port", "[dev_server]\nport = 70000\n", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.toml", tt.content))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFindExplicitMissing(t *testing.T) {
	if _, err := Find(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
}

func TestReadAnswers(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"answers.toml", "name = \"app\"\nflavor = \"ssr\"\nstate = true\n"},
		{"answers.yaml", "name: app\nflavor: ssr\nstate: true\n"},
		{"answers.json", `{"name": "app", "flavor": "ssr", "state": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			a, err := ReadAnswers(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("ReadAnswers: %v", err)
			}
			if a.Name != "app" || a.Flavor != "ssr" || a.State == nil || !*a.State {
				t.Errorf("unexpected answers: %+v", a)
			}
		})
	}

	if _, err := ReadAnswers(writeFile(t, "answers.ini", "name=app")); err == nil {
		t.Error("expected unsupported extension to fail")
	}
	if _, err := ReadAnswers(writeFile(t, "answers.json", `{"name": "app", "colour": "red"}`)); err == nil {
		t.Error("expected unknown JSON field to fail")
	}
}
