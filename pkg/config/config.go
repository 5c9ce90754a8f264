package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/olimci/frontkit/pkg/deps"
	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/version"
)

// RelPath is where the tool config lives below the XDG config directories.
const RelPath = "frontkit/config.toml"

var (
	ErrUnknownKeys     = errors.New("unknown config keys")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrVersionMismatch = errors.New("config requires a newer frontkit")
)

// Config is the tool configuration.
type Config struct {
	Frontkit  ConfigFrontkit  `toml:"frontkit"`
	Publisher Publisher       `toml:"publisher"`
	Tooling   ConfigTooling   `toml:"tooling"`
	DevServer DevServer       `toml:"dev_server"`
	Defaults  project.Answers `toml:"defaults"`

	// Path is the file the config was loaded from, empty for built-in defaults.
	Path string `toml:"-"`
}

type ConfigFrontkit struct {
	Version string `toml:"version"`
}

// Publisher is the identity written into generated projects.
type Publisher struct {
	Name     string `toml:"name"`
	Nickname string `toml:"nickname"`
	Email    string `toml:"email"`
	URL      string `toml:"url"`
	Twitter  string `toml:"twitter"`
	Image    string `toml:"image"`

	// Links are shown after a successful run and stored in the manifest.
	Links map[string]string `toml:"links"`
}

func (p Publisher) IsZero() bool {
	return p.Name == "" && p.Nickname == "" && p.Email == "" && p.URL == "" &&
		p.Twitter == "" && p.Image == "" && len(p.Links) == 0
}

// Creator is the short handle used in generated metadata.
func (p Publisher) Creator() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}

type ConfigTooling struct {
	PackageManager string `toml:"package_manager"`
	Git            *bool  `toml:"git"`
	CommitMessage  string `toml:"commit_message"`
}

// DevServer configures the generated dev-server scripts and build config.
type DevServer struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	Open bool   `toml:"open"`
}

// DefaultPublisher is used when no publisher is configured.
func DefaultPublisher() Publisher {
	return Publisher{
		Name:     "frontkit",
		Nickname: "frontkit",
		URL:      "https://github.com/olimci/frontkit",
		Links: map[string]string{
			"github": "https://github.com/olimci/frontkit",
		},
	}
}

// DefaultConfig constructs a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Frontkit: ConfigFrontkit{
			Version: version.String(),
		},
		Tooling: ConfigTooling{
			PackageManager: string(deps.NPM),
			CommitMessage:  "Initial commit from frontkit",
		},
		DevServer: DevServer{
			Host: "0.0.0.0",
			Port: 5173,
			Open: true,
		},
	}
}

// Find locates the config file. An explicit path must exist; otherwise the
// XDG config directories are searched and a missing file is not an error.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config %s: %w", explicit, err)
		}
		return explicit, nil
	}

	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return "", nil
	}
	return path, nil
}

// Load loads a Config from a file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}

		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("config %s: %w: %v", path, ErrUnknownKeys, undec)
		}
		cfg.Path = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the Config and fills in defaults.
func (c *Config) Validate() error {
	ok, err := version.Supports(c.Frontkit.Version)
	if err != nil {
		return fmt.Errorf("%w: frontkit.version: %w", ErrInvalidConfig, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s (running %s)", ErrVersionMismatch, c.Frontkit.Version, version.String())
	}

	if c.Publisher.IsZero() {
		c.Publisher = DefaultPublisher()
	}
	c.Publisher.URL = strings.TrimSpace(c.Publisher.URL)
	if c.Publisher.URL != "" {
		if err := checkURL("publisher.url", c.Publisher.URL); err != nil {
			return err
		}
	}
	for name, link := range c.Publisher.Links {
		if err := checkURL("publisher.links."+name, link); err != nil {
			return err
		}
	}

	m, err := deps.ParseManager(c.Tooling.PackageManager)
	if err != nil {
		return fmt.Errorf("%w: tooling.package_manager: %w", ErrInvalidConfig, err)
	}
	c.Tooling.PackageManager = string(m)
	if strings.TrimSpace(c.Tooling.CommitMessage) == "" {
		c.Tooling.CommitMessage = "Initial commit from frontkit"
	}

	if strings.TrimSpace(c.DevServer.Host) == "" {
		c.DevServer.Host = "0.0.0.0"
	}
	if c.DevServer.Port == 0 {
		c.DevServer.Port = 5173
	}
	if c.DevServer.Port < 1 || c.DevServer.Port > 65535 {
		return fmt.Errorf("%w: dev_server.port %d out of range", ErrInvalidConfig, c.DevServer.Port)
	}

	return nil
}

// Git reports whether a repository should be initialised; on by default.
func (c *Config) Git() bool {
	return c.Tooling.Git == nil || *c.Tooling.Git
}

// Manager returns the configured package manager.
func (c *Config) Manager() deps.Manager {
	m, _ := deps.ParseManager(c.Tooling.PackageManager)
	return m
}

func checkURL(field, raw string) error {
	if !(strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")) {
		return fmt.Errorf("%w: %s must start with http:// or https:// (got %q)", ErrInvalidConfig, field, raw)
	}
	if _, err := url.Parse(raw); err != nil {
		return fmt.Errorf("%w: %s is not a valid URL (got %q): %w", ErrInvalidConfig, field, raw, err)
	}
	return nil
}
