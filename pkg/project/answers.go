package project

import (
	"fmt"
	"strconv"
	"strings"

	"dario.cat/mergo"
)

// Answers is the raw, unvalidated input gathered from prompts, flags or an
// answers file. Empty strings and nil pointers mean "not given".
type Answers struct {
	Name         string `json:"name,omitempty" toml:"name" yaml:"name,omitempty"`
	Flavor       string `json:"flavor,omitempty" toml:"flavor" yaml:"flavor,omitempty"`
	Language     string `json:"language,omitempty" toml:"language" yaml:"language,omitempty"`
	UI           string `json:"ui,omitempty" toml:"ui" yaml:"ui,omitempty"`
	Router       *bool  `json:"router,omitempty" toml:"router" yaml:"router,omitempty"`
	Icons        string `json:"icons,omitempty" toml:"icons" yaml:"icons,omitempty"`
	Notification string `json:"notification,omitempty" toml:"notification" yaml:"notification,omitempty"`
	Auth         string `json:"auth,omitempty" toml:"auth" yaml:"auth,omitempty"`
	State        *bool  `json:"state,omitempty" toml:"state" yaml:"state,omitempty"`
	HTTP         *bool  `json:"http,omitempty" toml:"http" yaml:"http,omitempty"`
	Structure    string `json:"structure,omitempty" toml:"structure" yaml:"structure,omitempty"`
}

// Keys lists the answer names accepted by Set, in prompt order.
var Keys = []string{
	"name", "flavor", "language", "ui", "router", "icons",
	"notification", "auth", "state", "http", "structure",
}

// Set assigns a single answer by key, as given on the command line.
func (a *Answers) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))

	switch key {
	case "name":
		a.Name = value
	case "flavor":
		a.Flavor = value
	case "language":
		a.Language = value
	case "ui":
		a.UI = value
	case "icons":
		a.Icons = value
	case "notification":
		a.Notification = value
	case "auth":
		a.Auth = value
	case "structure":
		a.Structure = value
	case "router", "state", "http":
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", ErrInvalidConfiguration, key, value)
		}
		switch key {
		case "router":
			a.Router = &b
		case "state":
			a.State = &b
		default:
			a.HTTP = &b
		}
	default:
		return fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownAnswer, key, strings.Join(Keys, ", "))
	}

	return nil
}

// WithDefaults fills answers that were not given from defaults. Defaults for
// flavor-specific fields are dropped when the effective flavor is not
// single-page, so a configured default never reads as an explicit choice.
func (a Answers) WithDefaults(defaults Answers) (Answers, error) {
	merged := a
	if err := mergo.Merge(&merged, defaults); err != nil {
		return Answers{}, fmt.Errorf("merge default answers: %w", err)
	}

	if a.Notification == "" {
		if ui, err := lookup("ui", merged.UI, uiAliases, UINone); err == nil && ui == ComponentLibrary {
			merged.Notification = ""
		}
	}

	flavor, err := lookup("flavor", merged.Flavor, flavorAliases, SinglePage)
	if err != nil || flavor == SinglePage {
		return merged, nil
	}

	if a.Router == nil {
		merged.Router = nil
	}
	if a.Structure == "" {
		merged.Structure = ""
	}

	return merged, nil
}
