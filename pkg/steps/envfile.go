package steps

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/subosito/gotenv"

	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/utils/set"
)

// EnvVar is one generated environment variable. Public variables carry the
// flavor's client prefix; the rest are read on the server only.
type EnvVar struct {
	Key    string
	Value  string
	Public bool
}

// sensitivePatterns mark keys whose values must never be written to .env.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// Secret reports whether the variable holds a credential.
func (v EnvVar) Secret() bool {
	upper := strings.ToUpper(v.Key)
	for _, p := range sensitivePatterns {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}

func (v EnvVar) placeholder() string {
	if v.Value != "" && !v.Secret() {
		return v.Value
	}
	return "your-" + strings.ToLower(strings.ReplaceAll(v.Key, "_", "-"))
}

type envRule struct {
	auth project.Auth
	vars func(spa bool) []EnvVar
}

func public(key string) EnvVar { return EnvVar{Key: key, Public: true} }

func server(key string) EnvVar { return EnvVar{Key: key} }

var authEnv = []envRule{
	{auth: project.Clerk, vars: func(spa bool) []EnvVar {
		vars := []EnvVar{public("CLERK_PUBLISHABLE_KEY")}
		if !spa {
			vars = append(vars, server("CLERK_SECRET_KEY"))
		}
		return vars
	}},
	{auth: project.Auth0, vars: func(spa bool) []EnvVar {
		if spa {
			return []EnvVar{public("AUTH0_DOMAIN"), public("AUTH0_CLIENT_ID")}
		}
		return []EnvVar{
			server("AUTH0_DOMAIN"),
			server("AUTH0_CLIENT_ID"),
			server("AUTH0_CLIENT_SECRET"),
			server("AUTH0_SECRET"),
			{Key: "APP_BASE_URL", Value: "http://localhost:3000"},
		}
	}},
	{auth: project.Firebase, vars: func(bool) []EnvVar {
		return []EnvVar{
			public("FIREBASE_API_KEY"),
			public("FIREBASE_AUTH_DOMAIN"),
			public("FIREBASE_PROJECT_ID"),
			public("FIREBASE_APP_ID"),
		}
	}},
	{auth: project.Supabase, vars: func(bool) []EnvVar {
		return []EnvVar{public("SUPABASE_URL"), public("SUPABASE_ANON_KEY")}
	}},
}

// EnvVars returns the variables generated for rec, in file order, with the
// client prefix applied.
func EnvVars(rec project.Record) []EnvVar {
	prefix := LayoutFor(rec).EnvPrefix

	apiURL := "http://localhost:8080/api"
	if !rec.SinglePage() {
		apiURL = "http://localhost:3000/api"
	}

	vars := []EnvVar{
		{Key: "APP_NAME", Value: rec.Name, Public: true},
		{Key: "API_URL", Value: apiURL, Public: true},
	}
	for _, r := range authEnv {
		if r.auth == rec.Auth {
			vars = append(vars, r.vars(rec.SinglePage())...)
		}
	}

	for i := range vars {
		if vars[i].Public {
			vars[i].Key = prefix + vars[i].Key
		}
	}
	return vars
}

// EnvKeys returns the set of keys in a dotenv document.
func EnvKeys(content []byte) (*set.Set[string], error) {
	env, err := gotenv.StrictParse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	keys := set.New[string]()
	for k := range env {
		keys.Add(k)
	}
	return keys, nil
}

func envSteps(rec project.Record, layout Layout) []Step {
	vars := EnvVars(rec)

	return []Step{
		{
			ID:     IDEnv,
			Target: layout.Env,
			Edit: func(current []byte, exists bool) ([]byte, error) {
				existing := gotenv.Env{}
				if exists {
					env, err := gotenv.StrictParse(bytes.NewReader(current))
					if err != nil {
						return nil, precondition("%s cannot be parsed: %v", layout.Env, err)
					}
					existing = env
				}
				return renderEnv(rec, vars, existing, func(v EnvVar) string {
					if v.Secret() {
						return ""
					}
					return v.Value
				}, true), nil
			},
		},
		{
			ID:     IDEnvExample,
			Target: layout.EnvExample,
			Source: layout.Env,
			Edit: func(env []byte, exists bool) ([]byte, error) {
				existing := gotenv.Env{}
				if exists {
					parsed, err := gotenv.StrictParse(bytes.NewReader(env))
					if err != nil {
						return nil, precondition("%s cannot be parsed: %v", layout.Env, err)
					}
					for k := range parsed {
						existing[k] = EnvVar{Key: k}.placeholder()
					}
				}
				return renderEnv(rec, vars, existing, EnvVar.placeholder, false), nil
			},
		},
		{
			ID:     IDEnvGitignore,
			Target: layout.Gitignore,
			Edit: func(current []byte, exists bool) ([]byte, error) {
				if exists && ignoresEnv(current) {
					return current, nil
				}
				var b bytes.Buffer
				b.Write(current)
				if len(current) > 0 && !bytes.HasSuffix(current, []byte("\n")) {
					b.WriteByte('\n')
				}
				if len(current) > 0 {
					b.WriteByte('\n')
				}
				b.WriteString("# local environment\n" + layout.Env + "\n")
				return b.Bytes(), nil
			},
		},
	}
}

// renderEnv writes vars in order followed by the keys of existing that
// frontkit does not manage, sorted. When keep is set, values in existing win
// over generated ones for managed keys too.
func renderEnv(rec project.Record, vars []EnvVar, existing gotenv.Env, value func(EnvVar) string, keep bool) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Environment for %s\n", rec.Name)

	managed := set.New[string]()
	for _, v := range vars {
		managed.Add(v.Key)
		val, ok := existing[v.Key]
		if !ok || !keep {
			val = value(v)
		}
		writeEnvLine(&b, v.Key, val)
	}

	var extra []string
	for k := range existing {
		if !managed.Has(k) {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		b.WriteString("\n")
		slices.Sort(extra)
		for _, k := range extra {
			writeEnvLine(&b, k, existing[k])
		}
	}

	return b.Bytes()
}

func writeEnvLine(b *bytes.Buffer, key, value string) {
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quoteEnv(value))
	b.WriteByte('\n')
}

var envEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "\n", `\n`, "\r", `\r`)

// quoteEnv renders value so that gotenv reads it back unchanged. Unquoted
// values are taken literally apart from trimming, '#' and '$'. Single-quoted
// values are taken literally. Double-quoted values are unescaped.
func quoteEnv(value string) string {
	switch {
	case value == "":
		return ""
	case bareEnv(value):
		return value
	case !strings.ContainsAny(value, "'\n\r") && !strings.HasSuffix(value, `\`):
		return "'" + value + "'"
	default:
		return `"` + envEscaper.Replace(value) + `"`
	}
}

func bareEnv(value string) bool {
	if strings.TrimSpace(value) != value || strings.ContainsAny(value, "#$\n\r") {
		return false
	}
	return value[0] != '\'' && value[0] != '"'
}

func ignoresEnv(gitignore []byte) bool {
	for _, l := range bytes.Split(gitignore, []byte("\n")) {
		switch strings.TrimSpace(string(l)) {
		case ".env", "/.env", ".env*", "*.env":
			return true
		}
	}
	return false
}
