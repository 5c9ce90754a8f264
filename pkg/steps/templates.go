package steps

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/utils/lazy"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = lazy.New(func() (*template.Template, error) {
	return template.New("steps").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templateFS, "templates/*.tmpl")
})

// view is the data every file template is rendered with.
type view struct {
	Name        string
	Description string
	Generator   string
	Keywords    []string
	Ext         string
	Typed       bool
	SinglePage  bool
	Tailwind    bool
	Chakra      bool
	Imports     string
	Tree        string
	Publisher   config.Publisher
	DevServer   config.DevServer
}

func newView(rec project.Record, opts Options) view {
	ext := "jsx"
	if rec.Typed() {
		ext = "tsx"
	}
	return view{
		Name:        rec.Name,
		Description: description(rec, opts),
		Generator:   opts.Generator,
		Keywords:    keywords(rec),
		Ext:         ext,
		Typed:       rec.Typed(),
		SinglePage:  rec.SinglePage(),
		Tailwind:    rec.UI == project.UtilityCSS,
		Chakra:      rec.UI == project.ComponentLibrary,
		Publisher:   opts.Publisher,
		DevServer:   opts.DevServer,
	}
}

func render(name string, data view) ([]byte, error) {
	tmpl, err := templates.Get()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return ensureNewline(buf.Bytes()), nil
}

// renderEdit regenerates a file from a template regardless of its content.
func renderEdit(name string, data view) EditFunc {
	return func([]byte, bool) ([]byte, error) {
		return render(name, data)
	}
}

func ensureNewline(b []byte) []byte {
	b = bytes.TrimRight(b, "\n")
	return append(b, '\n')
}

func description(rec project.Record, opts Options) string {
	kind := "React single-page application"
	if !rec.SinglePage() {
		kind = "React server-rendered application"
	}
	if opts.Publisher.Name != "" {
		return kind + " by " + opts.Publisher.Name
	}
	return kind
}

func keywords(rec project.Record) []string {
	out := []string{"react"}
	if rec.SinglePage() {
		out = append(out, "vite")
	} else {
		out = append(out, "next")
	}
	if rec.Typed() {
		out = append(out, "typescript")
	}
	switch rec.UI {
	case project.UtilityCSS:
		out = append(out, "tailwindcss")
	case project.ComponentLibrary:
		out = append(out, "chakra-ui")
	}
	return out
}
