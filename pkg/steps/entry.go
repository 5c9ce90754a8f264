package steps

import (
	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/wrap"
)

// contribution adds at most one wrapper for a record. Table order is nesting
// order: earlier contributions wrap later ones.
type contribution func(rec project.Record, layout Layout) (wrap.Wrapper, bool)

var contributions = []contribution{
	func(rec project.Record, _ Layout) (wrap.Wrapper, bool) {
		return wrap.Wrapper{Name: "BrowserRouter", Import: "react-router-dom"}, rec.SinglePage() && rec.UsesRouter()
	},
	func(rec project.Record, layout Layout) (wrap.Wrapper, bool) {
		return wrap.Wrapper{Name: "Provider", Import: layout.ProviderImport}, rec.UI == project.ComponentLibrary
	},
}

// Wrappers returns the provider components around the root, outermost first.
func Wrappers(rec project.Record) wrap.Spec {
	layout := LayoutFor(rec)
	var spec wrap.Spec
	for _, c := range contributions {
		if w, ok := c(rec, layout); ok {
			spec = append(spec, w)
		}
	}
	return spec
}

func entryStep(rec project.Record, layout Layout, v view) Step {
	spec := Wrappers(rec)
	v.Imports = wrap.Imports(spec)

	name := "main.tmpl"
	if rec.SinglePage() {
		v.Tree = wrap.Indent(wrap.Compose(spec, "<App />"), "    ")
	} else {
		name = "layout.tmpl"
		v.Tree = wrap.Indent(wrap.Compose(spec, "{children}"), "        ")
	}

	return Step{
		ID:     IDEntry,
		Target: layout.Entry,
		Edit:   renderEdit(name, v),
	}.Must()
}
