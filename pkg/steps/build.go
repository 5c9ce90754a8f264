package steps

import (
	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/project"
)

const owner = "frontkit"

var (
	IDEntry        = StepID{Owner: owner, Name: "entry"}
	IDBuildConfig  = StepID{Owner: owner, Name: "build-config"}
	IDPostCSS      = StepID{Owner: owner, Name: "build-config", Sub: "postcss"}
	IDStylesheet   = StepID{Owner: owner, Name: "stylesheet"}
	IDProvider     = StepID{Owner: owner, Name: "provider"}
	IDManifest     = StepID{Owner: owner, Name: "manifest"}
	IDEnv          = StepID{Owner: owner, Name: "env"}
	IDEnvExample   = StepID{Owner: owner, Name: "env", Sub: "example"}
	IDEnvGitignore = StepID{Owner: owner, Name: "env", Sub: "gitignore"}
	IDHTMLMeta     = StepID{Owner: owner, Name: "html-meta"}
)

// Options carries what the pipeline needs beyond the record.
type Options struct {
	Publisher config.Publisher
	DevServer config.DevServer
	// Generator and Version identify the tool in generated metadata.
	Generator string
	Version   string
}

// Build returns the ordered mutation steps for rec. The list depends only on
// rec and opts.
func Build(rec project.Record, opts Options) []Step {
	if opts.Generator == "" {
		opts.Generator = owner
	}

	layout := LayoutFor(rec)
	v := newView(rec, opts)

	var out []Step
	out = append(out, entryStep(rec, layout, v))
	out = append(out, buildConfigSteps(rec, layout, v)...)
	if rec.UI == project.UtilityCSS {
		out = append(out, stylesheetStep(rec, layout))
	}
	if rec.UI == project.ComponentLibrary {
		out = append(out, providerStep(layout, v))
	}

	out = append(out, manifestStep(rec, layout, opts).In(Finalizing))
	for _, s := range envSteps(rec, layout) {
		out = append(out, s.In(Finalizing))
	}
	if rec.SinglePage() {
		out = append(out, htmlMetaStep(rec, layout, opts).In(Finalizing))
	}

	return out
}
