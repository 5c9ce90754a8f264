package steps

import "github.com/olimci/frontkit/pkg/project"

func buildConfigSteps(rec project.Record, layout Layout, v view) []Step {
	name := "vite.config.tmpl"
	if !rec.SinglePage() {
		name = "next.config.tmpl"
	}

	out := []Step{
		Step{
			ID:     IDBuildConfig,
			Target: layout.BuildConfig,
			Edit:   renderEdit(name, v),
		}.WithRemove(layout.AltBuildConfig),
	}

	if layout.PostCSS != "" && rec.UI == project.UtilityCSS {
		out = append(out, Step{
			ID:     IDPostCSS,
			Target: layout.PostCSS,
			Edit:   renderEdit("postcss.config.tmpl", v),
		})
	}

	return out
}
