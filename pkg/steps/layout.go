package steps

import "github.com/olimci/frontkit/pkg/project"

// Layout names the files a flavor/language pair keeps its concerns in.
type Layout struct {
	Entry          string
	BuildConfig    string
	AltBuildConfig string
	PostCSS        string
	Stylesheet     string
	Provider       string
	ProviderImport string
	Manifest       string
	HTML           string
	Env            string
	EnvExample     string
	Gitignore      string
	EnvPrefix      string
}

type layoutKey struct {
	flavor   project.Flavor
	language project.Language
}

var shared = Layout{
	Manifest:   "package.json",
	Env:        ".env",
	EnvExample: ".env.example",
	Gitignore:  ".gitignore",
}

var layouts = map[layoutKey]Layout{
	{project.SinglePage, project.Typed}:       spaLayout("tsx", "vite.config.ts", "vite.config.js"),
	{project.SinglePage, project.Untyped}:     spaLayout("jsx", "vite.config.js", "vite.config.ts"),
	{project.ServerRendered, project.Typed}:   ssrLayout("tsx", "app/layout.tsx", "next.config.ts", "next.config.mjs"),
	{project.ServerRendered, project.Untyped}: ssrLayout("jsx", "app/layout.js", "next.config.mjs", "next.config.ts"),
}

func spaLayout(ext, config, alt string) Layout {
	l := shared
	l.Entry = "src/main." + ext
	l.BuildConfig = config
	l.AltBuildConfig = alt
	l.Stylesheet = "src/index.css"
	l.Provider = "src/components/ui/provider." + ext
	l.ProviderImport = "./components/ui/provider"
	l.HTML = "index.html"
	l.EnvPrefix = "VITE_"
	return l
}

func ssrLayout(ext, entry, config, alt string) Layout {
	l := shared
	l.Entry = entry
	l.BuildConfig = config
	l.AltBuildConfig = alt
	l.PostCSS = "postcss.config.mjs"
	l.Stylesheet = "app/globals.css"
	l.Provider = "components/ui/provider." + ext
	l.ProviderImport = "@/components/ui/provider"
	l.EnvPrefix = "NEXT_PUBLIC_"
	return l
}

// LayoutFor returns the file layout of rec's flavor and language.
func LayoutFor(rec project.Record) Layout {
	return layouts[layoutKey{rec.Flavor, rec.Language}]
}
