package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/project"
)

const viteManifest = `{
  "name": "app",
  "private": true,
  "version": "0.0.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "tsc -b && vite build",
    "lint": "eslint .",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^19.1.0",
    "react-dom": "^19.1.0"
  }
}
`

const viteIndex = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <link rel="icon" type="image/svg+xml" href="/vite.svg" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Vite + React + TS</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.tsx"></script>
  </body>
</html>
`

const viteMain = `import { StrictMode } from 'react'
import { createRoot } from 'react-dom/client'
import './index.css'
import App from './App.tsx'

createRoot(document.getElementById('root')!).render(
  <StrictMode>
    <App />
  </StrictMode>,
)
`

const nextManifest = `{
  "name": "site",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start",
    "lint": "next lint"
  },
  "dependencies": {
    "next": "15.3.0",
    "react": "^19.0.0",
    "react-dom": "^19.0.0"
  }
}
`

const nextLayout = `import type { Metadata } from "next";
import "./globals.css";

export const metadata: Metadata = {
  title: "Create Next App",
  description: "Generated by create next app",
};

export default function RootLayout({
  children,
}: Readonly<{
  children: React.ReactNode;
}>) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  );
}
`

func testOptions() Options {
	return Options{
		Publisher: config.Publisher{
			Name:     "Ada Lovelace",
			Nickname: "ada",
			Email:    "ada@example.com",
			URL:      "https://ada.example.com",
			Links:    map[string]string{"github": "https://github.com/ada"},
		},
		DevServer: config.DevServer{Host: "0.0.0.0", Port: 5173, Open: true},
		Generator: "frontkit",
		Version:   "0.3.0",
	}
}

func resolve(t *testing.T, a project.Answers) project.Record {
	t.Helper()
	rec, err := project.Resolve(a)
	if err != nil {
		t.Fatalf("Resolve(%+v): %v", a, err)
	}
	return rec
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// seed lays out what the scaffold tool would have produced for rec.
func seed(t *testing.T, rec project.Record) Tree {
	t.Helper()
	root := t.TempDir()

	if rec.SinglePage() {
		ext, cfgFile := "tsx", "vite.config.ts"
		if !rec.Typed() {
			ext, cfgFile = "jsx", "vite.config.js"
		}
		writeTree(t, root, map[string]string{
			"package.json":    viteManifest,
			"index.html":      viteIndex,
			"src/main." + ext: viteMain,
			"src/App." + ext:  "export default function App() { return null }\n",
			"src/index.css":   ":root { font-family: system-ui; }\n",
			cfgFile:           "export default {}\n",
			".gitignore":      "node_modules\ndist\n*.local\n",
		})
		return Tree{Root: root}
	}

	layout := LayoutFor(rec)
	writeTree(t, root, map[string]string{
		"package.json":     nextManifest,
		layout.Entry:       nextLayout,
		layout.Stylesheet:  "body { margin: 0; }\n",
		layout.BuildConfig: "export default {}\n",
		".gitignore":       "/node_modules\n.env*\n",
	})
	return Tree{Root: root}
}

func read(t *testing.T, tree Tree, rel string) string {
	t.Helper()
	data, err := os.ReadFile(tree.Path(rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func matrix() []project.Answers {
	var out []project.Answers
	for _, flavor := range []string{"spa", "ssr"} {
		for _, lang := range []string{"ts", "js"} {
			for _, ui := range []string{"none", "tailwind", "chakra"} {
				for _, auth := range []string{"none", "clerk", "auth0", "firebase", "supabase"} {
					out = append(out, project.Answers{Name: "app", Flavor: flavor, Language: lang, UI: ui, Auth: auth})
				}
			}
		}
	}
	return out
}
