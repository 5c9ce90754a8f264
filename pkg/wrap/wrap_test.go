package wrap

import (
	"strings"
	"testing"
)

var (
	router = Wrapper{Name: "BrowserRouter", Import: "react-router-dom"}
	chakra = Wrapper{Name: "Provider", Import: "./components/ui/provider"}
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{"empty", nil, "<App />"},
		{"one", Spec{router}, "<BrowserRouter>\n  <App />\n</BrowserRouter>"},
		{
			"two",
			Spec{router, chakra},
			"<BrowserRouter>\n  <Provider>\n    <App />\n  </Provider>\n</BrowserRouter>",
		},
		{
			"reversed",
			Spec{chakra, router},
			"<Provider>\n  <BrowserRouter>\n    <App />\n  </BrowserRouter>\n</Provider>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.spec, "<App />"); got != tt.want {
				t.Errorf("Compose() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestComposeNestsUniformly(t *testing.T) {
	spec := Spec{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	got := Compose(spec, "{children}")

	lines := strings.Split(got, "\n")
	if len(lines) != 2*len(spec)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), 2*len(spec)+1)
	}
	for i, w := range spec {
		open := strings.Repeat("  ", i) + "<" + w.Name + ">"
		closing := strings.Repeat("  ", i) + "</" + w.Name + ">"
		if lines[i] != open {
			t.Errorf("line %d = %q, want %q", i, lines[i], open)
		}
		if lines[len(lines)-1-i] != closing {
			t.Errorf("line %d = %q, want %q", len(lines)-1-i, lines[len(lines)-1-i], closing)
		}
	}
	if mid := lines[len(spec)]; mid != strings.Repeat("  ", len(spec))+"{children}" {
		t.Errorf("root line = %q", mid)
	}
}

func TestImports(t *testing.T) {
	if got := Imports(nil); got != "" {
		t.Errorf("Imports(nil) = %q, want empty", got)
	}

	spec := Spec{router, chakra, {Name: "Routes", Import: "react-router-dom"}}
	want := "import { BrowserRouter, Routes } from 'react-router-dom'\nimport { Provider } from './components/ui/provider'"
	if got := Imports(spec); got != want {
		t.Errorf("Imports() =\n%s\nwant\n%s", got, want)
	}
}

func TestIndent(t *testing.T) {
	got := Indent(Compose(Spec{router}, "<App />"), "    ")
	want := "<BrowserRouter>\n      <App />\n    </BrowserRouter>"
	if got != want {
		t.Errorf("Indent() = %q, want %q", got, want)
	}
}
