// Package wrap nests provider components around a root JSX element.
package wrap

import (
	"strings"

	"github.com/olimci/frontkit/pkg/utils/stack"
)

// Wrapper is a component that wraps everything below it. Import is the
// module it is imported from as a named import.
type Wrapper struct {
	Name   string
	Import string
}

// Spec lists wrappers outermost first.
type Spec []Wrapper

const indent = "  "

// Compose nests root inside every wrapper of spec, outermost first, and
// renders the result as indented JSX. An empty spec returns root unchanged.
func Compose(spec Spec, root string) string {
	if len(spec) == 0 {
		return root
	}

	var b strings.Builder
	closing := stack.New[string]()
	for _, w := range spec {
		line(&b, closing.Len(), "<"+w.Name+">")
		closing.Push("</" + w.Name + ">")
	}
	line(&b, closing.Len(), root)
	for tag := range closing.Drain() {
		line(&b, closing.Len(), tag)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Indent shifts every line after the first by prefix, for embedding a
// composed tree into a template at a fixed column.
func Indent(composed, prefix string) string {
	return strings.ReplaceAll(composed, "\n", "\n"+prefix)
}

// Imports renders one named import per distinct module, in spec order.
func Imports(spec Spec) string {
	order := make([]string, 0, len(spec))
	names := make(map[string][]string, len(spec))
	for _, w := range spec {
		if _, ok := names[w.Import]; !ok {
			order = append(order, w.Import)
		}
		names[w.Import] = append(names[w.Import], w.Name)
	}

	lines := make([]string, len(order))
	for i, mod := range order {
		lines[i] = "import { " + strings.Join(names[mod], ", ") + " } from '" + mod + "'"
	}
	return strings.Join(lines, "\n")
}

func line(b *strings.Builder, depth int, s string) {
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteString(s)
	b.WriteByte('\n')
}
