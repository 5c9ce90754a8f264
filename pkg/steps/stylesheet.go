package steps

import (
	"bytes"

	"github.com/olimci/frontkit/pkg/project"
)

const tailwindImport = `@import "tailwindcss";`

func stylesheetStep(rec project.Record, layout Layout) Step {
	return Step{
		ID:     IDStylesheet,
		Target: layout.Stylesheet,
		Edit: func(current []byte, exists bool) ([]byte, error) {
			if exists && hasLine(current, tailwindImport) {
				return current, nil
			}
			// The single-page starter styles fight the utility classes, so
			// they are replaced; other stylesheets keep their rules.
			if rec.SinglePage() || !exists {
				return []byte(tailwindImport + "\n"), nil
			}
			return append([]byte(tailwindImport+"\n\n"), current...), nil
		},
	}
}

func hasLine(content []byte, line string) bool {
	for _, l := range bytes.Split(content, []byte("\n")) {
		if string(bytes.TrimSpace(l)) == line {
			return true
		}
	}
	return false
}
