// Package scaffold overlays a source layout onto a freshly generated project.
package scaffold

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/olimci/frontkit/pkg/project"
)

//go:embed all:structures
var structures embed.FS

const (
	root           = "structures"
	templateSuffix = ".tmpl"
)

// Result contains information about what was created.
type Result struct {
	FilesCreated []string
	DirsCreated  []string
	// Existing lists files left alone because the target already had them.
	Existing []string
}

// Variables are what structure templates are rendered with.
type Variables struct {
	Name     string
	Ext      string
	Typed    bool
	Tailwind bool
	Chakra   bool
	Router   bool
	State    bool
	HTTP     bool
}

func variablesFor(rec project.Record) Variables {
	ext := "jsx"
	if rec.Typed() {
		ext = "tsx"
	}
	return Variables{
		Name:     rec.Name,
		Ext:      ext,
		Typed:    rec.Typed(),
		Tailwind: rec.UI == project.UtilityCSS,
		Chakra:   rec.UI == project.ComponentLibrary,
		Router:   rec.UsesRouter(),
		State:    rec.State,
		HTTP:     rec.HTTP,
	}
}

// Overlay copies the structure selected in rec into target. Existing files
// are never overwritten unless forced. Records without a structure produce
// an empty result.
func Overlay(ctx context.Context, target string, rec project.Record, opts ...Option) (*Result, error) {
	o := defaultOptions().apply(opts...)

	result := &Result{
		FilesCreated: make([]string, 0),
		DirsCreated:  make([]string, 0),
	}

	structure, ok := rec.Structure.Get()
	if !ok {
		return result, nil
	}

	base := path.Join(root, string(structure))
	if _, err := fs.Stat(o.source, base); err != nil {
		return nil, fmt.Errorf("unknown structure %q: %w", structure, err)
	}

	vars := variablesFor(rec)

	err := fs.WalkDir(o.source, base, func(src string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(src, base), "/")
		if rel == "" {
			return nil
		}

		destRel := transformPath(rel, vars.Typed)
		destPath := filepath.Join(target, filepath.FromSlash(destRel))

		if d.IsDir() {
			if _, err := os.Stat(destPath); err == nil {
				return nil
			}
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", destRel, err)
			}
			result.DirsCreated = append(result.DirsCreated, destRel)
			return nil
		}

		content, err := fs.ReadFile(o.source, src)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}

		if strings.HasSuffix(rel, templateSuffix) {
			content, err = processTemplate(rel, content, vars)
			if err != nil {
				return fmt.Errorf("processing template %s: %w", rel, err)
			}
			// Templates that render to nothing belong to an unselected option.
			if len(bytes.TrimSpace(content)) == 0 {
				return nil
			}
		}

		if !o.force {
			if _, err := os.Stat(destPath); err == nil {
				result.Existing = append(result.Existing, destRel)
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return fmt.Errorf("creating parent directory for %s: %w", destRel, err)
		}
		if err := os.WriteFile(destPath, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", destRel, err)
		}

		result.FilesCreated = append(result.FilesCreated, destRel)
		return nil
	})

	if err != nil {
		return result, err
	}

	return result, nil
}

// transformPath strips the template suffix, turns a leading underscore into
// a dot and moves script files to their typed extensions when needed.
func transformPath(rel string, typed bool) string {
	dir, base := path.Split(rel)

	base = strings.TrimSuffix(base, templateSuffix)
	if strings.HasPrefix(base, "_") && len(base) > 1 {
		base = "." + base[1:]
	}

	if typed {
		switch path.Ext(base) {
		case ".jsx":
			base = strings.TrimSuffix(base, ".jsx") + ".tsx"
		case ".js":
			base = strings.TrimSuffix(base, ".js") + ".ts"
		}
	}

	return dir + base
}

func processTemplate(name string, content []byte, vars Variables) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("executing: %w", err)
	}

	out := bytes.TrimRight(buf.Bytes(), "\n")
	if len(out) == 0 {
		return nil, nil
	}
	return append(out, '\n'), nil
}
