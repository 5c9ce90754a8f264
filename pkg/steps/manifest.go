package steps

import (
	"encoding/json"
	"fmt"

	"al.essio.dev/pkg/shellescape"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/olimci/frontkit/pkg/project"
)

var manifestStyle = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

type manifestAuthor struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Metadata is the block frontkit owns inside package.json.
type Metadata struct {
	GeneratedBy   string            `json:"generatedBy"`
	Version       string            `json:"version"`
	Creator       string            `json:"creator,omitempty"`
	Links         map[string]string `json:"links,omitempty"`
	Configuration project.Answers   `json:"configuration"`
}

// MetadataKey is where Metadata lives in package.json.
const MetadataKey = "metadata"

// ReadConfiguration returns the answers recorded by a previous run.
func ReadConfiguration(manifest []byte) (project.Answers, error) {
	if !gjson.ValidBytes(manifest) {
		return project.Answers{}, precondition("package.json is not valid JSON")
	}
	raw := gjson.GetBytes(manifest, MetadataKey+".configuration")
	if !raw.IsObject() {
		return project.Answers{}, precondition("package.json has no %s.configuration block", MetadataKey)
	}

	var a project.Answers
	if err := json.Unmarshal([]byte(raw.Raw), &a); err != nil {
		return project.Answers{}, fmt.Errorf("decode %s.configuration: %w", MetadataKey, err)
	}
	return a, nil
}

func scripts(rec project.Record, host string) [][2]string {
	h := shellescape.Quote(host)
	if rec.SinglePage() {
		return [][2]string{
			{"dev", "vite --host " + h},
			{"preview", "vite preview --host " + h},
		}
	}
	return [][2]string{
		{"dev", "next dev -H " + h},
		{"start", "next start -H " + h},
	}
}

func manifestStep(rec project.Record, layout Layout, opts Options) Step {
	meta := Metadata{
		GeneratedBy:   opts.Generator,
		Version:       opts.Version,
		Creator:       opts.Publisher.Creator(),
		Links:         opts.Publisher.Links,
		Configuration: rec.Answers(),
	}
	author := manifestAuthor{
		Name:  opts.Publisher.Name,
		Email: opts.Publisher.Email,
		URL:   opts.Publisher.URL,
	}

	return Step{
		ID:     IDManifest,
		Target: layout.Manifest,
		Edit: func(current []byte, _ bool) ([]byte, error) {
			if !gjson.ValidBytes(current) || !gjson.ParseBytes(current).IsObject() {
				return nil, precondition("%s is not a JSON object", layout.Manifest)
			}

			out := current
			var err error

			if author != (manifestAuthor{}) {
				if out, err = setJSON(out, "author", author); err != nil {
					return nil, err
				}
			}

			for _, s := range scripts(rec, opts.DevServer.Host) {
				if out, err = sjson.SetBytes(out, "scripts."+s[0], s[1]); err != nil {
					return nil, fmt.Errorf("set scripts.%s: %w", s[0], err)
				}
			}

			if out, err = setJSON(out, MetadataKey, meta); err != nil {
				return nil, err
			}

			return pretty.PrettyOptions(out, manifestStyle), nil
		},
	}.Must()
}

func setJSON(doc []byte, path string, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	out, err := sjson.SetRawBytes(doc, path, raw)
	if err != nil {
		return nil, fmt.Errorf("set %s: %w", path, err)
	}
	return out, nil
}
