package steps

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/olimci/frontkit/pkg/project"
)

type metaTag struct {
	attr    string // "name" or "property"
	key     string
	content string
}

func (m metaTag) selector() string {
	return fmt.Sprintf(`meta[%s=%q]`, m.attr, m.key)
}

func (m metaTag) String() string {
	return fmt.Sprintf(`<meta %s="%s" content="%s" />`, m.attr, html.EscapeString(m.key), html.EscapeString(m.content))
}

func metaTags(rec project.Record, opts Options) []metaTag {
	p := opts.Publisher
	desc := description(rec, opts)

	author := p.Name
	if author != "" && p.Nickname != "" && p.Nickname != p.Name {
		author = fmt.Sprintf("%s (%s)", p.Nickname, p.Name)
	}
	generator := strings.TrimSpace(opts.Generator + " " + opts.Version)

	tags := []metaTag{
		{"name", "description", desc},
		{"name", "author", author},
		{"name", "keywords", strings.Join(keywords(rec), ",")},
		{"name", "generator", generator},
		{"property", "og:title", rec.Name},
		{"property", "og:description", desc},
		{"property", "og:type", "website"},
		{"property", "og:url", p.URL},
		{"property", "og:image", p.Image},
		{"name", "twitter:card", "summary"},
	}
	if p.Twitter != "" {
		tags = append(tags, metaTag{"name", "twitter:creator", "@" + strings.TrimPrefix(p.Twitter, "@")})
	}

	out := tags[:0]
	for _, t := range tags {
		if t.content != "" {
			out = append(out, t)
		}
	}
	return out
}

// defaultTitlePrefix is the title create-vite ships with.
const defaultTitlePrefix = "Vite + React"

func htmlMetaStep(rec project.Record, layout Layout, opts Options) Step {
	tags := metaTags(rec, opts)

	return Step{
		ID:     IDHTMLMeta,
		Target: layout.HTML,
		Edit: func(current []byte, _ bool) ([]byte, error) {
			doc, err := goquery.NewDocumentFromReader(bytes.NewReader(current))
			if err != nil {
				return nil, precondition("%s cannot be parsed: %v", layout.HTML, err)
			}

			out := current
			if title := doc.Find("head > title").First().Text(); strings.HasPrefix(title, defaultTitlePrefix) {
				out = renameTitle(out, rec.Name)
			}

			if doc.Find(`meta[name="author"]`).Length() > 0 {
				return out, nil
			}

			var missing []metaTag
			for _, t := range tags {
				if doc.Find(t.selector()).Length() == 0 {
					missing = append(missing, t)
				}
			}
			if len(missing) == 0 {
				return out, nil
			}

			return insertBeforeHeadClose(out, missing)
		},
	}.Must()
}

var titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// renameTitle replaces the raw text of the first title element, which may
// hold entities, with name.
func renameTitle(doc []byte, name string) []byte {
	loc := titleRe.FindSubmatchIndex(doc)
	if loc == nil || !strings.HasPrefix(html.UnescapeString(string(doc[loc[2]:loc[3]])), defaultTitlePrefix) {
		return doc
	}

	var b bytes.Buffer
	b.Write(doc[:loc[2]])
	b.WriteString(html.EscapeString(name))
	b.Write(doc[loc[3]:])
	return b.Bytes()
}

// insertBeforeHeadClose adds tags on their own lines just above </head>,
// one level deeper than the closing tag.
func insertBeforeHeadClose(doc []byte, tags []metaTag) ([]byte, error) {
	idx := bytes.Index(doc, []byte("</head>"))
	if idx < 0 {
		idx = bytes.Index(doc, []byte("</HEAD>"))
	}
	if idx < 0 {
		return nil, precondition("no </head> tag")
	}

	lineStart := bytes.LastIndexByte(doc[:idx], '\n') + 1
	indent := doc[lineStart:idx]
	if len(bytes.TrimSpace(indent)) > 0 {
		// </head> shares its line with other markup.
		lineStart = idx
		indent = nil
	}

	var b bytes.Buffer
	b.Write(doc[:lineStart])
	if lineStart == idx && lineStart > 0 && doc[lineStart-1] != '\n' {
		b.WriteByte('\n')
	}
	for _, t := range tags {
		b.Write(indent)
		b.WriteString("  ")
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	b.Write(doc[lineStart:])
	return b.Bytes(), nil
}
