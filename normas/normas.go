// Package normas parses the official publication formats: the structured
// schema.org Legislation feed when one exists, and the archival HTML
// rendition as fallback.
package normas

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/lexbrasil/normaparse/norma"
)

// Metadata is the statute-level record that accompanies a publication
// payload; the payload itself rarely carries all of it.
type Metadata struct {
	Title  string
	URN    string
	Date   string
	Ementa string
}

// Options selects the keyword vocabulary and the implicit-mode heuristics.
type Options struct {
	Vocabulary norma.Vocabulary
	Builder    norma.BuilderOptions
}

var reLawURN = regexp.MustCompile(`:([a-z][a-z.]*):[\d-]+;(\d+)`)

// Parse dispatches on the payload shape: a JSON object carrying hasPart is
// the structured feed, anything else is treated as HTML.
func Parse(payload []byte, meta Metadata, opts Options) (*norma.Law, error) {
	classifier := norma.NewClassifier(opts.Vocabulary)

	var law *norma.Law
	var err error

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '{' && bytes.Contains(trimmed, []byte(`"hasPart"`)) {
		law, err = parseJSON(trimmed, meta, classifier)
	} else {
		law, err = parseHTML(payload, meta, classifier, opts.Builder)
	}
	if err != nil {
		return nil, err
	}

	if id, number := LawIdentity(law.Lei.URN); id != "" {
		law.Lei.ID = id
		law.Lei.Number = number
	}
	return law, nil
}

// LawIdentity derives the short id and number from a statute URN:
// ":lei:1940-12-07;2848" yields ("lei-2848", "2848").
func LawIdentity(urn string) (id, number string) {
	m := reLawURN.FindStringSubmatch(urn)
	if m == nil {
		return "", ""
	}
	kind := m[1]
	if i := strings.LastIndex(kind, "."); i >= 0 {
		kind = kind[i+1:]
	}
	return kind + "-" + m[2], m[2]
}
