package normas

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/lexbrasil/normaparse/norma"
)

var (
	reCollapse   = regexp.MustCompile(`[ \t\r\n\x{00a0}]+`)
	reParteGeral = regexp.MustCompile(`(?i)parte\s+geral`)
)

// parseHTML handles the archival HTML rendition: no identifiers, structure
// recovered line by line from the document order.
func parseHTML(payload []byte, meta Metadata, classifier *norma.Classifier, opts norma.BuilderOptions) (*norma.Law, error) {
	markup := fixDoubleEncoding(string(payload))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse document")
	}
	doc.Find("script, style").Remove()

	builder := norma.NewBuilder(classifier, opts)
	builder.SetParteGeralHint(reParteGeral.MatchString(doc.Find("body").Text()))

	doc.Find("p, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		text := collapse(sel.Text())
		if text == "" {
			return
		}

		switch goquery.NodeName(sel) {
		case "h3", "h4":
			info := classifier.AnalyzeLine(text)
			builder.Feed(norma.Fragment{
				Text:     text,
				Epigraph: !info.Structural && info.Kind != norma.KindArtigo,
			})
		default:
			if heading, ok := boldHeading(sel, classifier); ok {
				builder.Feed(norma.Fragment{Text: heading, Epigraph: true})
				return
			}
			builder.Feed(norma.Fragment{Text: text})
		}
	})

	articles, hierarchy := builder.Finish()

	return &norma.Law{
		Lei: norma.LawInfo{
			Name:      meta.Title,
			Ementa:    meta.Ementa,
			URN:       meta.URN,
			Structure: hierarchy,
		},
		Artigos: norma.FlattenArticles(articles),
	}, nil
}

// boldHeading decides whether a paragraph is really a clause heading set in
// bold. The surrounding non-bold text must be empty or pure annotation
// residue, and the bold text itself must not open an article, paragraph,
// inciso or alinea.
func boldHeading(sel *goquery.Selection, classifier *norma.Classifier) (string, bool) {
	var boldParts []string
	sel.Find("b, strong, span[style]").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "span" {
			style, _ := s.Attr("style")
			if !strings.Contains(strings.ToLower(style), "bold") {
				return
			}
		}
		if t := collapse(s.Text()); t != "" {
			boldParts = append(boldParts, t)
		}
	})
	bold := strings.TrimSpace(strings.Join(boldParts, " "))
	if bold == "" || strings.HasPrefix(bold, "Art") {
		return "", false
	}

	rest := collapse(sel.Text())
	for _, part := range boldParts {
		rest = strings.Replace(rest, part, "", 1)
	}
	rest = strings.TrimSpace(rest)
	if rest != "" &&
		!strings.Contains(rest, "Nome jurídico") &&
		!strings.Contains(rest, "(Incluíd") &&
		!strings.Contains(rest, "(Acrescid") {
		return "", false
	}

	switch classifier.AnalyzeLine(bold).Kind {
	case norma.KindParagrafo, norma.KindInciso, norma.KindAlinea:
		return "", false
	}
	return bold, true
}

func collapse(s string) string {
	return strings.TrimSpace(reCollapse.ReplaceAllString(s, " "))
}

// fixDoubleEncoding repairs utf-8 text that was decoded as latin-1 and
// re-encoded, the usual corruption in the archival renditions. The round
// trip is self-guarding: healthy text fails the latin-1 encode or produces
// invalid utf-8 and comes back untouched.
func fixDoubleEncoding(s string) string {
	fixed, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return s
	}
	if !utf8.ValidString(fixed) {
		return s
	}
	return fixed
}
