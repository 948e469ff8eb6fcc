// Package scrape parses the published-page source format: a flat run of
// sibling divs whose node-id and semantic-id attributes carry the logical
// hierarchy that the physical markup does not.
package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/lexbrasil/normaparse/norma"
)

// Options carries statute-level metadata the page itself does not encode,
// plus the keyword vocabulary.
type Options struct {
	ID         string
	Name       string
	Number     string
	Ementa     string
	URN        string
	Vocabulary norma.Vocabulary
}

var reSpaces = regexp.MustCompile(`[ \t\x{00a0}]+`)

// Parse converts one published page into a Law. The content container is
// located by id first, then by the paywall class; anything else is not a
// statute page.
func Parse(markup string, opts Options) (*norma.Law, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse markup")
	}

	container := doc.Find("#law_content_container").First()
	if container.Length() == 0 {
		container = doc.Find(".meteredContent").First()
	}
	if container.Length() == 0 {
		return nil, errors.New("no content container found: expected #law_content_container or .meteredContent")
	}

	classifier := norma.NewClassifier(opts.Vocabulary)

	var flat []*norma.Element
	container.Find("div[node-id]").Each(func(_ int, sel *goquery.Selection) {
		el := extractElement(sel, classifier)
		if el == nil {
			return
		}
		flat = append(flat, el)
	})

	roots := norma.BuildTree(flat)
	articles, hierarchy := norma.FlattenTree(roots)

	return &norma.Law{
		Lei: norma.LawInfo{
			ID:        opts.ID,
			Name:      opts.Name,
			Number:    opts.Number,
			Ementa:    opts.Ementa,
			URN:       opts.URN,
			Structure: hierarchy,
		},
		Artigos: articles,
	}, nil
}

func extractElement(sel *goquery.Selection, classifier *norma.Classifier) *norma.Element {
	nodeID, ok := sel.Attr("node-id")
	if !ok || nodeID == "" {
		return nil
	}
	semanticID, _ := sel.Attr("semantic-id")

	label := strings.TrimSpace(sel.Find("h4").First().Text())
	if label == "" {
		label = strings.TrimSpace(sel.Find(`span[class*="styles_title"]`).First().Text())
	}

	epigraph := strings.TrimSpace(sel.Find("h5").First().Text())
	if epigraph == "" {
		epigraph = strings.TrimSpace(sel.Find("h3").First().Text())
	}

	kind := classifier.Classify(semanticID, label)
	if kind == norma.KindUnknown {
		return nil
	}

	text := contentText(sel)

	el := &norma.Element{
		Identifier: nodeID,
		Slug:       semanticID,
		Kind:       kind,
		Rubric:     epigraph,
		Label:      label,
		Number:     numberFromSlug(semanticID),
		Text:       text,
		InForce:    true,
	}
	if kind == norma.KindArtigo {
		el.InForce = !caputRevoked(text)
	}

	switch kind {
	case norma.KindParagrafo, norma.KindInciso, norma.KindAlinea:
		norma.SplitInlineItems(el)
	}
	return el
}

// contentText joins the node's highlighted paragraphs, one per line. Line
// boundaries matter downstream: inline numbered lists are split on them.
func contentText(sel *goquery.Selection) string {
	var parts []string
	sel.Find("p.highlight_content").Each(func(_ int, p *goquery.Selection) {
		if t := normalize(collectText(p)); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n")
}

// collectText walks raw text nodes so annotation links keep their text while
// UI controls embedded in the paragraph contribute nothing.
func collectText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.ElementNode && (n.Data == "button" || n.Data == "script" || n.Data == "style"):
			return
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteString("\n")
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}

func normalize(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(reSpaces.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// caputRevoked is the page-format read of an article's own validity: an
// explicit parenthesized marker, or a caput so short it can only be the
// marker itself with the parentheses stripped by the publisher.
func caputRevoked(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "(revogad") || strings.Contains(lower, "(vetad") {
		return true
	}
	if len([]rune(strings.TrimSpace(text))) < 30 &&
		(strings.Contains(lower, "revogad") || strings.Contains(lower, "vetad")) {
		return true
	}
	return false
}

func numberFromSlug(slug string) string {
	seg := slug
	if i := strings.LastIndex(seg, "."); i >= 0 {
		seg = seg[i+1:]
	}
	if i := strings.Index(seg, "-"); i >= 0 {
		return seg[i+1:]
	}
	return ""
}
