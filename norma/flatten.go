package norma

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	revokedPlaceholder = "Dispositivo revogado."
	vetoedPlaceholder  = "Dispositivo vetado."
	strikeColor        = "#9ca3af"
)

var (
	reAnyNumber       = regexp.MustCompile(`(\d+(?:-?[a-zA-Z])?)`)
	reParagraphInText = regexp.MustCompile(`§\s*(\d+[º°]?(?:-[A-Za-z])?)`)
	rePenaltyLead     = regexp.MustCompile(`(?i)^pena\s*[-–—]?\s*`)
)

// FlattenTree walks a reconstructed structural tree in document order and
// emits one Article per article node, along with the legacy flat heading
// outline. Structural headings scope the path for everything beneath them.
func FlattenTree(roots []*Element) ([]Article, Hierarchy) {
	var articles []Article
	var hierarchy Hierarchy

	var walk func(nodes []*Element, path map[string]string)
	walk = func(nodes []*Element, path map[string]string) {
		for _, n := range nodes {
			next := path
			if n.Kind.Structural() {
				heading := n.Label
				if n.Text != "" {
					heading = n.Label + " - " + n.Text
				}
				hierarchy.Add(n.Kind, heading)
				next = copyPath(path)
				next[string(n.Kind)] = heading
			}
			if n.Kind == KindArtigo {
				articles = append(articles, buildArticle(n, next))
			}
			walk(n.Children, next)
		}
	}
	walk(roots, map[string]string{})

	return articles, hierarchy
}

// FlattenArticles serializes a flat article list whose structural path was
// already resolved at parse time (implicit mode).
func FlattenArticles(nodes []*Element) []Article {
	articles := make([]Article, 0, len(nodes))
	for _, n := range nodes {
		articles = append(articles, buildArticle(n, n.Path))
	}
	return articles
}

func buildArticle(node *Element, path map[string]string) Article {
	number := articleNumber(node)
	slugBase := node.Slug
	if slugBase == "" {
		// thousands separators stay in the number but never in the slug,
		// where dots delimit hierarchy segments
		slugBase = "artigo-" + strings.ReplaceAll(number, ".", "")
	}

	var blocks []Block
	var texts []string

	// Epigraph first, for editor rendering. It never joins the plain text.
	var epigraph string
	if node.Rubric != "" {
		clean, original, annotations := ExtractAnnotations(node.Rubric)
		epigraph = clean
		blocks = append(blocks, Block{
			Type:         "p",
			Children:     []Span{{Text: clean, Bold: true}},
			ID:           uuid.NewString(),
			Slug:         slugBase + "_epigrafe",
			SearchText:   clean,
			OriginalText: originalIf(original, annotations),
			Annotations:  annotations,
		})
	}

	label := ArticleLabel(number)
	caputOriginal := strings.TrimSpace(node.Text)
	caputClean, _, caputAnnotations := ExtractAnnotations(caputOriginal)

	caputFullClean := strings.TrimSpace(label + " " + caputClean)
	caputFullOriginal := strings.TrimSpace(label + " " + caputOriginal)
	texts = append(texts, caputFullClean)

	var caputSpans []Span
	if label != "" && caputClean != "" {
		caputSpans = []Span{{Text: label + " ", Bold: true}, {Text: caputClean}}
	} else {
		caputSpans = []Span{{Text: caputFullClean}}
	}
	caput := Block{
		Type:         "p",
		Children:     caputSpans,
		ID:           uuid.NewString(),
		Slug:         "caput",
		SearchText:   caputFullClean,
		OriginalText: originalIf(caputFullOriginal, caputAnnotations),
		Annotations:  caputAnnotations,
	}
	if node.URN != "" {
		caput.URN = node.URN + "_cpt"
	}
	blocks = append(blocks, caput)

	flattenChildren(node.Children, &blocks, &texts, slugBase, node.URN, 0, "")

	plain := strings.Join(texts, "\n")
	sum := md5.Sum([]byte(plain))

	// The article's own flag follows its caput only; a revoked paragraph
	// never flips the parent article.
	inForce := node.InForce
	if !inForce && !caputRevokedMarker(strings.Join(caputAnnotations, " ")) && !caputRevokedMarker(caputOriginal) {
		inForce = true
	}

	filtered := map[string]string{}
	var crumbs []string
	for _, level := range pathLevels {
		if v := path[string(level)]; v != "" {
			filtered[string(level)] = v
			crumbs = append(crumbs, v)
		}
	}

	return Article{
		ID:          slugBase,
		Number:      number,
		Slug:        slugBase,
		Epigraph:    epigraph,
		Blocks:      blocks,
		PlainText:   plain,
		SearchText:  plain,
		InForce:     inForce,
		Context:     strings.Join(crumbs, " > "),
		Path:        filtered,
		ContentHash: hex.EncodeToString(sum[:]),
		Order:       OrderKey(number),
	}
}

func flattenChildren(children []*Element, blocks *[]Block, texts *[]string, slugBase, urnBase string, indent int, paragraphCtx string) {
	for _, child := range children {
		switch child.Kind {
		case KindRubrica:
			clean, original, annotations := ExtractAnnotations(strings.TrimSpace(child.Text))
			*texts = append(*texts, clean)
			*blocks = append(*blocks, Block{
				Type:         "p",
				Children:     []Span{{Text: clean, Bold: true, Italic: true}},
				ID:           uuid.NewString(),
				Slug:         rubricSlug(child, children, slugBase),
				SearchText:   clean,
				OriginalText: originalIf(original, annotations),
				Annotations:  annotations,
				Indent:       indent,
			})
			continue

		case KindPenalty:
			flattenPenalty(child, blocks, texts, slugBase, indent, paragraphCtx)
			continue

		case KindParagrafo, KindInciso, KindAlinea, KindItem:
			// handled below

		default:
			// unknown fragments never become synthetic articles
			continue
		}

		label, childSlug, childURN, nextCtx := childAddress(child, slugBase, urnBase, paragraphCtx)

		// A rubric attached directly to the clause precedes its block.
		if child.Rubric != "" {
			clean, original, annotations := ExtractAnnotations(child.Rubric)
			*texts = append(*texts, clean)
			*blocks = append(*blocks, Block{
				Type:         "p",
				Children:     []Span{{Text: clean, Bold: true, Italic: true}},
				ID:           uuid.NewString(),
				Slug:         childSlug + "-epigraph",
				SearchText:   clean,
				OriginalText: originalIf(original, annotations),
				Annotations:  annotations,
				Indent:       indent + 1,
			})
		}

		original := strings.TrimSpace(child.Text)
		clean, _, annotations := ExtractAnnotations(original)
		revoked, vetoed := ResolveValidity(clean, annotations)

		if revoked || vetoed {
			display := revokedPlaceholder
			if vetoed {
				display = vetoedPlaceholder
			}
			fullClean := strings.TrimSpace(label + " " + display)
			fullOriginal := strings.TrimSpace(label + " " + original)
			*texts = append(*texts, fullClean)
			*blocks = append(*blocks, Block{
				Type: "p",
				Children: []Span{
					{Text: label + " ", Bold: true, Strikethrough: true, Color: strikeColor},
					{Text: display, Strikethrough: true, Color: strikeColor},
				},
				ID:           uuid.NewString(),
				Slug:         childSlug,
				URN:          childURN,
				SearchText:   fullClean,
				OriginalText: originalIf(fullOriginal, annotations),
				Annotations:  annotations,
				Indent:       indent + 1,
				Revoked:      revoked,
				Vetoed:       vetoed,
			})
		} else {
			fullClean := strings.TrimSpace(label + " " + clean)
			fullOriginal := strings.TrimSpace(label + " " + original)
			*texts = append(*texts, fullClean)

			var spans []Span
			if label != "" && clean != "" {
				spans = []Span{{Text: label + " ", Bold: true}, {Text: clean}}
			} else {
				spans = []Span{{Text: fullClean}}
			}
			*blocks = append(*blocks, Block{
				Type:         "p",
				Children:     spans,
				ID:           uuid.NewString(),
				Slug:         childSlug,
				URN:          childURN,
				SearchText:   fullClean,
				OriginalText: originalIf(fullOriginal, annotations),
				Annotations:  annotations,
				Indent:       indent + 1,
			})
		}

		if len(child.Children) > 0 {
			ctx := paragraphCtx
			if child.Kind == KindParagrafo {
				ctx = nextCtx
			}
			flattenChildren(child.Children, blocks, texts, childSlug, childURN, indent+1, ctx)
		}
	}
}

func flattenPenalty(child *Element, blocks *[]Block, texts *[]string, slugBase string, indent int, paragraphCtx string) {
	base := slugBase
	if paragraphCtx != "" {
		base = paragraphCtx
	}

	clean, original, annotations := ExtractAnnotations(strings.TrimSpace(child.Text))
	*texts = append(*texts, clean)

	measure := rePenaltyLead.ReplaceAllString(clean, "")
	*blocks = append(*blocks, Block{
		Type: "p",
		Children: []Span{
			{Text: "Pena ", Bold: true},
			{Text: measure},
		},
		ID:           uuid.NewString(),
		Slug:         base + ".penalty",
		SearchText:   clean,
		OriginalText: originalIf(original, annotations),
		Annotations:  annotations,
		Indent:       indent + 1,
	})
}

// childAddress derives the display label, slug, urn and paragraph context
// for one child clause. Source-provided semantic slugs win over generated
// ones; paragraph labels are always re-rendered from the number so ordinal
// rules hold.
func childAddress(child *Element, slugBase, urnBase, paragraphCtx string) (label, slug, urn, nextCtx string) {
	switch child.Kind {
	case KindParagrafo:
		number := paragraphNumber(child)
		if number != "" {
			label = ParagraphLabel(number)
		} else {
			label = strings.TrimSpace(child.Label)
		}
		slug = slugBase + ".paragrafo-" + number
		if urnBase != "" {
			urn = urnBase + "_par" + number
		}
		nextCtx = slug

	case KindInciso:
		arabic := RomanToArabic(child.Number)
		base := slugBase
		if paragraphCtx != "" {
			base = paragraphCtx
		}
		slug = base + ".inciso-" + arabic
		label = strings.TrimSpace(child.Label)
		if label == "" {
			label = child.Number + " -"
		}
		if urnBase != "" {
			urn = urnBase + "_inc" + arabic
		}

	case KindAlinea:
		slug = slugBase + ".alinea-" + child.Number
		label = strings.TrimSpace(child.Label)
		if label == "" {
			label = child.Number + ")"
		}
		if urnBase != "" {
			urn = urnBase + "_ali" + child.Number
		}

	case KindItem:
		slug = slugBase + ".item-" + child.Number
		label = strings.TrimSpace(child.Label)
		if label == "" {
			label = child.Number + "."
		}
		if urnBase != "" {
			urn = urnBase + "_ite" + child.Number
		}
	}

	if child.Slug != "" {
		slug = child.Slug
	}
	return label, slug, urn, nextCtx
}

func articleNumber(node *Element) string {
	if node.Number != "" {
		return node.Number
	}
	if strings.HasPrefix(node.Slug, "artigo-") {
		return strings.TrimPrefix(node.Slug, "artigo-")
	}
	if m := reAnyNumber.FindStringSubmatch(node.Label); m != nil {
		return m[1]
	}
	return "0"
}

func paragraphNumber(child *Element) string {
	if child.Number != "" {
		return child.Number
	}
	if i := strings.LastIndex(child.Slug, "paragrafo-"); i >= 0 {
		number := child.Slug[i+len("paragrafo-"):]
		if j := strings.Index(number, "."); j >= 0 {
			number = number[:j]
		}
		return number
	}
	if m := reParagraphInText.FindStringSubmatch(child.Label); m != nil {
		return reOrdinalMark.ReplaceAllString(m[1], "")
	}
	if strings.Contains(strings.ToLower(foldAccents(child.Label)), "paragrafo unico") {
		return "unico"
	}
	return ""
}

// rubricSlug names a standalone rubric block after the clause it announces:
// the next paragraph or inciso sibling when one follows, else the number the
// builder recorded when the rubric was attached.
func rubricSlug(rubric *Element, siblings []*Element, slugBase string) string {
	var next *Element
	seen := false
	for _, s := range siblings {
		if s == rubric {
			seen = true
			continue
		}
		if !seen {
			continue
		}
		if s.Kind == KindParagrafo || s.Kind == KindInciso {
			next = s
			break
		}
	}

	if next != nil {
		if next.Kind == KindParagrafo {
			return slugBase + ".paragrafo-" + paragraphNumber(next) + "-epigraph"
		}
		return slugBase + ".inciso-" + RomanToArabic(next.Number) + "-epigraph"
	}

	if rubric.Number != "" {
		if isDigits(rubric.Number) || rubric.Number == "unico" {
			return slugBase + ".paragrafo-" + rubric.Number + "-epigraph"
		}
		return slugBase + ".inciso-" + RomanToArabic(rubric.Number) + "-epigraph"
	}

	if rubric.Slug != "" {
		return rubric.Slug + "-epigraph"
	}
	return slugBase + ".rubrica"
}

func originalIf(original string, annotations []string) string {
	if len(annotations) == 0 {
		return ""
	}
	return original
}
