package norma

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Vocabulary holds the drafting-language keyword lists the classifier
// matches against. The defaults cover Brazilian legislative drafting; any
// list can be overridden from a yaml file (see LoadVocabulary).
type Vocabulary struct {
	Penalty    []string `yaml:"penalty"`
	Paragraph  []string `yaml:"paragraph"`
	Article    []string `yaml:"article"`
	Part       []string `yaml:"part"`
	Book       []string `yaml:"book"`
	Title      []string `yaml:"title"`
	Chapter    []string `yaml:"chapter"`
	Section    []string `yaml:"section"`
	Subsection []string `yaml:"subsection"`
}

// DefaultVocabulary returns the Portuguese legal-drafting keyword tables.
// Entries are written accent-free; matching folds accents away first, so
// "Título" and "Titulo" both hit.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Penalty:    []string{"pena"},
		Paragraph:  []string{"§", "paragrafo"},
		Article:    []string{"art"},
		Part:       []string{"parte"},
		Book:       []string{"livro"},
		Title:      []string{"titulo"},
		Chapter:    []string{"capitulo"},
		Section:    []string{"secao"},
		Subsection: []string{"subsecao"},
	}
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldAccents strips combining marks so keyword matching is
// accent-insensitive. On transform failure the input is returned unchanged.
func foldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// Clause-opening patterns. These mirror the source drafting conventions:
// ordinal markers on article and paragraph numbers, roman-numeral incisos,
// lettered alíneas, integer items and the "Pena -" measure line.
var (
	reArticleLabel   = regexp.MustCompile(`(?i)^Art\.?\s*(\d+(?:\.\d{3})*[º°]?(?:-[A-Za-z])?)\.?\s*`)
	reParagraphLabel = regexp.MustCompile(`(?i)^§\s*(\d+[º°]?(?:\s*-[A-Za-z])?)\.?\s*`)
	reSoleParagraph  = regexp.MustCompile(`(?i)^Par[áa]grafo\s+[úu]nico\.?\s*`)
	reIncisoLabel    = regexp.MustCompile(`(?i)^([IVX]+)\s*[-–—]\s*`)
	reAlineaLabel    = regexp.MustCompile(`(?i)^([a-z])\s*\)\s*`)
	reItemLabel      = regexp.MustCompile(`^(\d+)\s*[-–—.]\s*`)
	rePenaltyLabel   = regexp.MustCompile(`(?i)^Pena\s*[-–—]\s*`)

	reOrdinalMark = regexp.MustCompile(`[º°]`)
	reInnerSpace  = regexp.MustCompile(`\s+`)
)

// Structural heading tails: "PARTE GERAL", "TÍTULO I", "CAPÍTULO IV"...
var (
	rePartTail    = regexp.MustCompile(`(?i)^\s+(GERAL|ESPECIAL|[IVX]+)\b`)
	reHeadingTail = regexp.MustCompile(`(?i)^\s+([IVXLC]+)\b`)
)

// Classifier determines element kinds from semantic ids and label text.
type Classifier struct {
	vocab Vocabulary

	// semantic-id token table in specificity order. penalty must come
	// before artigo: a penalty's id extends its parent article's id and
	// must not be read as a nested article. Likewise subsecao before
	// secao, which it contains as a substring.
	tokens []tokenKind
}

type tokenKind struct {
	token string
	kind  Kind
}

// NewClassifier builds a classifier over the given vocabulary.
func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{
		vocab: vocab,
		tokens: []tokenKind{
			{".penalty", KindPenalty},
			{"alinea", KindAlinea},
			{"inciso", KindInciso},
			{"item", KindItem},
			{"paragrafo", KindParagrafo},
			{"artigo", KindArtigo},
			{"subsecao", KindSubsecao},
			{"secao", KindSecao},
			{"capitulo", KindCapitulo},
			{"titulo", KindTitulo},
			{"livro", KindLivro},
			{"parte", KindParte},
		},
	}
}

// Classify resolves an element's kind. A semantic id wins over the label;
// when neither matches anything the element is KindUnknown and callers drop
// it from the output tree.
func (c *Classifier) Classify(semanticID, label string) Kind {
	s := strings.ToLower(semanticID)
	if s != "" {
		for _, tk := range c.tokens {
			if strings.Contains(s, tk.token) {
				return tk.kind
			}
		}
	}

	l := strings.ToLower(foldAccents(strings.TrimSpace(label)))
	switch {
	case c.hasPrefix(l, c.vocab.Paragraph):
		return KindParagrafo
	case c.hasPrefix(l, c.vocab.Penalty):
		return KindPenalty
	case c.hasPrefix(l, c.vocab.Article):
		return KindArtigo
	case c.hasPrefix(l, c.vocab.Chapter):
		return KindCapitulo
	case c.hasPrefix(l, c.vocab.Title):
		return KindTitulo
	case c.hasPrefix(l, c.vocab.Subsection):
		return KindSubsecao
	case c.hasPrefix(l, c.vocab.Section):
		return KindSecao
	case c.hasPrefix(l, c.vocab.Book):
		return KindLivro
	case c.hasPrefix(l, c.vocab.Part):
		return KindParte
	case reAlineaLabel.MatchString(l):
		return KindAlinea
	case reIncisoLabel.MatchString(label):
		return KindInciso
	}
	return KindUnknown
}

func (c *Classifier) hasPrefix(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.HasPrefix(folded, strings.ToLower(foldAccents(kw))) {
			return true
		}
	}
	return false
}

// LineInfo is the classification of one raw text fragment in implicit mode.
type LineInfo struct {
	Kind   Kind
	Number string
	Text   string

	// Structural marks part/book/title/chapter/section headings; Text then
	// holds the whole heading line.
	Structural bool

	// Continuation marks text that opens no clause and should be appended
	// to whatever clause is currently open.
	Continuation bool

	Empty bool
}

// AnalyzeLine classifies a raw document-order fragment: structural headings
// first, then clause openers in drafting order, falling back to
// continuation for anything unrecognized.
func (c *Classifier) AnalyzeLine(text string) LineInfo {
	text = strings.TrimSpace(text)
	if text == "" {
		return LineInfo{Empty: true}
	}

	if kind, ok := c.structuralHeading(text); ok {
		return LineInfo{Kind: kind, Structural: true, Text: text}
	}

	if m := reArticleLabel.FindStringSubmatch(text); m != nil {
		number := reOrdinalMark.ReplaceAllString(m[1], "")
		return LineInfo{Kind: KindArtigo, Number: number, Text: strings.TrimSpace(text[len(m[0]):])}
	}

	if m := reParagraphLabel.FindStringSubmatch(text); m != nil {
		number := reOrdinalMark.ReplaceAllString(m[1], "")
		number = reInnerSpace.ReplaceAllString(number, "")
		return LineInfo{Kind: KindParagrafo, Number: number, Text: strings.TrimSpace(text[len(m[0]):])}
	}
	if m := reSoleParagraph.FindStringSubmatch(text); m != nil {
		return LineInfo{Kind: KindParagrafo, Number: "unico", Text: strings.TrimSpace(text[len(m[0]):])}
	}

	if m := reIncisoLabel.FindStringSubmatch(text); m != nil {
		return LineInfo{Kind: KindInciso, Number: strings.ToUpper(m[1]), Text: strings.TrimSpace(text[len(m[0]):])}
	}

	if m := reAlineaLabel.FindStringSubmatch(text); m != nil {
		return LineInfo{Kind: KindAlinea, Number: strings.ToLower(m[1]), Text: strings.TrimSpace(text[len(m[0]):])}
	}

	if m := reItemLabel.FindStringSubmatch(text); m != nil {
		return LineInfo{Kind: KindItem, Number: m[1], Text: strings.TrimSpace(text[len(m[0]):])}
	}

	if rePenaltyLabel.MatchString(text) {
		return LineInfo{Kind: KindPenalty, Text: text}
	}

	return LineInfo{Kind: KindUnknown, Continuation: true, Text: text}
}

func (c *Classifier) structuralHeading(text string) (Kind, bool) {
	folded := foldAccents(text)
	check := func(keywords []string, tail *regexp.Regexp) bool {
		for _, kw := range keywords {
			kw = strings.ToLower(foldAccents(kw))
			if len(folded) > len(kw) && strings.EqualFold(folded[:len(kw)], kw) && tail.MatchString(folded[len(kw):]) {
				return true
			}
		}
		return false
	}

	switch {
	case check(c.vocab.Part, rePartTail):
		return KindParte, true
	case check(c.vocab.Book, reHeadingTail):
		return KindLivro, true
	case check(c.vocab.Title, reHeadingTail):
		return KindTitulo, true
	case check(c.vocab.Chapter, reHeadingTail):
		return KindCapitulo, true
	case check(c.vocab.Subsection, reHeadingTail):
		return KindSubsecao, true
	case check(c.vocab.Section, reHeadingTail):
		return KindSecao, true
	}
	return KindUnknown, false
}
