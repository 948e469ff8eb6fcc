package norma

import "strings"

// BuildTree reconstructs the hierarchy from a flat list of elements carrying
// dotted identifiers. The markup's physical nesting does not mirror the
// logical hierarchy, so parenthood comes from the identifier alone: a node's
// parent is the node addressed by its identifier minus the last dotted
// segment. Nodes whose computed parent is absent become roots.
func BuildTree(nodes []*Element) []*Element {
	index := make(map[string]*Element, len(nodes))
	for _, n := range nodes {
		index[n.Identifier] = n
	}

	var roots []*Element
	for _, n := range nodes {
		if i := strings.LastIndex(n.Identifier, "."); i >= 0 {
			if parent, ok := index[n.Identifier[:i]]; ok {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// BuilderOptions tunes the implicit-mode heuristics.
type BuilderOptions struct {
	// HonorLeadingHeadings lifts the boilerplate gate: epigraph-looking
	// lines are normally ignored until the first structural heading has
	// been committed, so institutional letterhead above the statute body
	// is not mistaken for a clause heading.
	HonorLeadingHeadings bool
}

// Builder reconstructs articles from a document-order fragment stream with
// no identifiers. It keeps cursors to the most recently opened article,
// paragraph and inciso, holds bare structural headings until the following
// line supplies their descriptive text, and holds rubric lines until the
// next clause opens. All state is per-builder, so separate documents can be
// parsed concurrently with separate builders.
type Builder struct {
	classifier *Classifier
	opts       BuilderOptions

	articles  []*Element
	hierarchy Hierarchy
	path      map[string]string

	article   *Element
	paragraph *Element
	inciso    *Element
	context   Kind // KindCaput, KindParagrafo or KindInciso

	pendingHeading  *LineInfo
	pendingEpigraph string
	pendingRubric   *Element

	started bool

	// mentionsParteGeral is the document pre-scan hint: some statutes name
	// their general part only in running text, never as a PARTE heading.
	mentionsParteGeral bool
	parteGeralAdded    bool
}

// Fragment is one raw document-order text fragment handed in by an adapter.
type Fragment struct {
	Text string

	// Epigraph marks fragments the adapter recognized as a short bold or
	// header-tag heading rather than clause text.
	Epigraph bool
}

// NewBuilder returns a fresh implicit-mode builder.
func NewBuilder(classifier *Classifier, opts BuilderOptions) *Builder {
	return &Builder{
		classifier: classifier,
		opts:       opts,
		path:       map[string]string{},
	}
}

// SetParteGeralHint records whether the document mentions a general part
// anywhere; if so, one is injected into the hierarchy before the first
// title heading.
func (b *Builder) SetParteGeralHint(mentioned bool) {
	b.mentionsParteGeral = mentioned
}

// Feed consumes the next fragment.
func (b *Builder) Feed(f Fragment) {
	info := b.classifier.AnalyzeLine(f.Text)

	if info.Structural {
		b.feedHeading(info)
		return
	}

	// A bare heading waits for its descriptive text on the next line:
	// "CAPÍTULO I" + "DOS CRIMES CONTRA A VIDA".
	if b.pendingHeading != nil && (info.Continuation || info.Empty) {
		if !info.Empty && info.Text != "" {
			b.pendingHeading.Text = b.pendingHeading.Text + " - " + info.Text
		}
		b.commitHeading(*b.pendingHeading)
		b.pendingHeading = nil
		return
	}

	if info.Empty {
		return
	}

	if f.Epigraph {
		// Ignore letterhead above the statute body: epigraphs only count
		// once the document structure has begun.
		if b.started || b.opts.HonorLeadingHeadings {
			b.pendingEpigraph = info.Text
			if b.article != nil {
				b.pendingRubric = &Element{Kind: KindRubrica, Text: info.Text, InForce: true}
			}
		}
		return
	}

	switch info.Kind {
	case KindArtigo:
		b.openArticle(info)
	case KindParagrafo:
		b.openParagraph(info)
	case KindInciso:
		b.openInciso(info)
	case KindAlinea:
		b.openAlinea(info)
	case KindItem:
		b.openItem(info)
	case KindPenalty:
		b.attachPenalty(info)
	default:
		b.appendContinuation(info.Text)
	}
}

// Finish flushes the open article and returns the accumulated articles and
// heading outline.
func (b *Builder) Finish() ([]*Element, Hierarchy) {
	if b.pendingHeading != nil {
		b.commitHeading(*b.pendingHeading)
		b.pendingHeading = nil
	}
	if b.article != nil {
		b.articles = append(b.articles, b.article)
		b.article = nil
	}
	return b.articles, b.hierarchy
}

func (b *Builder) feedHeading(info LineInfo) {
	if info.Kind == KindTitulo && b.mentionsParteGeral && !b.parteGeralAdded {
		b.hierarchy.Add(KindParte, "Parte geral")
		b.path[string(KindParte)] = "Parte geral"
		b.parteGeralAdded = true
	}

	switch info.Kind {
	case KindTitulo, KindCapitulo, KindSecao, KindSubsecao:
		// Heading token alone; the descriptive text follows on its own line.
		pending := info
		b.pendingHeading = &pending
	default:
		b.commitHeading(info)
	}
	b.started = true
}

func (b *Builder) commitHeading(info LineInfo) {
	b.hierarchy.Add(info.Kind, info.Text)

	switch info.Kind {
	case KindParte:
		b.parteGeralAdded = true
		b.path[string(KindParte)] = info.Text
		delete(b.path, string(KindTitulo))
		delete(b.path, string(KindCapitulo))
		delete(b.path, string(KindSecao))
	case KindLivro:
		b.path[string(KindLivro)] = info.Text
	case KindTitulo:
		b.path[string(KindTitulo)] = info.Text
		delete(b.path, string(KindCapitulo))
		delete(b.path, string(KindSecao))
	case KindCapitulo:
		b.path[string(KindCapitulo)] = info.Text
		delete(b.path, string(KindSecao))
	case KindSecao:
		b.path[string(KindSecao)] = info.Text
	case KindSubsecao:
		b.path[string(KindSubsecao)] = info.Text
	}
}

func (b *Builder) openArticle(info LineInfo) {
	if b.article != nil {
		b.articles = append(b.articles, b.article)
	}

	b.article = &Element{
		Kind:    KindArtigo,
		Number:  info.Number,
		Text:    info.Text,
		Rubric:  b.pendingEpigraph,
		InForce: !caputRevokedMarker(info.Text),
		Path:    copyPath(b.path),
	}
	b.pendingEpigraph = ""
	b.pendingRubric = nil
	b.paragraph = nil
	b.inciso = nil
	b.context = KindCaput
}

func (b *Builder) openParagraph(info LineInfo) {
	if b.article == nil {
		return
	}
	if b.pendingRubric != nil {
		b.pendingRubric.Number = info.Number
		b.article.Children = append(b.article.Children, b.pendingRubric)
		b.pendingRubric = nil
	}

	paragraph := &Element{
		Kind:    KindParagrafo,
		Number:  info.Number,
		Text:    info.Text,
		InForce: !caputRevokedMarker(info.Text),
	}
	b.article.Children = append(b.article.Children, paragraph)
	b.paragraph = paragraph
	b.inciso = nil
	b.context = KindParagrafo
}

func (b *Builder) openInciso(info LineInfo) {
	if b.article == nil {
		return
	}
	if b.pendingRubric != nil {
		b.pendingRubric.Number = info.Number
		if b.paragraph != nil {
			b.paragraph.Children = append(b.paragraph.Children, b.pendingRubric)
		} else {
			b.article.Children = append(b.article.Children, b.pendingRubric)
		}
		b.pendingRubric = nil
	}

	inciso := &Element{
		Kind:    KindInciso,
		Number:  info.Number,
		Text:    info.Text,
		InForce: !caputRevokedMarker(info.Text),
	}
	if b.paragraph != nil {
		b.paragraph.Children = append(b.paragraph.Children, inciso)
	} else {
		b.article.Children = append(b.article.Children, inciso)
	}
	b.inciso = inciso
	b.context = KindInciso
}

func (b *Builder) openAlinea(info LineInfo) {
	if b.article == nil {
		return
	}
	alinea := &Element{
		Kind:    KindAlinea,
		Number:  info.Number,
		Text:    info.Text,
		InForce: !caputRevokedMarker(info.Text),
	}
	switch {
	case b.inciso != nil:
		b.inciso.Children = append(b.inciso.Children, alinea)
	case b.paragraph != nil:
		b.paragraph.Children = append(b.paragraph.Children, alinea)
	default:
		b.article.Children = append(b.article.Children, alinea)
	}
}

func (b *Builder) openItem(info LineInfo) {
	if b.article == nil || b.inciso == nil {
		return
	}
	item := &Element{
		Kind:    KindItem,
		Number:  info.Number,
		Text:    info.Text,
		InForce: !caputRevokedMarker(info.Text),
	}
	if n := len(b.inciso.Children); n > 0 && b.inciso.Children[n-1].Kind == KindAlinea {
		last := b.inciso.Children[n-1]
		last.Children = append(last.Children, item)
		return
	}
	b.inciso.Children = append(b.inciso.Children, item)
}

func (b *Builder) attachPenalty(info LineInfo) {
	if b.article == nil {
		return
	}
	penalty := &Element{Kind: KindPenalty, Text: info.Text, InForce: true}

	// A penalty after an inciso belongs to the inciso's parent, not the
	// inciso itself.
	switch {
	case b.context == KindInciso && b.inciso != nil && b.paragraph != nil:
		b.paragraph.Children = append(b.paragraph.Children, penalty)
	case b.context == KindInciso && b.inciso != nil:
		b.article.Children = append(b.article.Children, penalty)
	case b.paragraph != nil:
		b.paragraph.Children = append(b.paragraph.Children, penalty)
	default:
		b.article.Children = append(b.article.Children, penalty)
	}
}

func (b *Builder) appendContinuation(text string) {
	switch {
	case b.context == KindInciso && b.inciso != nil:
		b.inciso.Text += " " + text
	case b.context == KindParagrafo && b.paragraph != nil:
		b.paragraph.Text += " " + text
	case b.context == KindCaput && b.article != nil:
		b.article.Text += " " + text
	}
}
