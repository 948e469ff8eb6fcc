package normas

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/pkg/errors"

	"github.com/lexbrasil/normaparse/norma"
)

// legisNode is the schema.org Legislation shape the structured feed uses.
// legislationLegalForce is kept raw: some documents carry a bare string,
// others the full LegalForceStatus object.
type legisNode struct {
	Identifier  string          `json:"legislationIdentifier"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Text        string          `json:"text"`
	LegalForce  json.RawMessage `json:"legislationLegalForce"`
	HasPart     []legisNode     `json:"hasPart"`
	WorkExample []legisNode     `json:"workExample"`
}

func parseJSON(payload []byte, meta Metadata, classifier *norma.Classifier) (*norma.Law, error) {
	var root legisNode
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, errors.Wrap(err, "could not decode structured document")
	}
	root = resolveWorkExample(root)

	p := &jsonParser{classifier: classifier}
	p.walk(root, map[string]string{})

	ementa := meta.Ementa
	if ementa == "" {
		ementa = root.Description
	}
	urn := meta.URN
	if urn == "" {
		urn = root.Identifier
	}

	return &norma.Law{
		Lei: norma.LawInfo{
			Name:      meta.Title,
			Ementa:    ementa,
			URN:       urn,
			Structure: p.hierarchy,
		},
		Artigos: norma.FlattenArticles(p.articles),
	}, nil
}

type jsonParser struct {
	classifier *norma.Classifier
	articles   []*norma.Element
	hierarchy  norma.Hierarchy
}

// walk descends the hasPart tree, carrying the structural path down to each
// article it encounters.
func (p *jsonParser) walk(node legisNode, path map[string]string) {
	node = resolveWorkExample(node)

	suffix := ExtractURNSuffix(node.Identifier)
	kind := p.nodeKind(suffix, node.Name)

	if kind.Structural() {
		next := make(map[string]string, len(path)+1)
		for k, v := range path {
			next[k] = v
		}
		next[string(kind)] = strings.TrimSpace(node.Name)
		p.hierarchy.Add(kind, strings.TrimSpace(node.Name))
		for _, part := range node.HasPart {
			p.walk(part, next)
		}
		return
	}

	if kind == norma.KindArtigo {
		p.articles = append(p.articles, p.buildArticle(node, suffix, path))
		return
	}

	// Root and unrecognized wrappers contribute nothing themselves.
	for _, part := range node.HasPart {
		p.walk(part, path)
	}
}

func (p *jsonParser) buildArticle(node legisNode, suffix string, path map[string]string) *norma.Element {
	_, number := LastComponent(suffix)

	el := &norma.Element{
		Slug:    SlugFromURNSuffix(suffix),
		Kind:    norma.KindArtigo,
		Number:  number,
		Text:    strings.TrimSpace(node.Text),
		URN:     node.Identifier,
		InForce: inForce(node.LegalForce),
		Path:    path,
	}
	if rubric := strings.TrimSpace(node.Name); rubric != "" && p.classifier.Classify("", rubric) != norma.KindArtigo {
		el.Rubric = rubric
	}

	for _, part := range node.HasPart {
		p.attachClause(el, suffix, part)
	}
	return el
}

// attachClause converts one provision into a child element. The caput is a
// real node in this format but only a position in ours, so its text is
// promoted onto the article and its own children become the article's.
func (p *jsonParser) attachClause(parent *norma.Element, parentSuffix string, node legisNode) {
	node = resolveWorkExample(node)

	suffix := ExtractURNSuffix(node.Identifier)
	if parentSuffix != "" && suffix != "" && !strings.HasPrefix(suffix, parentSuffix) {
		log.Printf("normas: provision %s does not extend its parent %s", suffix, parentSuffix)
	}

	token, number := LastComponent(suffix)

	if token == "cpt" {
		if parent.Text == "" {
			parent.Text = strings.TrimSpace(node.Text)
		}
		for _, part := range node.HasPart {
			p.attachClause(parent, parentSuffix, part)
		}
		return
	}

	kind := p.nodeKind(suffix, node.Name)
	switch kind {
	case norma.KindParagrafo, norma.KindInciso, norma.KindAlinea, norma.KindItem:
	default:
		return
	}

	el := &norma.Element{
		Slug:    SlugFromURNSuffix(suffix),
		Kind:    kind,
		Number:  number,
		Text:    strings.TrimSpace(node.Text),
		URN:     node.Identifier,
		InForce: inForce(node.LegalForce),
	}
	if kind == norma.KindInciso {
		el.Number = norma.ArabicToRoman(number)
		el.Label = el.Number + " -"
	}
	if !ValidateSlug(el.URN, el.Slug) {
		log.Printf("normas: slug %s disagrees with urn %s", el.Slug, el.URN)
	}

	parent.Children = append(parent.Children, el)
	for _, part := range node.HasPart {
		p.attachClause(el, suffix, part)
	}
}

func (p *jsonParser) nodeKind(suffix, name string) norma.Kind {
	if token, _ := LastComponent(suffix); token != "" {
		for abbrev, full := range urnTypeNames {
			if abbrev == token {
				return norma.Kind(full)
			}
		}
	}
	return p.classifier.Classify("", name)
}

// resolveWorkExample picks the most recent consolidated expression of a
// provision when the feed wraps the text in workExample entries.
func resolveWorkExample(node legisNode) legisNode {
	if len(node.WorkExample) == 0 {
		return node
	}
	ex := node.WorkExample[len(node.WorkExample)-1]
	if ex.Identifier == "" {
		ex.Identifier = node.Identifier
	}
	if ex.Name == "" {
		ex.Name = node.Name
	}
	if len(ex.HasPart) == 0 {
		ex.HasPart = node.HasPart
	}
	if len(ex.LegalForce) == 0 {
		ex.LegalForce = node.LegalForce
	}
	return ex
}

func inForce(raw json.RawMessage) bool {
	return !strings.Contains(string(raw), "NotInForce")
}
