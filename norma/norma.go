// Package norma holds the structural model of a statute and the routines
// that turn a flat stream of parsed fragments into per-article JSON records:
// classification, tree reconstruction, annotation extraction, label
// formatting, validity resolution and flattening.
package norma

// Kind identifies what a parsed element is. The values double as the wire
// vocabulary used in semantic ids and slugs, so they stay in the drafting
// language of the source documents.
type Kind string

const (
	KindParte     Kind = "parte"
	KindLivro     Kind = "livro"
	KindTitulo    Kind = "titulo"
	KindCapitulo  Kind = "capitulo"
	KindSecao     Kind = "secao"
	KindSubsecao  Kind = "subsecao"
	KindArtigo    Kind = "artigo"
	KindCaput     Kind = "caput"
	KindParagrafo Kind = "paragrafo"
	KindInciso    Kind = "inciso"
	KindAlinea    Kind = "alinea"
	KindItem      Kind = "item"
	KindPenalty   Kind = "penalty"
	KindRubrica   Kind = "rubrica"
	KindUnknown   Kind = "unknown"
)

// Structural reports whether the kind is a grouping heading (part, book,
// title, chapter, section) rather than a clause.
func (k Kind) Structural() bool {
	switch k {
	case KindParte, KindLivro, KindTitulo, KindCapitulo, KindSecao, KindSubsecao:
		return true
	}
	return false
}

// Element is one parsed fragment of source markup. Children are owned
// exclusively by their parent; the source tree is acyclic because child
// identifiers are strict syntactic extensions of the parent's.
type Element struct {
	// Identifier is the dotted positional address ("1.0.2"). Present only
	// in the published-page source format.
	Identifier string

	// Slug is the semantic id carried by the source
	// ("artigo-121.paragrafo-2"), when one exists.
	Slug string

	Kind   Kind
	Rubric string // short heading preceding the clause body
	Label  string // numbering token as written ("Art. 1º", "II -")
	Number string // normalized number ("121-A", "2", "unico", "II")
	Text   string
	URN    string

	// InForce is the adapter's own read of the clause's caput; the
	// flattener double-checks it against the caput annotations.
	InForce bool

	// Path records the structural ancestors known at parse time, for
	// sources that never materialize structural nodes in the tree.
	Path map[string]string

	Children []*Element
}

// Hierarchy is the legacy flat outline consumed by the sidebar collaborator:
// ordered heading strings grouped by level.
type Hierarchy struct {
	Parts       []string `json:"partes"`
	Books       []string `json:"livros"`
	Titles      []string `json:"titulos"`
	Chapters    []string `json:"capitulos"`
	Sections    []string `json:"secoes"`
	Subsections []string `json:"subsecoes"`
}

// Add appends a committed heading to the level matching kind.
func (h *Hierarchy) Add(kind Kind, heading string) {
	switch kind {
	case KindParte:
		h.Parts = append(h.Parts, heading)
	case KindLivro:
		h.Books = append(h.Books, heading)
	case KindTitulo:
		h.Titles = append(h.Titles, heading)
	case KindCapitulo:
		h.Chapters = append(h.Chapters, heading)
	case KindSecao:
		h.Sections = append(h.Sections, heading)
	case KindSubsecao:
		h.Subsections = append(h.Subsections, heading)
	}
}

// Span is one run of styled text inside a block.
type Span struct {
	Text          string `json:"text"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Color         string `json:"color,omitempty"`
}

// Block is one rendered clause line of an article's content.
type Block struct {
	Type         string   `json:"type"`
	Children     []Span   `json:"children"`
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	URN          string   `json:"urn,omitempty"`
	SearchText   string   `json:"search_text"`
	OriginalText string   `json:"texto_original,omitempty"`
	Annotations  []string `json:"anotacoes,omitempty"`
	Indent       int      `json:"indent,omitempty"`
	Revoked      bool     `json:"revogado,omitempty"`
	Vetoed       bool     `json:"vetado,omitempty"`
}

// Article is the serialized record emitted for each surviving article. The
// JSON field names are the output contract the downstream importer and
// frontend were built against.
type Article struct {
	ID          string            `json:"id"`
	Number      string            `json:"numero"`
	Slug        string            `json:"slug"`
	Epigraph    string            `json:"epigrafe"`
	Blocks      []Block           `json:"plate_content"`
	PlainText   string            `json:"texto_plano"`
	SearchText  string            `json:"search_text"`
	InForce     bool              `json:"vigente"`
	Context     string            `json:"contexto"`
	Path        map[string]string `json:"path"`
	ContentHash string            `json:"content_hash"`
	Order       float64           `json:"ordem_numerica"`
}

// LawInfo is the statute-level metadata wrapped around the article records.
type LawInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Number    string    `json:"numero"`
	Ementa    string    `json:"ementa"`
	URN       string    `json:"urn,omitempty"`
	Structure Hierarchy `json:"estrutura"`
}

// Law is the full parse output for one statute.
type Law struct {
	Lei     LawInfo   `json:"lei"`
	Artigos []Article `json:"artigos"`
}

// pathLevels is the fixed hierarchy order used for path maps and the
// "contexto" breadcrumb.
var pathLevels = []Kind{KindParte, KindLivro, KindTitulo, KindCapitulo, KindSecao, KindSubsecao}

func copyPath(path map[string]string) map[string]string {
	out := make(map[string]string, len(path))
	for k, v := range path {
		out[k] = v
	}
	return out
}
