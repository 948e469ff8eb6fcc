package scrape

import (
	"strings"
	"testing"

	"github.com/lexbrasil/normaparse/norma"
)

const samplePage = `<html><body>
<div id="law_content_container">
  <div node-id="1" semantic-id="titulo-1">
    <h4>TÍTULO I</h4>
    <p class="highlight_content">DOS CRIMES CONTRA A PESSOA</p>
  </div>
  <div node-id="1.0" semantic-id="artigo-121">
    <h5>Homicídio simples</h5>
    <h4>Art. 121</h4>
    <p class="highlight_content">Matar alguém: <button>anotar</button>(Redação dada pela Lei nº 12.015, de 2009)</p>
  </div>
  <div node-id="1.0.2" semantic-id="artigo-121.paragrafo-2">
    <h4>§ 2º</h4>
    <p class="highlight_content">Se o homicídio é cometido:</p>
  </div>
  <div node-id="1.0.2.1" semantic-id="artigo-121.paragrafo-2.inciso-1">
    <h4>I -</h4>
    <p class="highlight_content">mediante paga ou promessa de recompensa;</p>
  </div>
  <div node-id="1.0.9" semantic-id="">
    <p class="highlight_content">publicidade irrelevante</p>
  </div>
</div>
</body></html>`

func TestParse(t *testing.T) {
	law, err := Parse(samplePage, Options{
		Name:       "Código Penal",
		Vocabulary: norma.DefaultVocabulary(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(law.Artigos) != 1 {
		t.Fatalf("INVALID ARTICLES:\nGOT:%d\nEXPECTED:1", len(law.Artigos))
	}
	if len(law.Lei.Structure.Titles) != 1 {
		t.Fatalf("unexpected structure: %+v", law.Lei.Structure)
	}

	art := law.Artigos[0]
	if art.Slug != "artigo-121" || art.Number != "121" {
		t.Fatalf("unexpected article identity: %+v", art)
	}
	if art.Epigraph != "Homicídio simples" {
		t.Errorf("INVALID EPIGRAPH:\nGOT:%q", art.Epigraph)
	}
	if !strings.Contains(art.Context, "TÍTULO I") {
		t.Errorf("INVALID CONTEXT:\nGOT:%q", art.Context)
	}
	if !art.InForce {
		t.Error("article must be in force")
	}

	// epigraph, caput, paragraph, inciso
	if len(art.Blocks) != 4 {
		t.Fatalf("INVALID BLOCKS:\nGOT:%d\nEXPECTED:4", len(art.Blocks))
	}

	caput := art.Blocks[1]
	if caput.SearchText != "Art. 121 Matar alguém:" {
		t.Errorf("INVALID CAPUT:\nGOT:%q", caput.SearchText)
	}
	if strings.Contains(caput.SearchText, "anotar") {
		t.Error("button text leaked into the caput")
	}
	if len(caput.Annotations) != 1 {
		t.Errorf("INVALID ANNOTATIONS:\nGOT:%v", caput.Annotations)
	}

	if got := art.Blocks[3].Slug; got != "artigo-121.paragrafo-2.inciso-1" {
		t.Errorf("INVALID INCISO SLUG:\nGOT:%s", got)
	}
}

func TestParseMeteredContainer(t *testing.T) {
	page := `<html><body><div class="meteredContent">
	<div node-id="0" semantic-id="artigo-1">
	  <h4>Art. 1º</h4>
	  <p class="highlight_content">Não há crime sem lei anterior que o defina.</p>
	</div>
	</div></body></html>`

	law, err := Parse(page, Options{Vocabulary: norma.DefaultVocabulary()})
	if err != nil {
		t.Fatal(err)
	}
	if len(law.Artigos) != 1 {
		t.Fatalf("INVALID ARTICLES:\nGOT:%d\nEXPECTED:1", len(law.Artigos))
	}
}

func TestParseNoContainer(t *testing.T) {
	_, err := Parse("<html><body><p>nada</p></body></html>", Options{Vocabulary: norma.DefaultVocabulary()})
	if err == nil {
		t.Fatal("expected an error for markup without a content container")
	}
	if !strings.Contains(err.Error(), "content container") {
		t.Errorf("INVALID ERROR:\nGOT:%s", err)
	}
}

func TestParseRevokedArticle(t *testing.T) {
	page := `<html><body><div id="law_content_container">
	<div node-id="0" semantic-id="artigo-224">
	  <h4>Art. 224</h4>
	  <p class="highlight_content">(Revogado pela Lei nº 12.015, de 2009)</p>
	</div>
	</div></body></html>`

	law, err := Parse(page, Options{Vocabulary: norma.DefaultVocabulary()})
	if err != nil {
		t.Fatal(err)
	}
	if law.Artigos[0].InForce {
		t.Error("revoked article must not be in force")
	}
}

func TestParseInlineItems(t *testing.T) {
	page := `<html><body><div id="law_content_container">
	<div node-id="0" semantic-id="artigo-7">
	  <h4>Art. 7º</h4>
	  <p class="highlight_content">Ficam sujeitos à lei brasileira:</p>
	</div>
	<div node-id="0.1" semantic-id="artigo-7.inciso-1">
	  <h4>I -</h4>
	  <p class="highlight_content">os crimes:<br>1 - contra a vida do Presidente;<br>2 - contra o patrimônio público;</p>
	</div>
	</div></body></html>`

	law, err := Parse(page, Options{Vocabulary: norma.DefaultVocabulary()})
	if err != nil {
		t.Fatal(err)
	}

	art := law.Artigos[0]
	// caput, inciso, two items
	if len(art.Blocks) != 4 {
		t.Fatalf("INVALID BLOCKS:\nGOT:%d\nEXPECTED:4", len(art.Blocks))
	}
	if got := art.Blocks[1].SearchText; got != "I - os crimes:" {
		t.Errorf("INVALID INCISO:\nGOT:%q", got)
	}
	if got := art.Blocks[2].Slug; got != "artigo-7.inciso-1.item-1" {
		t.Errorf("INVALID ITEM SLUG:\nGOT:%s", got)
	}
	if got := art.Blocks[2].SearchText; got != "1. contra a vida do Presidente;" {
		t.Errorf("INVALID ITEM TEXT:\nGOT:%q", got)
	}
}
