package norma

import "testing"

func TestSplitInlineItems(t *testing.T) {
	node := &Element{
		Identifier: "1.0.2",
		Slug:       "artigo-5.inciso-2",
		Kind:       KindInciso,
		Text:       "nos seguintes casos:\n1 - em tempo de guerra;\n2 - em território\nestrangeiro;",
	}

	SplitInlineItems(node)

	if node.Text != "nos seguintes casos:" {
		t.Errorf("INVALID PREAMBLE:\nGOT:%q\nEXPECTED:%q", node.Text, "nos seguintes casos:")
	}
	if len(node.Children) != 2 {
		t.Fatalf("INVALID ITEMS:\nGOT:%d\nEXPECTED:2", len(node.Children))
	}

	first := node.Children[0]
	if first.Kind != KindItem || first.Number != "1" {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if first.Text != "em tempo de guerra;" {
		t.Errorf("INVALID ITEM TEXT:\nGOT:%q", first.Text)
	}
	if first.Slug != "artigo-5.inciso-2.item-1" {
		t.Errorf("INVALID ITEM SLUG:\nGOT:%s", first.Slug)
	}
	if first.Identifier != "1.0.2.item.1" {
		t.Errorf("INVALID ITEM IDENTIFIER:\nGOT:%s", first.Identifier)
	}

	// the wrapped line joins the second item
	if got := node.Children[1].Text; got != "em território estrangeiro;" {
		t.Errorf("INVALID JOINED TEXT:\nGOT:%q", got)
	}
}

func TestSplitInlineItemsIgnoresQuotedNumbers(t *testing.T) {
	node := &Element{
		Slug: "artigo-10.paragrafo-1",
		Kind: KindParagrafo,
		Text: "aplica-se o item 2 - do artigo anterior.",
	}
	SplitInlineItems(node)

	if len(node.Children) != 0 {
		t.Fatalf("quoted number must not open a list, got %+v", node.Children)
	}
	if node.Text != "aplica-se o item 2 - do artigo anterior." {
		t.Errorf("INVALID TEXT:\nGOT:%q", node.Text)
	}
}
