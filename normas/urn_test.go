package normas

import "testing"

func TestSlugFromURNSuffix(t *testing.T) {
	cases := []struct {
		suffix string
		slug   string
	}{
		{"art121", "artigo-121"},
		{"art121_par2", "artigo-121.paragrafo-2"},
		{"art121_par2_inc1", "artigo-121.paragrafo-2.inciso-1"},
		{"art5_inc2_ali3", "artigo-5.inciso-2.alinea-3"},
		{"art10_par1u", "artigo-10.paragrafo-unico"},
		{"art121_cpt", "artigo-121"},
		{"tit1", "titulo-1"},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.suffix, func(t *testing.T) {
			if got := SlugFromURNSuffix(tc.suffix); got != tc.slug {
				t.Errorf("INVALID SLUG:\nGOT:%s\nEXPECTED:%s", got, tc.slug)
			}
		})
	}
}

func TestExtractURNSuffix(t *testing.T) {
	urn := "urn:lex:br:federal:lei:1940-12-07;2848!art121_par2"
	if got := ExtractURNSuffix(urn); got != "art121_par2" {
		t.Errorf("INVALID SUFFIX:\nGOT:%s", got)
	}
	if got := ExtractURNSuffix("urn:lex:br:federal:lei:1940-12-07;2848"); got != "" {
		t.Errorf("INVALID SUFFIX:\nGOT:%s\nEXPECTED empty", got)
	}
}

func TestLastComponent(t *testing.T) {
	cases := []struct {
		suffix string
		token  string
		number string
	}{
		{"art121", "art", "121"},
		{"art121_par2", "par", "2"},
		{"art10_par1u", "par", "unico"},
		{"art121_cpt", "cpt", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.suffix, func(t *testing.T) {
			token, number := LastComponent(tc.suffix)
			if token != tc.token || number != tc.number {
				t.Errorf("INVALID COMPONENT:\nGOT:%s %s\nEXPECTED:%s %s", token, number, tc.token, tc.number)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	urn := "urn:lex:br:federal:lei:1940-12-07;2848!art121_par2"
	if !ValidateSlug(urn, "artigo-121.paragrafo-2") {
		t.Error("matching slug must validate")
	}
	if ValidateSlug(urn, "artigo-121.paragrafo-3") {
		t.Error("mismatched slug must not validate")
	}
	if !ValidateSlug("urn:lex:br:federal:lei:1940-12-07;2848", "qualquer") {
		t.Error("statute-level urn must always validate")
	}
}
