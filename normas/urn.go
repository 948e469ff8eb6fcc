package normas

import (
	"regexp"
	"strings"
)

// urnTypeNames maps the abbreviated component tokens used in legislative
// URNs to the slug vocabulary.
var urnTypeNames = map[string]string{
	"art": "artigo",
	"par": "paragrafo",
	"inc": "inciso",
	"ali": "alinea",
	"ite": "item",
	"cpt": "caput",
	"prt": "parte",
	"liv": "livro",
	"tit": "titulo",
	"cap": "capitulo",
	"sec": "secao",
	"sub": "subsecao",
}

var reURNComponent = regexp.MustCompile(`^([a-z]+)(.*)$`)

// ExtractURNSuffix returns the fragment after the "!" separator, which
// addresses a provision inside the statute. Empty when the URN names the
// statute itself.
func ExtractURNSuffix(urn string) string {
	if i := strings.Index(urn, "!"); i >= 0 {
		return urn[i+1:]
	}
	return ""
}

// SlugFromURNSuffix converts a provision address into the dotted slug form:
// "art121_par2_inc1" becomes "artigo-121.paragrafo-2.inciso-1". The sole
// paragraph is written "par1u" in URNs and "unico" in slugs. The caput
// component carries no number and never appears in slugs.
func SlugFromURNSuffix(suffix string) string {
	var parts []string
	for _, comp := range strings.Split(suffix, "_") {
		m := reURNComponent.FindStringSubmatch(comp)
		if m == nil || m[1] == "cpt" {
			continue
		}
		name, ok := urnTypeNames[m[1]]
		if !ok {
			name = m[1]
		}
		number := m[2]
		if number == "" {
			parts = append(parts, name)
			continue
		}
		if name == "paragrafo" && (number == "1u" || number == "u") {
			number = "unico"
		}
		parts = append(parts, name+"-"+number)
	}
	return strings.Join(parts, ".")
}

// LastComponent splits the final component of a provision address into its
// type token and number: "art121_par2" yields ("par", "2").
func LastComponent(suffix string) (token, number string) {
	comps := strings.Split(suffix, "_")
	last := comps[len(comps)-1]
	m := reURNComponent.FindStringSubmatch(last)
	if m == nil {
		return "", ""
	}
	number = m[2]
	if m[1] == "par" && (number == "1u" || number == "u") {
		number = "unico"
	}
	return m[1], number
}

// ValidateSlug reports whether a source-provided slug agrees with the slug
// derived from the element's URN. URNs without a provision address always
// validate.
func ValidateSlug(urn, slug string) bool {
	expected := SlugFromURNSuffix(ExtractURNSuffix(urn))
	return expected == "" || expected == slug
}
