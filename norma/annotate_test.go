package norma

import "testing"

func TestExtractAnnotations(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		clean       string
		annotations []string
	}{
		{
			name:        "single amendment note",
			text:        "Matar alguém: (Redação dada pela Lei nº 12.015, de 2009)",
			clean:       "Matar alguém:",
			annotations: []string{"(Redação dada pela Lei nº 12.015, de 2009)"},
		},
		{
			name:  "two stacked notes keep document order",
			text:  "Subtrair coisa alheia móvel. (Incluído pela Lei nº 9.777, de 1998) (Vide Lei nº 10.446, de 2002)",
			clean: "Subtrair coisa alheia móvel.",
			annotations: []string{
				"(Incluído pela Lei nº 9.777, de 1998)",
				"(Vide Lei nº 10.446, de 2002)",
			},
		},
		{
			name:        "revoked clause leaves empty body",
			text:        "(Revogado pela Lei nº 11.106, de 2005)",
			clean:       "",
			annotations: []string{"(Revogado pela Lei nº 11.106, de 2005)"},
		},
		{
			name:  "legal reference parentheses are body text",
			text:  "Aplica-se o disposto no artigo anterior (art. 121, § 2º).",
			clean: "Aplica-se o disposto no artigo anterior (art. 121, § 2º).",
		},
		{
			name:  "mid-sentence note is not trailing",
			text:  "O prazo (Redação dada pela Lei nº 1, de 1990) corre da citação.",
			clean: "O prazo (Redação dada pela Lei nº 1, de 1990) corre da citação.",
		},
		{
			name:  "empty input",
			text:  "",
			clean: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clean, original, annotations := ExtractAnnotations(tc.text)
			if clean != tc.clean {
				t.Errorf("INVALID CLEAN TEXT:\nGOT:%q\nEXPECTED:%q", clean, tc.clean)
			}
			if original != tc.text {
				t.Errorf("INVALID ORIGINAL:\nGOT:%q\nEXPECTED:%q", original, tc.text)
			}
			if len(annotations) != len(tc.annotations) {
				t.Fatalf("INVALID ANNOTATIONS:\nGOT:%v\nEXPECTED:%v", annotations, tc.annotations)
			}
			for i, a := range annotations {
				if a != tc.annotations[i] {
					t.Errorf("INVALID ANNOTATION(%d):\nGOT:%q\nEXPECTED:%q", i, a, tc.annotations[i])
				}
			}
		})
	}
}

func TestExtractAnnotationsIdempotent(t *testing.T) {
	text := "Matar alguém: (Redação dada pela Lei nº 12.015, de 2009)"
	clean, _, _ := ExtractAnnotations(text)
	again, _, annotations := ExtractAnnotations(clean)
	if again != clean {
		t.Errorf("INVALID SECOND PASS:\nGOT:%q\nEXPECTED:%q", again, clean)
	}
	if len(annotations) != 0 {
		t.Errorf("second pass extracted %v from clean text", annotations)
	}
}
