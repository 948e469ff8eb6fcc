package norma

import "testing"

func TestArticleLabel(t *testing.T) {
	cases := []struct {
		number string
		label  string
	}{
		{"1", "Art. 1º"},
		{"9", "Art. 9º"},
		{"10", "Art. 10"},
		{"121", "Art. 121"},
		{"2-A", "Art. 2º-A"},
		{"121-B", "Art. 121-B"},
		{"1.210", "Art. 1.210"},
	}

	for _, tc := range cases {
		t.Run(tc.number, func(t *testing.T) {
			if got := ArticleLabel(tc.number); got != tc.label {
				t.Errorf("INVALID LABEL:\nGOT:%s\nEXPECTED:%s", got, tc.label)
			}
		})
	}
}

func TestParagraphLabel(t *testing.T) {
	cases := []struct {
		number string
		label  string
	}{
		{"1", "§ 1º"},
		{"2", "§ 2º"},
		{"10", "§ 10"},
		{"12", "§ 12"},
		{"2-A", "§ 2º-A"},
		{"unico", "Parágrafo único"},
	}

	for _, tc := range cases {
		t.Run(tc.number, func(t *testing.T) {
			if got := ParagraphLabel(tc.number); got != tc.label {
				t.Errorf("INVALID LABEL:\nGOT:%s\nEXPECTED:%s", got, tc.label)
			}
		})
	}
}

func TestRomanConversion(t *testing.T) {
	if got := RomanToArabic("IV"); got != "4" {
		t.Errorf("INVALID ARABIC:\nGOT:%s\nEXPECTED:4", got)
	}
	if got := RomanToArabic("xviii"); got != "18" {
		t.Errorf("INVALID ARABIC:\nGOT:%s\nEXPECTED:18", got)
	}
	if got := ArabicToRoman("9"); got != "IX" {
		t.Errorf("INVALID ROMAN:\nGOT:%s\nEXPECTED:IX", got)
	}
	// unknown values pass through
	if got := RomanToArabic("XXXV"); got != "xxxv" {
		t.Errorf("INVALID PASSTHROUGH:\nGOT:%s\nEXPECTED:xxxv", got)
	}
}

func TestOrderKey(t *testing.T) {
	cases := []struct {
		number string
		key    float64
	}{
		{"121", 121},
		{"121-A", 121.001},
		{"121-B", 121.002},
		{"122", 122},
		{"1.210", 1210},
		{"5º", 5},
	}

	for _, tc := range cases {
		t.Run(tc.number, func(t *testing.T) {
			if got := OrderKey(tc.number); got != tc.key {
				t.Errorf("INVALID KEY:\nGOT:%v\nEXPECTED:%v", got, tc.key)
			}
		})
	}

	// amendment suffixes sort between their neighbors
	seq := []string{"121", "121-A", "121-B", "122"}
	for i := 1; i < len(seq); i++ {
		if OrderKey(seq[i-1]) >= OrderKey(seq[i]) {
			t.Errorf("order keys not increasing: %s >= %s", seq[i-1], seq[i])
		}
	}
}
