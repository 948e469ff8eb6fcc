package norma

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reArticleNumber   = regexp.MustCompile(`^(\d+)(-[A-Za-z])?$`)
	reParagraphNumber = regexp.MustCompile(`^(\d+)(-.+)?$`)
	reOrderNumber     = regexp.MustCompile(`^(\d+)(.*)$`)
)

// ArticleLabel renders the canonical article label: ordinal marker for 1-9,
// bare cardinal from 10 up, hyphenated amendment suffix appended unchanged.
func ArticleLabel(number string) string {
	m := reArticleNumber.FindStringSubmatch(number)
	if m == nil {
		return "Art. " + number
	}
	base, _ := strconv.Atoi(m[1])
	if base <= 9 {
		return fmt.Sprintf("Art. %dº%s", base, m[2])
	}
	return fmt.Sprintf("Art. %d%s", base, m[2])
}

// ParagraphLabel renders the canonical paragraph label, special-casing the
// sole-paragraph marker.
func ParagraphLabel(number string) string {
	if number == "unico" {
		return "Parágrafo único"
	}
	m := reParagraphNumber.FindStringSubmatch(number)
	if m == nil {
		return "§ " + number
	}
	base, _ := strconv.Atoi(m[1])
	if base <= 9 {
		return fmt.Sprintf("§ %dº%s", base, m[2])
	}
	return fmt.Sprintf("§ %d%s", base, m[2])
}

var romanArabic = map[string]string{
	"I": "1", "II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9", "X": "10",
	"XI": "11", "XII": "12", "XIII": "13", "XIV": "14", "XV": "15",
	"XVI": "16", "XVII": "17", "XVIII": "18", "XIX": "19", "XX": "20",
}

// RomanToArabic converts the roman numerals used by inciso numbering.
// Unknown values pass through lowercased.
func RomanToArabic(roman string) string {
	if n, ok := romanArabic[strings.ToUpper(roman)]; ok {
		return n
	}
	return strings.ToLower(roman)
}

var arabicRoman = func() map[string]string {
	m := make(map[string]string, len(romanArabic))
	for roman, arabic := range romanArabic {
		m[arabic] = roman
	}
	return m
}()

// ArabicToRoman is the inverse of RomanToArabic, for sources that address
// incisos by arabic number. Unknown values pass through unchanged.
func ArabicToRoman(arabic string) string {
	if r, ok := arabicRoman[arabic]; ok {
		return r
	}
	return arabic
}

// OrderKey derives a sort key that places amendment suffixes between base
// numbers: "121" < "121-A" < "121-B" < "122". The suffix is encoded as a
// fractional offset (A=1 ... Z=26, over 1000).
func OrderKey(number string) float64 {
	clean := strings.ReplaceAll(number, ".", "")
	m := reOrderNumber.FindStringSubmatch(clean)
	if m == nil {
		return 0
	}
	base, _ := strconv.ParseFloat(m[1], 64)

	suffix := strings.TrimSpace(m[2])
	suffix = strings.ToUpper(suffix)
	suffix = strings.NewReplacer("-", "", "º", "", "°", "").Replace(suffix)
	if suffix == "" {
		return base
	}

	var val int
	switch {
	case len(suffix) == 1 && suffix[0] >= 'A' && suffix[0] <= 'Z':
		val = int(suffix[0]-'A') + 1
	case isDigits(suffix):
		val, _ = strconv.Atoi(suffix)
	default:
		val = 999
	}
	return base + float64(val)/1000.0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
