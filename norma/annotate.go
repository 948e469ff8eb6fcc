package norma

import (
	"regexp"
	"strings"
)

// reAnnotationVocab matches the legislative-action vocabulary that marks a
// parenthesized group as a history annotation: an action word combined with
// the "pel[ao]" preposition naming the amending instrument, or the literal
// "redação dada" / "vide" / "vigência" phrases. Spellings with and without
// accents both match.
var reAnnotationVocab = regexp.MustCompile(
	`(?i)(?:inclu[íi]d|revogad|acrescid|alterad|vetad|suprimi|renumerad)[oa]?.*pel[ao]|reda[çc][ãa]o\s+dad|vide|vig[êe]ncia`,
)

// ExtractAnnotations isolates the trailing run of legislative-history
// parentheticals from text. Every group in the run must carry action
// vocabulary and the run must be contiguous from the very end of the string;
// otherwise the text is returned unchanged with no annotations. Annotations
// come back in left-to-right source order.
func ExtractAnnotations(text string) (clean, original string, annotations []string) {
	if text == "" {
		return "", "", nil
	}

	rest := text
	var groups []string
	for {
		trimmed := strings.TrimRight(rest, " \t\r\n\u00a0")
		if !strings.HasSuffix(trimmed, ")") {
			break
		}
		open := strings.LastIndex(trimmed, "(")
		if open < 0 {
			break
		}
		inner := trimmed[open+1 : len(trimmed)-1]
		if strings.Contains(inner, ")") || !reAnnotationVocab.MatchString(inner) {
			break
		}
		groups = append(groups, strings.TrimSpace(trimmed[open:]))
		rest = trimmed[:open]
	}

	if len(groups) == 0 {
		return text, text, nil
	}

	// groups were collected right to left
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.TrimSpace(rest), text, groups
}
