package norma

import (
	"regexp"
	"strings"
)

var reLonePunctuation = regexp.MustCompile(`^[\s.,;:\-]+$`)

// ResolveValidity decides revoked/vetoed status from a clause's cleaned text
// and its extracted annotations. A clause with surviving body text is always
// presumed in force; only an empty body (after stripping residual
// punctuation) is judged by its annotation vocabulary:
//
//	added + revoked        -> revoked
//	revoked alone          -> revoked
//	vetoed without upheld  -> vetoed
//	vetoed + upheld        -> in force (veto overridden)
func ResolveValidity(cleanText string, annotations []string) (revoked, vetoed bool) {
	stripped := strings.TrimSpace(cleanText)
	if stripped != "" && !reLonePunctuation.MatchString(stripped) {
		return false, false
	}

	joined := strings.ToLower(strings.Join(annotations, " "))
	hasAdded := strings.Contains(joined, "acrescid")
	hasRevoked := strings.Contains(joined, "revogad")
	hasVetoed := strings.Contains(joined, "vetad")
	hasUpheld := strings.Contains(joined, "mantid")

	switch {
	case hasAdded && hasRevoked:
		return true, false
	case hasRevoked && !hasAdded:
		return true, false
	case hasVetoed && !hasUpheld:
		return false, true
	}
	return false, false
}

// caputRevokedMarker reports whether a caput's raw text carries an explicit
// revocation or veto marker, the only evidence that flips an article's own
// top-level flag.
func caputRevokedMarker(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "(revogad") || strings.Contains(lower, "(vetad")
}
