package verify

import (
	"regexp"
	"strings"
)

// separators matches the characters deleted outright during generic
// normalization: whitespace runs, commas, hyphens, and periods.
var separators = regexp.MustCompile(`[\s,\-.]+`)

// honorifics are stripped before name comparison.
var honorifics = map[string]bool{
	"mr":   true,
	"mrs":  true,
	"ms":   true,
	"dr":   true,
	"prof": true,
	"miss": true,
}

// NormalizeGeneric trims, lower-cases, and deletes whitespace, commas,
// hyphens, and periods entirely. Idempotent: normalizing a normalized value
// is a no-op.
func NormalizeGeneric(value string) string {
	return separators.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "")
}

// NameMatch reports whether every word of the user-provided name appears in
// the document-extracted name, ignoring order, honorifics, and punctuation.
// The document name may contain extra words (middle names); the reverse does
// not hold. Either side empty is never a match.
func NameMatch(userName, docName string) bool {
	userWords := nameWords(userName)
	docWords := nameWords(docName)
	if len(userWords) == 0 || len(docWords) == 0 {
		return false
	}
	for w := range userWords {
		if !docWords[w] {
			return false
		}
	}
	return true
}

var namePunct = strings.NewReplacer(".", " ", ",", " ")

func nameWords(name string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(namePunct.Replace(strings.ToLower(name))) {
		if honorifics[w] {
			continue
		}
		words[w] = true
	}
	return words
}
