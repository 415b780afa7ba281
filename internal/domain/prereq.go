package domain

import "regexp"

var keyRefPattern = regexp.MustCompile(`\d{3}:\d{3}`)

// PrereqRefs returns the short "SSS:NNN" course keys embedded in prerequisite
// text, in order of appearance and without duplicates. Long forms such as
// "01:198:111" yield their short form.
func PrereqRefs(text string) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, loc := range keyRefPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isDigit(text[start-1]) {
			continue
		}
		if end < len(text) && isDigit(text[end]) {
			continue
		}
		ref := text[start:end]
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}
	return refs
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
