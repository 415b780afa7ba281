package domain

import (
	"strings"
	"unicode"
)

// KeyWidth is the zero-padded width of both halves of a course key.
const KeyWidth = 3

// SplitKey splits "198:111" into subject and number.
func SplitKey(key string) (subject, number string, ok bool) {
	parts := strings.Split(strings.TrimSpace(key), ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// NormalizeKey re-pads a two-part "subject:number" key to the catalog width.
// Anything else is returned trimmed and unchanged.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	subject, number, ok := SplitKey(key)
	if !ok {
		return key
	}
	return padLeft(subject) + ":" + padLeft(number)
}

// ValidKey reports whether key is a padded "SSS:NNN" key with digit subject
// and a number made of digits (letter suffixes like "101H" are allowed).
func ValidKey(key string) bool {
	subject, number, ok := SplitKey(key)
	if !ok || len(subject) != KeyWidth || len(number) < KeyWidth {
		return false
	}
	for _, r := range subject {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	for _, r := range number[:KeyWidth] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// PadSubject pads a bare subject code such as "14" to "014".
func PadSubject(subject string) string {
	return padLeft(strings.TrimSpace(subject))
}

func padLeft(s string) string {
	if len(s) >= KeyWidth {
		return s
	}
	return strings.Repeat("0", KeyWidth-len(s)) + s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// KeySet is a set of normalized course keys.
type KeySet map[string]struct{}

// NewKeySet normalizes and collects keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s KeySet) Add(key string) {
	s[NormalizeKey(key)] = struct{}{}
}

func (s KeySet) Has(key string) bool {
	_, ok := s[NormalizeKey(key)]
	return ok
}
