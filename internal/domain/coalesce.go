package domain

import "strings"

// CoalesceStr returns the first non-blank value, trimmed.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
