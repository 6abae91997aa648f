package utils

import "strings"

// SplitCommaList turns admin form input like "Beach, Sunset Views, Island
// Hopping" into ["Beach","Sunset Views","Island Hopping"]. Entries are
// trimmed and empty segments dropped, so trailing commas or double commas
// never produce blank tags.
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinCommaList is the inverse used when loading a list back into a
// comma-separated form field.
func JoinCommaList(items []string) string {
	return strings.Join(items, ", ")
}
