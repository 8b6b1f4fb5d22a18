// Package tags converts course tag lists to and from the comma-joined column
// the stores persist.
package tags

import "strings"

const separator = ","

// Join returns the stored form of tags. Blank entries are dropped.
func Join(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, separator)
}

// Split parses a stored tag column. Entries are trimmed and empties dropped,
// so Split("") returns an empty, non-nil slice.
func Split(stored string) []string {
	out := []string{}
	for _, t := range strings.Split(stored, separator) {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
