package taxonomy

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Slugify converts arbitrary text to a URL-safe token: lowercase, every run
// of characters outside [a-z0-9] collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Idempotent; empty or all-punctuation input
// yields "" and callers must reject that before using it as a key.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// ValidSlug reports whether s is an acceptable user-chosen slug:
// lowercase ASCII letters, digits, and hyphens, non-empty.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
