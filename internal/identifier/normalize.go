// Package identifier normalizes donation account identifiers so lookups,
// cache keys, and stored registry rows all agree on one canonical form.
package identifier

import "strings"

// Normalize reduces an identifier to lowercase digits and letters. Dashes,
// spaces, and other separator noise vary wildly between bank statements,
// QR payloads, and hand-typed input; everything compares in this form.
func Normalize(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
