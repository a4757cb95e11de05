// Package sanitize normalises user-supplied labels for use in generated files.
package sanitize

import "strings"

// ForHookName lower-cases a hook name and joins its whitespace-separated
// words with single underscores. Leading and trailing whitespace is dropped,
// so a name made only of whitespace sanitizes to "". Applying it to its own
// output returns the same string.
func ForHookName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}
