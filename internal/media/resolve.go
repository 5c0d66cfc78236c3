package media

import (
	"regexp"
	"strings"
)

// ResolveURL turns a stored media reference into a displayable URL.
// Fully-qualified references pass through unchanged, so resolving twice
// is safe; bare keys get the storage origin prefixed.
func ResolveURL(origin, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(ref, "/")
}

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._\-]+`)
	multiDash   = regexp.MustCompile(`-+`)
)

// SafeFileName strips anything that has no business in an S3 object key.
func SafeFileName(name string) string {
	name = strings.TrimSpace(name)
	name = unsafeChars.ReplaceAllString(name, "-")
	name = multiDash.ReplaceAllString(name, "-")
	name = strings.ReplaceAll(name, "-.", ".")
	name = strings.Trim(name, "-.")
	if name == "" {
		return "file"
	}
	return name
}
