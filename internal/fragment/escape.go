package fragment

import "net/url"

// Encode escapes a payload or name so it occupies exactly one segment.
// Characters legal in a path segment ("=", "+", ":", "@", "$", "&") stay
// literal; "/" becomes %2F.
func Encode(s string) string {
	return url.PathEscape(s)
}

// Decode reverses Encode. It fails on malformed percent escapes.
func Decode(s string) (string, error) {
	return url.PathUnescape(s)
}
