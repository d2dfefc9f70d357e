package message

import "regexp"

// URLValidator reports whether s is an acceptable URL. It must return false
// for empty or malformed input rather than panic.
type URLValidator func(s string) bool

// space matches the same characters as an ECMAScript \s: RE2's ASCII \s plus
// vertical tab, every Unicode separator and the byte order mark.
const (
	space    = `\s\x{0B}\p{Z}\x{FEFF}`
	nonSpace = `[^` + space + `]`
)

var (
	reProtocolAndDomain = regexp.MustCompile(`^(?:\w+:)?//(` + nonSpace + `+)$`)
	reLocalhostDomain   = regexp.MustCompile(`^localhost[:?\d]*(?:[^:?\d]` + nonSpace + `*)?$`)
	reDomain            = regexp.MustCompile(`^[^` + space + `.]+\.` + nonSpace + `{2,}$`)
)

// IsURL is the default URLValidator. It accepts an optional "scheme:" prefix
// followed by "//" and either a localhost host (with optional port) or a
// dotted host name. Protocol-relative URLs ("//example.com") are accepted.
func IsURL(s string) bool {
	m := reProtocolAndDomain.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return false
	}
	rest := m[1]
	return reLocalhostDomain.MatchString(rest) || reDomain.MatchString(rest)
}
