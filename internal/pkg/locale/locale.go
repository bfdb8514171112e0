// Package locale resolves the /{locale}/... prefix every storefront page lives under.
// It is shared by the edge middleware (redirects) and page rendering (text direction,
// language switcher), so the locale is detected in exactly one place.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported language tag used as the first path segment.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"

	Default = English
)

var supported = []Locale{English, Arabic}

// excludedPrefixes are first path segments that never carry a locale:
// API/GraphQL endpoints, static assets and operational endpoints.
var excludedPrefixes = map[string]struct{}{
	"api":     {},
	"graphql": {},
	"static":  {},
	"assets":  {},
	"uploads": {},
	"metrics": {},
	"healthz": {},
}

var rtlBases = func() map[language.Base]struct{} {
	m := make(map[language.Base]struct{})
	for _, t := range []language.Tag{language.Arabic, language.Hebrew, language.Persian, language.Urdu} {
		b, _ := t.Base()
		m[b] = struct{}{}
	}
	return m
}()

// Supported returns the supported locales, default first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse matches a path segment against the supported set. Matching is exact:
// "EN" or "en-US" are not locale prefixes.
func Parse(segment string) (Locale, bool) {
	for _, l := range supported {
		if string(l) == segment {
			return l, true
		}
	}
	return "", false
}

func (l Locale) String() string { return string(l) }

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

// Direction is "rtl" for right-to-left scripts and "ltr" otherwise.
func (l Locale) Direction() string {
	base, _ := l.Tag().Base()
	if _, ok := rtlBases[base]; ok {
		return "rtl"
	}
	return "ltr"
}

// IsRTL reports whether the locale renders right-to-left.
func (l Locale) IsRTL() bool { return l.Direction() == "rtl" }

// Other returns the next supported locale, which is what the two-language switcher toggles to.
func (l Locale) Other() Locale {
	for i, s := range supported {
		if s == l {
			return supported[(i+1)%len(supported)]
		}
	}
	return Default
}

// Resolution is the outcome of resolving one request path.
type Resolution struct {
	Locale   Locale
	Redirect string
	Excluded bool
}

// PassThrough reports whether the request proceeds unchanged.
func (r Resolution) PassThrough() bool { return r.Redirect == "" }

// Resolve decides the locale for path. Paths that already start with a
// supported locale, and excluded paths, pass through. Anything else is
// redirected to the same path under the default locale, keeping rawQuery.
// Resolving the redirect target again is always a pass-through.
func Resolve(path, rawQuery string) Resolution {
	if path == "" {
		path = "/"
	}
	if Excluded(path) {
		return Resolution{Locale: Default, Excluded: true}
	}
	if l, ok := Parse(firstSegment(path)); ok {
		return Resolution{Locale: l}
	}

	target := "/" + string(Default) + ensureLeadingSlash(path)
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return Resolution{Locale: Default, Redirect: target}
}

// Excluded reports whether path must never be rewritten.
func Excluded(path string) bool {
	if _, ok := excludedPrefixes[firstSegment(path)]; ok {
		return true
	}
	return strings.Contains(path, ".")
}

// FromPath returns the locale of path, or Default when it has none.
func FromPath(path string) Locale {
	if l, ok := Parse(firstSegment(path)); ok {
		return l
	}
	return Default
}

// Path builds a locale-prefixed link for an application route such as "/login".
func Path(l Locale, route string) string {
	if _, ok := Parse(string(l)); !ok {
		l = Default
	}
	route = ensureLeadingSlash(route)
	if route == "/" {
		return "/" + string(l) + "/"
	}
	return "/" + string(l) + route
}

// Switch rewrites the locale segment of path to the given locale. A path without
// a locale gets one inserted.
func Switch(path string, to Locale) string {
	if _, ok := Parse(string(to)); !ok {
		to = Default
	}
	path = ensureLeadingSlash(path)
	seg := firstSegment(path)
	if _, ok := Parse(seg); !ok {
		return Path(to, path)
	}
	rest := strings.TrimPrefix(path, "/"+seg)
	if rest == "" {
		rest = "/"
	}
	return "/" + string(to) + rest
}

func firstSegment(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

func ensureLeadingSlash(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
