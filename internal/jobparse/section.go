package jobparse

import (
	"regexp"
	"sync"
	"unicode/utf8"
)

// Section bounds. A located section never exceeds maxSectionLen; when no
// next-section marker is found within minSectionLen the section keeps at
// least that much, up to the cap.
const (
	maxSectionLen = 1500
	minSectionLen = 500
)

// nextSectionRe marks the start of the following section: a line opening
// with a run of uppercase letters (spaces allowed between words) at least
// six characters long, terminated by a colon or the end of the line.
var nextSectionRe = regexp.MustCompile(`\n\s*[A-Z][A-Z /&()-]{4,}[A-Z]\s*(?::|\r?\n)`)

// headerRes caches one case-insensitive matcher per header phrase.
var headerRes sync.Map

func headerRe(h string) *regexp.Regexp {
	if v, ok := headerRes.Load(h); ok {
		return v.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(h))
	headerRes.Store(h, re)
	return re
}

// locateSection finds the best-matching bounded substring following the
// first header phrase present in text. Header variants are tried in the
// given priority order and the first case-insensitive hit wins; later
// variants are never consulted. Matching runs over the original text so
// byte offsets stay valid on non-ASCII input. Returns "" when no variant
// occurs, in which case callers fall back to the whole document.
func locateSection(text string, headerVariants ...string) string {
	for _, h := range headerVariants {
		m := headerRe(h).FindStringIndex(text)
		if m == nil {
			continue
		}
		body := truncate(text[m[1]:], maxSectionLen)
		// Markers inside the minimum window are ignored so that short
		// sections are not trimmed down to almost nothing.
		if len(body) > minSectionLen {
			if loc := nextSectionRe.FindStringIndex(body[minSectionLen:]); loc != nil {
				body = body[:minSectionLen+loc[0]]
			}
		}
		return body
	}
	return ""
}

// scopeOf implements the fallback chain shared by the field extractors:
// the located section when any header variant matches, else the whole
// document.
func scopeOf(text string, headerVariants ...string) string {
	if s := locateSection(text, headerVariants...); s != "" {
		return s
	}
	return text
}

// truncate cuts s to at most n bytes, backing up so the cut never lands
// inside a multibyte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
