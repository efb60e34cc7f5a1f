package jobparse

import "regexp"

// Default ages filled in when a category keyword appears without usable
// numbers. Deliberate heuristic carried over from observed notices: the
// common window for central government posts is 18 to 35.
const (
	defaultMinAge = "18"
	defaultMaxAge = "35"
)

var (
	// "Minimum Age: 18 Years, Maximum Age: 27 Years" and variants.
	ageMinMaxRe = regexp.MustCompile(`(?i)min(?:imum)?\s*(?:age)?[^\d\n]{0,15}(\d{1,2})[^\d\n]{0,40}max(?:imum)?\s*(?:age)?[^\d\n]{0,15}(\d{1,2})`)
	// Bare "18 to 27 years" range.
	ageRangeRe = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:to|-|–)\s*(\d{1,2})\s*years`)
)

// ageRules cover category-specific relaxations. Each rule first tries a
// direct range, then a maximum-only form, then falls back to default
// ages when only the keyword is present near age wording.
var ageRules = []struct {
	category  string
	rangeRe   *regexp.Regexp
	maxRe     *regexp.Regexp
	keywordRe *regexp.Regexp
}{
	{
		"General",
		regexp.MustCompile(`(?i)\b(?:general|ur|unreserved)\b[^\d\n]{0,30}(\d{1,2})\s*(?:to|-|–)\s*(\d{1,2})`),
		regexp.MustCompile(`(?i)\b(?:general|ur|unreserved)\b[^\d\n]{0,30}(?:max(?:imum)?[^\d\n]{0,15})?(\d{1,2})\s*years`),
		regexp.MustCompile(`(?i)\b(?:general|unreserved)\b[^\n]{0,40}(?:age|years|relaxation)|(?:age|years|relaxation)[^\n]{0,40}\b(?:general|unreserved)\b`),
	},
	{
		"OBC",
		regexp.MustCompile(`(?i)\bobc\b[^\d\n]{0,30}(\d{1,2})\s*(?:to|-|–)\s*(\d{1,2})`),
		regexp.MustCompile(`(?i)\bobc\b[^\d\n]{0,30}(?:max(?:imum)?[^\d\n]{0,15})?(\d{1,2})\s*years`),
		regexp.MustCompile(`(?i)\bobc\b[^\n]{0,40}(?:age|years|relaxation)|(?:age|years|relaxation)[^\n]{0,40}\bobc\b`),
	},
	{
		"SC/ST",
		regexp.MustCompile(`(?i)\bsc\s*[/,&]\s*st\b[^\d\n]{0,30}(\d{1,2})\s*(?:to|-|–)\s*(\d{1,2})`),
		regexp.MustCompile(`(?i)\bsc\s*[/,&]\s*st\b[^\d\n]{0,30}(?:max(?:imum)?[^\d\n]{0,15})?(\d{1,2})\s*years`),
		regexp.MustCompile(`(?i)\bsc\s*[/,&]\s*st\b[^\n]{0,40}(?:age|years|relaxation)|(?:age|years|relaxation)[^\n]{0,40}\bsc\s*[/,&]\s*st\b`),
	},
	{
		"EWS",
		regexp.MustCompile(`(?i)\bews\b[^\d\n]{0,30}(\d{1,2})\s*(?:to|-|–)\s*(\d{1,2})`),
		regexp.MustCompile(`(?i)\bews\b[^\d\n]{0,30}(?:max(?:imum)?[^\d\n]{0,15})?(\d{1,2})\s*years`),
		regexp.MustCompile(`(?i)\bews\b[^\n]{0,40}(?:age|years|relaxation)|(?:age|years|relaxation)[^\n]{0,40}\bews\b`),
	},
}

// extractAgeLimits reads the age-limit section when present, else the
// whole document. A combined or generic range seeds the General entry;
// category rules then add at most one entry each.
func extractAgeLimits(text string) []AgeEntry {
	scope := scopeOf(text, "Age Limit", "Age Limits", "Age Criteria")

	entries := make([]AgeEntry, 0, 4)
	seen := make(map[string]bool)
	add := func(category, min, max string) {
		if seen[category] {
			return
		}
		seen[category] = true
		entries = append(entries, AgeEntry{Category: category, MinAge: min, MaxAge: max})
	}

	if m := ageMinMaxRe.FindStringSubmatch(scope); m != nil {
		add("General", m[1], m[2])
	} else if m := ageRangeRe.FindStringSubmatch(scope); m != nil {
		add("General", m[1], m[2])
	}

	for _, rule := range ageRules {
		if m := rule.rangeRe.FindStringSubmatch(scope); m != nil {
			add(rule.category, m[1], m[2])
			continue
		}
		if m := rule.maxRe.FindStringSubmatch(scope); m != nil {
			add(rule.category, defaultMinAge, m[1])
			continue
		}
		if rule.keywordRe.MatchString(scope) {
			add(rule.category, defaultMinAge, defaultMaxAge)
		}
	}
	return entries
}
