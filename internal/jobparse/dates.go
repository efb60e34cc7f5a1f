package jobparse

import (
	"regexp"
	"strings"
)

// dateValue matches the date forms seen across notifications: numeric
// (15/03/2026, 15-03-2026), day-month-name (15 March 2026, 15th Mar 2026)
// and month-first (March 15, 2026). The matched substring is stored
// verbatim; no reformatting happens anywhere downstream.
const dateValue = `(?:\d{1,2}(?:st|nd|rd|th)?[-/. ]\s*(?:\d{1,2}|[A-Za-z]+)[-/. ,]\s*\d{2,4}|[A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`

var dateValueRe = regexp.MustCompile(dateValue)

// dateTemplates are the fixed label-bound patterns, tried in priority
// order with at most one entry per label.
var dateTemplates = []struct {
	label string
	re    *regexp.Regexp
}{
	{"Application Start", regexp.MustCompile(`(?i)(?:application\s+(?:start|begin)|apply\s+online\s+(?:start|from)|online\s+(?:application|apply)\s+(?:start|begin)|registration\s+(?:start|begin)|start(?:ing)?\s+date)(?:s)?[^\d\n]{0,30}(` + dateValue + `)`)},
	{"Last Date", regexp.MustCompile(`(?i)last\s+date(?:\s+(?:to|for|of)\s+[a-z ]{1,30})?[^\d\n]{0,20}(` + dateValue + `)`)},
	{"Late Fee Date", regexp.MustCompile(`(?i)(?:late\s+fee|with\s+late\s+fee)[^\d\n]{0,30}(` + dateValue + `)`)},
	{"Exam Date", regexp.MustCompile(`(?i)exam(?:ination)?\s+date(?:s)?[^\d\n]{0,20}(` + dateValue + `)`)},
	{"Admit Card", regexp.MustCompile(`(?i)admit\s+card[^\d\n]{0,40}(` + dateValue + `)`)},
	{"Result Date", regexp.MustCompile(`(?i)result[^\d\n]{0,40}(` + dateValue + `)`)},
	{"Fee Payment Last Date", regexp.MustCompile(`(?i)(?:fee\s+payment|payment\s+of\s+(?:exam\s+)?fee|pay\s+exam\s+fee)[^\d\n]{0,30}(` + dateValue + `)`)},
}

// genericDateLineRe picks up "label: value" lines the fixed templates
// missed. The label is bounded to keep prose sentences out.
var genericDateLineRe = regexp.MustCompile(`(?m)^\s*([^:\n]{4,49}?)\s*[:\-]\s*(` + dateValue + `)\s*$`)

// extractDates collects labelled dates from the important-dates section
// when one exists, else from the whole document.
func extractDates(text string) []DateEntry {
	scope := scopeOf(text, "Important Dates", "Important Date", "Important Links & Dates", "Dates to Remember")

	entries := make([]DateEntry, 0, len(dateTemplates))
	seen := make(map[string]bool)
	for _, tpl := range dateTemplates {
		m := tpl.re.FindStringSubmatch(scope)
		if m == nil {
			continue
		}
		key := strings.ToLower(tpl.label)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, DateEntry{Label: tpl.label, Date: m[1]})
	}

	// Generic scan in source line order for labels the templates do not
	// know about.
	for _, m := range genericDateLineRe.FindAllStringSubmatch(scope, -1) {
		label := strings.TrimSpace(m[1])
		if len(label) < 4 {
			continue
		}
		key := strings.ToLower(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, DateEntry{Label: label, Date: m[2]})
	}
	return entries
}
