package jobparse

import (
	"regexp"
	"strings"
)

var (
	// Aggregate figure, always searched in the full document regardless
	// of whether a vacancy section was found.
	totalPostsRe = regexp.MustCompile(`(?i)total\s+(?:no\.?\s*(?:of)?\s*)?(?:posts?|vacanc(?:y|ies))[^\d\n]{0,15}(\d[\d,]*)`)

	// One post-wise row: role words, a separator, and a digits-only
	// count to the end of the line. Role words optionally end in a
	// known post-title keyword.
	vacancyLineRe = regexp.MustCompile(`(?i)^\s*([A-Za-z][A-Za-z .&()/-]{2,60}?(?:constable|officer|clerk|assistant|manager|engineer|teacher|inspector)?)\s*[:\-–—]\s*(\d[\d,]*)\s*(?:posts?)?\s*$`)

	// Fallback post name for a synthesized aggregate-only entry.
	roleFromTitleRe = regexp.MustCompile(`(?i)(?:recruitment|notification|online\s+form)\s+(?:for|of)\s+([A-Za-z][A-Za-z0-9 &/-]{3,60})`)
)

// extractVacancies scans the vacancy section (else the whole document)
// line by line for post-wise rows. When the scan yields nothing but the
// document states an aggregate total, a single synthesized entry carries
// that total.
func extractVacancies(text string) []VacancyEntry {
	scope := scopeOf(text, "Vacancy Details", "Post Wise Vacancy", "Post Details", "Total Post")

	entries := make([]VacancyEntry, 0, 8)
	seen := make(map[string]bool)
	for _, line := range strings.Split(scope, "\n") {
		m := vacancyLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		role := strings.TrimSpace(m[1])
		if len(role) <= 3 {
			continue
		}
		// Aggregate-looking rows belong to totalPostsRe, not the table.
		if strings.Contains(strings.ToLower(role), "total") {
			continue
		}
		key := strings.ToLower(role)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, VacancyEntry{
			PostName:  role,
			TotalPost: strings.ReplaceAll(m[2], ",", ""),
		})
	}
	if len(entries) > 0 {
		return entries
	}

	// No table rows: fall back to the whole-document aggregate.
	m := totalPostsRe.FindStringSubmatch(text)
	if m == nil {
		return entries
	}
	post := defaultPostName
	if rm := roleFromTitleRe.FindStringSubmatch(text); rm != nil {
		post = strings.TrimSpace(rm[1])
	}
	return append(entries, VacancyEntry{
		PostName:  post,
		TotalPost: strings.ReplaceAll(m[1], ",", ""),
	})
}
