package jobparse

import "regexp"

var (
	// Height rows usually carry the male figure first and the female
	// figure, when stated, later on the same stretch of text.
	physHeightRe = regexp.MustCompile(`(?i)height[^\n\d]{0,40}(\d{3}(?:\.\d+)?)\s*cms?(?:[^\n\d]{0,40}(\d{3}(?:\.\d+)?)\s*cms?)?`)
	// Chest is stated as an unexpanded-expanded range, male only.
	physChestRe = regexp.MustCompile(`(?i)chest[^\n\d]{0,40}(\d{2,3})\s*[-–]\s*(\d{2,3})\s*cms?`)
	// Weight in kilograms, male only.
	physWeightRe = regexp.MustCompile(`(?i)weight[^\n\d]{0,40}(\d{2,3})\s*kgs?`)
)

// extractPhysical reads physical standards only from an explicitly
// located section. Unlike every other extractor there is no
// whole-document fallback: a stray "Height: 170 cm" in unrelated prose
// must not fabricate a physical-standards table. The asymmetry is
// deliberate and covered by tests.
func extractPhysical(text string) []PhysicalEntry {
	section := locateSection(text, "Physical Eligibility", "Physical Standard", "Physical Test")
	if section == "" {
		return []PhysicalEntry{}
	}

	entries := make([]PhysicalEntry, 0, 3)
	if m := physHeightRe.FindStringSubmatch(section); m != nil {
		female := "NA"
		if m[2] != "" {
			female = m[2] + " cm"
		}
		entries = append(entries, PhysicalEntry{Criteria: "Height", Male: m[1] + " cm", Female: female})
	}
	if m := physChestRe.FindStringSubmatch(section); m != nil {
		entries = append(entries, PhysicalEntry{Criteria: "Chest", Male: m[1] + "-" + m[2] + " cm", Female: "NA"})
	}
	if m := physWeightRe.FindStringSubmatch(section); m != nil {
		entries = append(entries, PhysicalEntry{Criteria: "Weight", Male: m[1] + " kg", Female: "NA"})
	}
	return entries
}
