package jobparse

import "testing"

func findAge(entries []AgeEntry, category string) (AgeEntry, bool) {
	for _, e := range entries {
		if e.Category == category {
			return e, true
		}
	}
	return AgeEntry{}, false
}

func TestExtractAgeLimits_MinMaxSeedsGeneral(t *testing.T) {
	got := extractAgeLimits("Age Limit: Minimum Age 18 Years, Maximum Age 27 Years")

	e, ok := findAge(got, "General")
	if !ok {
		t.Fatalf("missing General entry in %v", got)
	}
	if e.MinAge != "18" || e.MaxAge != "27" {
		t.Fatalf("got %s-%s, want 18-27", e.MinAge, e.MaxAge)
	}
}

func TestExtractAgeLimits_GenericRange(t *testing.T) {
	got := extractAgeLimits("Age Limit: 18 to 27 years as on 01/01/2026")

	e, ok := findAge(got, "General")
	if !ok {
		t.Fatalf("missing General entry in %v", got)
	}
	if e.MinAge != "18" || e.MaxAge != "27" {
		t.Fatalf("got %s-%s, want 18-27", e.MinAge, e.MaxAge)
	}
}

func TestExtractAgeLimits_MaxOnlyDefaultsMinimum(t *testing.T) {
	got := extractAgeLimits("Age Limit: OBC Maximum 33 Years")

	e, ok := findAge(got, "OBC")
	if !ok {
		t.Fatalf("missing OBC entry in %v", got)
	}
	if e.MinAge != "18" || e.MaxAge != "33" {
		t.Fatalf("got %s-%s, want 18-33", e.MinAge, e.MaxAge)
	}
}

// The 18/35 fill-in when a category appears near age wording without any
// digits is a documented heuristic carried over from common notices, not
// a correctness guarantee.
func TestExtractAgeLimits_KeywordOnlyDefaultFill(t *testing.T) {
	got := extractAgeLimits("Age Limit: age relaxation for SC/ST as per government rules")

	e, ok := findAge(got, "SC/ST")
	if !ok {
		t.Fatalf("missing SC/ST entry in %v", got)
	}
	if e.MinAge != "18" || e.MaxAge != "35" {
		t.Fatalf("got %s-%s, want default 18-35", e.MinAge, e.MaxAge)
	}
}

func TestExtractAgeLimits_NoDuplicateCategory(t *testing.T) {
	got := extractAgeLimits("Age Limit: 18 to 27 years. General category 18 to 27 years.")

	count := 0
	for _, e := range got {
		if e.Category == "General" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one General entry, got %v", got)
	}
}
