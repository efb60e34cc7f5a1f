package jobparse

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLocateSection_FirstHeaderWins(t *testing.T) {
	text := "Intro line\nIMPORTANT DATES:\nLast Date: 15/03/2026\nApplication Fee details follow here"

	got := locateSection(text, "Important Dates", "Application Fee")
	if !strings.Contains(got, "Last Date: 15/03/2026") {
		t.Fatalf("expected section after the first header, got %q", got)
	}

	// Variants are tried in priority order; a missing first variant
	// falls through to the next.
	got = locateSection(text, "Dates to Remember", "Important Dates")
	if !strings.Contains(got, "Last Date") {
		t.Fatalf("expected fallthrough to second variant, got %q", got)
	}
}

func TestLocateSection_CaseInsensitive(t *testing.T) {
	text := "application fee: General Rs. 100"
	if got := locateSection(text, "Application Fee"); !strings.Contains(got, "General") {
		t.Fatalf("expected case-insensitive header match, got %q", got)
	}
}

func TestLocateSection_NoHeaderReturnsEmpty(t *testing.T) {
	if got := locateSection("nothing relevant here", "Important Dates"); got != "" {
		t.Fatalf("expected empty section, got %q", got)
	}
}

func TestLocateSection_StopsAtNextSectionMarker(t *testing.T) {
	text := "AGE LIMIT:\n" + strings.Repeat("age details ", 50) + "\nSELECTION PROCESS:\nWritten Exam"

	got := locateSection(text, "Age Limit")
	if strings.Contains(got, "Written Exam") {
		t.Fatalf("expected section to stop before the next header, got %q", got)
	}
	if !strings.Contains(got, "age details") {
		t.Fatalf("expected section body, got %q", got)
	}
}

func TestLocateSection_CappedAt1500(t *testing.T) {
	text := "VACANCY DETAILS:" + strings.Repeat("x", 3000)
	if got := locateSection(text, "Vacancy Details"); len(got) > maxSectionLen {
		t.Fatalf("section length %d exceeds cap %d", len(got), maxSectionLen)
	}
}

func TestLocateSection_MarkerInsideMinimumWindowIgnored(t *testing.T) {
	// A marker 40 chars in must not shrink the section below the
	// minimum window.
	text := "FEE DETAILS:\nGeneral Rs 100\nLATE FEE APPLIES\n" + strings.Repeat("more fee text ", 60)

	got := locateSection(text, "Fee Details")
	if len(got) < minSectionLen {
		t.Fatalf("expected at least %d chars, got %d", minSectionLen, len(got))
	}
}

func TestLocateSection_NonASCIIPrefix(t *testing.T) {
	// ToLower is not length-preserving for these runes; header offsets
	// must come from the original text.
	for _, prefix := range []string{
		strings.Repeat("Ⱥ", 300), // Ⱥ grows when lowered
		strings.Repeat("İ", 600), // İ shrinks when lowered
	} {
		text := prefix + "\nAge Limit: 18 to 27 years"
		got := locateSection(text, "Age Limit")
		if !strings.Contains(got, "18 to 27 years") {
			t.Fatalf("expected section body after non-ASCII prefix, got %q", got)
		}
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	s := strings.Repeat("ग", 10) // 3 bytes per rune
	got := truncate(s, 7)
	if len(got) > 7 {
		t.Fatalf("truncate returned %d bytes, want at most 7", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncate split a rune: %q", got)
	}
	if got != strings.Repeat("ग", 2) {
		t.Fatalf("got %q, want two full runes", got)
	}
}

func TestScopeOf_FallsBackToDocument(t *testing.T) {
	text := "no headers anywhere, just prose"
	if got := scopeOf(text, "Important Dates"); got != text {
		t.Fatalf("expected whole-document fallback, got %q", got)
	}
}
