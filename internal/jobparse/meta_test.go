package jobparse

import "testing"

func TestExtractTitle_EarlyLineWithKeyword(t *testing.T) {
	text := "SSC MTS Recruitment 2026\nStaff Selection Commission\nApply online before the last date."

	if got := extractTitle(text); got != "SSC MTS Recruitment 2026" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTitle_StripsMarkdownEmphasis(t *testing.T) {
	text := "**UP Police Bharti 2026**\nmore text follows"

	if got := extractTitle(text); got != "UP Police Bharti 2026" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTitle_FirstLineFallback(t *testing.T) {
	text := "An unremarkable heading\nwith ordinary prose below"

	if got := extractTitle(text); got != "An unremarkable heading" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTitle_EmptyDocumentDefault(t *testing.T) {
	if got := extractTitle(""); got != defaultTitle {
		t.Fatalf("got %q, want %q", got, defaultTitle)
	}
}

func TestExtractDepartment(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"explicit label", "Organization: Union Public Service Commission\nmore text", "Union Public Service Commission"},
		{"bare name", "Applications invited. Staff Selection Commission will conduct the exam.", "Staff Selection Commission"},
		{"railway suffix", "North Western Railway announces apprentice intake", "North Western Railway"},
		{"default", "no issuing body is named anywhere in this text", defaultDepartment},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := extractDepartment(c.text); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestExtractQualification_PrefersSection(t *testing.T) {
	text := "Educational Qualification: Bachelor Degree in any stream from a recognized university"

	got := extractQualification(text)
	if got != "Bachelor Degree in any stream from a recognized university" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractQualification_KeywordJoin(t *testing.T) {
	got := extractQualification("Candidates must have passed 10th or 12th class board exams with good marks to apply for this post")

	if got != "10th, 12th" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractQualification_NoneFound(t *testing.T) {
	if got := extractQualification("completely unrelated announcement text with nothing in it"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestExtractState(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"list order wins", "open to candidates from Bihar and Uttar Pradesh", "Uttar Pradesh"},
		{"abbreviation UP", "UP Police Constable notice", "Uttar Pradesh"},
		{"abbreviation MP", "vacancies in MP government schools", "Madhya Pradesh"},
		{"all india", "recruitment under the central government", "All India"},
		{"absent", "no location is mentioned in this notice", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := extractState(c.text); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}
