package jobparse

import (
	"regexp"
	"strings"
)

// Title extraction. Candidate lines are the first few non-blank lines of
// the document; release titles nearly always sit at the top.
const titleScanLines = 10

var (
	titleKeywords = []string{"recruitment", "notification", "online form", "vacancy", "bharti"}

	// Document-wide fallback: "Recruitment for <post> 2026" style.
	titlePhraseRe = regexp.MustCompile(`(?i)\b(?:[A-Za-z0-9 .&()-]{0,60}?(?:recruitment|notification|online\s+form)(?:\s+(?:for|of)\s+[A-Za-z0-9 .&/-]{3,60}?)?(?:\s+\d{4})?)(?:[.\n]|$)`)

	markdownStripper = strings.NewReplacer("*", "", "_", "", "#", "", "`", "", "~", "")
)

// extractTitle returns the notification title: the first early line that
// mentions a release keyword, else a document-wide phrase match, else
// the first non-blank line, else a fixed default.
func extractTitle(text string) string {
	lines := nonBlankLines(text, titleScanLines)
	for _, line := range lines {
		if len(line) >= 150 {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) {
				return strings.TrimSpace(markdownStripper.Replace(line))
			}
		}
	}
	if m := titlePhraseRe.FindString(text); m != "" {
		return strings.TrimSpace(strings.TrimRight(m, ".\n"))
	}
	if len(lines) > 0 {
		first := truncate(lines[0], 100)
		return strings.TrimSpace(first)
	}
	return defaultTitle
}

func nonBlankLines(text string, max int) []string {
	out := make([]string, 0, max)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == max {
			break
		}
	}
	return out
}

// Department extraction: an explicit label wins, else a bare name ending
// in an organization word, else the fixed default.
var departmentRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:organi[sz]ation|department|ministry|commission|board|corporation)\s*(?:name)?\s*[:\-]\s*([^\n.]{3,100})`),
	regexp.MustCompile(`([A-Z][A-Za-z&()' ]{2,80}?(?:Commission|Board|Ministry|Department|Corporation|Police|Railway|Bank))\b`),
}

func extractDepartment(text string) string {
	for _, re := range departmentRules {
		if m := re.FindStringSubmatch(text); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}
	return defaultDepartment
}

// Qualification extraction. The located section is preferred when it has
// enough substance; otherwise canonical keyword hits are joined.
const (
	qualificationMinSection = 20
	qualificationMaxLen     = 500
)

var qualificationRules = []struct {
	label string
	re    *regexp.Regexp
}{
	{"10th", regexp.MustCompile(`(?i)\b(?:10th|matric(?:ulation)?|class\s*x)\b`)},
	{"12th", regexp.MustCompile(`(?i)\b(?:12th|intermediate|10\+2|class\s*xii)\b`)},
	{"Graduation", regexp.MustCompile(`(?i)\bgraduat(?:e|ion)\b`)},
	{"Post Graduation", regexp.MustCompile(`(?i)\bpost[- ]?graduat(?:e|ion)\b`)},
	{"Engineering", regexp.MustCompile(`(?i)\b(?:engineering|b\.?\s?tech|b\.?e\.?)\b`)},
	{"Medical", regexp.MustCompile(`(?i)\b(?:mbbs|medical\s+degree|b\.?\s?pharma)\b`)},
}

func extractQualification(text string) string {
	section := locateSection(text, "Educational Qualification", "Qualification", "Eligibility")
	if s := strings.TrimSpace(section); len(s) > qualificationMinSection {
		s = truncate(s, qualificationMaxLen)
		return strings.TrimSpace(strings.Trim(s, ":-"))
	}
	found := make([]string, 0, 3)
	for _, rule := range qualificationRules {
		if rule.re.MatchString(text) {
			found = append(found, rule.label)
		}
	}
	return strings.Join(found, ", ")
}

// State extraction. List order decides ties, not document order. UP and
// MP appear as abbreviations in many notices and normalize to the full
// state name.
var stateNames = []string{
	"Uttar Pradesh", "Madhya Pradesh", "Andhra Pradesh", "Arunachal Pradesh",
	"Himachal Pradesh", "Maharashtra", "Tamil Nadu", "West Bengal", "Karnataka",
	"Rajasthan", "Gujarat", "Bihar", "Jharkhand", "Chhattisgarh", "Odisha",
	"Punjab", "Haryana", "Uttarakhand", "Kerala", "Telangana", "Assam", "Goa",
	"Tripura", "Delhi",
}

var stateAbbrevs = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`\bUP\b`), "Uttar Pradesh"},
	{regexp.MustCompile(`\bMP\b`), "Madhya Pradesh"},
}

var allIndiaRe = regexp.MustCompile(`(?i)all\s+india|central\s+government`)

func extractState(text string) string {
	lower := strings.ToLower(text)
	for _, name := range stateNames {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	for _, ab := range stateAbbrevs {
		if ab.re.MatchString(text) {
			return ab.name
		}
	}
	if allIndiaRe.MatchString(text) {
		return "All India"
	}
	return ""
}
