package jobparse

import (
	"regexp"
	"strings"
)

// feeAmount captures either a rupee figure or a fee-waiver word. Group 1
// is the numeric amount, group 2 the waiver.
const feeAmount = `(?:(?:rs\.?|₹|inr)\s*([\d,]+)(?:\s*/-)?|(nil|exempted|no\s+fee))`

// feeRules are the applicant-category patterns in trial order. Combined
// categories come before their single counterparts so that "Gen/EWS/OBC"
// rows are not eaten by the bare "General" rule.
var feeRules = []struct {
	category string
	re       *regexp.Regexp
}{
	{"General/EWS/OBC", regexp.MustCompile(`(?i)gen(?:eral)?\s*[/,&]\s*(?:ews|obc)\s*[/,&]\s*(?:ews|obc)[^\d\n₹]{0,20}` + feeAmount)},
	{"General", regexp.MustCompile(`(?i)\bgen(?:eral)?\b[^\d\n₹/]{0,20}` + feeAmount)},
	{"OBC", regexp.MustCompile(`(?i)\bobc\b[^\d\n₹/]{0,20}` + feeAmount)},
	{"EWS", regexp.MustCompile(`(?i)\bews\b[^\d\n₹/]{0,20}` + feeAmount)},
	{"SC/ST", regexp.MustCompile(`(?i)\bsc\s*[/,&]\s*st\b[^\d\n₹]{0,20}` + feeAmount)},
	{"SC", regexp.MustCompile(`(?i)(?:^|[^/A-Za-z])sc\b[^\d\n₹/]{0,20}` + feeAmount)},
	{"ST", regexp.MustCompile(`(?i)(?:^|[^/A-Za-z])st\b[^\d\n₹/]{0,20}` + feeAmount)},
	{"Female", regexp.MustCompile(`(?i)\b(?:female|women|all\s+female)\b[^\d\n₹]{0,25}` + feeAmount)},
	{"PH/PWD", regexp.MustCompile(`(?i)\b(?:ph|pwd|pwbd|divyang|handicapped)\b[^\d\n₹]{0,25}` + feeAmount)},
	{"Ex-Serviceman", regexp.MustCompile(`(?i)\bex[- ]?servicem[ae]n\b[^\d\n₹]{0,25}` + feeAmount)},
}

var thousandsSep = strings.NewReplacer(",", "")

// extractFees builds at most one FeeEntry per applicant category from
// the fee section, else the whole document.
func extractFees(text string) []FeeEntry {
	scope := scopeOf(text, "Application Fee", "Exam Fee", "Fee Details", "Application Fees")

	entries := make([]FeeEntry, 0, 4)
	seen := make(map[string]bool)
	for _, rule := range feeRules {
		m := rule.re.FindStringSubmatch(scope)
		if m == nil || seen[rule.category] {
			continue
		}
		seen[rule.category] = true
		entries = append(entries, FeeEntry{Category: rule.category, Fee: normalizeFee(m[1])})
	}
	return entries
}

// normalizeFee renders a numeric capture as "₹<amount>/-" with thousands
// separators stripped; an empty capture means the waiver alternative
// matched and yields the literal "Nil".
func normalizeFee(amount string) string {
	if amount != "" {
		return "₹" + thousandsSep.Replace(amount) + "/-"
	}
	return "Nil"
}
