package jobparse

import "strings"

// typeRule pairs a predicate with the category it assigns. Rules run top
// to bottom and the first true predicate wins; the order is a deliberate
// tie-break (admit-card outranks admission, result needs a release word
// so plain mentions of "result" in a vacancy notice stay "job").
type typeRule struct {
	match func(string) bool
	out   DocType
}

var typeRules = []typeRule{
	{hasAny("admit card", "hall ticket", "call letter"), TypeAdmitCard},
	{func(s string) bool {
		return strings.Contains(s, "result") && hasAny("download", "declared", "out")(s)
	}, TypeResult},
	{hasAny("answer key"), TypeAnswerKey},
	{func(s string) bool {
		return strings.Contains(s, "admission") && !strings.Contains(s, "admit card")
	}, TypeAdmission},
}

func hasAny(keys ...string) func(string) bool {
	return func(s string) bool {
		for _, k := range keys {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
}

// classify assigns one of the five document categories; "job" is the
// default when no rule fires.
func classify(text string) DocType {
	lower := strings.ToLower(text)
	for _, rule := range typeRules {
		if rule.match(lower) {
			return rule.out
		}
	}
	return TypeJob
}
