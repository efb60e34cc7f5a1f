package jobparse

import (
	"regexp"
	"strings"
)

var urlRe = regexp.MustCompile(`https?://[^\s<>"')\]]+`)

// jobLinks holds the six classified URL buckets of a notification.
type jobLinks struct {
	ApplyOnline     string
	AdmitCard       string
	Result          string
	AnswerKey       string
	Notification    string
	OfficialWebsite string
}

// linkRule pairs a keyword predicate with the bucket it fills. Rules run
// in a fixed priority order and a URL lands in the first bucket whose
// predicate accepts it, never more than one.
type linkRule struct {
	match  func(string) bool
	assign func(*jobLinks, string)
}

func containsAnyOf(keys ...string) func(string) bool {
	return func(u string) bool {
		for _, k := range keys {
			if strings.Contains(u, k) {
				return true
			}
		}
		return false
	}
}

var linkRules = []linkRule{
	{containsAnyOf("apply", "registration"), func(l *jobLinks, u string) { l.ApplyOnline = u }},
	{containsAnyOf("notification", ".pdf"), func(l *jobLinks, u string) { l.Notification = u }},
	{containsAnyOf("admit", "hall-ticket", "hallticket"), func(l *jobLinks, u string) { l.AdmitCard = u }},
	{containsAnyOf("result"), func(l *jobLinks, u string) { l.Result = u }},
	{containsAnyOf("answer", "key"), func(l *jobLinks, u string) { l.AnswerKey = u }},
	{containsAnyOf("gov.in", "nic.in"), func(l *jobLinks, u string) { l.OfficialWebsite = u }},
}

// bucketTaken mirrors linkRules by index.
func bucketTaken(l *jobLinks, i int) bool {
	switch i {
	case 0:
		return l.ApplyOnline != ""
	case 1:
		return l.Notification != ""
	case 2:
		return l.AdmitCard != ""
	case 3:
		return l.Result != ""
	case 4:
		return l.AnswerKey != ""
	default:
		return l.OfficialWebsite != ""
	}
}

// extractLinks pulls every URL-shaped substring from the full document
// in order and classifies each into at most one bucket. Within a bucket
// the first qualifying URL wins; a URL matching several categories goes
// to the earliest one in rule order even when that bucket is already
// occupied, in which case the URL is dropped.
func extractLinks(text string) jobLinks {
	var links jobLinks
	for _, raw := range urlRe.FindAllString(text, -1) {
		u := strings.TrimRight(raw, ".,;:")
		lower := strings.ToLower(u)
		for i, rule := range linkRules {
			if !rule.match(lower) {
				continue
			}
			if !bucketTaken(&links, i) {
				rule.assign(&links, u)
			}
			break
		}
	}
	return links
}
