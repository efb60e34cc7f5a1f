// Package jobparse converts unstructured government job notification
// text into a structured ParsedJob record without any external call.
//
// The pipeline is a best-effort heuristic, not a grammar: each field
// extractor locates its sub-section by fuzzy header matching, applies
// ordered pattern fallbacks and normalizes what it finds. Missing or
// malformed input degrades to empty sequences and absent optionals;
// Parse never fails. The whole package is pure and stateless, so
// concurrent calls on different inputs need no coordination.
package jobparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Parse runs every extractor over text and assembles the complete
// record. Two calls with the same input always produce the same output.
func Parse(text string) ParsedJob {
	links := extractLinks(text)

	job := ParsedJob{
		Title:               extractTitle(text),
		Department:          extractDepartment(text),
		Type:                classify(text),
		Qualification:       extractQualification(text),
		State:               extractState(text),
		VacancyDetails:      extractVacancies(text),
		ApplicationFee:      extractFees(text),
		ImportantDates:      extractDates(text),
		AgeLimit:            extractAgeLimits(text),
		SelectionProcess:    extractSelection(text),
		PhysicalEligibility: extractPhysical(text),
		ApplyOnlineURL:      links.ApplyOnline,
		AdmitCardURL:        links.AdmitCard,
		ResultURL:           links.Result,
		AnswerKeyURL:        links.AnswerKey,
		NotificationURL:     links.Notification,
		OfficialWebsiteURL:  links.OfficialWebsite,
	}
	if s := strings.TrimSpace(locateSection(text, "Eligibility Details", "Eligibility Criteria")); s != "" {
		job.EligibilityDetails = s
	}
	job.ShortInfo = buildShortInfo(job)

	log.Debug().
		Str("stage", "jobparse").
		Str("type", string(job.Type)).
		Int("vacancies", len(job.VacancyDetails)).
		Int("dates", len(job.ImportantDates)).
		Int("fees", len(job.ApplicationFee)).
		Msg("parsed notification")
	return job
}

// TotalPosts sums the numeric totals of every vacancy entry; non-numeric
// values count as zero.
func TotalPosts(entries []VacancyEntry) int {
	total := 0
	for _, e := range entries {
		n, err := strconv.Atoi(e.TotalPost)
		if err != nil {
			continue
		}
		total += n
	}
	return total
}

// buildShortInfo composes the one-sentence summary from department,
// title, the aggregate post count when positive, and the first date
// whose label mentions "Last" when one exists.
func buildShortInfo(job ParsedJob) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has released the %s", job.Department, job.Title)
	if total := TotalPosts(job.VacancyDetails); total > 0 {
		fmt.Fprintf(&b, " for %d posts", total)
	}
	b.WriteString(".")
	for _, d := range job.ImportantDates {
		if strings.Contains(strings.ToLower(d.Label), "last") {
			fmt.Fprintf(&b, " The last date to apply is %s.", d.Date)
			break
		}
	}
	return b.String()
}
