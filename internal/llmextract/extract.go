// Package llmextract is the model-backed counterpart of jobparse. It
// asks an OpenAI-compatible endpoint for the same ParsedJob document the
// rule engine produces and accepts the answer only after it validates
// against the shared schema, so callers can fall back to the rule
// engine on any failure without changing shape.
package llmextract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog/log"

	"github.com/rahul8600/govt-job-board/internal/jobparse"
	"github.com/rahul8600/govt-job-board/internal/llm"
)

// ErrNotConfigured signals that no client or model was supplied; the
// caller should go straight to the rule engine.
var ErrNotConfigured = errors.New("llm extractor not configured")

const systemMessage = "You extract structured data from Indian government job notifications. " +
	"Respond with strict JSON only, no narration and no markdown fences. " +
	"The JSON object has fields: title, department, type (one of job, admit-card, result, answer-key, admission), " +
	"shortInfo, qualification, state, eligibilityDetails, " +
	"vacancyDetails [{postName, totalPost (digits only), eligibility}], " +
	"applicationFee [{category, fee}], importantDates [{label, date (verbatim from the text)}], " +
	"ageLimit [{category, minAge, maxAge}], selectionProcess [string], " +
	"physicalEligibility [{criteria, male, female}], " +
	"applyOnlineUrl, admitCardUrl, resultUrl, answerKeyUrl, notificationUrl, officialWebsiteUrl. " +
	"Omit optional fields you cannot find; never invent values."

// Extractor calls the chat model and enforces the JSON contract.
type Extractor struct {
	Client llm.Client
	Model  string
}

// Extract returns the model's ParsedJob for text. The raw response is
// leniently cleaned, schema-validated and only then decoded; every
// failure path returns an error so the caller can fall back.
func (e *Extractor) Extract(ctx context.Context, text string) (jobparse.ParsedJob, error) {
	var zero jobparse.ParsedJob
	if e == nil || e.Client == nil || strings.TrimSpace(e.Model) == "" {
		return zero, ErrNotConfigured
	}

	resp, err := e.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		return zero, fmt.Errorf("llm call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return zero, errors.New("no choices")
	}

	raw := sanitizeResponse(resp.Choices[0].Message.Content)

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return zero, fmt.Errorf("parse llm json: %w", err)
	}
	doc = dropEmptyOptionals(doc)
	if err := validate(doc); err != nil {
		log.Debug().Str("stage", "llmextract").Err(err).Msg("model output rejected")
		return zero, err
	}

	clean, err := json.Marshal(doc)
	if err != nil {
		return zero, fmt.Errorf("remarshal: %w", err)
	}
	var job jobparse.ParsedJob
	if err := json.Unmarshal(clean, &job); err != nil {
		return zero, fmt.Errorf("decode parsed job: %w", err)
	}
	ensureDefaults(&job)
	return job, nil
}

// sanitizeResponse strips markdown code fences and surrounding chatter,
// keeping the outermost JSON object.
func sanitizeResponse(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// dropEmptyOptionals removes empty-string optionals and null members so
// a sloppy but otherwise correct response still validates. Only
// top-level scalars are touched; list entries stand or fail as given.
func dropEmptyOptionals(doc any) any {
	m, ok := doc.(map[string]any)
	if !ok {
		return doc
	}
	required := map[string]bool{"title": true, "department": true, "type": true, "shortInfo": true}
	for k, v := range m {
		if required[k] {
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
		case string:
			if strings.TrimSpace(t) == "" {
				delete(m, k)
			}
		}
	}
	return m
}

// ensureDefaults restores the non-nil-slice invariant shared with the
// rule engine after JSON decoding.
func ensureDefaults(job *jobparse.ParsedJob) {
	if job.VacancyDetails == nil {
		job.VacancyDetails = []jobparse.VacancyEntry{}
	}
	if job.ApplicationFee == nil {
		job.ApplicationFee = []jobparse.FeeEntry{}
	}
	if job.ImportantDates == nil {
		job.ImportantDates = []jobparse.DateEntry{}
	}
	if job.AgeLimit == nil {
		job.AgeLimit = []jobparse.AgeEntry{}
	}
	if job.SelectionProcess == nil {
		job.SelectionProcess = []string{}
	}
	if job.PhysicalEligibility == nil {
		job.PhysicalEligibility = []jobparse.PhysicalEntry{}
	}
}
