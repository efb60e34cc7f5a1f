package llmextract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// parsedJobSchema is the wire contract shared with the deterministic
// extractor. Model output must validate against it before being
// accepted; anything else falls back to the rule engine.
var parsedJobSchema = mustCompile(map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"title", "department", "type", "shortInfo"},
	"properties": map[string]any{
		"title":      map[string]any{"type": "string", "minLength": 1},
		"department": map[string]any{"type": "string", "minLength": 1},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"job", "admit-card", "result", "answer-key", "admission"},
		},
		"shortInfo":          map[string]any{"type": "string"},
		"qualification":      map[string]any{"type": "string"},
		"state":              map[string]any{"type": "string"},
		"eligibilityDetails": map[string]any{"type": "string"},
		"vacancyDetails": arrayOf(map[string]any{
			"type":     "object",
			"required": []any{"postName", "totalPost"},
			"properties": map[string]any{
				"postName":    map[string]any{"type": "string"},
				"totalPost":   map[string]any{"type": "string", "pattern": `^\d*$`},
				"eligibility": map[string]any{"type": "string"},
			},
		}),
		"applicationFee": arrayOf(map[string]any{
			"type":     "object",
			"required": []any{"category", "fee"},
			"properties": map[string]any{
				"category": map[string]any{"type": "string"},
				"fee":      map[string]any{"type": "string"},
			},
		}),
		"importantDates": arrayOf(map[string]any{
			"type":     "object",
			"required": []any{"label", "date"},
			"properties": map[string]any{
				"label": map[string]any{"type": "string"},
				"date":  map[string]any{"type": "string"},
			},
		}),
		"ageLimit": arrayOf(map[string]any{
			"type":     "object",
			"required": []any{"category"},
			"properties": map[string]any{
				"category": map[string]any{"type": "string"},
				"minAge":   map[string]any{"type": "string"},
				"maxAge":   map[string]any{"type": "string"},
			},
		}),
		"selectionProcess": arrayOf(map[string]any{"type": "string"}),
		"physicalEligibility": arrayOf(map[string]any{
			"type":     "object",
			"required": []any{"criteria"},
			"properties": map[string]any{
				"criteria": map[string]any{"type": "string"},
				"male":     map[string]any{"type": "string"},
				"female":   map[string]any{"type": "string"},
			},
		}),
		"applyOnlineUrl":     map[string]any{"type": "string"},
		"admitCardUrl":       map[string]any{"type": "string"},
		"resultUrl":          map[string]any{"type": "string"},
		"answerKeyUrl":       map[string]any{"type": "string"},
		"notificationUrl":    map[string]any{"type": "string"},
		"officialWebsiteUrl": map[string]any{"type": "string"},
	},
})

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

func mustCompile(doc map[string]any) *jsonschema.Schema {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("marshal schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("parsedjob.json", bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("add schema resource: %v", err))
	}
	s, err := c.Compile("parsedjob.json")
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return s
}

// validate checks a decoded JSON document against the shared contract.
func validate(doc any) error {
	if err := parsedJobSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
