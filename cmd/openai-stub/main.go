// Command openai-stub serves a minimal OpenAI-compatible chat endpoint
// that answers every extraction request with a fixed ParsedJob document.
// It exists so the LLM engine can be exercised locally without a model.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const cannedRecord = `{
  "title": "Stub Commission Clerk Recruitment 2026",
  "department": "Stub Commission",
  "type": "job",
  "shortInfo": "Stub Commission has released the Stub Commission Clerk Recruitment 2026 for 100 posts.",
  "vacancyDetails": [{"postName": "Clerk", "totalPost": "100", "eligibility": ""}],
  "applicationFee": [{"category": "General", "fee": "₹100/-"}],
  "importantDates": [{"label": "Last Date", "date": "31/12/2026"}],
  "ageLimit": [{"category": "General", "minAge": "18", "maxAge": "35"}],
  "selectionProcess": ["Written Exam"],
  "physicalEligibility": []
}`

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		sys := ""
		if len(req.Messages) > 0 {
			sys = strings.TrimSpace(req.Messages[0].Content)
		}
		if !strings.Contains(sys, "strict JSON") {
			http.Error(w, "unexpected system", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": cannedRecord}},
			},
		})
	})

	log.Printf("openai-stub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
