package jobparse

import "strings"

// selectionStages is the canonical stage vocabulary in declaration
// order. Matches are appended in this order, not document order, and the
// canonical spelling is stored regardless of the document's casing.
var selectionStages = []string{
	"Written Exam",
	"Written Test",
	"CBT",
	"Computer Based Test",
	"Physical Efficiency Test",
	"PET",
	"Physical Standard Test",
	"PST",
	"Document Verification",
	"Medical Test",
	"Medical Examination",
	"Interview",
	"Skill Test",
	"Typing Test",
	"Trade Test",
}

// extractSelection tests each known stage name for case-insensitive
// presence in the selection-process section, else the whole document.
func extractSelection(text string) []string {
	scope := strings.ToLower(scopeOf(text, "Selection Process", "Mode of Selection", "Selection Procedure"))

	stages := make([]string, 0, 4)
	for _, stage := range selectionStages {
		if strings.Contains(scope, strings.ToLower(stage)) {
			stages = append(stages, stage)
		}
	}
	return stages
}
