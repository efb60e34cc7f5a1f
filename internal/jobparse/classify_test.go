package jobparse

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want DocType
	}{
		{"admit card", "SSC CGL Admit Card released, download now", TypeAdmitCard},
		{"hall ticket", "Hall Ticket available on the portal", TypeAdmitCard},
		{"result declared", "CGL 2025 Result Declared", TypeResult},
		{"result download", "Tier 1 result download link active", TypeResult},
		{"result alone stays job", "result processing details will follow", TypeJob},
		{"answer key", "Provisional Answer Key released", TypeAnswerKey},
		{"admission", "Admission open for B.Ed course", TypeAdmission},
		{"default", "Staff Selection Commission invites applications", TypeJob},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := classify(c.text); got != c.want {
				t.Fatalf("classify(%q) = %s, want %s", c.text, got, c.want)
			}
		})
	}
}

// The rule order is a deliberate tie-break: a document naming both an
// admit card and an admission classifies as admit-card, never admission.
func TestClassify_AdmitCardOutranksAdmission(t *testing.T) {
	text := "Admit Card for the admission entrance test"
	if got := classify(text); got != TypeAdmitCard {
		t.Fatalf("got %s, want %s", got, TypeAdmitCard)
	}
}
