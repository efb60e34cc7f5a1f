package jobparse

import (
	"reflect"
	"testing"
)

func TestExtractSelection_CanonicalFormsInListOrder(t *testing.T) {
	// Document order is interview-first; output follows the canonical
	// list order instead.
	text := "Selection Process: Interview, document verification and written exam"

	got := extractSelection(text)
	want := []string{"Written Exam", "Document Verification", "Interview"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractSelection_EachStageOnce(t *testing.T) {
	got := extractSelection("Selection: Written Exam then written exam again, then Interview")

	count := 0
	for _, s := range got {
		if s == "Written Exam" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one Written Exam, got %v", got)
	}
}

func TestExtractSelection_NoneFound(t *testing.T) {
	got := extractSelection("no stages mentioned here at all")

	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
