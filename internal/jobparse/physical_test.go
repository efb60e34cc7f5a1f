package jobparse

import "testing"

// Physical standards are only read from an explicitly located section;
// stray measurements elsewhere in a document must not fabricate a table.
func TestExtractPhysical_RequiresSection(t *testing.T) {
	got := extractPhysical("Candidates should note Height: 165 cm was the old criterion.")

	if got == nil {
		t.Fatalf("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries without a physical section, got %v", got)
	}
}

func TestExtractPhysical_HeightChestWeight(t *testing.T) {
	text := `PHYSICAL STANDARD:
Height: Male 170 cm, Female 157 cm
Chest: 77-82 cm (male only)
Weight: minimum 50 kg for male candidates`

	got := extractPhysical(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %v", got)
	}

	byName := map[string]PhysicalEntry{}
	for _, e := range got {
		byName[e.Criteria] = e
	}

	if h := byName["Height"]; h.Male != "170 cm" || h.Female != "157 cm" {
		t.Fatalf("height: got %+v", h)
	}
	if c := byName["Chest"]; c.Male != "77-82 cm" || c.Female != "NA" {
		t.Fatalf("chest: got %+v", c)
	}
	if w := byName["Weight"]; w.Male != "50 kg" || w.Female != "NA" {
		t.Fatalf("weight: got %+v", w)
	}
}

func TestExtractPhysical_HeightFemaleDefaultsNA(t *testing.T) {
	got := extractPhysical("Physical Eligibility:\nHeight: 168 cm")

	if len(got) != 1 {
		t.Fatalf("expected one entry, got %v", got)
	}
	if got[0].Male != "168 cm" || got[0].Female != "NA" {
		t.Fatalf("got %+v", got[0])
	}
}
