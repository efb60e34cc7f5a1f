package jobparse

import "testing"

func findFee(entries []FeeEntry, category string) (FeeEntry, bool) {
	for _, e := range entries {
		if e.Category == category {
			return e, true
		}
	}
	return FeeEntry{}, false
}

func TestExtractFees_NumericNormalization(t *testing.T) {
	got := extractFees("Application Fee: General: Rs. 1,000")

	e, ok := findFee(got, "General")
	if !ok {
		t.Fatalf("missing General entry in %v", got)
	}
	if e.Fee != "₹1000/-" {
		t.Fatalf("got %q, want ₹1000/-", e.Fee)
	}
}

func TestExtractFees_NilNormalization(t *testing.T) {
	cases := []string{"SC/ST: Nil", "SC/ST: Exempted"}
	for _, text := range cases {
		got := extractFees(text)
		e, ok := findFee(got, "SC/ST")
		if !ok {
			t.Fatalf("%q: missing SC/ST entry in %v", text, got)
		}
		if e.Fee != "Nil" {
			t.Fatalf("%q: got %q, want Nil", text, e.Fee)
		}
	}
}

func TestExtractFees_CombinedCategoryBeforeSingle(t *testing.T) {
	got := extractFees("General/EWS/OBC: Rs. 100. SC/ST: Nil.")

	if _, ok := findFee(got, "General/EWS/OBC"); !ok {
		t.Fatalf("missing combined category in %v", got)
	}
	if _, ok := findFee(got, "General"); ok {
		t.Fatalf("bare General must not fire on the combined row: %v", got)
	}
	if e, ok := findFee(got, "SC/ST"); !ok || e.Fee != "Nil" {
		t.Fatalf("missing SC/ST Nil entry in %v", got)
	}
}

func TestExtractFees_RupeeSymbolAndOrderedCategories(t *testing.T) {
	text := `APPLICATION FEE:
General: ₹ 500
OBC: Rs 400
SC/ST: Nil
Female: Rs. 250
PH: Nil`

	got := extractFees(text)
	want := []FeeEntry{
		{"General", "₹500/-"},
		{"OBC", "₹400/-"},
		{"SC/ST", "Nil"},
		{"Female", "₹250/-"},
		{"PH/PWD", "Nil"},
	}
	for _, w := range want {
		e, ok := findFee(got, w.Category)
		if !ok {
			t.Fatalf("missing %s in %v", w.Category, got)
		}
		if e.Fee != w.Fee {
			t.Fatalf("%s: got %q, want %q", w.Category, e.Fee, w.Fee)
		}
	}
}

func TestExtractFees_NoDuplicateCategory(t *testing.T) {
	got := extractFees("General: Rs. 100\nGeneral: Rs. 200")

	count := 0
	for _, e := range got {
		if e.Category == "General" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected a single General entry, got %v", got)
	}
}
