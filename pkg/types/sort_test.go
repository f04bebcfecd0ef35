package types

import "testing"

func TestValidSortOrder(t *testing.T) {
	tests := []struct {
		order string
		want  bool
	}{
		{"ASC", true},
		{"DESC", true},
		{"asc", false},
		{"descending", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			if got := ValidSortOrder(tt.order); got != tt.want {
				t.Fatalf("ValidSortOrder(%q) = %v, want %v", tt.order, got, tt.want)
			}
		})
	}
}

func TestSortSetAttribute(t *testing.T) {
	srt := &Sort{ID: "sort-1", FieldID: "field-1", Order: SortOrderASC}

	if !srt.SetAttribute("order", SortOrderDESC) {
		t.Fatal("order should be applied")
	}
	if srt.Order != SortOrderDESC {
		t.Fatalf("Order = %q, want DESC", srt.Order)
	}

	if !srt.SetAttribute("field", "field-2") {
		t.Fatal("field should be applied")
	}
	if srt.FieldID != "field-2" {
		t.Fatalf("FieldID = %q, want field-2", srt.FieldID)
	}

	if srt.SetAttribute("order", 1) {
		t.Fatal("non-string order must be ignored")
	}
	if srt.SetAttribute("direction", "ASC") {
		t.Fatal("unknown key must be ignored")
	}
}

func TestFilterSetAttribute(t *testing.T) {
	f := &Filter{ID: "filter-1", FieldID: "field-1", Type: "equal", Value: "a"}

	if !f.SetAttribute("value", "b") {
		t.Fatal("value should be applied")
	}
	if f.Value != "b" {
		t.Fatalf("Value = %q, want b", f.Value)
	}

	if !f.SetAttribute("type", "not_equal") {
		t.Fatal("type should be applied")
	}
	if !f.SetAttribute("field", "field-2") {
		t.Fatal("field should be applied")
	}

	if f.SetAttribute("value", 5) {
		t.Fatal("non-string value must be ignored")
	}
	if f.SetAttribute("preload", "x") {
		t.Fatal("unknown key must be ignored")
	}
}
