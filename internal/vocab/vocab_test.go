package vocab

import (
	"reflect"
	"testing"
)

func TestContainsAny(t *testing.T) {
	terms := []string{"jeans", "tee"}

	tests := []struct {
		text string
		want bool
	}{
		{"pair jeans with a shirt", true},
		{"PAIR JEANS WITH A SHIRT", true},
		{"the committee decided", true}, // substring containment by design
		{"nothing relevant", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ContainsAny(terms, tt.text); got != tt.want {
			t.Errorf("ContainsAny(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMatching_PreservesTableOrder(t *testing.T) {
	terms := []string{"white", "black", "beige"}

	got := Matching(terms, "black boots with a white shirt")
	want := []string{"white", "black"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Matching = %v, want %v", got, want)
	}
}

func TestDefault_TablesPopulated(t *testing.T) {
	v := Default()

	tables := map[string][]string{
		"Fit": v.Fit, "Color": v.Color, "Style": v.Style, "Items": v.Items,
		"Occasion": v.Occasion, "Layering": v.Layering, "Pairing": v.Pairing,
		"Accessory": v.Accessory,
	}
	for name, table := range tables {
		if len(table) == 0 {
			t.Errorf("Default %s table is empty", name)
		}
	}

	// Layering terms must also be clothing items: the layering acceptance
	// path requires an item co-occurrence, and these satisfy both.
	for _, term := range v.Layering {
		if !ContainsAny(v.Items, term) {
			t.Errorf("Layering term %q missing from items", term)
		}
	}
}
