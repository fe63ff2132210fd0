package extract

import (
	"reflect"
	"sort"
	"testing"

	"github.com/okafor/stylerules/internal/vocab"
)

func newExtractor() *Extractor {
	return NewExtractor(vocab.Default())
}

func TestExtract_CollectsTermsPerCategory(t *testing.T) {
	e := newExtractor()

	meta := e.Extract("Pair a white t-shirt with relaxed jeans for a casual look.")

	wantItems := []string{"jeans", "shirt", "t-shirt"}
	if !reflect.DeepEqual(meta.Items, wantItems) {
		t.Errorf("Items = %v, want %v", meta.Items, wantItems)
	}
	if !reflect.DeepEqual(meta.Color, []string{"white"}) {
		t.Errorf("Color = %v, want [white]", meta.Color)
	}
	if !reflect.DeepEqual(meta.Fit, []string{"relaxed"}) {
		t.Errorf("Fit = %v, want [relaxed]", meta.Fit)
	}
	if !reflect.DeepEqual(meta.Occasion, []string{"casual"}) {
		t.Errorf("Occasion = %v, want [casual]", meta.Occasion)
	}
	if meta.Layering {
		t.Error("Layering should be false without a layering term")
	}
}

func TestExtract_BlazerInference(t *testing.T) {
	e := newExtractor()

	meta := e.Extract("Wear a tailored blazer over jeans.")

	if !meta.Layering {
		t.Error("Blazer implies layering = true")
	}
	for _, style := range []string{"classic", "polished"} {
		if !contains(meta.Style, style) {
			t.Errorf("Style should include inferred %q, got %v", style, meta.Style)
		}
	}
}

func TestExtract_DenimInference(t *testing.T) {
	e := newExtractor()

	meta := e.Extract("Combine denim with a sweater.")
	if !contains(meta.Style, "classic") {
		t.Errorf("Denim implies classic style, got %v", meta.Style)
	}
	if meta.Layering {
		t.Error("Denim alone should not imply layering")
	}
}

func TestExtract_NeutralColorInference(t *testing.T) {
	e := newExtractor()

	meta := e.Extract("Add neutral trousers for everyday wear.")
	if !contains(meta.Style, "minimal") {
		t.Errorf("Neutral color implies minimal style, got %v", meta.Style)
	}
}

func TestExtract_LayeringFromTermAndInference(t *testing.T) {
	e := newExtractor()

	// "coat" is a layering term but triggers no style inference
	meta := e.Extract("Layer a coat over a dress in winter.")
	if !meta.Layering {
		t.Error("Layering term should set layering = true")
	}
	if contains(meta.Style, "classic") {
		t.Errorf("Coat should not infer classic, got %v", meta.Style)
	}
}

func TestExtract_SortedAndDeduplicated(t *testing.T) {
	e := newExtractor()

	// "t-shirt" matches both "t-shirt" and "shirt"; "casual" appears in
	// style and occasion tables; everything must come out sorted and unique
	meta := e.Extract("Match a casual white t-shirt with a casual skirt.")

	for name, list := range map[string][]string{
		"Fit": meta.Fit, "Color": meta.Color, "Style": meta.Style,
		"Items": meta.Items, "Occasion": meta.Occasion,
	} {
		if !sort.StringsAreSorted(list) {
			t.Errorf("%s not sorted: %v", name, list)
		}
		seen := map[string]bool{}
		for _, v := range list {
			if seen[v] {
				t.Errorf("%s contains duplicate %q: %v", name, v, list)
			}
			seen[v] = true
		}
	}
}

func TestExtract_EmptyListsAreNonNil(t *testing.T) {
	e := newExtractor()

	meta := e.Extract("Nothing relevant here at all.")
	for name, list := range map[string][]string{
		"Fit": meta.Fit, "Color": meta.Color, "Style": meta.Style,
		"Items": meta.Items, "Occasion": meta.Occasion,
	} {
		if list == nil {
			t.Errorf("%s should be an empty slice, not nil", name)
		}
		if len(list) != 0 {
			t.Errorf("%s should be empty, got %v", name, list)
		}
	}
}

func TestExtract_SubstringMatchingIsDeliberate(t *testing.T) {
	e := newExtractor()

	// Containment is substring-based: "tee" inside "committee" is an
	// accepted source of noise, preserved for compatibility.
	meta := e.Extract("The committee approved the dress code.")
	if !contains(meta.Items, "tee") {
		t.Errorf("Expected substring hit for 'tee', got %v", meta.Items)
	}
}

func TestExtract_PureFunction(t *testing.T) {
	e := newExtractor()

	in := "Wear a tailored blazer over jeans."
	first := e.Extract(in)
	second := e.Extract(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
