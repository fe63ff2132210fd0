package pipeline

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okafor/stylerules/internal/vocab"
)

func buildTestRecords(t *testing.T) []SourceResult {
	t.Helper()

	b := NewBuilder(vocab.Default())
	text := "Pair a white tee with black jeans for the weekend. " +
		"Wear a tailored blazer over jeans for the office."
	records := b.Build("https://example.com/guide", text)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	return []SourceResult{{Records: records}}
}

func TestRenderJSONL_FieldContract(t *testing.T) {
	results := buildTestRecords(t)
	path := filepath.Join(t.TempDir(), "rules.jsonl")

	r := NewRenderer(nil)
	if err := r.RenderJSONL(results[0].Records, path); err != nil {
		t.Fatalf("RenderJSONL: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++

		var obj map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("line %d not valid JSON: %v", lines, err)
		}

		for _, field := range []string{"id", "source", "canonical_text", "metadata", "confidence", "raw_text"} {
			if _, ok := obj[field]; !ok {
				t.Errorf("line %d missing field %q", lines, field)
			}
		}

		meta, ok := obj["metadata"].(map[string]interface{})
		if !ok {
			t.Fatalf("line %d metadata is not an object", lines)
		}
		for _, field := range []string{"fit", "color", "style", "items", "occasion", "layering"} {
			if _, ok := meta[field]; !ok {
				t.Errorf("line %d metadata missing %q", lines, field)
			}
		}

		// List attributes serialize as arrays even when empty
		if _, ok := meta["fit"].([]interface{}); !ok {
			t.Errorf("line %d metadata.fit should be an array, got %T", lines, meta["fit"])
		}
	}
	if lines != 2 {
		t.Errorf("Expected 2 lines, got %d", lines)
	}
}

func TestPrintSummary_PerSourceCounts(t *testing.T) {
	results := buildTestRecords(t)

	var buf bytes.Buffer
	NewRenderer(&buf).PrintSummary(results, Stats{Sentences: 2, Emitted: 2})

	out := buf.String()
	if !strings.Contains(out, "-> 2 rules") {
		t.Errorf("Missing per-source count in %q", out)
	}
	if !strings.Contains(out, "TOTAL FINAL CLEAN RULES: 2") {
		t.Errorf("Missing total in %q", out)
	}
}
