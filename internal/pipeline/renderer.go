package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/okafor/stylerules/internal/model"
)

// Renderer writes records to files and human-readable summaries to a writer
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing summaries to out
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out}
}

// RenderJSONL writes one record per line, the contract consumed by the
// embedding/indexing collaborator.
func (r *Renderer) RenderJSONL(records []model.Record, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	enc := json.NewEncoder(f)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %s: %w", rec.ID, err)
		}
	}

	return nil
}

// RenderJSON writes the full record set as a single indented JSON array
func (r *Renderer) RenderJSON(records []model.Record, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// PrintRecords writes a human-readable dump of each record
func (r *Renderer) PrintRecords(records []model.Record) {
	for _, rec := range records {
		fmt.Fprintln(r.out, "--------------------------------------------------------")
		fmt.Fprintf(r.out, "ID:         %s\n", rec.ID)
		fmt.Fprintf(r.out, "SOURCE:     %s\n", rec.Source)
		fmt.Fprintf(r.out, "CONFIDENCE: %.2f\n", rec.Confidence)
		fmt.Fprintf(r.out, "CANONICAL:  %s\n", rec.CanonicalText)
		fmt.Fprintf(r.out, "METADATA:   fit=%v color=%v style=%v items=%v occasion=%v layering=%v\n",
			rec.Metadata.Fit, rec.Metadata.Color, rec.Metadata.Style,
			rec.Metadata.Items, rec.Metadata.Occasion, rec.Metadata.Layering)
		fmt.Fprintf(r.out, "RAW:        %s\n", rec.RawText)
	}
}

// PrintSummary writes the per-source rule counts and the run total
func (r *Renderer) PrintSummary(results []SourceResult, stats Stats) {
	total := 0
	for _, res := range results {
		fmt.Fprintf(r.out, "%s -> %d rules\n", res.Ref.Ref, len(res.Records))
		total += len(res.Records)
	}
	fmt.Fprintf(r.out, "\nTOTAL FINAL CLEAN RULES: %d\n", total)
	fmt.Fprintf(r.out, "(%d sentences seen, %d rejected at canonicalization, %d without items, %d below confidence floor, %d duplicates)\n",
		stats.Sentences, stats.NotCanonical, stats.NoItems, stats.LowConfidence, stats.Duplicates)
}
