package model

// SourceKind identifies the format of a configured source
type SourceKind string

const (
	SourceWeb    SourceKind = "web"    // Hypertext fetched over HTTP(S)
	SourceDocx   SourceKind = "docx"   // Word-processor document
	SourcePDF    SourceKind = "pdf"    // PDF document
	SourceSlides SourceKind = "pptx"   // Presentation slide deck
)

// SourceRef describes one configured source: a URL or a local file path
// together with the reader kind that handles it.
type SourceRef struct {
	Ref  string     `json:"ref"`
	Kind SourceKind `json:"kind"`
}

// Metadata holds the structured attributes derived from a canonical
// statement. List attributes are sorted and deduplicated; empty lists
// serialize as [] rather than null.
type Metadata struct {
	Fit      []string `json:"fit"`
	Color    []string `json:"color"`
	Style    []string `json:"style"`
	Items    []string `json:"items"`
	Occasion []string `json:"occasion"`
	Layering bool     `json:"layering"`
}

// Record is the final output unit: a canonical, deduplicated,
// confidence-scored styling rule. Immutable once emitted.
type Record struct {
	ID            string   `json:"id"`
	Source        string   `json:"source"`
	CanonicalText string   `json:"canonical_text"`
	Metadata      Metadata `json:"metadata"`
	Confidence    float64  `json:"confidence"`
	RawText       string   `json:"raw_text"`
}
