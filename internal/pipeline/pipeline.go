// Package pipeline orchestrates source reading, canonicalization, scoring,
// and record emission.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/okafor/stylerules/internal/model"
	"github.com/okafor/stylerules/internal/source"
	"github.com/okafor/stylerules/internal/vocab"
	"github.com/okafor/stylerules/internal/worker"
)

// Pipeline converts configured sources into styling-rule records
type Pipeline struct {
	readers map[model.SourceKind]source.Reader
	builder *Builder
	cfg     *model.Config
}

// SourceResult reports the per-source outcome
type SourceResult struct {
	Ref     model.SourceRef
	Records []model.Record
	Err     error // SourceUnavailable/ParseFailure; the source yielded zero records
}

// New creates a pipeline with one reader per source kind and a fresh
// dedup state.
func New(cfg *model.Config) *Pipeline {
	web := source.NewWebReader(cfg)
	readers := map[model.SourceKind]source.Reader{
		model.SourceWeb:    web,
		model.SourceDocx:   source.NewDocxReader(),
		model.SourcePDF:    source.NewPDFReader(),
		model.SourceSlides: source.NewSlidesReader(),
	}

	return &Pipeline{
		readers: readers,
		builder: NewBuilder(vocab.Default()),
		cfg:     cfg,
	}
}

// Run processes every source in order and returns per-source results.
// Reading may run on a worker pool when cfg.Concurrency.SourceWorkers > 1;
// record building always happens sequentially in configured order so the
// dedup set and output ordering stay deterministic. A failed source
// degrades to zero records; Run only returns an error for an empty source
// list.
func (p *Pipeline) Run(ctx context.Context, refs []model.SourceRef) ([]SourceResult, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("no sources configured")
	}

	texts, errs := p.readAll(ctx, refs)

	results := make([]SourceResult, len(refs))
	for i, ref := range refs {
		res := SourceResult{Ref: ref, Err: errs[i]}
		if errs[i] != nil {
			p.warnf("source %s: %v", ref.Ref, errs[i])
		} else {
			res.Records = p.builder.Build(ref.Ref, texts[i])
		}
		results[i] = res
	}

	return results, nil
}

// Stats returns the builder's rejection counters
func (p *Pipeline) Stats() Stats {
	return p.builder.Stats()
}

// readAll extracts text for every source, index-aligned with refs
func (p *Pipeline) readAll(ctx context.Context, refs []model.SourceRef) ([]string, []error) {
	texts := make([]string, len(refs))
	errs := make([]error, len(refs))

	workers := p.cfg.Concurrency.SourceWorkers
	if workers <= 1 || len(refs) == 1 {
		for i, ref := range refs {
			texts[i], errs[i] = p.read(ctx, ref)
		}
		return texts, errs
	}

	pool := worker.NewPool(workers)
	pool.Start()
	for i, ref := range refs {
		pool.Submit(&readJob{idx: i, ref: ref, pipeline: p, ctx: ctx})
	}
	for _, res := range pool.Wait() {
		rr := res.(*readResult)
		texts[rr.idx] = rr.text
		errs[rr.idx] = rr.err
	}

	return texts, errs
}

// read resolves the reader for one source and extracts its text
func (p *Pipeline) read(ctx context.Context, ref model.SourceRef) (string, error) {
	reader, ok := p.readers[ref.Kind]
	if !ok {
		return "", fmt.Errorf("no reader for source kind %q", ref.Kind)
	}
	return reader.Read(ctx, ref.Ref)
}

func (p *Pipeline) warnf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// readJob extracts one source's text on the worker pool
type readJob struct {
	idx      int
	ref      model.SourceRef
	pipeline *Pipeline
	ctx      context.Context
}

func (j *readJob) Execute(context.Context) worker.Result {
	text, err := j.pipeline.read(j.ctx, j.ref)
	return &readResult{idx: j.idx, text: text, err: err}
}

type readResult struct {
	idx  int
	text string
	err  error
}

func (r *readResult) GetError() error {
	return r.err
}
