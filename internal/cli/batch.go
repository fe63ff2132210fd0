package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okafor/stylerules/internal/model"
	"github.com/okafor/stylerules/internal/pipeline"
	"github.com/okafor/stylerules/internal/source"
)

var (
	batchOut     string
	concurrency  int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <sources.yaml>",
	Short: "Extract styling rules from every configured source",
	Long: `Batch reads an ordered source list from a YAML file and runs the
full pipeline over all of them, sharing one deduplication set so each
canonical rule is emitted once per run.

The sources file lists hypertext URLs and local document paths:

  urls:
    - https://example.com/mix-and-match-outfit-ideas.html
  files:
    - Tops vs Trousers.docx
    - 5. Pants.pptx

A failed source logs a warning and contributes zero rules; the run only
fails when no sources are configured at all.

Example:
  stylerules batch sources.yaml
  stylerules batch sources.yaml --out rules.jsonl --concurrency 4`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOut, "out", "rules.jsonl", "output JSONL path")
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 1, "number of concurrent source readers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch run")

	batchCmd.Flags().DurationVar(&timeout, "fetch-timeout", 20*time.Second, "fetch timeout per web source")
	batchCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable page cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
}

func runBatch(cmd *cobra.Command, args []string) error {
	srcs, err := model.LoadSources(args[0])
	if err != nil {
		return err
	}

	// The only fatal configuration error: nothing to process
	if srcs.Count() == 0 {
		return fmt.Errorf("no sources configured in %s", args[0])
	}

	refs, err := sourceRefs(srcs)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.SourceWorkers = concurrency

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing %d sources (%d URLs, %d files)\n\n",
			srcs.Count(), len(srcs.URLs), len(srcs.Files))
	}

	p := pipeline.New(cfg)
	results, err := p.Run(ctx, refs)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	var all []model.Record
	for _, res := range results {
		all = append(all, res.Records...)
	}

	renderer := pipeline.NewRenderer(os.Stdout)
	renderer.PrintSummary(results, p.Stats())

	if batchOut != "" {
		if err := renderer.RenderJSONL(all, batchOut); err != nil {
			return err
		}
		fmt.Printf("\n✓ Wrote %d records: %s\n", len(all), batchOut)
	}

	return nil
}

// sourceRefs flattens the sources file into ordered refs: URLs first,
// then files, each classified by reader kind.
func sourceRefs(srcs *model.Sources) ([]model.SourceRef, error) {
	refs := make([]model.SourceRef, 0, srcs.Count())

	for _, u := range srcs.URLs {
		refs = append(refs, model.SourceRef{Ref: u, Kind: model.SourceWeb})
	}
	for _, f := range srcs.Files {
		kind, err := source.KindForRef(f)
		if err != nil {
			return nil, err
		}
		refs = append(refs, model.SourceRef{Ref: f, Kind: kind})
	}

	return refs, nil
}
