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
	outJSON     string
	outJSONL    string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	insecureTLS bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <url|file>",
	Short: "Extract styling rules from a single source",
	Long: `Extract processes one source (a URL or a local .docx/.pdf/.pptx
file) through the full pipeline: text extraction, sentence segmentation,
canonicalization, metadata extraction, confidence scoring, and
deduplication.

Example:
  stylerules extract https://example.com/mix-and-match-outfit-ideas.html
  stylerules extract "Tops vs Trousers.docx" --json rules.json
  stylerules extract deck.pptx --jsonl rules.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	extractCmd.Flags().StringVar(&outJSONL, "jsonl", "", "output JSONL path (optional)")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 20*time.Second, "fetch timeout for web sources")
	extractCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
	extractCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable page cache (force fresh fetch)")
	extractCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ref := args[0]

	kind, err := source.KindForRef(ref)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout+10*time.Second)
	defer cancel()

	cfg := buildConfig()

	p := pipeline.New(cfg)
	results, err := p.Run(ctx, []model.SourceRef{{Ref: ref, Kind: kind}})
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	records := results[0].Records
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d rules from %s\n\n", len(records), ref)
	}

	renderer := pipeline.NewRenderer(os.Stdout)
	renderer.PrintRecords(records)
	renderer.PrintSummary(results, p.Stats())

	if outJSON != "" {
		if err := renderer.RenderJSON(records, outJSON); err != nil {
			return err
		}
	}
	if outJSONL != "" {
		if err := renderer.RenderJSONL(records, outJSONL); err != nil {
			return err
		}
	}

	return nil
}

// buildConfig merges defaults with the shared extraction flags
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	return cfg
}
