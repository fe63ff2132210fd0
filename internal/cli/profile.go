package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/okafor/stylerules/internal/model"
	"github.com/okafor/stylerules/internal/profile"
)

var (
	llmModel   string
	llmBaseURL string
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile <answers.yaml>",
	Short: "Generate a first-person style profile from questionnaire answers",
	Long: `Profile sends the questionnaire answers to an OpenAI-compatible
chat model and prints a single first-person paragraph summarizing the
user's style, fit, color, and occasion preferences.

The answers file maps question ids to answers:

  gender: Female
  preferred_fit: Relaxed Fit
  color_comfort: Neutrals & Basics
  difficult_occasion: [Work, Party]

Requires GROQ_API_KEY in the environment.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	defaults := model.DefaultConfig().LLM
	profileCmd.Flags().StringVar(&llmModel, "model", defaults.Model, "chat model name")
	profileCmd.Flags().StringVar(&llmBaseURL, "base-url", defaults.BaseURL, "OpenAI-compatible API base URL")
}

func runProfile(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read answers file: %w", err)
	}

	var answers map[string]interface{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("parse answers file: %w", err)
	}

	cfg := model.DefaultConfig().LLM
	cfg.Model = llmModel
	cfg.BaseURL = llmBaseURL
	cfg.APIKey = os.Getenv("GROQ_API_KEY")
	if cfg.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY environment variable not set")
	}

	gen, err := profile.NewGenerator(cfg)
	if err != nil {
		return err
	}

	paragraph, err := gen.Generate(context.Background(), answers)
	if err != nil {
		return fmt.Errorf("generate profile: %w", err)
	}

	fmt.Println(paragraph)
	return nil
}
