package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/okafor/stylerules/internal/profile"
)

var (
	questionCount  int
	questionFormat string
)

// questionsCmd represents the questions command
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print a random style questionnaire",
	Long: `Questions prints a randomized questionnaire: the gender question
first, followed by random draws from the question bank. Collect the
answers and feed them to 'stylerules profile'.`,
	RunE: runQuestions,
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().IntVar(&questionCount, "count", 6, "total number of questions")
	questionsCmd.Flags().StringVar(&questionFormat, "format", "yaml", "output format (yaml, json)")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	questions := profile.RandomQuestions(questionCount)

	switch questionFormat {
	case "yaml":
		data, err := yaml.Marshal(questions)
		if err != nil {
			return fmt.Errorf("marshal questions: %w", err)
		}
		fmt.Print(string(data))
	case "json":
		data, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal questions: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", questionFormat)
	}

	return nil
}
