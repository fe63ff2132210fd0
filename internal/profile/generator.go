package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/okafor/stylerules/internal/model"
)

const promptTemplate = `You are an AI that condenses user preferences into a compact,
first-person personal style profile optimized for understanding
fashion preferences.

Write ONE short paragraph as if the USER is describing their own style.

The paragraph must be:
- Short (4-6 sentences maximum)
- Information-dense but natural
- Clear about style, fit, colors, and occasions

Rules:
- Always write in first person (I / my).
- Do NOT recommend outfits.
- Do NOT use bullet points.
- Do NOT mention JSON, keys, or data.
- Respect all preferences exactly as given.
- Clearly state style type (e.g., classic, casual, streetwear, minimal).
- Clearly state fit preference (e.g., slim, relaxed, oversized).
- Clearly state color preference (e.g., neutrals, dark tones, bold colors).
- Mention main occasions I dress for.
- If an occasion is marked as difficult, mention it as a challenge,
  not as something I have already mastered.
- Keep language simple, grounded, and factual rather than emotional.

User preferences:
%s

Output:
A single first-person paragraph that clearly summarizes my personal style
and dressing priorities in a concise, searchable way.`

// Generator produces style-profile paragraphs via an OpenAI-compatible
// chat API. The default base URL points at Groq, which speaks the same
// protocol.
type Generator struct {
	client *openai.Client
	cfg    model.LLMConfig
}

// NewGenerator creates a Generator from configuration
func NewGenerator(cfg model.LLMConfig) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}, nil
}

// Generate returns a single first-person style paragraph for the given
// questionnaire answers (question id -> answer).
func (g *Generator) Generate(ctx context.Context, answers map[string]interface{}) (string, error) {
	formatted, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(promptTemplate, formatted),
			},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: 0.4,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
