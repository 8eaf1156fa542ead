package hints

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"leetcode-digest/internal/domain/model"
	"leetcode-digest/internal/domain/ports"
)

const (
	temperature = 1.0
	topP        = 1.0
)

// Settings configures the OpenAI-compatible completion endpoint.
type Settings struct {
	APIKey     string
	BaseURL    string
	Model      string
	Language   string
	Timeout    time.Duration
	MaxRetries int
}

// OpenAIGenerator asks a chat-completion model for brute/better/optimal approaches.
type OpenAIGenerator struct {
	model    string
	language string
	opts     []option.RequestOption
	logger   ports.Logger
}

var _ ports.HintGenerator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator validates settings and builds a generator.
func NewOpenAIGenerator(cfg Settings, logger ports.Logger) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("completion api key missing; set GITHUB_TOKEN")
	}
	if cfg.Model == "" {
		return nil, errors.New("completion model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &OpenAIGenerator{
		model:    cfg.Model,
		language: cfg.Language,
		opts:     opts,
		logger:   logger,
	}, nil
}

// Generate returns the trimmed hint block for q.
func (g *OpenAIGenerator) Generate(ctx context.Context, q model.Question) (string, error) {
	client := openai.NewClient(g.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(g.model),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(buildPrompt(q, g.language))},
		Temperature: openai.Float(temperature),
		TopP:        openai.Float(topP),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty choices")
	}

	hint := strings.TrimSpace(resp.Choices[0].Message.Content)
	if g.logger != nil {
		g.logger.Info(ctx, "hints generated", "title", q.Title, "length", len(hint))
	}
	return hint, nil
}

func buildPrompt(q model.Question, language string) string {
	if language == "" {
		language = "cpp"
	}
	return fmt.Sprintf(`
Given a LeetCode problem titled: "%s" with topics: %s, provide in %s:

1. Brute-force approach
2. A better approach (if any)
3. Optimal approach

Reply in this format:
Brute: ...
Better: ...
Optimal: ...
`, q.Title, q.Topics, language)
}
