package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/liveem/livem-core/pkg/ai"
)

const (
	NAME = "gemini"

	DEFAULT_CHAT_MODEL = "gemini-2.5-flash"
)

type Driver struct {
	token string
	model ai.ModelName
}

func New(token string, model ai.ModelName) *Driver {
	if model.ChatModel == "" {
		model.ChatModel = DEFAULT_CHAT_MODEL
	}
	return &Driver{
		token: token,
		model: model,
	}
}

func (s *Driver) Lang() string {
	return ai.MODEL_BASE_LANGUAGE_EN
}

// Generate opens a client per call. Review generation happens at most
// once a week per user, keeping a long-lived connection is not worth it.
func (s *Driver) Generate(ctx context.Context, prompt string) (ai.GenerateResponse, error) {
	slog.Debug("Generate", slog.String("driver", NAME), slog.String("model", s.model.ChatModel))

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.token))
	if err != nil {
		return ai.GenerateResponse{}, fmt.Errorf("Error creating gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.model.ChatModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return ai.GenerateResponse{}, fmt.Errorf("Error generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ai.GenerateResponse{}, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	res := ai.GenerateResponse{
		Received: sb.String(),
		Model:    s.model.ChatModel,
	}
	if resp.UsageMetadata != nil {
		res.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		res.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return res, nil
}
