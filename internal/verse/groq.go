package verse

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrMissingAPIKey indicates the Groq credential is not configured.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY missing")

// GroqClient is a ChatClient backed by Groq's OpenAI-compatible endpoint.
type GroqClient struct {
	client     openai.Client
	model      string
	configured bool
}

func NewGroqClient(apiKey, baseURL, model string) *GroqClient {
	return &GroqClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		model:      model,
		configured: apiKey != "",
	}
}

func (g *GroqClient) Complete(ctx context.Context, system, user string, temperature float64) (string, error) {
	if !g.configured {
		return "", ErrMissingAPIKey
	}
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
	if temperature >= 0 {
		params.Temperature = openai.Float(temperature)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
