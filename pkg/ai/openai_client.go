package ai

import (
	"context"
	"errors"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAI speaks the chat-completions API through the official SDK. A
// base-URL override lets it run against any OpenAI-compatible gateway
// (OpenRouter and the like).
type openAI struct {
	client openai.Client
	model  string
}

func NewOpenAI(key, baseURL, model string) TextClient {
	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithRequestTimeout(60 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAI{client: openai.NewClient(opts...), model: model}
}

func (c *openAI) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
