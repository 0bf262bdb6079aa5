package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const yandexCompletionURL = "https://llm.api.cloud.yandex.net/foundationModels/v1/completion"

// yandexGPT speaks the Yandex Foundation Models completion API. No
// official Go SDK exists for it, so the request/response shapes are
// typed out by hand.
type yandexGPT struct {
	key  string
	http *http.Client
}

func NewYandexGPT(key string) TextClient {
	return &yandexGPT{key: key, http: &http.Client{Timeout: 90 * time.Second}}
}

type yandexMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type yandexRequest struct {
	ModelURI          string `json:"modelUri"`
	CompletionOptions struct {
		Stream      bool    `json:"stream"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"maxTokens"`
	} `json:"completionOptions"`
	Messages []yandexMessage `json:"messages"`
}

type yandexResponse struct {
	Result struct {
		Alternatives []struct {
			Message yandexMessage `json:"message"`
		} `json:"alternatives"`
	} `json:"result"`
}

func (c *yandexGPT) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	body := yandexRequest{
		ModelURI: fmt.Sprintf("gpt://%s/yandexgpt/latest", c.key),
		Messages: []yandexMessage{
			{Role: "system", Text: system},
			{Role: "user", Text: user},
		},
	}
	body.CompletionOptions.Temperature = temperature
	body.CompletionOptions.MaxTokens = maxTokens

	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, yandexCompletionURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Api-Key "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("yandexgpt: status %d", resp.StatusCode)
	}

	var out yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Result.Alternatives) == 0 {
		return "", fmt.Errorf("yandexgpt: empty alternatives")
	}
	return out.Result.Alternatives[0].Message.Text, nil
}
