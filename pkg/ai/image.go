package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

const openRouterChatURL = "https://openrouter.ai/api/v1/chat/completions"

// ImageClient issues a single image-generation request and returns an
// image reference: either an inline base64 data URI or an external URL.
type ImageClient interface {
	Generate(ctx context.Context, prompt, channel string) (string, error)
}

// Placeholder is the deterministic offline image reference.
func Placeholder(prompt string) string {
	p := []rune(prompt)
	if len(p) > 20 {
		p = p[:20]
	}
	return "https://placehold.co/800x600/667eea/white?text=" + url.QueryEscape(string(p))
}

// openRouterImage drives an image-capable model over the OpenRouter
// chat API. The model may reply with the image embedded in free text
// or in structured content blocks; both forms are extracted.
type openRouterImage struct {
	key   string
	model string
	http  *http.Client
}

func NewOpenRouterImage(key, model string) ImageClient {
	return &openRouterImage{key: key, model: model, http: &http.Client{Timeout: 120 * time.Second}}
}

var (
	base64ImageRX = regexp.MustCompile(`data:image/[^;]+;base64,[A-Za-z0-9+/=]+`)
	imageURLRX    = regexp.MustCompile(`https?://[^\s"']+\.(png|jpg|jpeg|gif|webp)`)
)

func (c *openRouterImage) Generate(ctx context.Context, prompt, channel string) (string, error) {
	enhanced := fmt.Sprintf("Generate a professional marketing image: %s. Style: modern, high quality, for %s social media.", prompt, channel)

	body := map[string]any{
		"model":      c.model,
		"modalities": []string{"image", "text"},
		"messages": []map[string]string{
			{"role": "user", "content": enhanced},
		},
	}
	b, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openRouterChatURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusPaymentRequired {
		return "", fmt.Errorf("image: insufficient credits")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image: status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content json.RawMessage `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("image: empty choices")
	}

	if ref := ExtractImageRef(out.Choices[0].Message.Content); ref != "" {
		return ref, nil
	}
	return "", fmt.Errorf("image: no image in response")
}

// ExtractImageRef pulls an image reference out of a chat message
// content value, which may be a plain string or a list of typed blocks.
func ExtractImageRef(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		if m := base64ImageRX.FindString(s); m != "" {
			return m
		}
		return imageURLRX.FindString(s)
	}

	var blocks []map[string]any
	if err := json.Unmarshal(content, &blocks); err != nil {
		return ""
	}
	for _, item := range blocks {
		switch item["type"] {
		case "image_url":
			if iu, ok := item["image_url"].(map[string]any); ok {
				if u, ok := iu["url"].(string); ok {
					return u
				}
			}
		case "image":
			switch img := item["image"].(type) {
			case string:
				return img
			case map[string]any:
				if u, ok := img["url"].(string); ok {
					return u
				}
			}
		}
	}
	return ""
}
