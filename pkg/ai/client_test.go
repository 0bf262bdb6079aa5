package ai

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burnashoff2016/Yandex-AI/config"
)

func TestSelect_MockModeWinsOverKeys(t *testing.T) {
	cfg := config.AppConfig{MockMode: true, OpenAIAPIKey: "sk-x", YandexAPIKey: "y", LLMProvider: "yandex"}
	_, err := Select(cfg).Complete(context.Background(), "s", "u", 0.5, 100)
	assert.ErrorIs(t, err, ErrOffline)
}

func TestSelect_YandexNeedsExplicitProvider(t *testing.T) {
	cfg := config.AppConfig{LLMProvider: "yandex", YandexAPIKey: "y-key"}
	_, ok := Select(cfg).(*yandexGPT)
	assert.True(t, ok)

	// yandex key without explicit selection falls through to OpenAI
	cfg = config.AppConfig{LLMProvider: "openai", YandexAPIKey: "y-key", OpenAIAPIKey: "sk-x"}
	_, ok = Select(cfg).(*yandexGPT)
	assert.False(t, ok)
}

func TestSelect_NoKeysFallsBackToOffline(t *testing.T) {
	_, err := Select(config.AppConfig{LLMProvider: "openai"}).Complete(context.Background(), "s", "u", 0.5, 100)
	assert.ErrorIs(t, err, ErrOffline)
}

func TestPlaceholder_TruncatesTo20Runes(t *testing.T) {
	long := "очень длинный промпт для изображения кофейни"
	ref := Placeholder(long)
	assert.Contains(t, ref, "placehold.co")
	// URL-encoded payload decodes back to the first 20 runes
	short := Placeholder(string([]rune(long)[:20]))
	assert.Equal(t, short, ref)
}

func TestPlaceholder_Deterministic(t *testing.T) {
	assert.Equal(t, Placeholder("кофе"), Placeholder("кофе"))
}

func TestExtractImageRef_PlainStringForms(t *testing.T) {
	b64, _ := json.Marshal("вот картинка data:image/png;base64,aGVsbG8= готово")
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", ExtractImageRef(b64))

	urlStr, _ := json.Marshal("image here: https://cdn.example.com/pic.png enjoy")
	assert.Equal(t, "https://cdn.example.com/pic.png", ExtractImageRef(urlStr))

	none, _ := json.Marshal("no image at all")
	assert.Equal(t, "", ExtractImageRef(none))
}

func TestExtractImageRef_StructuredBlocks(t *testing.T) {
	blocks := json.RawMessage(`[{"type": "text", "text": "here"}, {"type": "image_url", "image_url": {"url": "https://x.test/a.png"}}]`)
	assert.Equal(t, "https://x.test/a.png", ExtractImageRef(blocks))

	blocks = json.RawMessage(`[{"type": "image", "image": "data:image/png;base64,QUJD"}]`)
	assert.Equal(t, "data:image/png;base64,QUJD", ExtractImageRef(blocks))

	blocks = json.RawMessage(`[{"type": "image", "image": {"url": "https://x.test/b.jpg"}}]`)
	assert.Equal(t, "https://x.test/b.jpg", ExtractImageRef(blocks))
}

func TestExtractImageRef_Garbage(t *testing.T) {
	require.Equal(t, "", ExtractImageRef(json.RawMessage(`12345`)))
	require.Equal(t, "", ExtractImageRef(json.RawMessage(`{}`)))
}
