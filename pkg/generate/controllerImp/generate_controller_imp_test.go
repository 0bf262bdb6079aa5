package controllerImp

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/service"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

type stubContent struct {
	streamed []string
}

func (s *stubContent) Generate(ctx context.Context, userID uint, req types.GenerateRequest) (*entities.Generation, error) {
	req.Normalize()
	variants := map[string][]entities.Variant{}
	for _, ch := range req.Channels {
		variants[ch] = make([]entities.Variant, req.NumVariants)
	}
	return &entities.Generation{ID: 1, UserID: userID, Channels: req.Channels, Variants: variants}, nil
}

func (s *stubContent) Stream(ctx context.Context, userID uint, req types.GenerateRequest, emit service.EmitFunc) (*entities.Generation, error) {
	for _, ch := range req.Channels {
		s.streamed = append(s.streamed, ch)
		if err := emit(service.Event{Name: "channel_complete", Data: map[string]string{"channel": ch}}); err != nil {
			return nil, err
		}
	}
	if err := emit(service.Event{Name: "done", Data: map[string]uint{"generation_id": 5}}); err != nil {
		return nil, err
	}
	return &entities.Generation{ID: 5}, nil
}

func (s *stubContent) Hashtags(ctx context.Context, text, channel string, count int) types.HashtagSet {
	return types.HashtagSet{Hashtags: []string{"#a"}, SellingHashtags: []string{"#b"}}
}

func (s *stubContent) Series(ctx context.Context, req types.SeriesRequest) []entities.Variant {
	return make([]entities.Variant, req.Count)
}

func (s *stubContent) ContentPlan(ctx context.Context, req types.ContentPlanRequest) []types.ContentPlanItem {
	return make([]types.ContentPlanItem, req.DurationDays)
}

func (s *stubContent) Audience(ctx context.Context, product, description string) types.AudienceProfile {
	return types.AudienceProfile{AgeRange: "25-45 лет"}
}

func (s *stubContent) Improve(ctx context.Context, text, channel, action, targetTone string) string {
	return text + " (improved)"
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &entities.User{ID: 1, Email: "u@example.com"})
	return c, rec
}

func TestGenerate_RejectsUnknownChannel(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/generate",
		`{"description": "новая кофейня в центре", "channels": ["Одноклассники"], "num_variants": 1}`)
	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid channel: Одноклассники")
}

func TestGenerate_RejectsEmptyChannels(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/generate",
		`{"description": "новая кофейня в центре", "channels": []}`)
	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_OK(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/generate",
		`{"description": "новая кофейня в центре", "channels": ["Telegram"], "num_variants": 2}`)
	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Telegram")
}

func TestGenerateStream_SSEFraming(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/generate/stream",
		`{"description": "новая кофейня в центре", "channels": ["Telegram", "VK"], "num_variants": 1}`)
	require.NoError(t, h.GenerateStream(c))

	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	first := strings.Index(body, "event: channel_complete")
	last := strings.Index(body, "event: done")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, last, first)
	assert.Contains(t, body, "generation_id")
	// frames are blank-line separated
	assert.Contains(t, body, "\n\n")
}

func TestImprove_InvalidAction(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/improve/translate", `{"text": "x"}`)
	c.SetParamNames("action")
	c.SetParamValues("translate")
	require.NoError(t, h.Improve(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid action. Valid values: shorten, emoji, tone, cta")
}

func TestImprove_ReturnsOriginalAndImproved(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/improve/shorten", `{"text": "исходный текст поста"}`)
	c.SetParamNames("action")
	c.SetParamValues("shorten")
	require.NoError(t, h.Improve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "original_text")
	assert.Contains(t, rec.Body.String(), "(improved)")
}

func TestHashtags_CountClamped(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/hashtags/generate",
		`{"text": "пост про скидки на кофе", "count": 100}`)
	require.NoError(t, h.Hashtags(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContentPlanExport_ReturnsWorkbook(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/content-plan/export",
		`{"product": "кофейня у метро", "duration_days": 3, "channels": ["`+prompt.ChannelTelegram+`"]}`)
	require.NoError(t, h.ContentPlanExport(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "content_plan.xlsx")

	x, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer x.Close()
	rows, err := x.GetRows("Контент-план")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Contains(t, rows[0], "Оценка")
}

func TestGenerate_RejectsShortDescription(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/generate",
		`{"description": "x", "channels": ["Telegram"]}`)
	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "description must be at least 10 characters")
}

func TestGenerate_RejectsOverlongOffer(t *testing.T) {
	h := New(&stubContent{})
	offer := strings.Repeat("о", 201)
	c, rec := newTestContext(t, http.MethodPost, "/api/generate",
		`{"description": "новая кофейня в центре", "channels": ["Telegram"], "offer": "`+offer+`"}`)
	require.NoError(t, h.Generate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "offer must be at most 200 characters")
}

func TestGenerateStream_RejectsShortDescription(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/generate/stream",
		`{"description": "кратко", "channels": ["Telegram"]}`)
	require.NoError(t, h.GenerateStream(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "event:")
}

func TestHashtags_RejectsShortText(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/hashtags/generate", `{"text": "кофе"}`)
	require.NoError(t, h.Hashtags(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "text must be at least 10 characters")
}

func TestSeries_RejectsShortTopic(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/series/generate",
		`{"topic": "кофе", "channel": "Telegram"}`)
	require.NoError(t, h.Series(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "topic must be at least 10 characters")
}

func TestContentPlan_RejectsShortProduct(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/content-plan/generate",
		`{"product": "кофе", "channels": ["Telegram"]}`)
	require.NoError(t, h.ContentPlan(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "product must be at least 10 characters")
}

func TestAudience_RejectsShortProduct(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/audience/analyze", `{"product": "кофе"}`)
	require.NoError(t, h.Audience(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "product must be at least 10 characters")
}

func TestImprove_RejectsShortText(t *testing.T) {
	h := New(&stubContent{})
	c, rec := newTestContext(t, http.MethodPost, "/api/improve/shorten", `{"text": "кофе"}`)
	c.SetParamNames("action")
	c.SetParamValues("shorten")
	require.NoError(t, h.Improve(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "text must be at least 10 characters")
}
