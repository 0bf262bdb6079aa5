package serviceImp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/burnashoff2016/Yandex-AI/config"
	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/service"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

type fakeLLM struct {
	reply func(user string) (string, error)
	calls int
}

func (f *fakeLLM) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	f.calls++
	return f.reply(user)
}

type fakeVoices struct{}

func (fakeVoices) Guideline(channel string) string { return prompt.DefaultBrandVoice }

type fakeImages struct {
	resolve func(prompt string) (string, error)
}

func (f *fakeImages) Resolve(ctx context.Context, p, channel string) (string, error) {
	if f.resolve == nil {
		return "", errors.New("no resolver")
	}
	return f.resolve(p)
}

type memHistory struct {
	created []*entities.Generation
}

func (m *memHistory) Create(g *entities.Generation) error {
	g.ID = uint(len(m.created) + 1)
	m.created = append(m.created, g)
	return nil
}
func (m *memHistory) ListByUser(uint, int, int) ([]entities.Generation, error) { return nil, nil }
func (m *memHistory) FindByID(uint, uint) (*entities.Generation, error)        { return nil, nil }
func (m *memHistory) MarkSaved(uint, uint, bool) error                         { return nil }
func (m *memHistory) Delete(uint, uint) error                                  { return nil }

func newTestSvc(cfg config.AppConfig, llm *fakeLLM, images service.ImageResolver, hist *memHistory) *Svc {
	return New(cfg, llm, fakeVoices{}, images, hist, zap.NewNop())
}

func TestGenerate_OfflineDeterministic(t *testing.T) {
	req := types.GenerateRequest{
		Description: "Открытие кофейни",
		Channels:    []string{prompt.ChannelTelegram, prompt.ChannelZen},
		NumVariants: 2,
	}
	llm := &fakeLLM{reply: func(string) (string, error) { return "", errors.New("must not be called") }}
	s := newTestSvc(config.AppConfig{MockMode: true}, llm, nil, &memHistory{})

	a, err := s.Generate(context.Background(), 1, req)
	require.NoError(t, err)
	b, err := s.Generate(context.Background(), 1, req)
	require.NoError(t, err)

	aj, _ := json.Marshal(a.Variants)
	bj, _ := json.Marshal(b.Variants)
	assert.Equal(t, string(aj), string(bj))
	assert.Zero(t, llm.calls)

	require.Len(t, a.Variants[prompt.ChannelTelegram], 2)
	for _, v := range a.Variants[prompt.ChannelTelegram] {
		assert.NotEmpty(t, v.Body)
		assert.Greater(t, v.Score, 0.0)
	}
}

func TestGenerate_ProviderFailureDegradesToMock(t *testing.T) {
	req := types.GenerateRequest{Description: "x", Channels: []string{prompt.ChannelEmail}, NumVariants: 1}
	llm := &fakeLLM{reply: func(string) (string, error) { return "", errors.New("timeout") }}
	hist := &memHistory{}
	s := newTestSvc(config.AppConfig{}, llm, nil, hist)

	g, err := s.Generate(context.Background(), 7, req)
	require.NoError(t, err)
	assert.Equal(t, 1, llm.calls)
	require.Len(t, g.Variants[prompt.ChannelEmail], 1)
	assert.NotEmpty(t, g.Variants[prompt.ChannelEmail][0].Body)
	require.Len(t, hist.created, 1)
	assert.Equal(t, uint(7), hist.created[0].UserID)
}

func TestGenerate_NormalizesProviderOutput(t *testing.T) {
	raw := `{"Email": [{"headline": "h", "body": "b", "score": 9.1}]}`
	llm := &fakeLLM{reply: func(string) (string, error) { return raw, nil }}
	s := newTestSvc(config.AppConfig{}, llm, nil, &memHistory{})

	g, err := s.Generate(context.Background(), 1, types.GenerateRequest{
		Description: "x", Channels: []string{prompt.ChannelEmail}, NumVariants: 2,
	})
	require.NoError(t, err)
	vars := g.Variants[prompt.ChannelEmail]
	require.Len(t, vars, 2)
	assert.Equal(t, 9.1, vars[0].Score)
	assert.Equal(t, 5.0, vars[1].Score) // padded
}

func TestGenerate_ImageFailureLeavesVariantIntact(t *testing.T) {
	raw := `{"Дзен": [{"headline": "h", "body": "b", "cta": "go", "score": 8.0, "image_prompt": "coffee shop"}]}`
	llm := &fakeLLM{reply: func(string) (string, error) { return raw, nil }}
	images := &fakeImages{resolve: func(string) (string, error) { return "", errors.New("image api down") }}
	s := newTestSvc(config.AppConfig{}, llm, images, &memHistory{})

	g, err := s.Generate(context.Background(), 1, types.GenerateRequest{
		Description: "x", Channels: []string{prompt.ChannelZen}, NumVariants: 1,
	})
	require.NoError(t, err)
	v := g.Variants[prompt.ChannelZen][0]
	assert.Equal(t, "h", v.Headline)
	assert.Equal(t, "b", v.Body)
	assert.Equal(t, "go", v.CTA)
	assert.Equal(t, 8.0, v.Score)
	assert.Empty(t, v.ImageURL)
}

func TestGenerate_ImageResolved(t *testing.T) {
	raw := `{"Дзен": [{"body": "b", "image_prompt": "coffee"}]}`
	llm := &fakeLLM{reply: func(string) (string, error) { return raw, nil }}
	images := &fakeImages{resolve: func(p string) (string, error) { return "https://img.test/" + p + ".png", nil }}
	s := newTestSvc(config.AppConfig{}, llm, images, &memHistory{})

	g, err := s.Generate(context.Background(), 1, types.GenerateRequest{
		Description: "x", Channels: []string{prompt.ChannelZen}, NumVariants: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img.test/coffee.png", g.Variants[prompt.ChannelZen][0].ImageURL)
}

func TestStream_OrderAndTerminalEvent(t *testing.T) {
	channels := []string{prompt.ChannelDirect, prompt.ChannelTelegram, prompt.ChannelEmail}
	llm := &fakeLLM{reply: func(user string) (string, error) {
		// the Telegram call fails; its event must still appear, in order
		if containsChannel(user, prompt.ChannelTelegram) {
			return "", errors.New("boom")
		}
		return `[{"body": "ok"}]`, nil
	}}
	hist := &memHistory{}
	s := newTestSvc(config.AppConfig{}, llm, nil, hist)

	var events []service.Event
	emit := func(ev service.Event) error {
		events = append(events, ev)
		return nil
	}
	g, err := s.Stream(context.Background(), 1, types.GenerateRequest{
		Description: "x", Channels: channels, NumVariants: 1,
	}, emit)
	require.NoError(t, err)

	require.Len(t, events, len(channels)+1)
	for i, ch := range channels {
		assert.Equal(t, "channel_complete", events[i].Name)
		payload := events[i].Data.(channelPayload)
		assert.Equal(t, ch, payload.Channel)
		require.Len(t, payload.Variants, 1)
		assert.NotEmpty(t, payload.Variants[0].Body)
	}
	last := events[len(events)-1]
	assert.Equal(t, "done", last.Name)
	assert.Equal(t, g.ID, last.Data.(donePayload).GenerationID)

	// the aggregate persisted once, with every channel present
	require.Len(t, hist.created, 1)
	assert.Len(t, hist.created[0].Variants, len(channels))
}

func TestStream_PersistsDespiteEmitFailure(t *testing.T) {
	llm := &fakeLLM{reply: func(string) (string, error) { return `[{"body": "ok"}]`, nil }}
	hist := &memHistory{}
	s := newTestSvc(config.AppConfig{}, llm, nil, hist)

	emit := func(service.Event) error { return errors.New("client gone") }
	g, err := s.Stream(context.Background(), 1, types.GenerateRequest{
		Description: "x", Channels: []string{prompt.ChannelVK}, NumVariants: 1,
	}, emit)
	require.NoError(t, err)
	require.Len(t, hist.created, 1)
	assert.Equal(t, g.ID, hist.created[0].ID)
}

func containsChannel(user, channel string) bool {
	return strings.HasSuffix(user, "ТОЛЬКО для канала: "+channel)
}

func TestHashtags_FallbackIsDeterministic(t *testing.T) {
	llm := &fakeLLM{reply: func(string) (string, error) { return "", errors.New("down") }}
	s := newTestSvc(config.AppConfig{}, llm, nil, &memHistory{})

	a := s.Hashtags(context.Background(), "Продаём отличный кофе каждому гостю", "", 6)
	b := s.Hashtags(context.Background(), "Продаём отличный кофе каждому гостю", "", 6)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a.SellingHashtags)
}

func TestSeries_ArityFromProvider(t *testing.T) {
	llm := &fakeLLM{reply: func(string) (string, error) {
		return `[{"headline": "a", "body": "1"}, {"body": "2"}]`, nil
	}}
	s := newTestSvc(config.AppConfig{}, llm, nil, &memHistory{})

	posts := s.Series(context.Background(), types.SeriesRequest{Topic: "тема", Channel: prompt.ChannelTelegram, Count: 4})
	require.Len(t, posts, 4)
	assert.Equal(t, "1", posts[0].Body)
	assert.Equal(t, "Пост 4", posts[3].Body)
}

func TestContentPlan_FallsBackOnBadJSON(t *testing.T) {
	llm := &fakeLLM{reply: func(string) (string, error) { return "sorry, cannot do json", nil }}
	s := newTestSvc(config.AppConfig{}, llm, nil, &memHistory{})

	items := s.ContentPlan(context.Background(), types.ContentPlanRequest{
		Product: "кофейня", DurationDays: 5, Channels: []string{prompt.ChannelTelegram, prompt.ChannelVK},
	})
	require.Len(t, items, 5)
	assert.Contains(t, items[0].Draft.Headline, "кофейня")
	assert.Equal(t, prompt.ChannelVK, items[1].Channel) // rotation
}

func TestImprove_MockActions(t *testing.T) {
	s := newTestSvc(config.AppConfig{MockMode: true}, &fakeLLM{reply: func(string) (string, error) { return "", nil }}, nil, &memHistory{})

	long := "один два три четыре пять шесть семь восемь девять десять одиннадцать двенадцать"
	short := s.Improve(context.Background(), long, "", types.ImproveShorten, "")
	assert.Less(t, len(short), len(long))

	withEmoji := s.Improve(context.Background(), "текст", "", types.ImproveEmoji, "")
	assert.Equal(t, withEmoji, s.Improve(context.Background(), "текст", "", types.ImproveEmoji, ""))
	assert.Contains(t, withEmoji, "текст")

	cta := s.Improve(context.Background(), "просто текст", "", types.ImproveCTA, "")
	assert.Contains(t, cta, "!")
}

func TestAudience_UsesProviderProfile(t *testing.T) {
	llm := &fakeLLM{reply: func(string) (string, error) {
		return `{"age_range": "30-40 лет", "gender": "женщины", "interests": ["дом"]}`, nil
	}}
	s := newTestSvc(config.AppConfig{}, llm, nil, &memHistory{})

	p := s.Audience(context.Background(), "товар", "описание")
	assert.Equal(t, "30-40 лет", p.AgeRange)
	assert.Equal(t, "женщины", p.Gender)
}
