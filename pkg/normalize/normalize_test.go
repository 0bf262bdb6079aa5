package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFence_Idempotent(t *testing.T) {
	cases := []string{
		"```json\n{\"a\":1}\n```",
		"```\n{\"a\":1}\n```",
		"{\"a\":1}",
		"  {\"a\":1}  ",
	}
	for _, raw := range cases {
		once := StripFence(raw)
		twice := StripFence(once)
		assert.Equal(t, once, twice)
	}
}

func TestStripFence_JSONAnnotation(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFence("```json\n{\"a\":1}\n```"))
}

func TestChannelResults_Arity(t *testing.T) {
	channels := []string{"Telegram", "Email", "VK"}
	inputs := []string{
		`{"Telegram": [{"body": "a"}], "Email": [{"body": "b"}], "VK": [{"body": "c"}]}`,
		`{"Telegram": [{"body": "a"}]}`,        // missing channels
		`[{"body": "a"}, {"body": "b"}]`,       // array applies to all
		`"just a string"`,                      // bare string
		`this is not valid json at all {{{{{`,  // garbage
	}
	for _, raw := range inputs {
		for _, n := range []int{1, 2, 3} {
			out := ChannelResults(raw, channels, n)
			require.Len(t, out, len(channels), "input %q", raw)
			for _, ch := range channels {
				assert.Len(t, out[ch], n, "input %q channel %s", raw, ch)
			}
		}
	}
}

func TestChannelResults_SingleStringBody(t *testing.T) {
	// fenced object whose channel value is a bare string, N=2
	raw := "```json\n{\"Telegram\": \"single string body\"}\n```"
	out := ChannelResults(raw, []string{"Telegram"}, 2)
	require.Len(t, out["Telegram"], 2)
	assert.Equal(t, "single string body", out["Telegram"][0].Body)
	assert.Equal(t, 7.0, out["Telegram"][0].Score)
	assert.Equal(t, 5.0, out["Telegram"][1].Score)
	assert.Equal(t, "Вариант 2", out["Telegram"][1].Body)
}

func TestChannelResults_ParseFailure(t *testing.T) {
	out := ChannelResults("not valid json at all", []string{"Email"}, 1)
	require.Len(t, out["Email"], 1)
	v := out["Email"][0]
	assert.Equal(t, "Ошибка парсинга. Попробуйте ещё раз.", v.Body)
	assert.Equal(t, 0.0, v.Score)
	require.NotEmpty(t, v.Improvements)
	assert.Contains(t, v.Improvements[0], "Ошибка:")
}

func TestChannelResults_MissingChannelOnly(t *testing.T) {
	raw := `{"Telegram": [{"body": "ok", "score": 9}]}`
	out := ChannelResults(raw, []string{"Telegram", "Email"}, 1)
	assert.Equal(t, "ok", out["Telegram"][0].Body)
	assert.Equal(t, "Не удалось сгенерировать текст для Email", out["Email"][0].Body)
	assert.Equal(t, 0.0, out["Email"][0].Score)
}

func TestChannelResults_CaseInsensitiveSubstringKey(t *testing.T) {
	raw := `{"яндекс.директ": [{"body": "ad"}]}`
	out := ChannelResults(raw, []string{"Директ"}, 1)
	assert.Equal(t, "ad", out["Директ"][0].Body)

	raw = `{"TG": [{"body": "x"}], "telegram_posts": [{"body": "tg"}]}`
	out = ChannelResults(raw, []string{"Telegram"}, 1)
	assert.Equal(t, "tg", out["Telegram"][0].Body)
}

func TestChannelResults_Truncates(t *testing.T) {
	raw := `{"VK": [{"body": "1"}, {"body": "2"}, {"body": "3"}]}`
	out := ChannelResults(raw, []string{"VK"}, 2)
	require.Len(t, out["VK"], 2)
	assert.Equal(t, "1", out["VK"][0].Body)
	assert.Equal(t, "2", out["VK"][1].Body)
}

func TestVariantScores(t *testing.T) {
	// numeric values pass through unchanged, even out of range;
	// absence and non-numeric default to 7.0
	cases := map[string]float64{
		`{"Email": [{"body": "a", "score": 9.5}]}`:    9.5,
		`{"Email": [{"body": "a", "score": "8.1"}]}`:  8.1,
		`{"Email": [{"body": "a", "score": 15}]}`:     15,
		`{"Email": [{"body": "a"}]}`:                  7.0,
		`{"Email": [{"body": "a", "score": "high"}]}`: 7.0,
		`{"Email": [{"body": "a", "score": null}]}`:   7.0,
	}
	for raw, want := range cases {
		out := ChannelResults(raw, []string{"Email"}, 1)
		assert.Equal(t, want, out["Email"][0].Score, raw)
	}
}

func TestVariantBodyFallsBackToText(t *testing.T) {
	raw := `{"Email": [{"text": "from text field", "headline": "h", "cta": "go"}]}`
	v := ChannelResults(raw, []string{"Email"}, 1)["Email"][0]
	assert.Equal(t, "from text field", v.Body)
	assert.Equal(t, "h", v.Headline)
	assert.Equal(t, "go", v.CTA)
}

func TestVariantList(t *testing.T) {
	out := VariantList(`[{"body": "p1"}, {"body": "p2"}]`, 3)
	require.Len(t, out, 3)
	assert.Equal(t, "p1", out[0].Body)
	assert.Equal(t, "Пост 3", out[2].Body)
	assert.Equal(t, 5.0, out[2].Score)

	out = VariantList("broken", 2)
	require.Len(t, out, 2)
	assert.Equal(t, "Ошибка генерации", out[0].Body)
	assert.Equal(t, 0.0, out[0].Score)
}

func TestPlanItems(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	raw := `[{"day": 1, "topic": "Запуск", "channel": "Telegram", "body": "пост"}]`
	items, ok := PlanItems(raw, 3, []string{"Telegram", "VK"}, today)
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, "Запуск", items[0].Topic)
	assert.Equal(t, "2026-03-01", items[0].Date)
	// filled items rotate channels and carry concrete dates
	assert.Equal(t, "VK", items[1].Channel)
	assert.Equal(t, "2026-03-02", items[1].Date)
	assert.Equal(t, "Контент", items[1].Draft.Body)

	_, ok = PlanItems("not json", 3, []string{"Telegram"}, today)
	assert.False(t, ok)
}

func TestHashtags(t *testing.T) {
	set := Hashtags("```json\n{\"hashtags\": [\"#а\"], \"selling_hashtags\": [\"#б\"]}\n```")
	assert.Equal(t, []string{"#а"}, set.Hashtags)
	assert.Equal(t, []string{"#б"}, set.SellingHashtags)

	set = Hashtags("oops")
	assert.NotNil(t, set.Hashtags)
	assert.NotNil(t, set.SellingHashtags)
	assert.Empty(t, set.Hashtags)
}

func TestAudience(t *testing.T) {
	p, ok := Audience(`{"age_range": "18-25", "interests": ["спорт"]}`)
	require.True(t, ok)
	assert.Equal(t, "18-25", p.AgeRange)
	assert.Equal(t, "все", p.Gender)

	p, ok = Audience(`{}`)
	require.True(t, ok)
	assert.Equal(t, "25-45 лет", p.AgeRange)

	_, ok = Audience("free text answer")
	assert.False(t, ok)
}

func TestBrandAnalysis_NonJSONKeptAsSummary(t *testing.T) {
	a := BrandAnalysis("Стиль дружелюбный, много эмодзи.")
	assert.Equal(t, "Стиль дружелюбный, много эмодзи.", a.Summary)
	assert.Equal(t, "Не удалось определить", a.Tone)

	a = BrandAnalysis(`{"tone": "экспертный", "summary": "ок"}`)
	assert.Equal(t, "экспертный", a.Tone)
	assert.Equal(t, "ок", a.Summary)
}
