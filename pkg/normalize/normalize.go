// Package normalize turns raw provider text into the fixed result
// schema. Every function here is total: malformed input produces
// placeholder values, never an error for the caller to handle.
package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
)

const (
	defaultScore = 7.0
	fillerScore  = 5.0
)

// StripFence removes a leading/trailing markdown code fence (```,
// optionally annotated ```json) around the payload. Idempotent:
// stripping twice equals stripping once.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[7:]
	}
	if strings.HasPrefix(s, "```") {
		s = s[3:]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}

// matchChannelKey finds the first object key matching a channel:
// case-insensitive, either string may contain the other. Keys are
// scanned in sorted order so the result is deterministic. Known
// limitation: when two requested channels are substrings of each other
// the first matching key wins for both.
func matchChannelKey(obj map[string]any, channel string) (any, bool) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	chLow := strings.ToLower(channel)
	for _, k := range keys {
		kLow := strings.ToLower(k)
		if strings.Contains(kLow, chLow) || strings.Contains(chLow, kLow) {
			return obj[k], true
		}
	}
	return nil, false
}

// coerceScore accepts numbers (and numeric strings) as-is, even out of
// the 1..10 range the prompt asks for; absence or non-numeric values
// fall back to the fixed default.
func coerceScore(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return defaultScore
}

func stringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// asList wraps any non-list payload into a single-element list.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

// variantFrom decodes one payload entry: plain text becomes a variant
// body with the default score; objects get permissive field extraction
// (body falls back to "text"). Anything else is skipped.
func variantFrom(v any) (entities.Variant, bool) {
	switch p := v.(type) {
	case string:
		return entities.Variant{Body: p, Score: defaultScore}, true
	case map[string]any:
		body := str(p["body"])
		if body == "" {
			body = str(p["text"])
		}
		out := entities.Variant{
			Headline:     str(p["headline"]),
			Body:         body,
			CTA:          str(p["cta"]),
			Hashtags:     stringList(p["hashtags"]),
			ImagePrompt:  str(p["image_prompt"]),
			Improvements: stringList(p["improvements"]),
		}
		if sc, ok := p["score"]; ok {
			out.Score = coerceScore(sc)
		} else {
			out.Score = defaultScore
		}
		return out, true
	}
	return entities.Variant{}, false
}

func filler(position int) entities.Variant {
	return entities.Variant{
		Body:         fmt.Sprintf("Вариант %d", position),
		Score:        fillerScore,
		Improvements: []string{"Дополнительный вариант"},
	}
}

func pad(variants []entities.Variant, n int) []entities.Variant {
	for len(variants) < n {
		variants = append(variants, filler(len(variants)+1))
	}
	return variants
}

func parseErrVariants(err error, n int) []entities.Variant {
	msg := err.Error()
	if len(msg) > 50 {
		msg = msg[:50]
	}
	out := make([]entities.Variant, n)
	for i := range out {
		out[i] = entities.Variant{
			Body:         "Ошибка парсинга. Попробуйте ещё раз.",
			Score:        0,
			Improvements: []string{"Ошибка: " + msg},
		}
	}
	return out
}

func missingChannelVariants(channel string, n int) []entities.Variant {
	out := make([]entities.Variant, n)
	for i := range out {
		out[i] = entities.Variant{
			Body:         "Не удалось сгенерировать текст для " + channel,
			Score:        0,
			Improvements: []string{"Попробуйте перегенерировать"},
		}
	}
	return out
}

func decodePayload(raw string, n int, channels []string) (any, map[string][]entities.Variant) {
	var parsed any
	if err := json.Unmarshal([]byte(StripFence(raw)), &parsed); err != nil {
		failed := make(map[string][]entities.Variant, len(channels))
		for _, ch := range channels {
			failed[ch] = parseErrVariants(err, n)
		}
		return nil, failed
	}
	return parsed, nil
}

// ChannelResults parses channel-keyed provider output into exactly one
// entry per requested channel with exactly n variants each. Unparseable
// input yields failure placeholders for every channel; a missing
// channel key yields placeholders for that channel only.
func ChannelResults(raw string, channels []string, n int) map[string][]entities.Variant {
	parsed, failed := decodePayload(raw, n, channels)
	if failed != nil {
		return failed
	}

	result := make(map[string][]entities.Variant, len(channels))
	for _, ch := range channels {
		var payload any
		switch p := parsed.(type) {
		case map[string]any:
			v, ok := matchChannelKey(p, ch)
			if !ok {
				result[ch] = missingChannelVariants(ch, n)
				continue
			}
			payload = v
		default:
			// arrays and bare strings apply to every requested channel
			payload = parsed
		}

		variants := make([]entities.Variant, 0, n)
		for _, item := range asList(payload) {
			if len(variants) == n {
				break
			}
			if v, ok := variantFrom(item); ok {
				variants = append(variants, v)
			}
		}
		result[ch] = pad(variants, n)
	}
	return result
}

// ChannelVariants is the single-channel form used by the streaming
// path; it applies the same skeleton to one channel.
func ChannelVariants(raw, channel string, n int) []entities.Variant {
	return ChannelResults(raw, []string{channel}, n)[channel]
}

// VariantList parses flat-list output (post series) into exactly count
// variants.
func VariantList(raw string, count int) []entities.Variant {
	var parsed any
	if err := json.Unmarshal([]byte(StripFence(raw)), &parsed); err != nil {
		out := make([]entities.Variant, count)
		for i := range out {
			out[i] = entities.Variant{Body: "Ошибка генерации", Score: 0}
		}
		return out
	}

	variants := make([]entities.Variant, 0, count)
	for _, item := range asList(parsed) {
		if len(variants) == count {
			break
		}
		if v, ok := variantFrom(item); ok {
			variants = append(variants, v)
		}
	}
	for len(variants) < count {
		variants = append(variants, entities.Variant{
			Body:  fmt.Sprintf("Пост %d", len(variants)+1),
			Score: fillerScore,
		})
	}
	return variants
}

// PlanItems parses content-plan output into exactly days items with
// concrete dates counted from today and channels rotated on fill. The
// second return value is false when the input is not valid JSON.
func PlanItems(raw string, days int, channels []string, today time.Time) ([]types.ContentPlanItem, bool) {
	var parsed any
	if err := json.Unmarshal([]byte(StripFence(raw)), &parsed); err != nil {
		return nil, false
	}

	items := make([]types.ContentPlanItem, 0, days)
	for i, entry := range asList(parsed) {
		if len(items) == days {
			break
		}
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		day := i + 1
		if d, ok := obj["day"].(float64); ok {
			day = int(d)
		}
		topic := str(obj["topic"])
		if topic == "" {
			topic = fmt.Sprintf("Тема %d", i+1)
		}
		channel := str(obj["channel"])
		if channel == "" {
			channel = channels[i%len(channels)]
		}
		draft, _ := variantFrom(entry)
		draft.ImagePrompt = "" // plan drafts carry no image prompts
		items = append(items, types.ContentPlanItem{
			Day:     day,
			Date:    today.AddDate(0, 0, day-1).Format("2006-01-02"),
			Topic:   topic,
			Channel: channel,
			Draft:   draft,
		})
	}

	for len(items) < days {
		i := len(items)
		items = append(items, types.ContentPlanItem{
			Day:     i + 1,
			Date:    today.AddDate(0, 0, i).Format("2006-01-02"),
			Topic:   fmt.Sprintf("Тема %d", i+1),
			Channel: channels[i%len(channels)],
			Draft:   entities.Variant{Body: "Контент", Score: fillerScore},
		})
	}
	return items, true
}

// Hashtags parses the two hashtag lists; malformed input yields empty
// lists rather than an error.
func Hashtags(raw string) types.HashtagSet {
	var parsed struct {
		Hashtags        []string `json:"hashtags"`
		SellingHashtags []string `json:"selling_hashtags"`
	}
	if err := json.Unmarshal([]byte(StripFence(raw)), &parsed); err != nil {
		return types.HashtagSet{Hashtags: []string{}, SellingHashtags: []string{}}
	}
	out := types.HashtagSet{Hashtags: parsed.Hashtags, SellingHashtags: parsed.SellingHashtags}
	if out.Hashtags == nil {
		out.Hashtags = []string{}
	}
	if out.SellingHashtags == nil {
		out.SellingHashtags = []string{}
	}
	return out
}

// Audience parses the audience profile; the second return value is
// false when the input is not valid JSON.
func Audience(raw string) (types.AudienceProfile, bool) {
	var parsed types.AudienceProfile
	if err := json.Unmarshal([]byte(StripFence(raw)), &parsed); err != nil {
		return types.AudienceProfile{}, false
	}
	if parsed.AgeRange == "" {
		parsed.AgeRange = "25-45 лет"
	}
	if parsed.Gender == "" {
		parsed.Gender = "все"
	}
	return parsed, true
}

// BrandAnalysis parses the brand-voice analysis object. Non-JSON
// output is kept as the summary so a free-text answer still produces a
// usable guideline.
func BrandAnalysis(raw string) types.BrandAnalysis {
	raw = StripFence(raw)
	var parsed types.BrandAnalysis
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return types.BrandAnalysis{Summary: raw, Tone: "Не удалось определить"}
	}
	return parsed
}
