// Package prompt renders the instruction text sent to text providers.
// Builders are pure: no I/O, deterministic for identical inputs.
package prompt

import (
	"fmt"
	"strings"

	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
)

// The five supported marketing channels.
const (
	ChannelDirect   = "Директ"
	ChannelTelegram = "Telegram"
	ChannelEmail    = "Email"
	ChannelVK       = "VK"
	ChannelZen      = "Дзен"
)

var Channels = []string{ChannelDirect, ChannelTelegram, ChannelEmail, ChannelVK, ChannelZen}

func ValidChannel(ch string) bool {
	for _, c := range Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// Prompt is one fully rendered provider request.
type Prompt struct {
	System string
	User   string
}

const ContentSystem = `Ты — профессиональный SMM-специалист и маркетолог с 10-летним опытом. Создаёшь продающие тексты для российских маркетинговых каналов.

ПРИНЦИПЫ:
- Пиши на русском, естественно и живо
- Используй триггеры: срочность, эксклюзивность, страх упустить
- Всегда включай призыв к действию (CTA)
- Оценивай качество текста от 1 до 10
- Давай 1-2 рекомендации по улучшению
- Всегда добавляй продающие хештеги для Telegram, VK, Дзен

ФОРМАТЫ:

ЯНДЕКС.ДИРЕКТ: заголовок до 35 символов | текст до 81 символа. Лаконично, цифры, выгода.

TELEGRAM: до 800 символов, 2-4 эмодзи, живой стиль, в конце хештеги. Дружелюбно.

EMAIL: тема до 50 символов, текст до 500 символов. Вежливо, персонализированно.

VK: до 500 символов, эмодзи, вопросы к аудитории, хештеги. Разговорный стиль.

ДЗЕН: заголовок интригующий до 80 символов, текст-лонгрид 500-1500 символов, подзаголовки, промпт для изображения, хештеги.`

const streamSystem = "Ты — профессиональный SMM-специалист. Создаёшь продающие тексты."

// DefaultBrandVoice is used when no guideline row exists for a channel.
const DefaultBrandVoice = "Профессиональный, но дружелюбный стиль."

var goalInstructions = map[string]string{
	types.GoalSales:        "ЦЕЛЬ: Продажа. Фокус на выгоде, скидках, ограничении времени, CTA на покупку.",
	types.GoalAwareness:    "ЦЕЛЬ: Узнаваемость. Фокус на уникальности, эмоциях, истории бренда.",
	types.GoalEngagement:   "ЦЕЛЬ: Вовлечение. Фокус на вопросах, интерактиве, обсуждении.",
	types.GoalAnnouncement: "ЦЕЛЬ: Анонс. Фокус на что/где/когда, почему важно участвовать.",
}

var toneInstructions = map[string]string{
	types.ToneFormal:   "ТОН: Формальный, профессиональный.",
	types.ToneFriendly: "ТОН: Дружелюбный, тёплый.",
	types.ToneBold:     "ТОН: Дерзкий, смелый, с юмором.",
	types.ToneExpert:   "ТОН: Экспертный, авторитетный, с фактами.",
}

var formatInstructions = map[string]string{
	types.FormatShort:     "ФОРМАТ: Короткий пост до 200 слов. Лаконично, по делу, один ключевой месседж.",
	types.FormatLongread:  "ФОРМАТ: Лонгрид 500-1000 слов. Развёрнутый материал с подзаголовками, примерами, выводами.",
	types.FormatCaseStudy: "ФОРМАТ: Кейс. Структура: Проблема → Решение → Результат. Цифры, факты, доказательства.",
	types.FormatStory:     "ФОРМАТ: История. Завязка → Развитие → Кульминация → Финал. Эмоции, личный опыт.",
}

// lookup with fallback to a fixed default on unknown enum values.
func lookup(m map[string]string, key, def string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return m[def]
}

func GoalInstruction(goal string) string { return lookup(goalInstructions, goal, types.GoalSales) }
func ToneInstruction(tone string) string { return lookup(toneInstructions, tone, types.ToneFriendly) }

// BuildContent renders the multi-channel generation prompt, including
// an explicit output-shape example so the model is steered toward the
// JSON the normalizer expects.
func BuildContent(req types.GenerateRequest, brandVoice string) Prompt {
	variantsHint := "вариант"
	if req.NumVariants > 1 {
		variantsHint = fmt.Sprintf("по %d варианта", req.NumVariants)
	}

	audienceText := ""
	if req.Audience != "" {
		audienceText = "\nЦА: " + req.Audience
	}
	offerText := ""
	if req.Offer != "" {
		offerText = "\nОффер: " + req.Offer
	}
	formatInstruction := ""
	if req.Format != "" && req.Format != types.FormatShort {
		if fi, ok := formatInstructions[req.Format]; ok {
			formatInstruction = "\n" + fi
		}
	}

	user := fmt.Sprintf(`%s
%s%s%s%s

Стиль бренда: %s

ЗАДАЧА: Сгенерируй %s текста для каналов: %s

Продукт/акция:
%s

ВЕРНИ JSON (только JSON, без markdown):
{
  "Директ": [
    {"headline": "...", "body": "...", "cta": "...", "score": 8.5, "improvements": ["..."]}
  ],
  "Telegram": [
    {"body": "...", "hashtags": ["#..."], "cta": "...", "score": 9.0, "improvements": ["..."]}
  ],
  "Email": [
    {"headline": "тема", "body": "...", "cta": "...", "score": 8.0, "improvements": ["..."]}
  ],
  "VK": [
    {"body": "...", "hashtags": ["#..."], "cta": "...", "score": 8.5, "improvements": ["..."]}
  ],
  "Дзен": [
    {"headline": "интригующий заголовок", "body": "лонгрид текст...", "image_prompt": "описание для картинки", "hashtags": ["#..."], "cta": "...", "score": 8.5, "improvements": ["..."]}
  ]
}

Важно:
- Верни только запрошенные каналы
- Для каждого канала ровно %d вариант(а) в массиве
- score от 1 до 10
- improvements — 1-2 рекомендации
- Варианты должны отличаться!
- Для Telegram, VK, Дзен обязательно добавь 3-5 продающих хештегов
- Для Дзен добавь image_prompt — описание для генерации картинки`,
		GoalInstruction(req.Goal),
		ToneInstruction(req.Tone),
		audienceText, offerText, formatInstruction,
		brandVoice,
		variantsHint, strings.Join(req.Channels, ", "),
		req.Description,
		req.NumVariants,
	)

	return Prompt{System: ContentSystem, User: user}
}

// BuildChannelContent narrows a content prompt to a single channel for
// the streaming path.
func BuildChannelContent(base Prompt, channel string) Prompt {
	return Prompt{
		System: streamSystem,
		User:   base.User + "\n\nСгенерируй текст ТОЛЬКО для канала: " + channel,
	}
}
