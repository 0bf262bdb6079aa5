package prompt

import (
	"fmt"
	"strings"

	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
)

func BuildHashtags(text, channel string, count int) Prompt {
	user := fmt.Sprintf(`Сгенерируй продающие хештеги для следующего текста.

Текст:
%s

Канал: %s

Верни JSON:
{
  "hashtags": ["#хештег1", "#хештег2", ...],
  "selling_hashtags": ["#продающий1", "#продающий2", ...]
}

Требования:
- Обычные хештеги: тематические, популярные, релевантные контенту
- Продающие хештеги: с призывом к действию, создающие срочность
- Всего %d хештегов (примерно поровну обоих типов)
- На русском языке
- Без пробелов внутри хештега`, text, channel, count)

	return Prompt{
		System: "Ты — SMM-специалист, эксперт по хештегам для российских соцсетей.",
		User:   user,
	}
}

func BuildSeries(req types.SeriesRequest) Prompt {
	user := fmt.Sprintf(`Создай серию из %d постов на тему: %s

Канал: %s
Цель: %s
Тон: %s

Верни JSON-массив:
[
  {
    "headline": "Заголовок поста",
    "body": "Текст поста...",
    "cta": "Призыв к действию",
    "hashtags": ["#хештег1", "#хештег2"],
    "score": 8.5,
    "improvements": ["рекомендация"]
  },
  ...
]

Требования:
- Каждый пост должен быть уникальным, но связанным общей темой
- Создавай последовательную историю/нарратив
- Каждый пост должен иметь свой уникальный угол/аспект темы
- Включай продающие хештеги
- Оценка качества (score) от 1 до 10`,
		req.Count, req.Topic, req.Channel, req.Goal, req.Tone)

	return Prompt{
		System: "Ты — профессиональный контент-маркетолог. Создаёшь серии вовлекающих постов.",
		User:   user,
	}
}

func BuildContentPlan(req types.ContentPlanRequest) Prompt {
	user := fmt.Sprintf(`Создай контент-план на %d дней для продукта: %s

Каналы: %s
Цель: %s

Верни JSON-массив:
[
  {
    "day": 1,
    "topic": "Тема поста",
    "channel": "Telegram",
    "headline": "Заголовок",
    "body": "Текст поста...",
    "cta": "Призыв к действию",
    "hashtags": ["#хештег"],
    "score": 8.0
  },
  ...
]

Требования:
- Каждый день один пост
- Чередуй каналы если их несколько
- Разнообразие тем: проблемы → решения → кейсы → новости → вовлечение
- Продающий тон, но не навязчивый
- Включай призывы к действию
- Оценка качества (score) от 1 до 10`,
		req.DurationDays, req.Product, strings.Join(req.Channels, ", "), req.Goal)

	return Prompt{
		System: "Ты — профессиональный SMM-стратег. Создаёшь продающие контент-планы.",
		User:   user,
	}
}

func BuildAudience(product, description string) Prompt {
	extra := ""
	if description != "" {
		extra = "\nОписание: " + description
	}
	user := fmt.Sprintf(`Проанализируй целевую аудиторию для продукта.

Продукт: %s
%s

Верни JSON:
{
  "age_range": "25-45 лет",
  "gender": "мужчины и женщины",
  "interests": ["интерес1", "интерес2", ...],
  "pains": ["боль1", "боль2", ...],
  "triggers": ["триггер1", "триггер2", ...],
  "channels": ["канал1", "канал2", ...],
  "content_preferences": ["предпочтение1", "предпочтение2", ...]
}

Требования:
- age_range: примерный возрастной диапазон
- gender: пол аудитории (мужчины/женщины/все)
- interests: 5-7 основных интересов
- pains: 3-5 болевых точек, которые решает продукт
- triggers: 3-5 триггеров покупки
- channels: 3-5 каналов где обитает аудитория
- content_preferences: 3-5 предпочтений по контенту`, product, extra)

	return Prompt{
		System: "Ты — маркетолог-аналитик, специализируешься на анализе целевых аудиторий.",
		User:   user,
	}
}

var improveActions = map[string]string{
	types.ImproveShorten: `Сократи текст, сохранив главный смысл и CTA.
Убери лишние слова, сделай текст лаконичнее.
Оставь только ключевые моменты.
Верни ТОЛЬКО сокращённый текст без объяснений.`,

	types.ImproveEmoji: `Добавь 2-4 подходящих эмодзи в текст.
Расставь эмодзи органично, не перегружай.
Эмодзи должны соответствовать контексту.
Верни ТОЛЬКО текст с эмодзи без объяснений.`,

	types.ImproveTone: `Измени тон текста на %s.
Перепиши текст, сохраняя смысл, но изменив стиль.
Верни ТОЛЬКО переписанный текст без объяснений.`,

	types.ImproveCTA: `Улучши призыв к действию (CTA) в тексте.
Сделай CTA более убедительным и конкретным.
Добавь срочность или выгоду, если уместно.
Верни ТОЛЬКО текст с улучшенным CTA без объяснений.`,
}

var channelConstraints = map[string]string{
	ChannelDirect:   "Длина заголовка до 35 символов, текст до 81 символа.",
	ChannelTelegram: "Длина до 800 символов, можно использовать эмодзи.",
	ChannelEmail:    "Тема до 50 символов, текст до 500 символов.",
	ChannelVK:       "Длина до 500 символов, можно использовать эмодзи.",
}

func BuildImprove(text, channel, action, targetTone string) Prompt {
	instruction, ok := improveActions[action]
	if !ok {
		instruction = improveActions[types.ImproveShorten]
	}
	if action == types.ImproveTone {
		if targetTone == "" {
			targetTone = types.ToneExpert
		}
		instruction = fmt.Sprintf(instruction, targetTone)
	}

	user := fmt.Sprintf(`%s

Ограничения канала: %s

Исходный текст:
%s`, instruction, channelConstraints[channel], text)

	return Prompt{
		System: "Ты — профессиональный копирайтер. Улучшаешь маркетинговые тексты для российских каналов.",
		User:   user,
	}
}

func BuildBrandAnalysis(examples []string) Prompt {
	var sb strings.Builder
	for i, ex := range examples {
		if i > 0 {
			sb.WriteString("\n\n---\n\n")
		}
		fmt.Fprintf(&sb, "Пример %d:\n%s", i+1, ex)
	}

	user := fmt.Sprintf(`Проанализируй следующие примеры текстов и создай детальный гайдлайн по стилю бренда.

Примеры текстов:
%s

Верни JSON со следующей структурой (только JSON, без markdown):
{
  "tone": "описание тона коммуникации",
  "vocabulary": ["типичные слова и фразы"],
  "sentence_structure": "особенности построения предложений",
  "emoji_usage": "как используются эмодзи",
  "cta_style": "типичный стиль призывов к действию",
  "length_preference": "предпочтительная длина текстов",
  "key_phrases": ["ключевые фразы бренда"],
  "avoid": ["чего следует избегать"],
  "summary": "краткое резюме стиля в 2-3 предложениях"
}`, sb.String())

	return Prompt{
		System: "Ты — эксперт по бренд-коммуникациям. Анализируешь стиль текстов и создаёшь гайдлайны.",
		User:   user,
	}
}
