package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

// The mock functions below synthesize schema-valid results without any
// network I/O. They double as the fallback for every provider failure,
// so they must be pure functions of their inputs.

func mockContent(req types.GenerateRequest) map[string][]entities.Variant {
	out := make(map[string][]entities.Variant, len(req.Channels))
	for _, channel := range req.Channels {
		variants := make([]entities.Variant, 0, req.NumVariants)
		for i := 0; i < req.NumVariants; i++ {
			switch channel {
			case prompt.ChannelDirect:
				variants = append(variants, entities.Variant{
					Headline:     fmt.Sprintf("Скидка %d%%!", 20+i*10),
					Body:         fmt.Sprintf("Только сегодня. Вариант %d", i+1),
					CTA:          "Заказать",
					Score:        8.0 + float64(i)*0.5,
					Improvements: []string{"Добавьте дедлайн"},
				})
			case prompt.ChannelTelegram:
				variants = append(variants, entities.Variant{
					Body:         fmt.Sprintf("🔥 Вариант %d! Отличные новости!\n\nПодробности по ссылке 👇", i+1),
					Hashtags:     []string{"#акция", "#скидки"},
					CTA:          "Подробнее",
					Score:        8.5 + float64(i)*0.3,
					Improvements: []string{"Добавьте эмодзи"},
				})
			case prompt.ChannelEmail:
				variants = append(variants, entities.Variant{
					Headline:     fmt.Sprintf("Вариант %d: Эксклюзивное предложение", i+1),
					Body:         "Уважаемый клиент! Рады предложить вам...",
					CTA:          "Получить",
					Score:        7.5 + float64(i)*0.5,
					Improvements: []string{"Персонализируйте"},
				})
			case prompt.ChannelVK:
				variants = append(variants, entities.Variant{
					Body:         fmt.Sprintf("🎉 Вариант %d для подписчиков!\n\nПишите в комментариях! 👇", i+1),
					Hashtags:     []string{"#акция", "#длясвоих"},
					CTA:          "Участвовать",
					Score:        8.0 + float64(i)*0.4,
					Improvements: []string{"Добавьте вопрос"},
				})
			case prompt.ChannelZen:
				variants = append(variants, entities.Variant{
					Headline:     fmt.Sprintf("Вариант %d: Заголовок, который привлекает внимание", i+1),
					Body:         "Это длинный текст для Яндекс.Дзен. Здесь подробно рассказываем о преимуществах продукта и почему стоит выбрать именно его.\n\nОсобенности и преимущества:\n• Первое преимущество\n• Второе преимущество\n• Третье преимущество\n\nЗакажите прямо сейчас!",
					ImagePrompt:  fmt.Sprintf("Professional marketing image for social media, product showcase, modern style, variant %d", i+1),
					Hashtags:     []string{"#продукт", "#преимущества"},
					CTA:          "Подробнее",
					Score:        8.5 + float64(i)*0.3,
					Improvements: []string{"Добавьте личную историю"},
				})
			}
		}
		out[channel] = variants
	}
	return out
}

func mockHashtags(text string, count int) types.HashtagSet {
	half := count / 2
	keywords := make([]string, 0, half)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len([]rune(w)) > 4 {
			keywords = append(keywords, "#"+w)
		}
		if len(keywords) == half {
			break
		}
	}
	if len(keywords) == 0 {
		keywords = []string{"#контент", "#маркетинг"}
	}
	selling := []string{"#купитьсейчас", "#акция", "#скидки", "#хитпродаж", "#успей"}
	if half < len(selling) {
		selling = selling[:half]
	}
	return types.HashtagSet{Hashtags: keywords, SellingHashtags: selling}
}

func mockSeries(topic string, count int) []entities.Variant {
	short := []rune(topic)
	if len(short) > 30 {
		short = short[:30]
	}
	posts := make([]entities.Variant, 0, count)
	for i := 0; i < count; i++ {
		cta := "Подробнее в следующем посте!"
		if i == count-1 {
			cta = "Подпишись!"
		}
		posts = append(posts, entities.Variant{
			Headline:     fmt.Sprintf("Пост %d: %s...", i+1, string(short)),
			Body:         fmt.Sprintf("Содержание поста %d на тему '%s'. Здесь будет интересный и полезный контент.", i+1, topic),
			CTA:          cta,
			Hashtags:     []string{"#контент", fmt.Sprintf("#часть%d", i+1)},
			Score:        8.0,
			Improvements: []string{"Добавьте больше деталей"},
		})
	}
	return posts
}

var planTopics = []string{
	"Знакомство с продуктом",
	"Проблемы клиентов",
	"Решение",
	"Кейс успеха",
	"Ответы на вопросы",
	"Новости компании",
	"Специальное предложение",
}

func mockContentPlan(product string, days int, channels []string, today time.Time) []types.ContentPlanItem {
	short := []rune(product)
	if len(short) > 20 {
		short = short[:20]
	}
	items := make([]types.ContentPlanItem, 0, days)
	for i := 0; i < days; i++ {
		topic := planTopics[i%len(planTopics)]
		items = append(items, types.ContentPlanItem{
			Day:     i + 1,
			Date:    today.AddDate(0, 0, i).Format("2006-01-02"),
			Topic:   topic,
			Channel: channels[i%len(channels)],
			Draft: entities.Variant{
				Headline: fmt.Sprintf("%s — %s", topic, string(short)),
				Body:     fmt.Sprintf("Текст поста на тему: %s. Продукт: %s", topic, product),
				CTA:      "Узнать подробнее",
				Hashtags: []string{"#контент", "#маркетинг"},
				Score:    7.5,
			},
		})
	}
	return items
}

func mockAudience() types.AudienceProfile {
	return types.AudienceProfile{
		AgeRange:           "25-45 лет",
		Gender:             "мужчины и женщины",
		Interests:          []string{"технологии", "бизнес", "саморазвитие", "финансы", "карьера"},
		Pains:              []string{"нехватка времени", "сложный выбор", "высокие цены конкурентов"},
		Triggers:           []string{"экономия", "качество", "скорость", "гарантии"},
		Channels:           []string{"Telegram", "VK", "Яндекс.Дзен"},
		ContentPreferences: []string{"кейсы", "инструкции", "сравнения", "новости"},
	}
}

func mockImprove(text, action, targetTone string) string {
	switch action {
	case types.ImproveShorten:
		words := strings.Fields(text)
		if len(words) > 10 {
			return strings.Join(words[:len(words)/2], " ") + "..."
		}
		return text
	case types.ImproveEmoji:
		return "✨ " + text + " 🔥"
	case types.ImproveTone:
		if targetTone == "" {
			targetTone = types.ToneExpert
		}
		return "[" + targetTone + " тон] " + text
	case types.ImproveCTA:
		if !strings.Contains(text, "!") {
			return text + " Закажите сейчас!"
		}
		return text
	}
	return text
}
