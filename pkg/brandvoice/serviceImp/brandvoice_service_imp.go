package serviceImp

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/ai"
	"github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/repository"
	"github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/service"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/normalize"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

const generalChannel = "general"

type VoiceSvc struct {
	guidelines repository.GuidelineRepository
	examples   repository.ExampleRepository
	llm        ai.TextClient
	mockMode   bool
	log        *zap.Logger
}

func New(guidelines repository.GuidelineRepository, examples repository.ExampleRepository, llm ai.TextClient, mockMode bool, log *zap.Logger) *VoiceSvc {
	return &VoiceSvc{guidelines: guidelines, examples: examples, llm: llm, mockMode: mockMode, log: log}
}

var _ service.BrandVoiceService = (*VoiceSvc)(nil)

// Guideline resolves channel → general → built-in default. Repository
// errors count as absence: prompt building never fails over a missing
// guideline.
func (s *VoiceSvc) Guideline(channel string) string {
	if channel != "" {
		if v, err := s.guidelines.GetByChannel(channel); err == nil && v.Content != "" {
			return v.Content
		}
	}
	if v, err := s.guidelines.GetByChannel(generalChannel); err == nil && v.Content != "" {
		return v.Content
	}
	return prompt.DefaultBrandVoice
}

func (s *VoiceSvc) Analyze(ctx context.Context, channel string) (service.AnalysisResult, error) {
	stored, err := s.examples.List(channel)
	if err != nil {
		return service.AnalysisResult{}, err
	}
	if len(stored) == 0 {
		return service.AnalysisResult{
			Channel:            channel,
			GeneratedGuideline: "Нет примеров для анализа. Загрузите примеры текстов.",
			ExamplesCount:      0,
		}, nil
	}

	texts := make([]string, 0, len(stored))
	for _, ex := range stored {
		texts = append(texts, ex.OriginalText)
	}

	analysis := s.analyze(ctx, texts)
	guideline := formatGuideline(analysis)

	if err := s.guidelines.Upsert(&entities.BrandVoice{
		Channel:   channel,
		Content:   guideline,
		Examples:  texts,
		UpdatedAt: time.Now(),
	}); err != nil {
		return service.AnalysisResult{}, err
	}

	return service.AnalysisResult{
		Channel:            channel,
		GeneratedGuideline: guideline,
		ExamplesCount:      len(texts),
	}, nil
}

func (s *VoiceSvc) analyze(ctx context.Context, texts []string) types.BrandAnalysis {
	if s.mockMode {
		return mockAnalysis(texts)
	}
	p := prompt.BuildBrandAnalysis(texts)
	raw, err := s.llm.Complete(ctx, p.System, p.User, 0.3, 2000)
	if err != nil {
		if s.log != nil {
			s.log.Warn("brand analysis failed, using offline result", zap.Error(err))
		}
		return mockAnalysis(texts)
	}
	return normalize.BrandAnalysis(raw)
}

// mockAnalysis derives a schema-valid analysis from surface features
// of the examples, without any provider call.
func mockAnalysis(texts []string) types.BrandAnalysis {
	joined := strings.Join(texts, " ")
	emoji := "эмодзи не используются"
	if strings.ContainsAny(joined, "🔥✨🎉👇💥⚡") {
		emoji = "эмодзи используются умеренно"
	}
	tone := types.ToneFriendly
	if !strings.Contains(joined, "!") {
		tone = types.ToneFormal
	}
	length := "короткие тексты"
	if len([]rune(joined))/len(texts) > 400 {
		length = "развёрнутые тексты"
	}
	return types.BrandAnalysis{
		Tone:              tone,
		Vocabulary:        []string{"простые слова", "обращение на вы"},
		SentenceStructure: "короткие предложения",
		EmojiUsage:        emoji,
		CTAStyle:          "прямой призыв к действию",
		LengthPreference:  length,
		KeyPhrases:        []string{},
		Avoid:             []string{"канцеляризмы"},
		Summary:           "Стиль определён по загруженным примерам.",
	}
}

func formatGuideline(a types.BrandAnalysis) string {
	var sb strings.Builder
	sb.WriteString("## Общее описание\n")
	sb.WriteString(a.Summary)
	sb.WriteString("\n\n## Тон коммуникации\n")
	sb.WriteString(a.Tone)
	if len(a.Vocabulary) > 0 {
		sb.WriteString("\n\n## Лексика\n")
		for _, w := range a.Vocabulary {
			sb.WriteString("- " + w + "\n")
		}
	}
	if a.SentenceStructure != "" {
		sb.WriteString("\n## Структура предложений\n")
		sb.WriteString(a.SentenceStructure)
	}
	if a.EmojiUsage != "" {
		sb.WriteString("\n\n## Эмодзи\n")
		sb.WriteString(a.EmojiUsage)
	}
	if a.CTAStyle != "" {
		sb.WriteString("\n\n## Призывы к действию\n")
		sb.WriteString(a.CTAStyle)
	}
	if a.LengthPreference != "" {
		sb.WriteString("\n\n## Длина текстов\n")
		sb.WriteString(a.LengthPreference)
	}
	if len(a.KeyPhrases) > 0 {
		sb.WriteString("\n\n## Ключевые фразы\n")
		for _, p := range a.KeyPhrases {
			sb.WriteString("- " + p + "\n")
		}
	}
	if len(a.Avoid) > 0 {
		sb.WriteString("\n\n## Чего избегать\n")
		for _, p := range a.Avoid {
			sb.WriteString("- " + p + "\n")
		}
	}
	return strings.TrimSpace(sb.String())
}
