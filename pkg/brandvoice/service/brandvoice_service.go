package service

import "context"

// AnalysisResult is the outcome of running style analysis over a
// channel's stored examples.
type AnalysisResult struct {
	Channel            string `json:"channel"`
	GeneratedGuideline string `json:"generated_guideline"`
	ExamplesCount      int    `json:"examples_count"`
}

type BrandVoiceService interface {
	// Guideline returns the style directive for a channel, falling back
	// to the "general" row and then to the built-in default.
	Guideline(channel string) string
	// Analyze runs style analysis over the channel's stored examples
	// and persists the resulting guideline.
	Analyze(ctx context.Context, channel string) (AnalysisResult, error)
}
