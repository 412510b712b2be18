// Package gemini provides an ImageGenerator implementation using Google's Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mhpenta/wordimage"
	"google.golang.org/genai"
)

// Model name constants - the actual API model names.
const (
	// APIModelNanoBanana1 is the actual API name for Gemini 2.5 Flash Image
	APIModelNanoBanana1 = "gemini-2.5-flash-image"

	// APIModelNanoBanana2 is the actual API name for Gemini 3 Pro Image
	APIModelNanoBanana2 = "gemini-3-pro-image-preview"
)

// GeminiGenerator implements ImageGenerator using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
}

var _ wordimage.ImageGenerator = (*GeminiGenerator)(nil)

// New creates a new GeminiGenerator from a ProviderConfig. The API key is
// required; the SDK's own environment lookup is never relied on.
func New(ctx context.Context, config *wordimage.ProviderConfig) (*GeminiGenerator, error) {
	if config == nil {
		return nil, wordimage.ErrMissingCredential
	}
	if err := wordimage.ValidateCredential(config.APIKey); err != nil {
		return nil, err
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
	}, nil
}

// NewWithAPIKey creates a generator with an API key for Gemini API.
func NewWithAPIKey(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	return New(ctx, &wordimage.ProviderConfig{
		Provider: wordimage.ProviderGeminiAPI,
		APIKey:   apiKey,
	})
}

// Factory adapts NewWithAPIKey to wordimage.GeneratorFactory.
func Factory(ctx context.Context, apiKey string) (wordimage.ImageGenerator, error) {
	return NewWithAPIKey(ctx, apiKey)
}

// Generate sends one text prompt and blocks for the complete response.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, config *wordimage.GenerateConfig) (*wordimage.GenerateResult, error) {
	if err := wordimage.ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	if config == nil {
		config = wordimage.DefaultConfig()
	}

	modelName := g.resolveModel(config)
	contents := genai.Text(prompt)
	genConfig := g.buildGenerateContentConfig(config)

	result, err := g.client.Models.GenerateContent(ctx, modelName, contents, genConfig)
	if err != nil {
		if rlErr := checkRateLimitError(err, modelName); rlErr != nil {
			return nil, rlErr
		}
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	return parseResult(result), nil
}

// Models returns the model definitions supported by this provider.
// The first model (NanoBanana1) is the default.
func (g *GeminiGenerator) Models() []wordimage.ModelInfo {
	return []wordimage.ModelInfo{
		NanoBanana1Info,
		NanoBanana2Info,
	}
}

// Close is a no-op; genai.Client holds no resources that need releasing.
func (g *GeminiGenerator) Close() error {
	return nil
}

// resolveModel determines which API model name to use.
func (g *GeminiGenerator) resolveModel(config *wordimage.GenerateConfig) string {
	if config != nil && config.Model != "" {
		return string(config.Model)
	}
	return APIModelNanoBanana1
}

// buildGenerateContentConfig converts our config to Gemini's GenerateContentConfig format.
func (g *GeminiGenerator) buildGenerateContentConfig(config *wordimage.GenerateConfig) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	if config.Size != "" || config.AspectRatio != "" {
		genConfig.ImageConfig = &genai.ImageConfig{
			ImageSize:   config.Size.String(),
			AspectRatio: config.AspectRatio.String(),
		}
	}

	if config.Temperature != nil {
		genConfig.Temperature = genai.Ptr(*config.Temperature)
	}

	if len(config.SafetySettings) > 0 {
		genConfig.SafetySettings = convertSafetySettings(config.SafetySettings)
	}

	return genConfig
}

// convertSafetySettings converts our SafetySettings to Gemini's format.
func convertSafetySettings(settings []wordimage.SafetySetting) []*genai.SafetySetting {
	result := make([]*genai.SafetySetting, 0, len(settings))
	for _, s := range settings {
		result = append(result, &genai.SafetySetting{
			Category:  genai.HarmCategory(s.Category),
			Threshold: genai.HarmBlockThreshold(s.Threshold),
		})
	}
	return result
}

// parseResult converts a Gemini response into candidates of classified parts.
// A nil response or one without candidates yields an empty result; deciding
// that nothing usable came back is the caller's job.
func parseResult(result *genai.GenerateContentResponse) *wordimage.GenerateResult {
	genResult := &wordimage.GenerateResult{}
	if result == nil {
		return genResult
	}

	var thinkingParts []string

	for ci, candidate := range result.Candidates {
		if candidate == nil {
			continue
		}

		converted := wordimage.Candidate{FinishReason: string(candidate.FinishReason)}
		if candidate.Content != nil {
			converted.Parts = make([]wordimage.Part, 0, len(candidate.Content.Parts))
			for _, part := range candidate.Content.Parts {
				p := convertPart(part)
				converted.Parts = append(converted.Parts, p)

				if ci != 0 || p.Text == "" {
					continue
				}
				if p.Thought {
					thinkingParts = append(thinkingParts, p.Text)
				} else {
					genResult.Text += p.Text
				}
			}
		}

		genResult.Candidates = append(genResult.Candidates, converted)
	}

	if len(thinkingParts) > 0 {
		genResult.ThinkingContent = strings.Join(thinkingParts, "\n")
	}

	if result.UsageMetadata != nil {
		genResult.UsageMetadata = &wordimage.UsageMetadata{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CandidatesTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
			ImageCount:       genResult.ImageCount(),
		}
	}

	return genResult
}

// convertPart decides the variant of a single Gemini part.
func convertPart(part *genai.Part) wordimage.Part {
	switch {
	case part == nil:
		return wordimage.Part{Kind: wordimage.PartEmpty}
	case part.InlineData != nil:
		return wordimage.NewInlineDataPart(part.InlineData.Data, part.InlineData.MIMEType)
	case part.Text != "":
		return wordimage.NewTextPart(part.Text, part.Thought)
	case part.FileData != nil, part.FunctionCall != nil, part.ExecutableCode != nil:
		return wordimage.Part{Kind: wordimage.PartOther}
	default:
		return wordimage.Part{Kind: wordimage.PartEmpty}
	}
}

// checkRateLimitError wraps 429 / RESOURCE_EXHAUSTED API errors in a
// RateLimitError; any other error yields nil.
func checkRateLimitError(err error, model string) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	if apiErr.Code != http.StatusTooManyRequests && apiErr.Status != "RESOURCE_EXHAUSTED" {
		return nil
	}

	return &wordimage.RateLimitError{
		RetryAfter: 60 * time.Second, // API doesn't reliably provide Retry-After
		LimitType:  "requests",
		Model:      model,
		Err:        err,
	}
}
