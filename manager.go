package wordimage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mhpenta/wordimage/ratelimiter"
)

const (
	ModelNanoBanana1 Model = "nano-banana-1" // Gemini 2.5 Flash Image
	ModelNanoBanana2 Model = "nano-banana-2" // Gemini 3 Pro Image

	ModelDefault Model = ModelNanoBanana1
)

var (
	// ErrModelNotRegistered is returned when a model has no registered provider.
	ErrModelNotRegistered = errors.New("model not registered")

	// ErrProviderNotConfigured is returned when no provider is available.
	ErrProviderNotConfigured = errors.New("provider not configured")
)

// Provider names a model backend.
type Provider string

const (
	ProviderGeminiAPI Provider = "gemini"
)

// ProviderConfig configures a specific provider.
type ProviderConfig struct {
	Provider Provider

	// APIKey for authentication
	APIKey string

	// BaseURL for custom endpoints (optional)
	BaseURL string
}

// Manager gates calls to a single provider behind per-model rate limits and
// translates public model names to the provider's API names.
type Manager struct {
	provider ImageGenerator

	// apiNames maps a public model name to the provider's model name.
	apiNames     map[Model]string
	modelInfo    map[Model]*ModelInfo
	rateLimiters map[Model]ratelimiter.Limiter

	// Default model to use when config.Model is empty
	defaultModel Model

	logger         *slog.Logger
	tokenEstimator TokenEstimator

	mu sync.RWMutex
}

func newManager(provider ImageGenerator) *Manager {
	return &Manager{
		provider:       provider,
		apiNames:       make(map[Model]string),
		modelInfo:      make(map[Model]*ModelInfo),
		rateLimiters:   make(map[Model]ratelimiter.Limiter),
		defaultModel:   ModelDefault,
		logger:         slog.Default(),
		tokenEstimator: NewSimpleTokenEstimator(),
	}
}

// registerModel records a model and gives it an in-memory limiter when the
// model declares rate limits.
func (m *Manager) registerModel(info *ModelInfo) {
	model := Model(info.Name)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.apiNames[model] = info.APIModelName
	m.modelInfo[model] = info

	if info.RateLimits.TokensPerMinute > 0 || info.RateLimits.RequestsPerMinute > 0 {
		m.rateLimiters[model] = ratelimiter.New(
			info.RateLimits.TokensPerMinute,
			info.RateLimits.RequestsPerMinute,
		)
	}
}

// SetRateLimiter replaces the rate limiter for a model.
func (m *Manager) SetRateLimiter(model Model, limiter ratelimiter.Limiter) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rateLimiters[model] = limiter
	return m
}

// Generate sends the prompt to the provider under the config's model.
func (m *Manager) Generate(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error) {
	if config == nil {
		config = DefaultConfig()
	}

	model := m.resolveModel(config)
	start := time.Now()

	m.logger.Debug("starting image generation",
		"model", string(model),
		"prompt_length", len(prompt),
	)

	if err := m.checkRateLimit(ctx, model, config, prompt); err != nil {
		m.logger.Warn("rate limit hit",
			"model", string(model),
			"error", err.Error(),
		)
		return nil, err
	}

	gen, actualConfig, err := m.providerFor(model, config)
	if err != nil {
		m.logger.Error("failed to get generator",
			"model", string(model),
			"error", err.Error(),
		)
		return nil, err
	}

	result, err := gen.Generate(ctx, prompt, actualConfig)
	duration := time.Since(start)

	if err != nil {
		m.logger.Error("generation failed",
			"model", string(model),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}
	if result == nil {
		result = &GenerateResult{}
	}

	logAttrs := []any{
		"model", string(model),
		"duration_ms", duration.Milliseconds(),
		"candidates", len(result.Candidates),
		"image_count", result.ImageCount(),
	}
	if result.UsageMetadata != nil {
		logAttrs = append(logAttrs,
			"prompt_tokens", result.UsageMetadata.PromptTokens,
			"response_tokens", result.UsageMetadata.CandidatesTokens,
			"total_tokens", result.UsageMetadata.TotalTokens,
		)
		if info, ok := m.GetModelInfo(model); ok {
			logAttrs = append(logAttrs, "estimated_cost_usd", info.EstimatedCost(result.UsageMetadata))
		}
	}
	m.logger.Info("generation completed", logAttrs...)

	return result, nil
}

// Close releases the provider. Later calls to Generate fail with
// ErrProviderNotConfigured.
func (m *Manager) Close() error {
	m.mu.Lock()
	gen := m.provider
	m.provider = nil
	m.mu.Unlock()

	if gen == nil {
		return nil
	}
	return gen.Close()
}

// GetModelInfo returns model information for a specific model.
func (m *Manager) GetModelInfo(model Model) (*ModelInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.modelInfo[model]
	return info, ok && info != nil
}

// checkRateLimit checks rate limits for a model and optionally waits.
func (m *Manager) checkRateLimit(ctx context.Context, model Model, config *GenerateConfig, prompt string) error {
	// Image output is billed well above the prompt; reserve a flat buffer.
	const tokenBuffer = 100

	m.mu.RLock()
	limiter := m.rateLimiters[model]
	m.mu.RUnlock()

	if limiter == nil {
		return nil
	}

	estimatedTokens := m.tokenEstimator.EstimateTokens(prompt) + tokenBuffer

	if config.WaitOnRateLimit {
		return limiter.WaitAndConsume(ctx, estimatedTokens, config.MaxWaitDuration)
	}

	if !limiter.TryConsume(estimatedTokens) {
		return &RateLimitError{
			RetryAfter: limiter.TimeUntilAvailable(estimatedTokens),
			LimitType:  "tokens",
			Model:      string(model),
		}
	}

	return nil
}

// resolveModel maps an empty or ModelDefault config model to the manager default.
func (m *Manager) resolveModel(config *GenerateConfig) Model {
	if config != nil && config.Model != "" && config.Model != ModelDefault {
		return config.Model
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultModel
}

// providerFor returns the provider and a config carrying the API model name.
func (m *Manager) providerFor(model Model, config *GenerateConfig) (ImageGenerator, *GenerateConfig, error) {
	m.mu.RLock()
	apiName, ok := m.apiNames[model]
	gen := m.provider
	m.mu.RUnlock()

	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrModelNotRegistered, model)
	}
	if gen == nil {
		return nil, nil, ErrProviderNotConfigured
	}

	configCopy := *config
	configCopy.Model = Model(apiName)

	return gen, &configCopy, nil
}
