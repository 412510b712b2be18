package wordimage

import (
	"context"
	"sync/atomic"
)

// MockImageGenerator is a mock implementation of ImageGenerator.
type MockImageGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error)
	ModelsFunc   func() []ModelInfo
	CloseFunc    func() error

	generateCalls atomic.Int32
}

func (m *MockImageGenerator) Generate(ctx context.Context, prompt string, config *GenerateConfig) (*GenerateResult, error) {
	m.generateCalls.Add(1)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, config)
	}
	return &GenerateResult{}, nil
}

func (m *MockImageGenerator) Models() []ModelInfo {
	if m.ModelsFunc != nil {
		return m.ModelsFunc()
	}
	return []ModelInfo{{Name: "mock-model", Provider: "mock", APIModelName: "mock-model-api"}}
}

func (m *MockImageGenerator) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// GenerateCalls reports how many times Generate was invoked.
func (m *MockImageGenerator) GenerateCalls() int {
	return int(m.generateCalls.Load())
}

// mockFactory returns a GeneratorFactory handing out gen and counting calls.
func mockFactory(gen ImageGenerator, calls *int) GeneratorFactory {
	return func(ctx context.Context, apiKey string) (ImageGenerator, error) {
		*calls++
		return gen, nil
	}
}

// resultWithParts builds a single-candidate result.
func resultWithParts(parts ...Part) *GenerateResult {
	return &GenerateResult{Candidates: []Candidate{{Parts: parts}}}
}
