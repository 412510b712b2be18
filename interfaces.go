package wordimage

import "context"

// ImageGenerator is the interface an image generation backend implements.
//
// The first model returned by Models() is considered the default model.
type ImageGenerator interface {
	// Generate sends a text prompt and returns the model's candidates.
	Generate(ctx context.Context, prompt string, genConfig *GenerateConfig) (*GenerateResult, error)

	// Models returns the model definitions supported by this provider.
	// The first model in the list is the default.
	Models() []ModelInfo

	// Close releases any resources held by the generator.
	Close() error
}

// GeneratorFactory builds an ImageGenerator authenticated with apiKey.
// The Invoker calls it only after the credential has been checked.
type GeneratorFactory func(ctx context.Context, apiKey string) (ImageGenerator, error)
