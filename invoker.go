package wordimage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultOutputPath is where the generated illustration is written.
const DefaultOutputPath = "/var/tmp/wordimage/output/temp_generated_image.png"

// Invoker performs one generation call and writes the first returned image
// to a fixed path as an RGB PNG.
type Invoker struct {
	apiKey string
	prompt string

	newGenerator GeneratorFactory
	storage      Storage
	outputPath   string
	config       *GenerateConfig

	logger *slog.Logger
	out    io.Writer
}

// InvokerOption configures the Invoker.
type InvokerOption func(*Invoker)

// WithOutputPath overrides DefaultOutputPath.
func WithOutputPath(path string) InvokerOption {
	return func(inv *Invoker) {
		inv.outputPath = path
	}
}

// WithStorage replaces the local filesystem storage.
func WithStorage(storage Storage) InvokerOption {
	return func(inv *Invoker) {
		inv.storage = storage
	}
}

// WithGenerateConfig sets the request config passed to the generator.
func WithGenerateConfig(config *GenerateConfig) InvokerOption {
	return func(inv *Invoker) {
		if config != nil {
			inv.config = config
		}
	}
}

// WithInvokerLogger sets the logger shared with the Manager.
func WithInvokerLogger(logger *slog.Logger) InvokerOption {
	return func(inv *Invoker) {
		if logger != nil {
			inv.logger = logger
		}
	}
}

// WithOutput sets where the success line is printed.
func WithOutput(w io.Writer) InvokerOption {
	return func(inv *Invoker) {
		if w != nil {
			inv.out = w
		}
	}
}

// NewInvoker creates an Invoker. The credential is only checked by Run.
func NewInvoker(apiKey, prompt string, factory GeneratorFactory, opts ...InvokerOption) *Invoker {
	inv := &Invoker{
		apiKey:       apiKey,
		prompt:       prompt,
		newGenerator: factory,
		storage:      NewLocalStorage(),
		outputPath:   DefaultOutputPath,
		config:       DefaultConfig(),
		logger:       slog.Default(),
		out:          os.Stdout,
	}

	for _, opt := range opts {
		opt(inv)
	}

	return inv
}

// Run makes exactly one Generate call and saves the first inline image of
// the first candidate. It fails with ErrMissingCredential before the
// generator is built, and with ErrNoImageData when the response has no
// usable image.
func (inv *Invoker) Run(ctx context.Context) (StorageResult, error) {
	if err := ValidateCredential(inv.apiKey); err != nil {
		return StorageResult{}, err
	}
	if err := ValidatePrompt(inv.prompt); err != nil {
		return StorageResult{}, err
	}
	if inv.storage == nil {
		return StorageResult{}, ErrStorageNotConfigured
	}
	if inv.newGenerator == nil {
		return StorageResult{}, ErrProviderNotConfigured
	}

	gen, err := inv.newGenerator(ctx, inv.apiKey)
	if err != nil {
		return StorageResult{}, fmt.Errorf("creating generator: %w", err)
	}

	manager := NewManager(gen, WithLogger(inv.logger))
	defer func() {
		if err := manager.Close(); err != nil {
			inv.logger.Warn("closing generator", "error", err.Error())
		}
	}()

	result, err := manager.Generate(ctx, inv.prompt, inv.config)
	if err != nil {
		return StorageResult{}, err
	}

	img, err := result.FirstImage()
	if err != nil {
		inv.logger.Error("response carried no image",
			"candidates", len(result.Candidates),
			"text", result.Text,
		)
		return StorageResult{}, err
	}

	inv.logger.Debug("selected inline image",
		"part_index", img.Index,
		"mime_type", img.MIMEType,
		"size_bytes", len(img.Data),
	)

	pngData, err := NormalizePNG(img.Data, inv.logger)
	if err != nil {
		return StorageResult{}, err
	}

	saved, err := SaveImage(ctx, inv.storage, pngData, inv.outputPath)
	if err != nil {
		return StorageResult{}, fmt.Errorf("saving image: %w", err)
	}

	fmt.Fprintf(inv.out, "SUCCESS: Image saved to %s\n", saved.Location)
	return saved, nil
}
