package wordimage

import (
	"log/slog"
)

// ManagerOption configures the Manager.
type ManagerOption func(*Manager)

// WithLogger sets a structured logger for the manager.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDefaultModel sets the default model used when config.Model is empty.
func WithDefaultModel(model Model) ManagerOption {
	return func(m *Manager) {
		m.defaultModel = model
	}
}

// NewManager creates a Manager that serves every model the provider reports.
// The provider's first model becomes the default unless WithDefaultModel
// says otherwise.
//
//	gen, err := gemini.NewWithAPIKey(ctx, apiKey)
//	if err != nil {
//	    return err
//	}
//	manager := wordimage.NewManager(gen, wordimage.WithLogger(logger))
func NewManager(provider ImageGenerator, opts ...ManagerOption) *Manager {
	m := newManager(provider)

	models := provider.Models()
	for i := range models {
		m.registerModel(&models[i])
	}
	if len(models) > 0 {
		m.defaultModel = Model(models[0].Name)
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}
