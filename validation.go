package wordimage

import (
	"errors"
	"strings"
)

// ErrEmptyPrompt is returned for blank prompts.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

// ValidatePrompt validates a text prompt.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// ValidateCredential reports ErrMissingCredential for an empty or blank key.
func ValidateCredential(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return ErrMissingCredential
	}
	return nil
}
