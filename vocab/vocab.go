// Package vocab holds the fixed vocabulary entries that illustrations are
// generated for, and renders the illustration prompt for an entry.
package vocab

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"
)

//go:embed words/*.yaml
var wordFiles embed.FS

// ErrUnknownWord is returned by Load for a name with no embedded entry.
var ErrUnknownWord = errors.New("unknown vocabulary word")

// Word is one vocabulary entry.
type Word struct {
	Word            string   `yaml:"word" validate:"required"`
	Definition      string   `yaml:"definition" validate:"required"`
	PartOfSpeech    string   `yaml:"part_of_speech" validate:"required"`
	ExampleSentence string   `yaml:"example_sentence" validate:"required"`
	Synonyms        []string `yaml:"synonyms" validate:"required,min=1,dive,required"`
	Difficulty      string   `yaml:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Tier            string   `yaml:"tier" validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func wordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Parse decodes and validates a single YAML word document.
// Unknown keys are rejected.
func Parse(data []byte) (Word, error) {
	var w Word

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return Word{}, fmt.Errorf("invalid word entry: empty document")
		}
		return Word{}, fmt.Errorf("failed to parse word entry: %w", err)
	}

	if err := wordValidator().Struct(w); err != nil {
		return Word{}, fmt.Errorf("invalid word entry: %w", err)
	}

	return w, nil
}

// Load returns the embedded entry words/<name>.yaml.
func Load(name string) (Word, error) {
	data, err := wordFiles.ReadFile("words/" + name + ".yaml")
	if err != nil {
		return Word{}, fmt.Errorf("%w: %s", ErrUnknownWord, name)
	}
	return Parse(data)
}

// Anomaly returns the entry the generator illustrates.
func Anomaly() Word {
	w, err := Load("anomaly")
	if err != nil {
		panic(fmt.Sprintf("embedded word anomaly is invalid: %v", err))
	}
	return w
}
