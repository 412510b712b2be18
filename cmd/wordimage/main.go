// Command wordimage generates the illustration for a fixed vocabulary word
// and saves it as an RGB PNG at wordimage.DefaultOutputPath.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mhpenta/wordimage"
	"github.com/mhpenta/wordimage/provider/gemini"
	"github.com/mhpenta/wordimage/vocab"
)

func main() {
	if err := run(); err != nil {
		slog.Error("image generation failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := wordimage.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := wordimage.LoadConfig(os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	word := vocab.Anomaly()
	logger.Info("generating illustration", "word", word.Word, "tier", word.Tier)

	inv := wordimage.NewInvoker(cfg.APIKey, word.Prompt(), gemini.Factory,
		wordimage.WithInvokerLogger(logger),
	)

	_, err = inv.Run(ctx)
	return err
}
