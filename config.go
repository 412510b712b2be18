package wordimage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// APIKeyEnv names the environment variable holding the Gemini API key.
	APIKeyEnv = "GEMINI_API_KEY"

	// LogLevelEnv optionally sets the log level (debug, info, warn, error).
	LogLevelEnv = "WORDIMAGE_LOG_LEVEL"
)

// Config is the process configuration read from the environment.
type Config struct {
	APIKey   string
	LogLevel slog.Level
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given) without overriding ones already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig reads Config through getenv, normally os.Getenv.
// A missing API key is reported as ErrMissingCredential.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		APIKey:   strings.TrimSpace(getenv(APIKeyEnv)),
		LogLevel: slog.LevelInfo,
	}

	if lvl := getenv(LogLevelEnv); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", LogLevelEnv, err)
		}
	}

	if err := ValidateCredential(cfg.APIKey); err != nil {
		return Config{}, fmt.Errorf("%w: %s is not set", err, APIKeyEnv)
	}

	return cfg, nil
}
