package wordimage

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantKey   string
		wantLevel slog.Level
		wantErr   error
	}{
		{
			name:      "key set",
			env:       map[string]string{APIKeyEnv: "abc"},
			wantKey:   "abc",
			wantLevel: slog.LevelInfo,
		},
		{
			name:      "key trimmed, debug level",
			env:       map[string]string{APIKeyEnv: "  abc \n", LogLevelEnv: "debug"},
			wantKey:   "abc",
			wantLevel: slog.LevelDebug,
		},
		{
			name:    "key unset",
			env:     map[string]string{},
			wantErr: ErrMissingCredential,
		},
		{
			name:    "key blank",
			env:     map[string]string{APIKeyEnv: "   "},
			wantErr: ErrMissingCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(envMap(tt.env))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if cfg.APIKey != tt.wantKey {
				t.Errorf("APIKey = %q, want %q", cfg.APIKey, tt.wantKey)
			}
			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.wantLevel)
			}
		})
	}
}

func TestLoadConfig_BadLogLevel(t *testing.T) {
	_, err := LoadConfig(envMap(map[string]string{APIKeyEnv: "abc", LogLevelEnv: "loud"}))
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "WORDIMAGE_TEST_DOTENV_KEY"
	t.Setenv(key, "")
	os.Unsetenv(key)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, want from-file", key, got)
	}
}
