package app

import (
	"log/slog"
	"testing"

	"github.com/spoolkeep/spoolkeep-backend/internal/config"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})
	if logger == nil {
		t.Fatal("logger should not be nil")
	}
	if !logger.Enabled(nil, slog.LevelInfo) {
		t.Error("info level should be enabled")
	}
	if logger.Enabled(nil, slog.LevelDebug) {
		t.Error("debug level should be disabled at info")
	}
}

func TestNewLogger_TextFormat(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "debug", Format: "text"})
	if logger == nil {
		t.Fatal("logger should not be nil")
	}
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q): got %v, want %v", in, got, want)
		}
	}
}
