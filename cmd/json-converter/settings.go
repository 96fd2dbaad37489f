package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"
)

// settings are read from the environment.
type settings struct {
	// TypeKey overrides the document's typeKey. ENV: JSONCONV_TYPE_KEY
	TypeKey string `env:"JSONCONV_TYPE_KEY"`
	// LogLevel is one of debug, info, warn, error. ENV: JSONCONV_LOG_LEVEL
	LogLevel string `env:"JSONCONV_LOG_LEVEL,default=info"`
	// LogFormat is text or json. ENV: JSONCONV_LOG_FORMAT
	LogFormat string `env:"JSONCONV_LOG_FORMAT,default=text"`
}

func loadSettings() (settings, error) {
	var s settings
	if err := envdecode.Decode(&s); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return s, fmt.Errorf("read environment: %w", err)
	}

	if s.LogLevel == "" {
		s.LogLevel = "info"
	}

	if s.LogFormat == "" {
		s.LogFormat = "text"
	}

	return s, nil
}

func (s settings) level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func (s settings) logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.level()}

	if strings.EqualFold(s.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
