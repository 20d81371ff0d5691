// Package config provides configuration management for the msr2ly CLI.
package config

import (
	"log/slog"
	"time"

	"github.com/kant/libmusicxml/pkg/lilypond"
)

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat  string        `koanf:"output"`
	Verbose       bool          `koanf:"verbose"`
	OutDir        string        `koanf:"out_dir"`
	WatchDebounce time.Duration `koanf:"watch_debounce"`
	Render        RenderConfig  `koanf:"render"`
}

// RenderConfig mirrors lilypond.Options.
type RenderConfig struct {
	Absolute         bool   `koanf:"absolute"`
	Comments         bool   `koanf:"comments"`
	NoLyrics         bool   `koanf:"no_lyrics"`
	NumericTime      bool   `koanf:"numeric_time"`
	Stems            bool   `koanf:"stems"`
	LineNumbers      bool   `koanf:"line_numbers"`
	MaxTokensPerLine int    `koanf:"max_tokens_per_line"`
	MaxLyricsPerLine int    `koanf:"max_lyrics_per_line"`
	NoAutoBeaming    bool   `koanf:"no_auto_beaming"`
	Language         string `koanf:"language"`
	Version          string `koanf:"version"`
	Midi             bool   `koanf:"midi"`
}

// Options converts the render settings into renderer options.
func (c RenderConfig) Options(logger *slog.Logger) lilypond.Options {
	return lilypond.Options{
		AbsoluteOctaves:  c.Absolute,
		Comments:         c.Comments,
		NoLyrics:         c.NoLyrics,
		NumericTime:      c.NumericTime,
		Stems:            c.Stems,
		LineNumbers:      c.LineNumbers,
		MaxTokensPerLine: c.MaxTokensPerLine,
		MaxLyricsPerLine: c.MaxLyricsPerLine,
		NoAutoBeaming:    c.NoAutoBeaming,
		Language:         c.Language,
		Version:          c.Version,
		Midi:             c.Midi,
		Logger:           logger,
	}
}

// Default configuration values.
const (
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultWatchDebounce = 100 * time.Millisecond
	ConfigFileName       = "msr2ly.yaml"
	EnvPrefix            = "MSR2LY_"
)

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		OutputFormat:  DefaultOutput,
		WatchDebounce: DefaultWatchDebounce,
		Render: RenderConfig{
			Language: lilypond.DefaultLanguage,
			Version:  lilypond.DefaultVersion,
		},
	}
}
