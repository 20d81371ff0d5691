package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kant/libmusicxml/internal/cli/output"
	"github.com/kant/libmusicxml/pkg/lilypond"
)

// Validate checks if the configuration is valid. All problems are reported.
func (c *Config) Validate() error {
	var errs []error
	if !output.ValidMode(c.OutputFormat) {
		errs = append(errs, fmt.Errorf("unknown output format %q (want %s)",
			c.OutputFormat, strings.Join(output.Modes(), "|")))
	}
	if c.WatchDebounce < 0 {
		errs = append(errs, fmt.Errorf("watch_debounce must not be negative"))
	}
	r := c.Render
	if r.Language != "" && !slices.Contains(lilypond.Languages(), r.Language) {
		errs = append(errs, fmt.Errorf("unknown pitch language %q", r.Language))
	}
	if r.MaxTokensPerLine < 0 {
		errs = append(errs, fmt.Errorf("render.max_tokens_per_line must not be negative"))
	}
	if r.MaxLyricsPerLine < 0 {
		errs = append(errs, fmt.Errorf("render.max_lyrics_per_line must not be negative"))
	}
	return errors.Join(errs...)
}
