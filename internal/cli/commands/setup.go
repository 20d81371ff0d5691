package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kant/libmusicxml/internal/cli/config"
	"github.com/kant/libmusicxml/internal/cli/output"
	"github.com/kant/libmusicxml/internal/scorefile"
	"github.com/kant/libmusicxml/pkg/lilypond"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Options returns the renderer options for this command.
func (c *CommandContext) Options() lilypond.Options {
	return c.Cfg.Render.Options(c.Logger)
}

// renderFile loads a score description and renders it.
func (c *CommandContext) renderFile(path string, logger *slog.Logger) (string, error) {
	tree, err := scorefile.Load(path)
	if err != nil {
		return "", err
	}
	opts := c.Options()
	opts.Logger = logger
	ly, err := lilypond.RenderString(tree, opts)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return ly, nil
}

// getConfig returns the current configuration, or defaults when none was
// loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// outputPath returns where the rendering of input goes: dir/<base>.ly, or
// next to the input when dir is empty.
func outputPath(input, dir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".ly"
	if dir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(dir, base)
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
