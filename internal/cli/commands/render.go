package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kant/libmusicxml/internal/cli/output"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Render score descriptions to LilyPond",
		Long: `Render one or more score descriptions to LilyPond source.

A single file is written to standard output unless --out-dir is set.
Several files are rendered concurrently, each to <name>.ly in --out-dir
or next to its input.

Output adapts to environment:
  - Terminal: LilyPond source or a list of written files
  - Piped/Scripted: Markdown with code blocks
  
Use --output json for {run_id, input, output, lilypond} records.`,
		Example: `  # Render to stdout
  msr2ly render air.yaml

  # Render several files into build/
  msr2ly render --out-dir build air.yaml gavotte.yaml

  # Re-render on every change
  msr2ly render --watch --out-dir build air.yaml

  # Absolute octaves, english pitch names
  msr2ly render --absolute --language english air.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, watch)
		},
	}

	cmd.Flags().String("out-dir", "", "Directory for rendered .ly files")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render when an input changes")

	return cmd
}

// renderResult is the outcome for one input file.
type renderResult struct {
	input    string
	output   string // empty when written to stdout
	lilypond string
}

func runRender(cmd *cobra.Command, files []string, watch bool) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	toStdout := len(files) == 1 && cmdCtx.Cfg.OutDir == "" && !watch
	runID := uuid.NewString()

	results, err := renderAll(cmd.Context(), cmdCtx, runID, files, toStdout)
	if err != nil {
		return err
	}
	if err := reportRender(r, runID, results); err != nil {
		return err
	}

	if !watch {
		return nil
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	r.Muted("Watching for changes. Press Ctrl+C to stop.")
	return watchFiles(ctx, cmdCtx, files)
}

// renderAll renders every file concurrently. Each file is an independent
// pass with its own render state.
func renderAll(ctx context.Context, cmdCtx *CommandContext, runID string, files []string, toStdout bool) ([]renderResult, error) {
	logger := cmdCtx.Logger.With("run_id", runID)
	results := make([]renderResult, len(files))

	eg, egctx := errgroup.WithContext(ctx)
	for i, file := range files {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			res, err := renderOne(cmdCtx, logger, file, toStdout)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderOne(cmdCtx *CommandContext, logger *slog.Logger, file string, toStdout bool) (renderResult, error) {
	res := renderResult{input: file}
	ly, err := cmdCtx.renderFile(file, logger)
	if err != nil {
		return res, err
	}
	res.lilypond = ly
	if !toStdout {
		res.output = outputPath(file, cmdCtx.Cfg.OutDir)
		if err := writeFile(res.output, ly); err != nil {
			return res, err
		}
	}
	logger.Info("rendered", "input", file, "output", res.output, "bytes", len(ly))
	return res, nil
}

func reportRender(r *output.Renderer, runID string, results []renderResult) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		records := make([]output.RenderOutput, len(results))
		for i, res := range results {
			records[i] = output.RenderOutput{RunID: runID, Input: res.input, Output: res.output}
			if res.output == "" {
				records[i].LilyPond = res.lilypond
			}
		}
		if len(records) == 1 {
			return r.JSON(records[0])
		}
		return r.JSON(records)
	case output.ModeMarkdown:
		for _, res := range results {
			if res.output != "" {
				r.Println(output.FormatKeyValue(res.input, res.output))
				continue
			}
			r.Println(output.FormatHeader(1, fmt.Sprintf("LilyPond: %s", res.input)))
			r.Println("")
			r.Println(output.FormatCodeBlock("lilypond", res.lilypond))
		}
	default:
		for _, res := range results {
			if res.output == "" {
				// Text mode: just output the LilyPond source directly
				r.Printf("%s", res.lilypond)
				continue
			}
			r.Success(fmt.Sprintf("%s → %s", res.input, r.Styles().Path.Render(res.output)))
		}
	}
	return nil
}
