package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/kant/libmusicxml/internal/cli/output"
)

// ErrMismatch is returned by check when the rendering differs.
var ErrMismatch = errors.New("rendering differs from expected output")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file> <expected.ly>",
		Short: "Compare a fresh rendering with an existing .ly file",
		Long: `Render a score description and compare the result with a LilyPond file.

Prints a line diff from the expected file to the fresh rendering and exits
with an error when they differ. Useful for regression suites of
engraved scores.`,
		Example: `  # Verify a rendering is unchanged
  msr2ly check air.yaml testdata/air.ly

  # Machine-readable result
  msr2ly check air.yaml testdata/air.ly --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], args[1])
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, input, expectedPath string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	got, err := cmdCtx.renderFile(input, cmdCtx.Logger)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(expectedPath)
	if err != nil {
		return fmt.Errorf("failed to read expected output: %w", err)
	}
	expected := string(data)

	res := output.CheckOutput{Input: input, Expected: expectedPath, Match: got == expected}
	var diffs []diffmatchpatch.Diff
	dmp := diffmatchpatch.New()
	if !res.Match {
		diffs = lineDiff(dmp, expected, got)
		res.Diff = formatLineDiff(diffs)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(res); err != nil {
			return err
		}
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Check: %s", input)))
		r.Println("")
		r.Println(output.FormatKeyValue("Expected", expectedPath))
		r.Println(output.FormatKeyValue("Match", res.Match))
		if !res.Match {
			r.Println("")
			r.Println(output.FormatCodeBlock("diff", res.Diff))
		}
	default:
		if res.Match {
			r.StatusLine(input, "matches "+expectedPath, true)
			break
		}
		r.StatusLine(input, "differs from "+expectedPath, false)
		if r.IsTTY() {
			r.Println(dmp.DiffPrettyText(diffs))
		} else {
			r.Println(res.Diff)
		}
	}

	if !res.Match {
		return fmt.Errorf("%s: %w", input, ErrMismatch)
	}
	return nil
}

// lineDiff diffs a and b line by line.
func lineDiff(dmp *diffmatchpatch.DiffMatchPatch, a, b string) []diffmatchpatch.Diff {
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// diffContext is the number of unchanged lines kept around a change.
const diffContext = 2

// formatLineDiff writes diffs with "-", "+" and " " line prefixes. Long
// unchanged runs are elided.
func formatLineDiff(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for i, d := range diffs {
		lines := strings.SplitAfter(d.Text, "\n")
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
			lines = elide(lines, i > 0, i < len(diffs)-1)
		}
		for _, l := range lines {
			sb.WriteString(prefix + strings.TrimSuffix(l, "\n") + "\n")
		}
	}
	return sb.String()
}

// elide keeps diffContext lines next to the changes before and after.
func elide(lines []string, before, after bool) []string {
	keep := 0
	if before {
		keep += diffContext
	}
	if after {
		keep += diffContext
	}
	if len(lines) <= keep+1 {
		return lines
	}
	var out []string
	if before {
		out = append(out, lines[:diffContext]...)
	}
	out = append(out, "...\n")
	if after {
		out = append(out, lines[len(lines)-diffContext:]...)
	}
	return out
}
