// Package main provides tests for the msr2ly CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kant/libmusicxml/internal/cli"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	// Get the absolute path to testdata directory
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	return filepath.Join(wd, "..", "..", "testdata")
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, _, err := run(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "msr2ly") {
		t.Errorf("version output should contain 'msr2ly', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, _, err := run(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"render", "check", "inspect", "version", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	td := testdataDir(t)
	t.Chdir(t.TempDir())

	output, _, err := run(t, "render", "--output", "text", filepath.Join(td, "scores", "air.yaml"))
	if err != nil {
		t.Fatalf("render command error = %v", err)
	}

	for _, want := range []string{
		`\version "2.24.0"`,
		`title`,
		`\key g \major`,
		`\repeat volta 2 {`,
		`\alternative {`,
		`\bar "|."`,
		`\lyricsto`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("render output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestRenderCommandFlags(t *testing.T) {
	td := testdataDir(t)
	t.Chdir(t.TempDir())

	output, _, err := run(t, "render", "--output", "text", "--language", "english", "--no-lyrics", "--absolute",
		filepath.Join(td, "scores", "air.yaml"))
	if err != nil {
		t.Fatalf("render command error = %v", err)
	}
	if !strings.Contains(output, `\language "english"`) {
		t.Errorf("expected english pitch names, got:\n%s", output)
	}
	if strings.Contains(output, `\lyricsto`) {
		t.Errorf("--no-lyrics should omit lyrics, got:\n%s", output)
	}
	if strings.Contains(output, `\relative`) {
		t.Errorf("--absolute should not use relative mode, got:\n%s", output)
	}
}

func TestRenderCommandJSON(t *testing.T) {
	td := testdataDir(t)
	t.Chdir(t.TempDir())
	outDir := t.TempDir()

	output, _, err := run(t, "render", "--output", "json", "--out-dir", outDir,
		filepath.Join(td, "scores", "air.yaml"), filepath.Join(td, "scores", "duet.yaml"))
	if err != nil {
		t.Fatalf("render --output json error = %v", err)
	}

	var records []struct {
		RunID  string `json:"run_id"`
		Input  string `json:"input"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, output)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].RunID == "" || records[0].RunID != records[1].RunID {
		t.Errorf("records should share one run id: %+v", records)
	}
	for _, rec := range records {
		if _, err := os.Stat(rec.Output); err != nil {
			t.Errorf("output %s not written: %v", rec.Output, err)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	td := testdataDir(t)
	t.Chdir(t.TempDir())
	outDir := t.TempDir()
	input := filepath.Join(td, "scores", "duet.yaml")

	if _, _, err := run(t, "render", "--out-dir", outDir, input); err != nil {
		t.Fatalf("render command error = %v", err)
	}
	expected := filepath.Join(outDir, "duet.ly")

	if _, _, err := run(t, "check", input, expected); err != nil {
		t.Errorf("check of a fresh rendering should pass, got %v", err)
	}

	// Different options produce a different rendering.
	output, _, err := run(t, "check", "--output", "markdown", "--absolute", input, expected)
	if err == nil {
		t.Fatal("check with different options should fail")
	}
	if !strings.Contains(output, "```diff") {
		t.Errorf("check output should contain a diff, got:\n%s", output)
	}
}

func TestInspectCommand(t *testing.T) {
	td := testdataDir(t)
	t.Chdir(t.TempDir())

	output, _, err := run(t, "inspect", "--output", "json", filepath.Join(td, "scores", "duet.yaml"))
	if err != nil {
		t.Fatalf("inspect command error = %v", err)
	}

	var info struct {
		Parts []struct {
			ID string `json:"id"`
		} `json:"parts"`
		Counts map[string]int `json:"counts"`
	}
	if err := json.Unmarshal([]byte(output), &info); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, output)
	}
	if len(info.Parts) != 2 || info.Parts[1].ID != "P2" {
		t.Errorf("unexpected parts: %+v", info.Parts)
	}
	if info.Counts["Measure"] != 4 {
		t.Errorf("expected 4 measures, got %d", info.Counts["Measure"])
	}
}

func TestConfigFile(t *testing.T) {
	td := testdataDir(t)
	t.Chdir(t.TempDir())

	output, _, err := run(t, "render", "--config", filepath.Join(td, "msr2ly.yaml"), filepath.Join(td, "scores", "air.yaml"))
	if err != nil {
		t.Fatalf("render command error = %v", err)
	}
	if !strings.Contains(output, `\language "english"`) {
		t.Errorf("config file language should apply, got:\n%s", output)
	}
}

func TestInvalidInput(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("bad.yaml", []byte("parts:\n  - id: P1\n    staves: [{voices: [{music: [{measure: [{trill: x}]}]}]}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := run(t, "render", "bad.yaml")
	if err == nil {
		t.Fatal("expected an error for an unknown element")
	}
	if !strings.Contains(err.Error(), "bad.yaml:3:") {
		t.Errorf("error should name file and line, got: %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	output, _, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion command error = %v", err)
	}
	if !strings.Contains(output, "msr2ly") {
		t.Errorf("bash completion should mention msr2ly")
	}
}
