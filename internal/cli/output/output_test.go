package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{"", false, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
		{ModeText, false, ModeText},
	}
	for _, tt := range tests {
		r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
		assert.Equal(t, tt.want, r.EffectiveMode(), "mode %q tty %v", tt.mode, tt.isTTY)
	}
}

func TestNewRenderer_Buffer(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestValidMode(t *testing.T) {
	for _, m := range Modes() {
		assert.True(t, ValidMode(m), m)
	}
	assert.True(t, ValidMode(""))
	assert.False(t, ValidMode("yaml"))
}

func TestRenderer_NoANSIWhenPiped(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Header(1, "Parts")
	r.Success("wrote air.ly")
	r.StatusLine("air.yaml", "ok", true)
	r.Warning("careful")
	r.Error("broken")

	assert.Equal(t, "Parts\n─────\n✓ wrote air.ly\nair.yaml                 ok\n", out.String())
	assert.Equal(t, "warning: careful\nerror: broken\n", errOut.String())
}

func TestRenderer_MarkdownHeader(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)
	r.Header(2, "Voices")
	assert.Equal(t, "## Voices\n\n", out.String())
}

func TestRenderer_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)
	require.NoError(t, r.JSON(RenderOutput{RunID: "x", Input: "a.yaml"}))
	assert.Equal(t, "{\n  \"run_id\": \"x\",\n  \"input\": \"a.yaml\"\n}\n", out.String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Deep", FormatHeader(3, "Deep"))
	assert.Equal(t, "# Zero", FormatHeader(0, "Zero"))
	assert.Equal(t, "```lilypond\nc4\n```", FormatCodeBlock("lilypond", "c4\n\n"))
	assert.Equal(t, "- **Parts:** 2", FormatKeyValue("Parts", 2))
}
