package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kant/libmusicxml/internal/cli/output"
	"github.com/kant/libmusicxml/internal/scorefile"
	"github.com/kant/libmusicxml/pkg/score"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the parts, staves and voices of a score",
		Long: `Load and validate a score description and summarise its model:
every voice with its generated name, measure and note counts, and the
number of nodes of each kind.`,
		Example: `  # Summarise a score
  msr2ly inspect air.yaml

  # As JSON
  msr2ly inspect air.yaml --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}

	return cmd
}

func runInspect(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	tree, err := scorefile.Load(path)
	if err != nil {
		return err
	}
	info := describe(tree, path)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Score: %s", path)))
		r.Println("")
		// The tables write through their output mirror.
		voiceTable(r.Writer(), info).RenderMarkdown()
		r.Println("")
		r.Println(output.FormatHeader(2, "Nodes"))
		r.Println("")
		countTable(r.Writer(), tree).RenderMarkdown()
	default:
		r.Header(1, fmt.Sprintf("Score: %s", path))
		voiceTable(r.Writer(), info).Render()
		r.Println("")
		countTable(r.Writer(), tree).Render()
	}
	return nil
}

// describe collects the parts, staves and voices of tree.
func describe(tree *score.Tree, path string) output.InspectOutput {
	info := output.InspectOutput{Source: path, Counts: map[string]int{}}
	for kind, n := range tree.Stats() {
		info.Counts[kind.String()] = n
	}

	score.Inspect(tree, tree.Root(), func(id score.NodeID) bool {
		if tree.Kind(id) != score.KindPart {
			return true
		}
		part, _ := score.As[score.Part](tree, id)
		pi := output.PartInfo{ID: part.ID, Name: part.Name}
		for _, s := range tree.ChildrenOf(id, score.KindStaff) {
			st, _ := score.As[score.Staff](tree, s)
			si := output.StaffInfo{Name: tree.StaffName(s), Kind: st.Kind.String()}
			for _, v := range tree.ChildrenOf(s, score.KindVoice) {
				vi := output.VoiceInfo{
					Name:    tree.VoiceName(v),
					Stanzas: tree.CountOf(v, score.KindLyrics),
				}
				score.Inspect(tree, v, func(n score.NodeID) bool {
					switch tree.Kind(n) {
					case score.KindMeasure:
						vi.Measures++
					case score.KindNote:
						vi.Notes++
					case score.KindLyrics:
						return false
					}
					return true
				})
				si.Voices = append(si.Voices, vi)
			}
			pi.Staves = append(pi.Staves, si)
		}
		info.Parts = append(info.Parts, pi)
		return false
	})
	return info
}

func voiceTable(w io.Writer, info output.InspectOutput) table.Writer {
	title := cases.Title(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Part", "Staff", "Kind", "Voice", "Measures", "Notes", "Stanzas"})
	for _, p := range info.Parts {
		part := p.ID
		if p.Name != "" {
			part += " (" + p.Name + ")"
		}
		for _, s := range p.Staves {
			for _, v := range s.Voices {
				t.AppendRow(table.Row{part, s.Name, title.String(s.Kind), v.Name, v.Measures, v.Notes, v.Stanzas})
			}
		}
	}
	return t
}

func countTable(w io.Writer, tree *score.Tree) table.Writer {
	stats := tree.Stats()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Count"})
	for _, k := range score.Kinds() {
		if n := stats[k]; n > 0 {
			t.AppendRow(table.Row{k.String(), n})
		}
	}
	return t
}
