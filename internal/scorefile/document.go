package scorefile

import (
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kant/libmusicxml/pkg/score"
)

// document is the decoded form of a score description. Types that carry a
// position record the line of their YAML node.
type document struct {
	Header    []field `yaml:"header"`
	Variables []field `yaml:"variables"`
	Paper     *paper  `yaml:"paper"`
	Layout    []field `yaml:"layout"`
	Groups    []group `yaml:"groups"`
	Parts     []part  `yaml:"parts"`
}

type field struct {
	Name      string `yaml:"name"`
	Value     string `yaml:"value"`
	Quoted    *bool  `yaml:"quoted"`
	Commented bool   `yaml:"commented"`
	Unit      string `yaml:"unit"`

	at score.Position
}

type paper struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	TopMargin    float64 `yaml:"top"`
	BottomMargin float64 `yaml:"bottom"`
	LeftMargin   float64 `yaml:"left"`
	RightMargin  float64 `yaml:"right"`

	at score.Position
}

type group struct {
	Symbol     string  `yaml:"symbol"`
	Name       string  `yaml:"name"`
	Instrument string  `yaml:"instrument"`
	Groups     []group `yaml:"groups"`
	Parts      []part  `yaml:"parts"`

	at score.Position
}

type part struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Abbreviation string  `yaml:"abbreviation"`
	Staves       []staff `yaml:"staves"`

	at score.Position
}

type staff struct {
	Number  int      `yaml:"number"`
	Kind    string   `yaml:"kind"`
	Tunings []string `yaml:"tunings"`
	Voices  []voice  `yaml:"voices"`

	at score.Position
}

type voice struct {
	Number     int         `yaml:"number"`
	StaffVoice int         `yaml:"staff_voice"`
	Lyrics     []stanza    `yaml:"lyrics"`
	Music      []musicItem `yaml:"music"`

	at score.Position
}

type stanza struct {
	Number    int        `yaml:"number"`
	Syllables []syllable `yaml:"syllables"`

	at score.Position
}

// syllable is either a shorthand string ("Hel-", "-lo", "_4", "|") or a
// mapping with an explicit kind.
type syllable struct {
	Text     string `yaml:"text"`
	Kind     string `yaml:"kind"`
	Duration string `yaml:"duration"`

	shorthand bool
	at        score.Position
}

type musicItem struct {
	Measure *measure `yaml:"measure"`
	Repeat  *repeat  `yaml:"repeat"`

	at score.Position
}

type repeat struct {
	Measures []measure `yaml:"measures"`
	Endings  []ending  `yaml:"endings"`
}

// ending is the measures of one alternative. It is written as a single
// measure (element list or mapping) or as a mapping with a measures list.
type ending []measure

// measure is either a plain element list or a mapping with a number, kind
// and length.
type measure struct {
	Number   int       `yaml:"number"`
	Kind     string    `yaml:"kind"`
	Length   string    `yaml:"length"`
	Elements []element `yaml:"elements"`

	at score.Position
}

// element is one single-key map of a measure.
type element struct {
	key   string
	value *yaml.Node
	at    score.Position
}

func position(n *yaml.Node) score.Position {
	return score.Position{Line: n.Line, Column: n.Column}
}

// decodeStrict decodes n into v and rejects mapping keys that v does not
// declare. Node.Decode does not inherit the decoder's KnownFields setting.
func decodeStrict(n *yaml.Node, v any) error {
	if n.Kind == yaml.MappingNode {
		known := yamlKeys(reflect.TypeOf(v).Elem())
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if !known[k.Value] {
				return errorAt(position(k), "unknown field %q", k.Value)
			}
		}
	}
	return n.Decode(v)
}

func yamlKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}

func (f *field) UnmarshalYAML(n *yaml.Node) error {
	type plain field
	if err := decodeStrict(n, (*plain)(f)); err != nil {
		return err
	}
	f.at = position(n)
	return nil
}

func (p *paper) UnmarshalYAML(n *yaml.Node) error {
	type plain paper
	if err := decodeStrict(n, (*plain)(p)); err != nil {
		return err
	}
	p.at = position(n)
	return nil
}

func (g *group) UnmarshalYAML(n *yaml.Node) error {
	type plain group
	if err := decodeStrict(n, (*plain)(g)); err != nil {
		return err
	}
	g.at = position(n)
	return nil
}

func (p *part) UnmarshalYAML(n *yaml.Node) error {
	type plain part
	if err := decodeStrict(n, (*plain)(p)); err != nil {
		return err
	}
	p.at = position(n)
	return nil
}

func (s *staff) UnmarshalYAML(n *yaml.Node) error {
	type plain staff
	if err := decodeStrict(n, (*plain)(s)); err != nil {
		return err
	}
	s.at = position(n)
	return nil
}

func (v *voice) UnmarshalYAML(n *yaml.Node) error {
	type plain voice
	if err := decodeStrict(n, (*plain)(v)); err != nil {
		return err
	}
	v.at = position(n)
	return nil
}

func (s *stanza) UnmarshalYAML(n *yaml.Node) error {
	type plain stanza
	if err := decodeStrict(n, (*plain)(s)); err != nil {
		return err
	}
	s.at = position(n)
	return nil
}

func (s *syllable) UnmarshalYAML(n *yaml.Node) error {
	s.at = position(n)
	if n.Kind == yaml.ScalarNode {
		s.Text = n.Value
		s.shorthand = true
		return nil
	}
	type plain syllable
	return decodeStrict(n, (*plain)(s))
}

func (m *musicItem) UnmarshalYAML(n *yaml.Node) error {
	type plain musicItem
	if err := decodeStrict(n, (*plain)(m)); err != nil {
		return err
	}
	m.at = position(n)
	if (m.Measure == nil) == (m.Repeat == nil) {
		return errorAt(m.at, "music item must be exactly one of measure or repeat")
	}
	return nil
}

func (m *measure) UnmarshalYAML(n *yaml.Node) error {
	m.at = position(n)
	switch n.Kind {
	case yaml.SequenceNode:
		return n.Decode(&m.Elements)
	case yaml.MappingNode:
		type plain measure
		return decodeStrict(n, (*plain)(m))
	default:
		return errorAt(m.at, "measure must be an element list or a mapping")
	}
}

func (e *ending) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode && hasKey(n, "measures") {
		var multi struct {
			Measures []measure `yaml:"measures"`
		}
		if err := decodeStrict(n, &multi); err != nil {
			return err
		}
		*e = multi.Measures
		return nil
	}
	var m measure
	if err := m.UnmarshalYAML(n); err != nil {
		return err
	}
	*e = ending{m}
	return nil
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

func (e *element) UnmarshalYAML(n *yaml.Node) error {
	e.at = position(n)
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return errorAt(e.at, "measure element must be a single-key map")
	}
	e.key = n.Content[0].Value
	e.value = n.Content[1]
	return nil
}
