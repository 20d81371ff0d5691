package output

// RenderOutput is the JSON form of one rendered file.
type RenderOutput struct {
	RunID    string `json:"run_id"`
	Input    string `json:"input"`
	Output   string `json:"output,omitempty"`
	LilyPond string `json:"lilypond,omitempty"`
}

// CheckOutput is the JSON form of a check.
type CheckOutput struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Match    bool   `json:"match"`
	Diff     string `json:"diff,omitempty"`
}

// InspectOutput is the JSON form of an inspected score.
type InspectOutput struct {
	Source string         `json:"source"`
	Parts  []PartInfo     `json:"parts"`
	Counts map[string]int `json:"counts"`
}

// PartInfo describes one part.
type PartInfo struct {
	ID     string      `json:"id"`
	Name   string      `json:"name,omitempty"`
	Staves []StaffInfo `json:"staves"`
}

// StaffInfo describes one staff.
type StaffInfo struct {
	Name   string      `json:"name"`
	Kind   string      `json:"kind"`
	Voices []VoiceInfo `json:"voices"`
}

// VoiceInfo describes one voice.
type VoiceInfo struct {
	Name     string `json:"name"`
	Measures int    `json:"measures"`
	Notes    int    `json:"notes"`
	Stanzas  int    `json:"stanzas"`
}
