package report

import (
	"github.com/arthur-debert/schanno/pkg/schematic"
)

// ComponentRow is one component in a listing
type ComponentRow struct {
	Index     int    `json:"index" yaml:"index" toml:"index"`
	Reference string `json:"reference" yaml:"reference" toml:"reference"`
	Unit      string `json:"unit" yaml:"unit" toml:"unit"`
	Value     string `json:"value" yaml:"value" toml:"value"`
	Symbol    string `json:"symbol" yaml:"symbol" toml:"symbol"`
	Footprint string `json:"footprint,omitempty" yaml:"footprint,omitempty" toml:"footprint,omitempty"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty" toml:"timestamp,omitempty"`
	Conflict  bool   `json:"conflict" yaml:"conflict" toml:"conflict"`
	Changed   bool   `json:"changed,omitempty" yaml:"changed,omitempty" toml:"changed,omitempty"`
}

// Listing is the component table of one document
type Listing struct {
	File       string         `json:"file" yaml:"file" toml:"file"`
	Distinct   bool           `json:"distinct" yaml:"distinct" toml:"distinct"`
	Sorted     bool           `json:"sorted" yaml:"sorted" toml:"sorted"`
	Components []ComponentRow `json:"components" yaml:"components" toml:"components"`
}

// MemberRow is one component taking part in a problem
type MemberRow struct {
	Index     int    `json:"index" yaml:"index" toml:"index"`
	Reference string `json:"reference" yaml:"reference" toml:"reference"`
	Unit      string `json:"unit" yaml:"unit" toml:"unit"`
	Value     string `json:"value" yaml:"value" toml:"value"`
}

// ProblemRow is a numbered problem with its members
type ProblemRow struct {
	Number      int         `json:"number" yaml:"number" toml:"number"`
	Kind        string      `json:"kind" yaml:"kind" toml:"kind"`
	Description string      `json:"description" yaml:"description" toml:"description"`
	Members     []MemberRow `json:"members" yaml:"members" toml:"members"`
}

// FileProblems is the check result of one file
type FileProblems struct {
	File       string       `json:"file" yaml:"file" toml:"file"`
	Components int          `json:"components" yaml:"components" toml:"components"`
	Problems   []ProblemRow `json:"problems" yaml:"problems" toml:"problems"`
	Error      string       `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// CheckReport collects the problems of several files
type CheckReport struct {
	Files []FileProblems `json:"files" yaml:"files" toml:"files"`
}

// ProblemCount is the total number of problems across files
func (r *CheckReport) ProblemCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Problems)
	}
	return n
}

// FailedCount is the number of files that could not be checked
func (r *CheckReport) FailedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Error != "" {
			n++
		}
	}
	return n
}

// ChangeReport describes the designators a fix or annotate run changed
type ChangeReport struct {
	File      string             `json:"file" yaml:"file" toml:"file"`
	Action    string             `json:"action" yaml:"action" toml:"action"`
	Strategy  string             `json:"strategy" yaml:"strategy" toml:"strategy"`
	Output    string             `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
	Backup    string             `json:"backup,omitempty" yaml:"backup,omitempty" toml:"backup,omitempty"`
	DryRun    bool               `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	Changes   []schematic.Change `json:"changes" yaml:"changes" toml:"changes"`
	Remaining int                `json:"remaining_problems" yaml:"remaining_problems" toml:"remaining_problems"`
}

// BOMLine groups components sharing symbol, value and footprint
type BOMLine struct {
	Symbol     string   `json:"symbol" yaml:"symbol" toml:"symbol"`
	Value      string   `json:"value" yaml:"value" toml:"value"`
	Footprint  string   `json:"footprint" yaml:"footprint" toml:"footprint"`
	Quantity   int      `json:"quantity" yaml:"quantity" toml:"quantity"`
	References []string `json:"references" yaml:"references" toml:"references"`
}

// BOM is a bill of materials for one document
type BOM struct {
	File  string    `json:"file" yaml:"file" toml:"file"`
	Parts int       `json:"parts" yaml:"parts" toml:"parts"`
	Lines []BOMLine `json:"lines" yaml:"lines" toml:"lines"`
}

// Message is a single line of feedback
type Message struct {
	Text string `json:"message" yaml:"message" toml:"message"`
}
