package career

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Record is one career path from the catalog. Roadmap and Resources are
// passed through to callers untouched.
type Record struct {
	Name        string          `json:"career"`
	Description string          `json:"description"`
	Skills      []string        `json:"skills"`
	Interests   []string        `json:"interests"`
	Roadmap     json.RawMessage `json:"roadmap"`
	Resources   json.RawMessage `json:"resources"`
}

func (r Record) Validate() error {
	if r.Name == "" {
		return NewEntryError(-1, "career", "missing career name")
	}
	if r.Skills == nil {
		return NewEntryError(-1, "skills", "missing skills list")
	}
	if r.Interests == nil {
		return NewEntryError(-1, "interests", "missing interests list")
	}
	return nil
}

// Clone returns a copy of r that shares no memory with it.
func (r Record) Clone() Record {
	r.Skills = slices.Clone(r.Skills)
	r.Interests = slices.Clone(r.Interests)
	r.Roadmap = bytes.Clone(r.Roadmap)
	r.Resources = bytes.Clone(r.Resources)
	return r
}

type Query struct {
	Skills    []string
	Interests []string
}

// MatchResult holds the winning record, or a nil Career when nothing scored.
type MatchResult struct {
	Career *Record `json:"career,omitempty"`
	Score  int     `json:"score"`
}

func (m MatchResult) Matched() bool {
	return m.Career != nil
}

type Catalog struct {
	Version string
	Records []Record
}

func (c Catalog) Len() int {
	return len(c.Records)
}
