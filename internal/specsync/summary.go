package specsync

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	// AccessLevelKey is the operation extension naming who may call it.
	AccessLevelKey = "x-access-level"

	DefaultAccessLevel = "user"
)

// Summary counts the endpoints of a document by access level.
type Summary struct {
	Title     string
	Version   string
	Endpoints int
	Levels    []LevelCount
}

type LevelCount struct {
	Level string
	Count int
}

// LoadOpenAPI parses content with kin-openapi.
func LoadOpenAPI(content []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	return loader.LoadFromData(content)
}

// Summarize loads content and counts its endpoints.
func Summarize(content []byte) (*Summary, error) {
	doc, err := LoadOpenAPI(content)
	if err != nil {
		return nil, err
	}
	return NewSummary(doc), nil
}

// NewSummary counts the operations of doc grouped by access level,
// sorted by level name.
func NewSummary(doc *openapi3.T) *Summary {
	res := &Summary{}
	if doc.Info != nil {
		res.Title = doc.Info.Title
		res.Version = doc.Info.Version
	}

	counts := make(map[string]int)
	for _, item := range doc.Paths {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			counts[accessLevel(op)]++
			res.Endpoints++
		}
	}

	for level, count := range counts {
		res.Levels = append(res.Levels, LevelCount{Level: level, Count: count})
	}
	sort.Slice(res.Levels, func(i, j int) bool {
		return res.Levels[i].Level < res.Levels[j].Level
	})

	return res
}

// Write prints the summary in a human-readable form.
func (s *Summary) Write(w io.Writer) {
	if s.Title != "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", s.Title, s.Version)
	}
	_, _ = fmt.Fprintf(w, "endpoints: %d\n", s.Endpoints)
	for _, l := range s.Levels {
		_, _ = fmt.Fprintf(w, "  %s: %d\n", l.Level, l.Count)
	}
}

func accessLevel(op *openapi3.Operation) string {
	raw, ok := op.Extensions[AccessLevelKey]
	if !ok {
		return DefaultAccessLevel
	}

	switch v := raw.(type) {
	case string:
		if v != "" {
			return v
		}
	case json.RawMessage:
		var level string
		if err := json.Unmarshal(v, &level); err == nil && level != "" {
			return level
		}
	}
	return DefaultAccessLevel
}
