package deps

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"

	"github.com/matzehuels/repohealth/pkg/repofs"
)

// Group names emitted by the built-in readers.
const (
	GroupGithub  = "github"   // git+ VCS requirements
	GroupPypiAll = "pypi_all" // pinned PyPI requirements across every requirements file
	GroupPypi    = "pypi"     // pinned PyPI requirements of the production file(s)
	GroupJS      = "js"       // package.json dependencies
	GroupJSDev   = "js.dev"   // package.json devDependencies
	GroupJSAll   = "js.all"   // package-lock.json locked packages
)

// LineReader supplies file lines to readers. A missing file must yield an
// empty slice and no error.
type LineReader interface {
	Lines(path string) ([]string, error)
}

type diskLines struct{}

func (diskLines) Lines(path string) ([]string, error) { return repofs.Lines(path) }

// Options configures a dependency read.
type Options struct {
	Files  LineReader           // File line source (default: uncached disk reads)
	Logger func(string, ...any) // Sink for non-fatal conditions (optional)
}

// WithDefaults returns a copy of Options with nil fields replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Files == nil {
		opts.Files = diskLines{}
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Group is a counted, serialized listing of dependency identifiers.
// Count always equals the number of distinct identifiers in List.
type Group struct {
	Count int    `json:"count" yaml:"count"`
	List  string `json:"list" yaml:"list"`
}

// NewListGroup deduplicates ids by exact string equality, sorts them and
// serializes them as a JSON array.
func NewListGroup(ids []string) Group {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	sorted := slices.Sorted(maps.Keys(set))
	if sorted == nil {
		sorted = []string{}
	}
	return Group{Count: len(sorted), List: encodeList(sorted)}
}

// NewMapGroup serializes a name -> version mapping as a JSON object with
// sorted keys. Count is the number of names.
func NewMapGroup(m map[string]string) Group {
	if m == nil {
		m = map[string]string{}
	}
	return Group{Count: len(m), List: encodeList(m)}
}

// encodeList renders v as compact JSON without HTML escaping, so version
// ranges such as ">=1.0" stay readable in reports.
func encodeList(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// Summary is the normalized dependency result of one or more ecosystems.
type Summary struct {
	Count  int              // Total dependency count
	Groups map[string]Group // Named sub-groups (pypi, js.dev, ...)
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{Groups: make(map[string]Group)}
}

// DefaultSummary returns the all-zero schema for the given group names.
func DefaultSummary(groups ...string) *Summary {
	s := NewSummary()
	for _, g := range groups {
		s.Groups[g] = Group{}
	}
	return s
}

// Set stores g under name.
func (s *Summary) Set(name string, g Group) {
	if s.Groups == nil {
		s.Groups = make(map[string]Group)
	}
	s.Groups[name] = g
}

// Group returns the named group, or the zero Group if absent.
func (s *Summary) Group(name string) Group {
	return s.Groups[name]
}

// Merge copies other's groups over s and adds other's count to s.
func (s *Summary) Merge(other *Summary) {
	if other == nil {
		return
	}
	for name, g := range other.Groups {
		s.Set(name, g)
	}
	s.Count += other.Count
}

// Metadata converts the summary to the nested result shape consumed by
// checks and the report layer:
//
//	{"count": 3, "pypi": {"count": 2, "list": "[...]"}, ...}
func (s *Summary) Metadata() map[string]any {
	m := map[string]any{"count": s.Count}
	for name, g := range s.Groups {
		m[name] = map[string]any{"count": g.Count, "list": g.List}
	}
	return m
}
